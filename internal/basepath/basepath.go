// Package basepath derives the URL prefix a site is deployed under and
// rewrites asset references to absolute paths beneath it.
package basepath

import (
	"regexp"
	"strings"
)

// Root is the base path of a site served from the domain root.
const Root = "/"

// leadingSegment matches a single non-empty path segment followed by a slash,
// e.g. the "/CPS/" of "/CPS/index.html".
var leadingSegment = regexp.MustCompile(`^(/[^/]+/)`)

// FromLocation returns the deployment base path for the given location path.
// A location of the form "/segment/..." yields "/segment/"; anything else,
// including "/" and paths without a leading slash, yields Root.
func FromLocation(path string) string {
	if m := leadingSegment.FindStringSubmatch(path); m != nil {
		return m[1]
	}
	return Root
}

// Resolver rewrites asset URLs relative to a fixed base path.
type Resolver struct {
	base string
}

// NewResolver creates a Resolver for the given base path. An empty base
// is treated as Root and a missing trailing slash is added.
func NewResolver(base string) Resolver {
	if base == "" {
		base = Root
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return Resolver{base: base}
}

// ForLocation is shorthand for NewResolver(FromLocation(path)).
func ForLocation(path string) Resolver {
	return NewResolver(FromLocation(path))
}

// Base returns the resolver's base path. It always ends in a slash.
func (r Resolver) Base() string {
	if r.base == "" {
		return Root
	}
	return r.base
}

// Resolve turns an asset reference into an absolute URL under the base path.
// Absolute http(s) URLs are returned unchanged and an empty reference
// resolves to the empty string.
func (r Resolver) Resolve(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}

	base := r.Base()
	switch {
	case strings.HasPrefix(url, "/"):
		return base + url[1:]
	case strings.HasPrefix(url, "./"):
		return base + url[2:]
	default:
		return base + url
	}
}

// Route returns the link to an in-site route. The empty name is the home page.
func (r Resolver) Route(name string) string {
	name = strings.Trim(name, "/")
	if name == "" {
		return r.Base()
	}
	return r.Base() + name + "/"
}

// Document returns the path of a data document relative to the base path,
// e.g. "/CPS/data/papers.json" for name "papers.json".
func (r Resolver) Document(name string) string {
	return r.Base() + "data/" + name
}
