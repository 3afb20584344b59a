package datastore

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

// Fetcher retrieves the raw bytes of a document by its site path,
// e.g. "/CPS/data/papers.json".
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// HTTPFetcher fetches documents from a deployed site over HTTP(S).
type HTTPFetcher struct {
	// Origin is the scheme and host the site is served from,
	// e.g. "https://example.github.io".
	Origin string
	Client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher for the given origin using http.DefaultClient.
func NewHTTPFetcher(origin string) *HTTPFetcher {
	return &HTTPFetcher{Origin: strings.TrimSuffix(origin, "/"), Client: http.DefaultClient}
}

// Fetch issues a GET for Origin+path. Any non-2xx status is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Origin+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// FSFetcher reads documents from a filesystem holding the site root.
// Prefix (the deployment base path) is stripped from requested paths
// before they are opened.
type FSFetcher struct {
	FS     fs.FS
	Prefix string
}

// Fetch reads the file that path maps to inside FS.
func (f *FSFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	name := strings.TrimPrefix(path, f.Prefix)
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid document path %q", path)
	}
	return fs.ReadFile(f.FS, name)
}
