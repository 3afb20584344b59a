// Package walker finds the static assets of a site root that a build copies
// to its output directory.
package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// DefaultMaxFileSize is the largest asset copied (32 MB).
const DefaultMaxFileSize int64 = 32 << 20

// FileInfo holds metadata about a single asset discovered during traversal.
type FileInfo struct {
	RelPath     string // Slash-separated path relative to the site root.
	Size        int64  // File size in bytes.
	ContentHash string // SHA-256 hex digest of the file content.
}

// Config controls the behaviour of the Walk function.
type Config struct {
	Include     []string // Glob patterns; only matching files are included.
	Exclude     []string // Glob patterns; matching files are excluded.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Walk traverses fsys and returns metadata for every regular file that
// passes filtering, in lexical order. It respects include/exclude patterns
// and honours a .gitignore file at the root.
func Walk(fsys fs.FS, config Config) ([]FileInfo, error) {
	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	gitignorePatterns := loadGitignore(fsys, ".gitignore")

	var files []FileInfo

	err := fs.WalkDir(fsys, ".", func(relPath string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if relPath != "." && shouldExcludeDir(name) {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if shouldExcludeFile(name) || matchesGitignore(relPath, gitignorePatterns) {
			return nil
		}

		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxSize {
			return nil
		}

		hash, err := HashFile(fsys, relPath)
		if err != nil {
			return nil
		}

		files = append(files, FileInfo{
			RelPath:     relPath,
			Size:        info.Size(),
			ContentHash: hash,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// HashFile computes the SHA-256 digest of the named file in fsys.
func HashFile(fsys fs.FS, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// loadGitignore reads a .gitignore file and returns its non-empty,
// non-comment lines as patterns.
func loadGitignore(fsys fs.FS, name string) []string {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesGitignore checks if a relative path matches any gitignore pattern.
func matchesGitignore(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	parts := strings.Split(relPath, "/")

	for _, pattern := range patterns {
		// Handle directory-only patterns (trailing /).
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimSuffix(pattern, "/")

		if !strings.Contains(pattern, "/") {
			// A bare name matches any component; directory-only
			// patterns must match a parent directory, not the file.
			candidates := parts
			if dirOnly {
				candidates = parts[:len(parts)-1]
			}
			for _, part := range candidates {
				if matched, _ := path.Match(pattern, part); matched {
					return true
				}
			}
			continue
		}

		// Pattern contains a slash, so match against the full relative
		// path or one of its parent directories.
		pattern = strings.TrimPrefix(pattern, "/")
		for i := len(parts); i > 0; i-- {
			if dirOnly && i == len(parts) {
				continue
			}
			if matched, _ := path.Match(pattern, strings.Join(parts[:i], "/")); matched {
				return true
			}
		}
	}
	return false
}
