// Package glob provides glob pattern matching for slash-separated paths.
//
// Extends path.Match with ** for matching any number of path segments, so
// "**/*.md" selects Markdown files at any depth and "guide/**" selects
// everything under guide/.
package glob

import (
	"path"
	"path/filepath"
	"strings"
)

// Match reports whether p matches the glob pattern.
// Supports standard glob patterns (*, ?, [...]) plus ** for matching any
// path segments. Both pattern and p are treated as slash-separated.
// Returns an error if the pattern is malformed.
func Match(pattern, p string) (bool, error) {
	pattern = filepath.ToSlash(pattern)
	p = filepath.ToSlash(p)

	before, after, found := strings.Cut(pattern, "**")
	if !found || strings.Contains(after, "**") {
		return path.Match(pattern, p)
	}

	prefix := strings.TrimSuffix(before, "/")
	suffix := strings.TrimPrefix(after, "/")

	rest := p
	if prefix != "" {
		if p != prefix && !strings.HasPrefix(p, prefix+"/") {
			return false, nil
		}
		rest = strings.TrimPrefix(strings.TrimPrefix(p, prefix), "/")
	}
	if suffix == "" {
		return true, nil
	}

	// Try the suffix against every tail of the remaining segments.
	segments := strings.Split(rest, "/")
	for i := range segments {
		m, err := path.Match(suffix, strings.Join(segments[i:], "/"))
		if err != nil {
			return false, err
		}
		if m {
			return true, nil
		}
	}
	return false, nil
}
