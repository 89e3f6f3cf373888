// refs.go classifies raw reference strings and resolves path references to
// files on disk.

package linkcheck

import (
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var refPattern = regexp.MustCompile(`(?:href|src)="([^"]+)"`)

// skipPrefixes are schemes never checked.
var skipPrefixes = []string{"http://", "https://", "mailto:", "data:"}

// placeholder marks an unrendered template expression.
const placeholder = "{{"

// RefKind is how a reference is handled.
type RefKind int

const (
	RefSkip     RefKind = iota // external or templated, never checked
	RefFragment                // "#id" within the same document
	RefPath                    // local file, optionally with a fragment
)

// Classify decides how ref is checked. Skip prefixes win over everything,
// including a fragment later in the string.
func Classify(ref string) RefKind {
	for _, p := range skipPrefixes {
		if strings.HasPrefix(ref, p) {
			return RefSkip
		}
	}
	if strings.Contains(ref, placeholder) {
		return RefSkip
	}
	if strings.HasPrefix(ref, "#") {
		return RefFragment
	}
	return RefPath
}

// Target is a path reference split into its parts.
type Target struct {
	Path     string // everything before the first '?' or '#'
	Fragment string // text after the first '#', up to any further '#'
}

// SplitRef separates the path from the query and fragment. The query is
// dropped; only the path and fragment matter for resolution.
func SplitRef(ref string) Target {
	var t Target
	t.Path = ref
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		t.Path = ref[:i]
	}
	if _, frag, ok := strings.Cut(ref, "#"); ok {
		t.Fragment, _, _ = strings.Cut(frag, "#")
	}
	return t
}

// resolve maps a reference path to a file. Paths starting with "/" are
// rooted at the site root, others are relative to the referencing
// document's directory. A directory resolves to its index document.
// Percent-encoded paths are tried raw first, then unescaped.
func (v *Validator) resolve(p, from string) string {
	target := v.join(p, from)
	if _, err := os.Stat(target); err != nil {
		if dec, decErr := url.PathUnescape(p); decErr == nil && dec != p {
			if alt := v.join(dec, from); exists(alt) {
				target = alt
			}
		}
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, v.index)
	}
	return target
}

func (v *Validator) join(p, from string) string {
	if strings.HasPrefix(p, "/") {
		return filepath.Join(v.root, filepath.FromSlash(p))
	}
	return filepath.Join(filepath.Dir(from), filepath.FromSlash(p))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
