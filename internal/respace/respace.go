// Package respace normalizes CJK/Latin spacing in Markdown sources.
//
// Only prose text is rewritten. Each text node of the parsed body is run
// through Normalize and spliced back at its recorded byte offsets, so code,
// links, HTML and the leading front matter keep their exact bytes.
package respace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jpl-au/docsite/internal/diff"
)

// Replacement is one accepted rewrite of a text node's span.
type Replacement struct {
	Start int
	End   int
	Text  string
}

// Options configures Process.
type Options struct {
	Check bool // report would-change without writing
	Diff  bool // include a diff of the body in the result
}

// Result is the outcome of processing one file.
type Result struct {
	Path         string `json:"path"`
	Changed      bool   `json:"changed"`
	Replacements int    `json:"replacements"`
	Disabled     bool   `json:"disabled,omitempty"`
	Diff         string `json:"diff,omitempty"`
}

// Replacements collects rewrites for every text node in tree whose spacing
// changes. A node whose span no longer slices body to its value is skipped:
// the tree was parsed from different content.
func Replacements(body string, tree *Node) []Replacement {
	var reps []Replacement
	Walk(tree, func(n *Node) {
		updated, ok := rewrite(n.Value)
		if !ok {
			return
		}
		if n.Start < 0 || n.End > len(body) || n.Start > n.End || body[n.Start:n.End] != n.Value {
			return
		}
		reps = append(reps, Replacement{Start: n.Start, End: n.End, Text: updated})
	})
	return reps
}

// Apply splices reps into body from the highest offset down so earlier
// offsets stay valid. reps must not overlap.
func Apply(body string, reps []Replacement) string {
	sorted := make([]Replacement, len(reps))
	copy(sorted, reps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	for _, r := range sorted {
		body = body[:r.Start] + r.Text + body[r.End:]
	}
	return body
}

// Format normalizes the body of src and returns the new content along with
// the replacements applied. Front matter is carried over untouched. A file
// whose front matter sets "pangu: false" is returned as is.
func Format(src string) (string, []Replacement, bool) {
	s := Split(src)
	if s.Disabled() {
		return src, nil, true
	}
	reps := Replacements(s.Body, Parse(s.Body))
	if len(reps) == 0 {
		return src, nil, false
	}
	s.Body = Apply(s.Body, reps)
	return s.String(), reps, false
}

// Process formats one file. In check mode the file is never written; the
// result only says whether it would change. Read and write failures are
// returned as errors.
func Process(path string, opts Options) (Result, error) {
	res := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", path, err)
	}
	src := string(data)

	out, reps, disabled := Format(src)
	res.Disabled = disabled
	if len(reps) == 0 {
		return res, nil
	}
	res.Changed = true
	res.Replacements = len(reps)

	if opts.Diff {
		res.Diff = diff.Compute(src, out, path, path+" (formatted)").Format(false)
	}

	if opts.Check {
		return res, nil
	}
	if err := writeFile(path, out); err != nil {
		return res, err
	}
	return res, nil
}

// writeFile replaces path with content through a temporary file in the same
// directory, so a crash never leaves a half-written document behind.
func writeFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pangu-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	name := tmp.Name()
	defer os.Remove(name) // no-op after a successful rename

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(name, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(name, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// Summary returns the log line for a changed file.
func (r Result) Summary(check bool) string {
	var b strings.Builder
	b.WriteString("pangu: ")
	b.WriteString(r.Path)
	if check {
		b.WriteString(" would change")
	}
	return b.String()
}
