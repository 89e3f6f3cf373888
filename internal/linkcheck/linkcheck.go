// Package linkcheck validates internal links in a rendered site.
//
// Every HTML document under a root is scanned for href and src attributes.
// Local references must resolve to an existing file and, when they carry a
// fragment and point at an HTML document, to an id declared in that
// document. External, mailto, data and templated references are skipped.
//
// Broken references are returned as Findings rather than errors. Errors are
// reserved for I/O failures, which abort the run.
package linkcheck

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultIndex is the document served for a directory reference.
	DefaultIndex = "index.html"

	// docExt marks files that are scanned and whose anchors are checked.
	docExt = ".html"

	// cacheSlack is the initial room for targets outside the root. The
	// cache grows past it rather than evicting.
	cacheSlack = 64
)

// Reasons reported in findings.
const (
	ReasonAnchorNotFound = "anchor not found"
	ReasonFileNotFound   = "file not found"
)

// Finding is one reference that failed to resolve.
type Finding struct {
	Source string `json:"source"` // document path relative to the root
	Ref    string `json:"ref"`    // reference exactly as written
	Reason string `json:"reason"`
}

// String formats the finding as "<source> → <ref> (<reason>)".
func (f Finding) String() string {
	return fmt.Sprintf("%s → %s (%s)", f.Source, f.Ref, f.Reason)
}

// Result is the outcome of one validation run.
type Result struct {
	Documents  int       `json:"documents"`
	References int       `json:"references"`
	Findings   []Finding `json:"findings"`
}

// OK reports whether every reference resolved.
func (r Result) OK() bool {
	return len(r.Findings) == 0
}

// Reporter receives progress as documents are checked.
type Reporter interface {
	Increment()
	Print()
	Done()
}

// Option configures a Validator.
type Option func(*Validator)

// WithIndex sets the document name appended to directory references.
func WithIndex(name string) Option {
	return func(v *Validator) {
		if name != "" {
			v.index = name
		}
	}
}

// WithProgress installs a progress reporter factory. It is called once per
// run with the number of documents found.
func WithProgress(fn func(total int) Reporter) Option {
	return func(v *Validator) {
		v.progress = fn
	}
}

// Validator checks the documents under one root.
type Validator struct {
	root     string
	index    string
	progress func(total int) Reporter
}

// New creates a Validator for root.
func New(root string, opts ...Option) (*Validator, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}
	v := &Validator{root: abs, index: DefaultIndex}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Root returns the absolute root directory.
func (v *Validator) Root() string { return v.root }

// Validate checks every document under root with default options and
// returns the findings in discovery order.
func Validate(root string) ([]Finding, error) {
	v, err := New(root)
	if err != nil {
		return nil, err
	}
	res, err := v.Run()
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// Run walks the root and checks every document. Documents are visited in
// lexical directory order so findings are reproducible.
func (v *Validator) Run() (Result, error) {
	var res Result

	docs, err := v.documents()
	if err != nil {
		return res, err
	}
	res.Documents = len(docs)

	ids, err := NewIDCache(len(docs) + cacheSlack)
	if err != nil {
		return res, err
	}

	var prog Reporter
	if v.progress != nil {
		prog = v.progress(len(docs))
		defer prog.Done()
	}

	r := &run{Validator: v, ids: ids, res: &res}
	for _, doc := range docs {
		if err := r.check(doc); err != nil {
			return res, err
		}
		if prog != nil {
			prog.Increment()
			prog.Print()
		}
	}
	return res, nil
}

// documents lists every HTML file under the root.
func (v *Validator) documents() ([]string, error) {
	var docs []string
	err := filepath.WalkDir(v.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), docExt) {
			docs = append(docs, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", v.root, err)
	}
	return docs, nil
}

// run carries the state of one Run call.
type run struct {
	*Validator
	ids *IDCache
	res *Result
}

// check validates the references of one document.
func (r *run) check(file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	rel := r.rel(file)

	for _, m := range refPattern.FindAllSubmatch(content, -1) {
		ref := string(m[1])

		switch Classify(ref) {
		case RefSkip:
			continue

		case RefFragment:
			r.res.References++
			if !r.ids.From(file, content).Has(ref[1:]) {
				r.report(rel, ref, ReasonAnchorNotFound)
			}

		case RefPath:
			r.res.References++
			t := SplitRef(ref)
			target := r.resolve(t.Path, file)
			if !exists(target) {
				r.report(rel, ref, ReasonFileNotFound)
				continue
			}
			if t.Fragment == "" || !strings.HasSuffix(target, docExt) {
				continue
			}
			ids, err := r.ids.Get(target)
			if err != nil {
				return err
			}
			if !ids.Has(t.Fragment) {
				r.report(rel, ref, "anchor #"+t.Fragment+" not found")
			}
		}
	}
	return nil
}

func (r *run) report(source, ref, reason string) {
	r.res.Findings = append(r.res.Findings, Finding{Source: source, Ref: ref, Reason: reason})
}

// rel returns file relative to the root with forward slashes.
func (v *Validator) rel(file string) string {
	rel, err := filepath.Rel(v.root, file)
	if err != nil {
		return file
	}
	return filepath.ToSlash(rel)
}
