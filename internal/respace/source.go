package respace

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const (
	fmOpen  = "---\n"
	fmClose = "\n---\n"
)

// Source is a file split into its front matter and Markdown body.
// FrontMatter includes both marker lines and is written back byte for byte.
type Source struct {
	FrontMatter string
	Body        string
}

// Split separates a leading front matter block from the body. Without an
// opening marker on the first line, or without a closing marker, the whole
// content is body.
func Split(src string) Source {
	if !strings.HasPrefix(src, fmOpen) {
		return Source{Body: src}
	}
	end := strings.Index(src[len(fmOpen):], fmClose)
	if end == -1 {
		return Source{Body: src}
	}
	cut := len(fmOpen) + end + len(fmClose)
	return Source{FrontMatter: src[:cut], Body: src[cut:]}
}

// String reassembles the file content.
func (s Source) String() string {
	return s.FrontMatter + s.Body
}

// settings holds per-file switches read from front matter.
type settings struct {
	Pangu *bool `yaml:"pangu"`
}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Disabled reports whether the front matter opts the file out with
// "pangu: false". Front matter that fails to decode never disables.
func (s Source) Disabled() bool {
	if s.FrontMatter == "" {
		return false
	}
	var st settings
	if _, err := frontmatter.Parse(bytes.NewReader([]byte(s.FrontMatter)), &st, yamlFormat); err != nil {
		return false
	}
	return st.Pangu != nil && !*st.Pangu
}
