package respace

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Kind identifies what a Node holds.
type Kind int

const (
	KindDocument Kind = iota
	KindText          // prose, a rewrite candidate
	KindCode          // literal text inside a code span or image alt
	KindOther         // any other structure
)

// Node is one element of a parsed body. Only KindText nodes carry a
// meaningful Value and span; Start and End are byte offsets into the body
// the tree was parsed from. Value is the decoded text, so it differs from
// the span's bytes when the source holds entities or backslash escapes.
type Node struct {
	Kind     Kind
	Value    string
	Start    int
	End      int
	Children []*Node
}

// markdown is shared across files; goldmark parsers hold no per-document
// state. GFM keeps bare URLs out of text nodes via linkify.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse builds a Node tree from a Markdown body.
func Parse(body string) *Node {
	src := []byte(body)
	doc := markdown.Parser().Parse(text.NewReader(src))
	return convert(doc, src, false)
}

func convert(n ast.Node, src []byte, inCode bool) *Node {
	out := &Node{Kind: KindOther}
	switch v := n.(type) {
	case *ast.Document:
		out.Kind = KindDocument
	case *ast.Text:
		out.Kind = KindText
		if inCode {
			out.Kind = KindCode
		}
		out.Value = decode(v.Segment.Value(src))
		out.Start = v.Segment.Start
		out.End = v.Segment.Stop
		return out
	case *ast.CodeSpan, *ast.Image:
		inCode = true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out.Children = append(out.Children, convert(c, src, inCode))
	}
	return out
}

// decode resolves escapes and character references the way a renderer
// would.
func decode(raw []byte) string {
	b := util.UnescapePunctuations(raw)
	b = util.ResolveNumericReferences(b)
	b = util.ResolveEntityNames(b)
	return string(b)
}

// Walk visits n and its descendants depth first, calling fn for every
// KindText node.
func Walk(n *Node, fn func(*Node)) {
	switch n.Kind {
	case KindText:
		fn(n)
	case KindCode:
	default:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	}
}
