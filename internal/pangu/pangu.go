// Package pangu inserts whitespace between CJK characters and half-width
// letters, digits and symbols.
//
// The rules are a subset of pangu.js: spacing around ellipsis dots, quotes,
// hash tags, operators, brackets and the CJK/half-width boundary. The
// fullwidth punctuation conversion (`中文:中文` to `中文：中文`), the single
// quote and possessive rules and the bracket fix-up rules are not ported.
// Each rule is a regular expression applied in order over the whole
// string. Text with no CJK character is returned untouched, so pure Latin
// prose never changes.
package pangu

import "regexp"

// cjk covers Han, kana, bopomofo, enclosed CJK and compatibility ideographs.
const cjk = `\x{2e80}-\x{2eff}\x{2f00}-\x{2fdf}\x{3040}-\x{309f}\x{30a0}-\x{30fa}\x{30fc}-\x{30ff}\x{3100}-\x{312f}\x{3200}-\x{32ff}\x{3400}-\x{4dbf}\x{4e00}-\x{9fff}\x{f900}-\x{faff}`

// ans is the half-width set that follows a CJK character.
const ans = `A-Za-z\x{0370}-\x{03ff}0-9@\$%\^&\*\-\+\\=\|/\x{00a1}-\x{00ff}\x{2150}-\x{218f}\x{2700}—\x{27bf}`

// ansBefore is the half-width set that precedes a CJK character. It also
// admits trailing sentence punctuation such as "!" and ".".
const ansBefore = `A-Za-z\x{0370}-\x{03ff}0-9~\$%\^&\*\-\+\\=\|/!;:,\.\?\x{00a1}-\x{00ff}\x{2150}-\x{218f}\x{2700}—\x{27bf}`

type rule struct {
	re   *regexp.Regexp
	repl string
}

var anyCJK = regexp.MustCompile(`[` + cjk + `]`)

var rules = []rule{
	// ellipsis dots
	{regexp.MustCompile(`([\.]{2,}|\x{2026})([` + cjk + `])`), "${1} ${2}"},

	// quotes
	{regexp.MustCompile(`([` + cjk + `])([` + "`" + `"\x{05f4}])`), "${1} ${2}"},
	{regexp.MustCompile(`([` + "`" + `"\x{05f4}])([` + cjk + `])`), "${1} ${2}"},
	{regexp.MustCompile(`(["\x{05f4}]+)\s*(.+?)\s*(["\x{05f4}]+)`), "${1}${2}${3}"},

	// hash tags
	{regexp.MustCompile(`([` + cjk + `])(#([^ ]))`), "${1} ${2}"},
	{regexp.MustCompile(`(([^ ])#)([` + cjk + `])`), "${1} ${3}"},

	// operators between CJK and alphanumerics
	{regexp.MustCompile(`([` + cjk + `])([\+\-\*/=&\|<>])([A-Za-z0-9])`), "${1} ${2} ${3}"},
	{regexp.MustCompile(`([A-Za-z0-9])([\+\-\*/=&\|<>])([` + cjk + `])`), "${1} ${2} ${3}"},

	// brackets
	{regexp.MustCompile(`([` + cjk + `])([\(\[\{<>\x{201c}])`), "${1} ${2}"},
	{regexp.MustCompile(`([\)\]\}<>\x{201d}])([` + cjk + `])`), "${1} ${2}"},

	// letters, digits and symbols
	{regexp.MustCompile(`([` + cjk + `])([` + ans + `])`), "${1} ${2}"},
	{regexp.MustCompile(`([` + ansBefore + `])([` + cjk + `])`), "${1} ${2}"},
}

// SpacingText returns s with a single space inserted at every boundary
// between a CJK character and a half-width letter, digit or symbol.
func SpacingText(s string) string {
	if len(s) <= 1 || !hasCJK(s) {
		return s
	}
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}

// hasCJK reports whether s contains at least one CJK character.
func hasCJK(s string) bool {
	return anyCJK.MatchString(s)
}
