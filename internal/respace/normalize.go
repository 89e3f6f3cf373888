package respace

import (
	"regexp"

	"github.com/jpl-au/docsite/internal/pangu"
)

var (
	// tightPunct matches punctuation that must sit flush against its
	// neighbours in Mandarin typesetting, along with any spaces around it.
	tightPunct = regexp.MustCompile(` *(——|……|/|-) *`)

	// upperAmp matches an ampersand between two capitals, as in "R & D".
	upperAmp = regexp.MustCompile(`([A-Z]) & ([A-Z])`)
)

// Revert removes spaces the spacing pass puts where they do not belong.
//
// Spaces around ——, ……, / and - are always removed. An ampersand is only
// tightened when both touching characters are uppercase Latin letters, so
// abbreviations like R&D collapse while "foo & bar" keeps its spacing.
func Revert(s string) string {
	s = tightPunct.ReplaceAllString(s, "${1}")
	return upperAmp.ReplaceAllString(s, "${1}&${2}")
}

// Normalize applies the full pipeline: CJK spacing followed by Revert.
func Normalize(s string) string {
	return Revert(pangu.SpacingText(s))
}

// rewrite returns the normalized form of s and whether it differs from what
// Revert alone would produce. A false result means no CJK boundary needed a
// space, so any difference would come from Revert and is not attributable
// to spacing.
func rewrite(s string) (string, bool) {
	updated := Normalize(s)
	return updated, updated != Revert(s)
}
