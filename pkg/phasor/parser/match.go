package parser

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// fold prepares text for case-insensitive comparison.
// A Caser is stateful, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// containsFolded reports whether folded occurs in s, ignoring case.
// folded must already have been passed through fold.
func containsFolded(s, folded string) bool {
	return strings.Contains(fold(s), folded)
}
