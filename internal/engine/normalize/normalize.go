// Package normalize canonicalizes clinical text before catalog lookup.
// Reference tables and user input mix full-width and half-width punctuation
// and compose CJK compatibility forms differently; matching happens on the
// folded form only.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Name folds a single operation name: NFC composition, full-width to
// half-width folding, and whitespace removal. Clinical names contain no
// meaningful interior spaces.
func Name(s string) string {
	s = width.Fold.String(norm.NFC.String(s))
	return strings.Join(strings.Fields(s), "")
}

// Line folds a whole combination line: NFC + width folding and trimming,
// but interior spaces are kept so slot text stays aligned with the input.
// Full-width separators (＋ ／) become their ASCII forms here.
func Line(s string) string {
	return strings.TrimSpace(width.Fold.String(norm.NFC.String(s)))
}
