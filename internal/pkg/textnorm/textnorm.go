// Package textnorm folds free-text place names so that "Yaoundé", " YAOUNDE " and
// "yaounde" compare equal.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize case-folds s, strips combining marks and collapses whitespace.
// It is safe for concurrent use: the transformer chain is stateful, so a new
// one is built per call.
func Normalize(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		cases.Fold(),
		norm.NFC,
	)

	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = strings.ToLower(s)
	}

	return strings.Join(strings.Fields(folded), " ")
}

// Equal reports whether a and b are the same place name once normalized.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
