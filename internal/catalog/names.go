package catalog

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName folds case and strips all whitespace so "Advanced Rod",
// "advancedrod" and " ADVANCED  rod " address the same item.
func NormalizeName(s string) string {
	lowered := cases.Lower(language.Und).String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, lowered)
}

// closest returns the candidate nearest to input by edit distance over
// normalized names, or "" when nothing is close enough to be a typo.
func closest(input string, candidates []string) string {
	norm := NormalizeName(input)
	if norm == "" {
		return ""
	}

	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(norm, NormalizeName(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	limit := len([]rune(norm)) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}
