// ABOUTME: String canonicalization and token-set scoring for device names.
// ABOUTME: Tolerates smart quotes, word reordering, and partial words.

package match

import (
	"strings"
	"unicode"
)

// quoteReplacer maps Unicode smart quotes to their plain ASCII equivalents.
// Bluetooth device names frequently carry possessives typed on phones
// ("Someone's AirPods"), which arrive with U+2019 instead of "'".
var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Normalize canonicalizes smart-quote variants in s. Idempotent.
func Normalize(s string) string {
	return quoteReplacer.Replace(s)
}

// Tokenize splits s into a set of lowercase alphanumeric tokens. Runs of
// non-alphanumeric characters act as separators and duplicates collapse.
// Tokenize("Someone's AirPods Max") = {"someone", "s", "airpods", "max"}.
func Tokenize(s string) map[string]struct{} {
	lowered := strings.ToLower(Normalize(s))
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !isAlphanumeric(r)
	})

	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Score rates how well a free-text query matches a candidate device name,
// in [0, 1]. Whole-token identity is weighted 0.7 and partial (substring)
// token overlap 0.3, so exact words dominate but abbreviations like
// "airpod" still reach "AirPods".
func Score(query, candidateName string) float64 {
	qTokens := Tokenize(query)
	cTokens := Tokenize(candidateName)
	if len(qTokens) == 0 || len(cTokens) == 0 {
		return 0.0
	}

	exactHits := 0
	substringHits := 0
	for qt := range qTokens {
		if _, ok := cTokens[qt]; ok {
			exactHits++
		}
		// At most one substring credit per query token.
		for ct := range cTokens {
			if strings.Contains(ct, qt) || strings.Contains(qt, ct) {
				substringHits++
				break
			}
		}
	}

	exactOverlap := float64(exactHits) / float64(len(qTokens))
	substringScore := float64(substringHits) / float64(len(qTokens))
	return 0.7*exactOverlap + 0.3*substringScore
}
