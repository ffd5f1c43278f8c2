package engine

import (
	"strconv"
	"strings"
	"unicode"
)

// renderCurrency converts n to grouped, magnitude-based words. Atoms are the
// base case; otherwise the highest magnitude not exceeding n splits it into
// quotient and remainder, each rendered recursively. Each recursive call
// strictly decreases n, so depth is bounded by the magnitude tier count.
func (e *Engine) renderCurrency(n int64) string {
	if word, ok := e.vocab.Atoms[n]; ok {
		return word
	}
	for _, m := range e.vocab.Magnitudes {
		if n >= m.Value {
			quotient, remainder := n/m.Value, n%m.Value
			result := e.renderCurrency(quotient) + e.sep + m.Word
			if remainder > 0 {
				result += e.sep + e.renderCurrency(remainder)
			}
			return strings.TrimSpace(result)
		}
	}
	// Unreachable with a validated vocabulary; read the digits out rather
	// than produce nothing.
	return e.renderIndividual(strconv.FormatInt(n, 10))
}

// renderIndividual reads text character by character. Digits map through the
// atoms table, letters through the alphabet table (unknown letters pass
// through as-is). Everything else, including separators and dots, is
// skipped silently.
func (e *Engine) renderIndividual(text string) string {
	var words []string
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			words = append(words, e.vocab.Atoms[int64(r-'0')])
		case unicode.IsLetter(r):
			if word, ok := e.vocab.Alphabet[unicode.ToUpper(r)]; ok {
				words = append(words, word)
			} else {
				words = append(words, string(r))
			}
		}
	}
	return strings.Join(words, e.sep)
}

// renderDecimal joins the currency reading of the integer part and the
// digit-by-digit reading of the fractional part with the decimal-point word.
// The fractional part is positional, never magnitude-based: "0.50" and
// "0.5" read differently, so its zeros survive exactly as given.
func (e *Engine) renderDecimal(integer int64, frac string) string {
	return e.renderCurrency(integer) + e.sep + e.point + e.sep + e.renderIndividual(frac)
}
