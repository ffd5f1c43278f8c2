package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Mode selects how input is read. ModeAuto lets the classifier decide from
// the shape of the input.
type Mode string

const (
	ModeAuto       Mode = ""
	ModeCurrency   Mode = "currency"
	ModeIndividual Mode = "individual"

	// ModeDecimal is only ever produced by detection; it cannot be
	// requested because decimal reading depends on the input containing a
	// fractional part.
	ModeDecimal Mode = "decimal"
)

// ParseMode converts a user-supplied mode string into a Mode. Only currency
// and individual may be requested; the empty string means auto-detect.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeCurrency, ModeIndividual:
		return Mode(s), nil
	}
	return ModeAuto, fmt.Errorf("invalid mode %q, must be %q or %q", s, ModeCurrency, ModeIndividual)
}

type inputKind int

const (
	kindCurrency inputKind = iota
	kindIndividual
	kindDecimal
)

// classifiedInput is the tagged result of classification, consumed
// immediately by the renderer dispatch in Convert. Exactly one of the value
// fields is meaningful for each kind: number for currency, text for
// individual, number+frac for decimal.
type classifiedInput struct {
	kind   inputKind
	number int64
	text   string
	frac   string
}

// stripGrouping removes the characters tolerated inside numeric input:
// commas, spaces and hyphens.
func stripGrouping(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '-':
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// classify inspects raw input and decides the conversion mode, applying the
// rules in precedence order:
//
//  1. Any letter forces individual mode, even over an explicit override.
//     Version strings like "v1.2.3" land here before the decimal check.
//  2. A dot (with no letters) forces decimal mode, again regardless of the
//     override. The string splits on the first dot; the fractional part is
//     kept verbatim, further dots included, because the individual renderer
//     skips them anyway.
//  3. With no override: a leading zero on an all-digit string means
//     phone-number-like input, read individually. Spaces and hyphens also
//     mean individual; commas mean currency; otherwise currency.
//  4. Finally the grouping characters are stripped and the remainder parsed
//     as an integer. Anything unparseable falls back to individual reading
//     of the original text.
func classify(text string, override Mode) classifiedInput {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return classifiedInput{kind: kindIndividual, text: text}
		}
	}

	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		intPart := stripGrouping(text[:dot])
		var n int64
		if isDigits(intPart) {
			var err error
			n, err = strconv.ParseInt(intPart, 10, 64)
			if err != nil {
				// Integer part out of int64 range: same
				// recovery as the dot-less path.
				return classifiedInput{kind: kindIndividual, text: text}
			}
		}
		return classifiedInput{kind: kindDecimal, number: n, frac: text[dot+1:]}
	}

	mode := override
	if mode == ModeAuto {
		cleaned := stripGrouping(text)
		switch {
		case strings.HasPrefix(text, "0") && len(text) > 1 && isDigits(cleaned):
			// Leading zero on digit input: read it like a phone
			// number, zeros preserved.
			return classifiedInput{kind: kindIndividual, text: text}
		case strings.ContainsAny(text, " -"):
			mode = ModeIndividual
		default:
			// Commas or a plain digit run both mean currency.
			mode = ModeCurrency
		}
	}

	cleaned := stripGrouping(text)
	if isDigits(cleaned) {
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err == nil {
			if mode == ModeIndividual {
				return classifiedInput{kind: kindIndividual, text: text}
			}
			return classifiedInput{kind: kindCurrency, number: n}
		}
		// Out of int64 range: digit-by-digit is the only faithful
		// reading left.
		return classifiedInput{kind: kindIndividual, text: text}
	}
	return classifiedInput{kind: kindIndividual, text: text}
}
