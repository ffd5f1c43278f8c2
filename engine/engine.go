// Package engine implements the number-to-words conversion engine used by
// Sankhya. It converts numeric and alphanumeric input into spoken-word form
// using the Indian numbering convention (hundred/thousand/lakh/crore
// grouping).
//
// The engine is parameterized by a Vocabulary, which supplies the
// language-specific word tables. The engine itself is language-agnostic:
// all per-language knowledge lives in the Vocabulary. An Engine is immutable
// after construction and safe for concurrent use; every conversion is a pure
// function of its input.
//
// Conversion happens in two stages. The input classifier inspects the raw
// input and decides the conversion mode (currency, individual or decimal),
// then the mode-specific renderer produces the word string. See Convert for
// the classification rules.
package engine

import (
	"fmt"
	"strconv"
)

// Magnitude is one named order-of-magnitude breakpoint, e.g. (100000, "lakh").
type Magnitude struct {
	Value int64
	Word  string
}

// Vocabulary holds the word tables for one language. It is read-only after
// construction and may be shared by any number of engines and goroutines.
//
// Atoms must name every integer the currency renderer can reach as a base
// case, which means 0 through 99 at minimum for Indian-style grouping.
// Magnitudes must be sorted by Value, highest first; decomposition scans them
// in order and uses the first breakpoint not exceeding the number.
type Vocabulary struct {
	// Atoms maps an integer to the word for that exact value.
	Atoms map[int64]string

	// Magnitudes lists the grouping breakpoints, strictly descending by
	// Value. Every breakpoint must be greater than 1.
	Magnitudes []Magnitude

	// Alphabet maps an uppercase letter to its spoken form, used in
	// individual mode. Letters missing from the table pass through
	// unchanged.
	Alphabet map[rune]string

	// DecimalPoint is the word announcing the fractional separator.
	// Defaults to "point".
	DecimalPoint string

	// Separator joins words in the output. Defaults to a single space.
	Separator string
}

// Validate checks that the vocabulary can support the currency renderer:
// atoms must cover 0 through 99 and magnitudes must be strictly descending
// breakpoints greater than 1. A vocabulary failing these checks could send
// the renderer into unbounded recursion, so NewEngine rejects it up front.
func (v Vocabulary) Validate() error {
	for i := int64(0); i <= 99; i++ {
		if _, ok := v.Atoms[i]; !ok {
			return fmt.Errorf("vocabulary atoms missing entry for %d", i)
		}
	}
	prev := int64(0)
	for i, m := range v.Magnitudes {
		if m.Value <= 1 {
			return fmt.Errorf("magnitude %q has breakpoint %d, must be greater than 1", m.Word, m.Value)
		}
		if i > 0 && m.Value >= prev {
			return fmt.Errorf("magnitudes not strictly descending at %q (%d >= %d)", m.Word, m.Value, prev)
		}
		prev = m.Value
	}
	return nil
}

// Engine converts numbers to words for a single language.
type Engine struct {
	vocab Vocabulary
	sep   string
	point string
}

// New constructs an Engine for the given vocabulary. The vocabulary is
// validated so that renderer recursion is guaranteed to terminate; an
// incomplete vocabulary is a configuration error and is reported here rather
// than surfacing as a wrong conversion later.
func New(v Vocabulary) (*Engine, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	sep := v.Separator
	if sep == "" {
		sep = " "
	}
	point := v.DecimalPoint
	if point == "" {
		point = "point"
	}
	return &Engine{vocab: v, sep: sep, point: point}, nil
}

// Convert converts input to words. mode may be ModeAuto to let the
// classifier pick the mode from the shape of the input, or ModeCurrency /
// ModeIndividual to force a reading. Two classifications are unconditional
// and ignore the override: input containing a letter is always read
// individually, and input containing a dot (with no letters) is always read
// as a decimal.
//
// Convert is total: malformed input degrades to individual character
// rendering instead of failing. An empty input returns an empty string.
func (e *Engine) Convert(input string, mode Mode) string {
	ci := classify(input, mode)
	switch ci.kind {
	case kindIndividual:
		return e.renderIndividual(ci.text)
	case kindDecimal:
		return e.renderDecimal(ci.number, ci.frac)
	default:
		return e.renderCurrency(ci.number)
	}
}

// ConvertInt converts a non-negative integer using currency-style grouping.
func (e *Engine) ConvertInt(n int64) string {
	return e.Convert(strconv.FormatInt(n, 10), ModeCurrency)
}

// Separator returns the word-joining string of the engine's vocabulary.
func (e *Engine) Separator() string {
	return e.sep
}

// Detect reports the mode Convert would use for the given input and
// override, without rendering anything. Useful for callers that echo the
// resolved mode back to API clients.
func (e *Engine) Detect(input string, mode Mode) Mode {
	switch classify(input, mode).kind {
	case kindIndividual:
		return ModeIndividual
	case kindDecimal:
		return ModeDecimal
	default:
		return ModeCurrency
	}
}
