// Package format renders monetary amounts in words, the form used on
// cheques and invoices: integer and fractional parts both read as grouped
// numbers and joined with currency unit words, e.g.
// "one thousand two hundred thirty four rupees and fifty six paise".
//
// The actual number wording comes from a conversion engine, so amounts render
// in any registered language; only the unit words are supplied by the caller.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/remiges-tech/sankhya/engine"
)

// AmountOptions carries the language-specific words around the numbers.
// Zero-value fields fall back to English rupee defaults.
type AmountOptions struct {
	Unit        string // currency unit word, default "rupees"
	SubUnit     string // fractional unit word, default "paise"
	Conjunction string // word joining the two clauses, default "and"
}

func (o *AmountOptions) applyDefaults() {
	if o.Unit == "" {
		o.Unit = "rupees"
	}
	if o.SubUnit == "" {
		o.SubUnit = "paise"
	}
	if o.Conjunction == "" {
		o.Conjunction = "and"
	}
}

// AmountInWords converts a decimal amount string like "1,234.56" to words.
// The fractional part is significant to two digits, like paise: longer
// fractions are truncated to their first two digits. A zero or absent
// fraction renders no sub-unit clause at all.
func AmountInWords(eng *engine.Engine, amount string, opts AmountOptions) (string, error) {
	if eng == nil {
		return "", errors.New("format: engine is nil")
	}
	if amount == "" {
		return "", errors.New("format: empty amount")
	}
	opts.applyDefaults()

	intPart := amount
	fracPart := ""
	if dot := strings.IndexByte(amount, '.'); dot >= 0 {
		intPart, fracPart = amount[:dot], amount[dot+1:]
	}

	whole, err := strconv.ParseInt(strings.ReplaceAll(intPart, ",", ""), 10, 64)
	if err != nil || whole < 0 {
		return "", fmt.Errorf("format: %q is not a valid amount", amount)
	}

	sep := eng.Separator()
	words := eng.ConvertInt(whole) + sep + opts.Unit

	if fracPart != "" {
		if len(fracPart) > 2 {
			fracPart = fracPart[:2]
		}
		sub, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return "", fmt.Errorf("format: %q is not a valid amount", amount)
		}
		if sub > 0 {
			words += sep + opts.Conjunction + sep + eng.ConvertInt(sub) + sep + opts.SubUnit
		}
	}
	return words, nil
}
