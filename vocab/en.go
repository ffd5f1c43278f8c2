package vocab

import "github.com/remiges-tech/sankhya/engine"

var enOnes = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var enTens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// English returns the English vocabulary. It follows the Indian grouping
// convention throughout, so 1000000 reads "ten lakh", not "one million".
// Compound atoms are open, "forty two", matching spoken usage rather than
// the hyphenated written form.
func English() engine.Vocabulary {
	atoms := make(map[int64]string, 100)
	for i, w := range enOnes {
		atoms[int64(i)] = w
	}
	for t := 2; t <= 9; t++ {
		atoms[int64(t*10)] = enTens[t]
		for o := 1; o <= 9; o++ {
			atoms[int64(t*10+o)] = enTens[t] + " " + enOnes[o]
		}
	}

	// English letters speak as themselves.
	alphabet := make(map[rune]string, 26)
	for r := 'A'; r <= 'Z'; r++ {
		alphabet[r] = string(r)
	}

	return engine.Vocabulary{
		Atoms: atoms,
		Magnitudes: []engine.Magnitude{
			{Value: 10000000, Word: "crore"},
			{Value: 100000, Word: "lakh"},
			{Value: 1000, Word: "thousand"},
			{Value: 100, Word: "hundred"},
		},
		Alphabet:     alphabet,
		DecimalPoint: "point",
		Separator:    " ",
	}
}
