package vocab

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/remiges-tech/sankhya/engine"
)

// Language pairs a vocabulary with its registry identity.
type Language struct {
	Code       string
	Name       string
	Vocabulary engine.Vocabulary
}

// vocabFile is the on-disk JSON shape of a vocabulary. Atom keys are decimal
// strings because JSON object keys are always strings; alphabet keys must be
// single letters.
type vocabFile struct {
	Code       string            `json:"code"`
	Name       string            `json:"name"`
	Atoms      map[string]string `json:"atoms"`
	Magnitudes []struct {
		Value int64  `json:"value"`
		Word  string `json:"word"`
	} `json:"magnitudes"`
	Alphabet     map[string]string `json:"alphabet"`
	DecimalPoint string            `json:"decimal_point"`
	Separator    string            `json:"separator"`
}

// Load reads a JSON vocabulary definition. The vocabulary is not validated
// here; registration with a Registry validates it through engine
// construction.
func Load(r io.Reader) (Language, error) {
	var f vocabFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return Language{}, fmt.Errorf("decode vocabulary: %w", err)
	}
	if f.Code == "" {
		return Language{}, fmt.Errorf("vocabulary file has no language code")
	}

	atoms := make(map[int64]string, len(f.Atoms))
	for k, word := range f.Atoms {
		n, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return Language{}, fmt.Errorf("atom key %q is not an integer", k)
		}
		atoms[n] = word
	}

	magnitudes := make([]engine.Magnitude, 0, len(f.Magnitudes))
	for _, m := range f.Magnitudes {
		magnitudes = append(magnitudes, engine.Magnitude{Value: m.Value, Word: m.Word})
	}

	alphabet := make(map[rune]string, len(f.Alphabet))
	for k, word := range f.Alphabet {
		r, size := utf8.DecodeRuneInString(k)
		if size != len(k) || r == utf8.RuneError {
			return Language{}, fmt.Errorf("alphabet key %q is not a single letter", k)
		}
		alphabet[r] = word
	}

	return Language{
		Code: f.Code,
		Name: f.Name,
		Vocabulary: engine.Vocabulary{
			Atoms:        atoms,
			Magnitudes:   magnitudes,
			Alphabet:     alphabet,
			DecimalPoint: f.DecimalPoint,
			Separator:    f.Separator,
		},
	}, nil
}

// LoadFile reads a JSON vocabulary definition from a file.
func LoadFile(path string) (Language, error) {
	file, err := os.Open(path)
	if err != nil {
		return Language{}, err
	}
	defer file.Close()
	return Load(file)
}

// RegisterFile loads a vocabulary file and registers it in one step.
func (r *Registry) RegisterFile(path string) error {
	lang, err := LoadFile(path)
	if err != nil {
		return err
	}
	return r.Register(lang.Code, lang.Name, lang.Vocabulary)
}
