// Package sankhya converts numeric and alphanumeric input to spoken words in
// Indian languages, using the Indian numbering convention (thousand, lakh,
// crore).
//
// The package-level functions operate on a shared default registry holding
// the built-in languages. For custom languages or isolated registries, use
// vocab.NewRegistry directly.
//
//	words, err := sankhya.Convert("1,23,456", "hi", engine.ModeAuto)
//	// एक लाख तेईस हज़ार चार सौ छप्पन
package sankhya

import (
	"sync"

	"github.com/remiges-tech/sankhya/engine"
	"github.com/remiges-tech/sankhya/vocab"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *vocab.Registry
)

// Default returns the shared registry with the built-in languages.
func Default() *vocab.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = vocab.NewRegistry()
	})
	return defaultRegistry
}

// Convert converts input to words in the given language. mode may be
// engine.ModeAuto to detect the reading from the shape of the input. The
// only error is an unsupported language code; conversion itself is total.
func Convert(input, lang string, mode engine.Mode) (string, error) {
	eng, err := Default().Engine(lang)
	if err != nil {
		return "", err
	}
	return eng.Convert(input, mode), nil
}

// Languages returns the code-to-name map of supported languages.
func Languages() map[string]string {
	return Default().Languages()
}
