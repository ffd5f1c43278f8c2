// Package vocab supplies language vocabularies and the language registry for
// the Sankhya conversion engine.
//
// Vocabularies are data, not logic: a vocabulary is a set of word tables
// (atoms, magnitude breakpoints, alphabet, decimal marker) that the engine
// consumes read-only. This package ships reference vocabularies for English
// and Hindi and a JSON loader so deployments can add languages without
// recompiling.
//
// The Registry maps language codes to ready-to-use engines and rejects
// unsupported codes with an UnsupportedLanguageError before any conversion
// is attempted.
package vocab

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/remiges-tech/sankhya/engine"
)

// UnsupportedLanguageError is returned by Registry.Engine for an unknown
// language code. It carries the requested code and the sorted list of codes
// the registry does support, so callers can echo the valid set to clients.
type UnsupportedLanguageError struct {
	Code      string
	Available []string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("language %q not supported, available: %s", e.Code, strings.Join(e.Available, ", "))
}

// Registry maps language codes to conversion engines and human-readable
// language names. A Registry is safe for concurrent use; Register may be
// called while other goroutines look up engines.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*engine.Engine
	names   map[string]string
}

// NewRegistry returns a registry preloaded with the built-in languages.
func NewRegistry() *Registry {
	r := &Registry{
		engines: make(map[string]*engine.Engine),
		names:   make(map[string]string),
	}
	mustRegister(r, "en", "English", English())
	mustRegister(r, "hi", "Hindi", Hindi())
	return r
}

func mustRegister(r *Registry, code, name string, v engine.Vocabulary) {
	if err := r.Register(code, name, v); err != nil {
		panic(fmt.Sprintf("vocab: built-in language %s: %v", code, err))
	}
}

// Register adds or replaces a language. The vocabulary is validated through
// engine construction; an incomplete vocabulary is rejected here.
func (r *Registry) Register(code, name string, v engine.Vocabulary) error {
	if code == "" {
		return fmt.Errorf("language code cannot be empty")
	}
	eng, err := engine.New(v)
	if err != nil {
		return fmt.Errorf("language %s: %w", code, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[code] = eng
	r.names[code] = name
	return nil
}

// Engine returns the conversion engine for the given language code, or an
// *UnsupportedLanguageError listing the valid codes.
func (r *Registry) Engine(code string) (*engine.Engine, error) {
	r.mu.RLock()
	eng, ok := r.engines[code]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnsupportedLanguageError{Code: code, Available: r.Codes()}
	}
	return eng, nil
}

// Languages returns a copy of the code-to-name map of registered languages.
func (r *Registry) Languages() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make(map[string]string, len(r.names))
	for code, name := range r.names {
		langs[code] = name
	}
	return langs
}

// Codes returns the sorted list of registered language codes.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.engines))
	for code := range r.engines {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
