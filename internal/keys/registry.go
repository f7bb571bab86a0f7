// Package keys holds the table of Mac keys and modifiers together with every
// lookup structure the parser and renderer need.
//
// The registry is assembled once and never modified, so a single instance is
// shared by all callers without locking.
package keys

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"ksc/pkg/types"
)

// HyperName is the display name of the Control-Option-Shift-Command chord.
const HyperName = "Hyper"

// Registry is the immutable key table and its derived indexes.
type Registry struct {
	keys      []types.Key
	bySymbol  map[string]int
	byAlias   map[string]int
	modifiers []types.Key
	modIndex  map[string]int

	modPatterns  []*regexp.Regexp
	hyperPattern *regexp.Regexp
	hyperMods    []types.Key

	toShifted     map[rune]rune
	toUnshifted   map[rune]rune
	shiftedDigits map[rune]bool
}

var defaultRegistry *Registry

func init() {
	defaultRegistry = New()
}

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// New builds a registry from the key table. It panics if the table breaks an
// invariant, which can only happen through a programming error.
func New() *Registry {
	r := &Registry{
		keys:          table(),
		bySymbol:      make(map[string]int),
		byAlias:       make(map[string]int),
		modIndex:      make(map[string]int),
		toShifted:     make(map[rune]rune),
		toUnshifted:   make(map[rune]rune),
		shiftedDigits: make(map[rune]bool),
	}

	for i, k := range r.keys {
		if _, dup := r.bySymbol[k.Symbol]; dup {
			panic(fmt.Sprintf("keys: duplicate symbol %q", k.Symbol))
		}
		r.bySymbol[k.Symbol] = i

		for _, alias := range k.Aliases {
			alias = strings.ToLower(alias)
			if prev, dup := r.byAlias[alias]; dup && prev != i {
				panic(fmt.Sprintf("keys: alias %q used by %q and %q", alias, r.keys[prev].Symbol, k.Symbol))
			}
			r.byAlias[alias] = i
		}

		if k.Modifier {
			r.modIndex[k.Symbol] = len(r.modifiers)
			r.modifiers = append(r.modifiers, k)
			r.modPatterns = append(r.modPatterns, wordPattern(k.Aliases...))
		}

		if k.Shifted != "" {
			plain, _ := utf8.DecodeRuneInString(k.Symbol)
			shifted, _ := utf8.DecodeRuneInString(k.Shifted)
			r.toShifted[plain] = shifted
			r.toUnshifted[shifted] = plain
			if plain >= '0' && plain <= '9' {
				r.shiftedDigits[shifted] = true
			}
		}
	}

	if len(r.modifiers) != 5 {
		panic(fmt.Sprintf("keys: expected 5 modifiers, found %d", len(r.modifiers)))
	}

	r.hyperPattern = wordPattern(strings.ToLower(HyperName))
	for _, alias := range []string{"control", "option", "shift", "command"} {
		r.hyperMods = append(r.hyperMods, r.keys[r.byAlias[alias]])
	}
	return r
}

// wordPattern matches any of words as a whole word, ignoring case.
func wordPattern(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Keys returns every key in table order.
func (r *Registry) Keys() []types.Key {
	return append([]types.Key(nil), r.keys...)
}

// Modifiers returns the five modifiers in display order.
func (r *Registry) Modifiers() []types.Key {
	return append([]types.Key(nil), r.modifiers...)
}

// HyperModifiers returns Control, Option, Shift and Command in display order.
func (r *Registry) HyperModifiers() []types.Key {
	return append([]types.Key(nil), r.hyperMods...)
}

// ModifierPattern returns the alias pattern of the i-th modifier.
func (r *Registry) ModifierPattern(i int) *regexp.Regexp {
	return r.modPatterns[i]
}

// HyperPattern matches the word "hyper".
func (r *Registry) HyperPattern() *regexp.Regexp {
	return r.hyperPattern
}

// ModifierOrder returns the display position of a modifier symbol.
func (r *Registry) ModifierOrder(symbol string) (int, bool) {
	i, ok := r.modIndex[symbol]
	return i, ok
}

// BySymbol finds the key whose canonical symbol is symbol.
func (r *Registry) BySymbol(symbol string) (types.Key, bool) {
	i, ok := r.bySymbol[symbol]
	if !ok {
		return types.Key{}, false
	}
	return r.keys[i], true
}

// ByAlias finds the key with the given alias, ignoring case.
func (r *Registry) ByAlias(alias string) (types.Key, bool) {
	i, ok := r.byAlias[strings.ToLower(alias)]
	if !ok {
		return types.Key{}, false
	}
	return r.keys[i], true
}

// ModifierByGlyph finds the modifier whose single-glyph symbol is c.
func (r *Registry) ModifierByGlyph(c rune) (types.Key, bool) {
	for _, m := range r.modifiers {
		if m.Symbol == string(c) {
			return m, true
		}
	}
	return types.Key{}, false
}

// ModifierByASCII finds the modifier whose ASCII surrogate is c.
func (r *Registry) ModifierByASCII(c rune) (types.Key, bool) {
	for _, m := range r.modifiers {
		if m.ASCII == string(c) {
			return m, true
		}
	}
	return types.Key{}, false
}

// IsShifted reports whether c is produced by holding Shift on some key.
func (r *Registry) IsShifted(c rune) bool {
	_, ok := r.toUnshifted[c]
	return ok
}

// IsShiftedDigit reports whether c is produced by Shift with a digit key.
func (r *Registry) IsShiftedDigit(c rune) bool {
	return r.shiftedDigits[c]
}

// Shift returns the shifted form of c, or c when it has none.
func (r *Registry) Shift(c rune) rune {
	if s, ok := r.toShifted[c]; ok {
		return s
	}
	return c
}

// Unshift returns the unshifted form of c, or c when it has none.
func (r *Registry) Unshift(c rune) rune {
	if u, ok := r.toUnshifted[c]; ok {
		return u
	}
	return c
}
