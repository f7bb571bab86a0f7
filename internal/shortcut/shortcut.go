// Package shortcut turns freeform descriptions of Mac keyboard shortcuts into
// a canonical Shortcut value and renders that value in several styles.
//
// Accepted input ranges from spelled-out words to glyphs and their plaintext
// stand-ins; all of these describe the same shortcut:
//
//	command shift r
//	shift-command-R
//	⌘⇧R
//	$@r
//
// Several shortcuts can be given at once, separated by " / " or " | ".
package shortcut

import (
	"strings"

	"ksc/pkg/types"
)

// Shortcut is zero or more modifiers, always distinct and in display order,
// plus exactly one key symbol. Values are only produced by Parse and are
// never modified afterwards.
type Shortcut struct {
	mods []types.Key
	key  string
}

// Modifiers returns a copy of the modifiers in display order.
func (s Shortcut) Modifiers() []types.Key {
	return append([]types.Key(nil), s.mods...)
}

// Key returns the key symbol, e.g. "R", "⎋" or "F12".
func (s Shortcut) Key() string {
	return s.key
}

// Has reports whether the modifier with the given symbol is part of s.
func (s Shortcut) Has(symbol string) bool {
	for _, m := range s.mods {
		if m.Symbol == symbol {
			return true
		}
	}
	return false
}

// Equal reports whether both shortcuts have the same modifiers and key.
func (s Shortcut) Equal(other Shortcut) bool {
	if s.key != other.key || len(s.mods) != len(other.mods) {
		return false
	}
	for i := range s.mods {
		if s.mods[i].Symbol != other.mods[i].Symbol {
			return false
		}
	}
	return true
}

// Canonical is the compact plaintext form: ASCII modifiers followed by the
// key symbol, e.g. "$@R".
func (s Shortcut) Canonical() string {
	var b strings.Builder
	for _, m := range s.mods {
		b.WriteString(m.ASCII)
	}
	b.WriteString(s.key)
	return b.String()
}

// String returns the canonical form.
func (s Shortcut) String() string {
	return s.Canonical()
}
