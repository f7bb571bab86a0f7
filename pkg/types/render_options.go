package types

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ModifierStyle selects how modifiers are written.
type ModifierStyle int

const (
	// ModifierNames spells modifiers out: "Shift-Command-R".
	ModifierNames ModifierStyle = iota
	// ModifierASCII uses one plaintext character per modifier: "$@R".
	ModifierASCII
	// ModifierSymbols uses the Unicode glyphs: "⇧⌘R".
	ModifierSymbols
)

func (s ModifierStyle) String() string {
	switch s {
	case ModifierASCII:
		return "ascii"
	case ModifierSymbols:
		return "symbols"
	default:
		return "names"
	}
}

// ParseModifierStyle accepts the names produced by String.
func ParseModifierStyle(s string) (ModifierStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "names":
		return ModifierNames, nil
	case "ascii":
		return ModifierASCII, nil
	case "symbols":
		return ModifierSymbols, nil
	}
	return ModifierNames, errors.Newf("unknown modifier style %q", s)
}

// KeyStyle selects how the non-modifier key is written.
type KeyStyle int

const (
	// KeyName writes the key's display name, e.g. "Escape".
	KeyName KeyStyle = iota
	// KeySymbol writes the key's glyph, e.g. "⎋".
	KeySymbol
)

func (s KeyStyle) String() string {
	if s == KeySymbol {
		return "symbol"
	}
	return "name"
}

// ParseKeyStyle accepts the names produced by String.
func ParseKeyStyle(s string) (KeyStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return KeyName, nil
	case "symbol":
		return KeySymbol, nil
	}
	return KeyName, errors.Newf("unknown key style %q", s)
}

// RenderOptions controls how a shortcut is displayed. Every combination is
// valid; options that do not apply to the chosen style are ignored.
type RenderOptions struct {
	ModifierStyle ModifierStyle
	// PlusSign puts "+" between tokens, symbols style only.
	PlusSign bool
	// Hyper writes Control+Option+Shift+Command as "Hyper", ignored for ascii.
	Hyper    bool
	KeyStyle KeyStyle
	// ClarifyKeys prefers clarified names, name style only.
	ClarifyKeys bool
}
