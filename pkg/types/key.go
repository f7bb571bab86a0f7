package types

// Key describes a single addressable key on a Mac keyboard.
type Key struct {
	// Symbol is the canonical representation: a Unicode glyph for modifiers
	// and named keys, plain ASCII for letters, digits and punctuation.
	Symbol string
	// Name is the spelled-out name, e.g. "Left Arrow".
	Name string
	// Aliases are the lowercase words a user may type for this key.
	Aliases []string
	// Shifted is the glyph produced with Shift held, top-row keys only.
	Shifted string
	// Clarified is a disambiguating label such as "Period (.)".
	Clarified string
	// ASCII stands in for a modifier glyph in plaintext output.
	ASCII string
	// Modifier is set for Fn, Control, Option, Shift and Command.
	Modifier bool
}

// Label returns the clarified name when requested and defined, else the name.
func (k Key) Label(clarify bool) string {
	if clarify && k.Clarified != "" {
		return k.Clarified
	}
	return k.Name
}

// Named reports whether the key carries anything beyond its own glyph and is
// therefore worth listing.
func (k Key) Named() bool {
	return k.Symbol != k.Name || k.Clarified != "" || len(k.Aliases) > 0
}
