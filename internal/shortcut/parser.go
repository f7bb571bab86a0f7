package shortcut

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"ksc/internal/errors"
	"ksc/internal/keys"
	"ksc/pkg/types"
)

// separator splits a list of shortcuts. The surrounding spaces are required
// so that "/" and "|" remain usable as keys.
var separator = regexp.MustCompile(` [/|] `)

// ParseAll parses every shortcut in text, separated by " / " or " | ". The
// first segment that fails aborts the whole call.
func ParseAll(text string) ([]Shortcut, error) {
	segments := separator.Split(text, -1)
	shortcuts := make([]Shortcut, 0, len(segments))
	for _, segment := range segments {
		s, err := Parse(segment)
		if err != nil {
			return nil, err
		}
		shortcuts = append(shortcuts, s)
	}
	return shortcuts, nil
}

// Parse converts a single freeform shortcut description into its canonical
// form. It returns a *errors.ParseError carrying text unchanged when no key
// can be resolved.
func Parse(text string) (Shortcut, error) {
	return parse(keys.Default(), text)
}

func parse(r *keys.Registry, text string) (Shortcut, error) {
	shift, _ := r.ByAlias("shift")
	marked := make(map[string]bool, 5)

	work := despaceHyphens(text)

	for i, mod := range r.Modifiers() {
		pattern := r.ModifierPattern(i)
		if pattern.MatchString(work) {
			work = pattern.ReplaceAllLiteralString(work, "")
			marked[mod.Symbol] = true
		}
	}

	if hyper := r.HyperPattern(); hyper.MatchString(work) {
		work = hyper.ReplaceAllLiteralString(work, "")
		for _, mod := range r.HyperModifiers() {
			marked[mod.Symbol] = true
		}
	}

	// An ASCII stand-in only counts as a modifier the first time it shows
	// up; "@$@" is Command-Shift-2.
	var keyText strings.Builder
	for _, c := range strings.TrimSpace(work) {
		if c == ' ' {
			continue
		}
		if mod, ok := r.ModifierByGlyph(c); ok {
			marked[mod.Symbol] = true
			continue
		}
		if mod, ok := r.ModifierByASCII(c); ok && !marked[mod.Symbol] {
			marked[mod.Symbol] = true
			continue
		}
		keyText.WriteRune(c)
	}

	key := keyText.String()
	if k, ok := r.ByAlias(key); ok {
		key = k.Symbol
	}

	if utf8.RuneCountInString(key) == 1 {
		c, _ := utf8.DecodeRuneInString(key)
		switch {
		case r.IsShifted(c):
			marked[shift.Symbol] = true
			// shifted digits are always written as the digit
			if r.IsShiftedDigit(c) {
				c = r.Unshift(c)
			}
		case marked[shift.Symbol] && !isDigit(c):
			c = r.Shift(c)
		}
		key = strings.ToUpper(string(c))
	} else if _, ok := r.ByAlias(key); !ok {
		return Shortcut{}, errors.NewParseError(text)
	}

	mods := make([]types.Key, 0, len(marked))
	for _, mod := range r.Modifiers() {
		if marked[mod.Symbol] {
			mods = append(mods, mod)
		}
	}
	return Shortcut{mods: mods, key: key}, nil
}

// despaceHyphens turns "option-shift-r" into "option shift r" while leaving
// a hyphen that stands alone, as in "command -", untouched.
func despaceHyphens(text string) string {
	in := []rune(text)
	out := append([]rune(nil), in...)
	for i := 1; i < len(in)-1; i++ {
		if in[i] == '-' && !unicode.IsSpace(in[i-1]) && !unicode.IsSpace(in[i+1]) {
			out[i] = ' '
		}
	}
	return string(out)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
