package keys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestRegistry_Modifiers(t *testing.T) {
	r := New()

	mods := r.Modifiers()
	require.Len(t, mods, 5)

	var symbols, ascii []string
	for i, m := range mods {
		symbols = append(symbols, m.Symbol)
		ascii = append(ascii, m.ASCII)
		assert.True(t, m.Modifier)

		order, ok := r.ModifierOrder(m.Symbol)
		require.True(t, ok)
		assert.Equal(t, i, order)
	}
	assert.Equal(t, []string{"Fn", "⌃", "⌥", "⇧", "⌘"}, symbols)
	assert.Equal(t, []string{"*", "^", "~", "$", "@"}, ascii)

	_, ok := r.ModifierOrder("R")
	assert.False(t, ok)
}

func TestRegistry_HyperModifiers(t *testing.T) {
	var names []string
	for _, m := range New().HyperModifiers() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Control", "Option", "Shift", "Command"}, names)
}

func TestRegistry_UniqueSymbolsAndAliases(t *testing.T) {
	symbols := make(map[string]bool)
	aliases := make(map[string]string)
	for _, k := range New().Keys() {
		assert.False(t, symbols[k.Symbol], "duplicate symbol %q", k.Symbol)
		symbols[k.Symbol] = true
		for _, a := range k.Aliases {
			if prev, ok := aliases[a]; ok {
				assert.Equal(t, prev, k.Symbol, "alias %q", a)
			}
			aliases[a] = k.Symbol
			assert.Equal(t, strings.ToLower(a), a, "alias %q should be lowercase", a)
		}
	}
}

func TestRegistry_FunctionKeys(t *testing.T) {
	r := New()
	for _, name := range []string{"F1", "F12", "F35"} {
		k, ok := r.BySymbol(name)
		require.True(t, ok, name)
		assert.Equal(t, name, k.Name)

		byAlias, ok := r.ByAlias(strings.ToLower(name))
		require.True(t, ok, name)
		assert.Equal(t, name, byAlias.Symbol)
	}
	for _, name := range []string{"F0", "F36"} {
		_, ok := r.BySymbol(name)
		assert.False(t, ok, name)
	}
}

func TestRegistry_ByAlias(t *testing.T) {
	r := New()

	k, ok := r.ByAlias("ESC")
	require.True(t, ok)
	assert.Equal(t, "⎋", k.Symbol)

	k, ok = r.ByAlias("click")
	require.True(t, ok)
	assert.Equal(t, "leftclick", k.Symbol)

	k, ok = r.ByAlias("clover")
	require.True(t, ok)
	assert.Equal(t, "⌘", k.Symbol)

	_, ok = r.ByAlias("fred")
	assert.False(t, ok)
	_, ok = r.ByAlias("")
	assert.False(t, ok)
}

func TestRegistry_ModifierLookups(t *testing.T) {
	r := New()

	m, ok := r.ModifierByGlyph('⌥')
	require.True(t, ok)
	assert.Equal(t, "Option", m.Name)

	// U+005E is the ASCII stand-in, not the glyph
	_, ok = r.ModifierByGlyph('^')
	assert.False(t, ok)

	m, ok = r.ModifierByASCII('^')
	require.True(t, ok)
	assert.Equal(t, "Control", m.Name)

	m, ok = r.ModifierByASCII('*')
	require.True(t, ok)
	assert.Equal(t, "Fn", m.Name)

	_, ok = r.ModifierByASCII('#')
	assert.False(t, ok)
}

func TestRegistry_ClarifiedNamesRepeatSymbol(t *testing.T) {
	for _, k := range New().Keys() {
		if k.Clarified == "" {
			continue
		}
		assert.True(t, strings.HasSuffix(k.Clarified, "("+k.Symbol+")"), "%q: %q", k.Symbol, k.Clarified)
	}

	slash, ok := New().BySymbol("/")
	require.True(t, ok)
	assert.Equal(t, "Slash (/)", slash.Clarified)
}

func TestRegistry_ShiftTables(t *testing.T) {
	r := New()

	assert.Equal(t, '%', r.Shift('5'))
	assert.Equal(t, '?', r.Shift('/'))
	assert.Equal(t, '~', r.Shift('`'))
	assert.Equal(t, 'r', r.Shift('r'))

	assert.Equal(t, '5', r.Unshift('%'))
	assert.Equal(t, '\'', r.Unshift('"'))
	assert.Equal(t, 'q', r.Unshift('q'))

	assert.True(t, r.IsShifted('|'))
	assert.False(t, r.IsShifted('\\'))

	for _, c := range "!@#$%^&*()" {
		assert.True(t, r.IsShiftedDigit(c), string(c))
	}
	assert.False(t, r.IsShiftedDigit('?'))
}

func TestRegistry_Patterns(t *testing.T) {
	r := New()

	control := r.ModifierPattern(1)
	assert.True(t, control.MatchString("CTRL x"))
	assert.True(t, control.MatchString("shift-control-x"))
	assert.False(t, control.MatchString("controlx"))

	assert.True(t, r.HyperPattern().MatchString("Hyper 5"))
	assert.False(t, r.HyperPattern().MatchString("hyperspace"))
}

func TestWordPattern_QuotesMeta(t *testing.T) {
	p := wordPattern("a.b")
	assert.True(t, p.MatchString("a.b"))
	assert.False(t, p.MatchString("axb"))
}
