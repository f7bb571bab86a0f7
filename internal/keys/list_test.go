package keys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListKnownKeys(t *testing.T) {
	lines := strings.Split(ListKnownKeys(false), "\n")
	require.Greater(t, len(lines), 7)

	assert.Equal(t, "Key          Name               Inputs", lines[0])
	assert.Equal(t, strings.Repeat("-", 12)+" "+strings.Repeat("-", 18)+" "+strings.Repeat("-", 50), lines[1])
	assert.Equal(t, "Fn           Fn                 func,function,fn", lines[2])

	out := strings.Join(lines, "\n")
	assert.Contains(t, out, "Period (.)")
	assert.Contains(t, out, "escape,esc")
	assert.Contains(t, out, "f35")
	assert.NotContains(t, out, "Hyper")

	// plain digits and brackets carry nothing beyond the glyph
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, "5 "), line)
		assert.False(t, strings.HasPrefix(line, "[ "), line)
	}
}

func TestListKnownKeys_Hyper(t *testing.T) {
	lines := strings.Split(ListKnownKeys(true), "\n")
	require.Greater(t, len(lines), 8)

	// header, rule, five modifiers, then Hyper
	assert.True(t, strings.HasPrefix(lines[6], "⌘"), lines[6])
	assert.Equal(t, "             Hyper              hyper", lines[7])
	assert.True(t, strings.HasPrefix(lines[8], "⎋"), lines[8])
}

func TestList_Match(t *testing.T) {
	g, err := CompileMatch("F1*")
	require.NoError(t, err)

	lines := strings.Split(Default().List(ListOptions{ShowHyper: true, Match: g}), "\n")
	// F1 and F10..F19
	assert.Len(t, lines, 2+11)
	for _, line := range lines[2:] {
		assert.True(t, strings.HasPrefix(line, "F1"), line)
	}
}

func TestList_MatchHyper(t *testing.T) {
	g, err := CompileMatch("hyp*")
	require.NoError(t, err)

	lines := strings.Split(Default().List(ListOptions{ShowHyper: true, Match: g}), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "Hyper")

	lines = strings.Split(Default().List(ListOptions{Match: g}), "\n")
	assert.Len(t, lines, 2)
}

func TestList_MatchByName(t *testing.T) {
	g, err := CompileMatch("*arrow")
	require.NoError(t, err)

	out := Default().List(ListOptions{Match: g})
	assert.Contains(t, out, "Left Arrow")
	assert.Contains(t, out, "Down Arrow")
	assert.NotContains(t, out, "Escape")
}

func TestCompileMatch_Invalid(t *testing.T) {
	_, err := CompileMatch("[")
	assert.Error(t, err)
}
