package components

import (
	"strings"

	"ksc/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows which rendering toggles are active.
type StatusBar struct {
	opts    types.RenderOptions
	style   lipgloss.Style
	onStyle lipgloss.Style
}

func NewStatusBar(style, onStyle lipgloss.Style) *StatusBar {
	return &StatusBar{style: style, onStyle: onStyle}
}

func (s *StatusBar) SetOptions(opts types.RenderOptions) {
	s.opts = opts
}

func (s *StatusBar) View() string {
	flags := []string{
		s.flag("hyper", s.opts.Hyper),
		s.flag("clarify", s.opts.ClarifyKeys),
		s.flag("plus", s.opts.PlusSign),
		s.flag("glyphs", s.opts.KeyStyle == types.KeySymbol),
	}
	return strings.Join(flags, s.style.Render("  "))
}

func (s *StatusBar) flag(name string, on bool) string {
	if on {
		return s.onStyle.Render(name + ": on")
	}
	return s.style.Render(name + ": off")
}
