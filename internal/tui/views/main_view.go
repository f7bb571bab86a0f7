package views

import (
	"strings"

	"ksc/internal/shortcut"
	"ksc/internal/tui/common"
	"ksc/internal/tui/components"
	"ksc/pkg/types"
)

// Row is one rendering of the current input.
type Row struct {
	Label string
	Value string
}

// Rows renders every shortcut in each style, honoring the active toggles.
func Rows(shortcuts []shortcut.Shortcut, opts types.RenderOptions) []Row {
	styled := func(style types.ModifierStyle) types.RenderOptions {
		o := opts
		o.ModifierStyle = style
		return o
	}
	canonical := types.RenderOptions{ModifierStyle: types.ModifierASCII, KeyStyle: types.KeySymbol}

	return []Row{
		{"Canonical", join(shortcuts, canonical)},
		{"Names", join(shortcuts, styled(types.ModifierNames))},
		{"Symbols", join(shortcuts, styled(types.ModifierSymbols))},
		{"ASCII", join(shortcuts, styled(types.ModifierASCII))},
	}
}

func join(shortcuts []shortcut.Shortcut, opts types.RenderOptions) string {
	rendered := make([]string, len(shortcuts))
	for i, s := range shortcuts {
		rendered[i] = s.Render(opts)
	}
	return strings.Join(rendered, " / ")
}

func RenderMainView(m common.ModelReader) string {
	st := m.Styles()
	var sb strings.Builder

	sb.WriteString(st.Title.Render("Keyboard Shortcut Canonicalizer"))
	sb.WriteString("\n")
	sb.WriteString(m.InputView())
	sb.WriteString("\n\n")

	switch {
	case m.Err() != nil:
		sb.WriteString(st.Error.Render(m.Err().Error()))
		sb.WriteString("\n")
	case strings.TrimSpace(m.Value()) == "":
		sb.WriteString(st.Help.Render("Type a shortcut such as \"command shift r\" or \"⌥⌘→\"."))
		sb.WriteString("\n")
	default:
		for _, row := range Rows(m.Shortcuts(), m.Options()) {
			sb.WriteString(st.Label.Render(row.Label))
			sb.WriteString(st.Key.Render(row.Value))
			sb.WriteString("\n")
		}
	}

	status := components.NewStatusBar(st.Help, st.Modifier)
	status.SetOptions(m.Options())
	sb.WriteString("\n" + status.View())
	sb.WriteString("\n" + m.HelpView())

	return st.App.Render(sb.String())
}
