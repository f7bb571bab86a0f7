package styles

import (
	"ksc/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles defines the core UI styles
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Modifier lipgloss.Style
	Key      lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// FromConfig builds the styles from the configured theme colors.
func FromConfig(cfg *config.Config) Styles {
	theme := cfg.Theme
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Header)).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Header)).
			Width(11),
		Modifier: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Modifier)),
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Key)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
	}
}

// Default returns the styles of the default theme.
func Default() Styles {
	return FromConfig(config.New())
}
