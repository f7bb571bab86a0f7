package common

import (
	"ksc/internal/shortcut"
	"ksc/internal/tui/styles"
	"ksc/pkg/types"
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	InputView() string
	Value() string
	Shortcuts() []shortcut.Shortcut
	Err() error
	Options() types.RenderOptions
	HelpView() string
	Styles() styles.Styles
}
