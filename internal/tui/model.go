package tui

import (
	"strings"

	"ksc/internal/config"
	"ksc/internal/log"
	"ksc/internal/shortcut"
	"ksc/internal/tui/styles"
	"ksc/internal/tui/views"
	"ksc/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the interactive preview: every keystroke re-parses the input and
// shows the result in each rendering style.
type Model struct {
	input  textinput.Model
	keys   KeyMap
	help   help.Model
	styles styles.Styles

	opts      types.RenderOptions
	shortcuts []shortcut.Shortcut
	err       error
}

func New(cfg *config.Config) *Model {
	input := textinput.New()
	input.Placeholder = "command shift r"
	input.Prompt = "› "
	input.CharLimit = 200
	input.Focus()

	st := styles.FromConfig(cfg)
	h := help.New()
	h.Styles.ShortKey = st.Help
	h.Styles.ShortDesc = st.Help
	h.Styles.FullKey = st.Help
	h.Styles.FullDesc = st.Help

	return &Model{
		input:  input,
		keys:   NewKeyMap(),
		help:   h,
		styles: st,
		opts:   cfg.RenderOptions(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 8
		return m, nil
	case tea.KeyMsg:
		if model, cmd, handled := m.handleKeyMsg(msg); handled {
			return model, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.ToggleHyper):
		m.opts.Hyper = !m.opts.Hyper
	case key.Matches(msg, m.keys.ToggleClarify):
		m.opts.ClarifyKeys = !m.opts.ClarifyKeys
	case key.Matches(msg, m.keys.TogglePlus):
		m.opts.PlusSign = !m.opts.PlusSign
	case key.Matches(msg, m.keys.ToggleKeys):
		if m.opts.KeyStyle == types.KeySymbol {
			m.opts.KeyStyle = types.KeyName
		} else {
			m.opts.KeyStyle = types.KeySymbol
		}
	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.refresh()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return m, nil, false
	}
	return m, nil, true
}

// refresh re-parses the input.
func (m *Model) refresh() {
	value := m.input.Value()
	m.shortcuts, m.err = nil, nil
	if strings.TrimSpace(value) == "" {
		return
	}
	m.shortcuts, m.err = shortcut.ParseAll(value)
	if m.err != nil {
		log.Debugf("interactive: %v", m.err)
	}
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// SetValue replaces the input text.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.refresh()
}

func (m *Model) Value() string                 { return m.input.Value() }
func (m *Model) InputView() string             { return m.input.View() }
func (m *Model) Shortcuts() []shortcut.Shortcut { return m.shortcuts }
func (m *Model) Err() error                    { return m.err }
func (m *Model) Options() types.RenderOptions  { return m.opts }
func (m *Model) HelpView() string              { return m.help.View(m.keys) }
func (m *Model) Styles() styles.Styles         { return m.styles }

// Run starts the interactive program on the terminal.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(New(cfg)).Run()
	return err
}
