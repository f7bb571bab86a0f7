package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"ksc/internal/errors"
	"ksc/pkg/types"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It holds rendering defaults, the interactive theme and watch settings.
type Config struct {
	Render struct {
		ModifierStyle string `yaml:"modifier_style" toml:"modifier_style"` // names, ascii or symbols
		KeyStyle      string `yaml:"key_style" toml:"key_style"`           // name or symbol
		PlusSign      bool   `yaml:"plus_sign" toml:"plus_sign"`           // "+" between symbols
		Hyper         bool   `yaml:"hyper" toml:"hyper"`                   // collapse ⌃⌥⇧⌘ to Hyper
		ClarifyKeys   bool   `yaml:"clarify_keys" toml:"clarify_keys"`     // "Period (.)" instead of "."
	} `yaml:"render" toml:"render"`
	Theme struct {
		Name     string `yaml:"name" toml:"name"`         // Theme name (default, dark, light, etc.)
		Header   string `yaml:"header" toml:"header"`     // Title and labels
		Modifier string `yaml:"modifier" toml:"modifier"` // Modifier glyphs
		Key      string `yaml:"key" toml:"key"`           // Key glyph or name
		Error    string `yaml:"error" toml:"error"`       // Parse errors
		Muted    string `yaml:"muted" toml:"muted"`       // Help and hints
	} `yaml:"theme" toml:"theme"`
	Watch struct {
		DebounceMS int `yaml:"debounce_ms" toml:"debounce_ms"` // Quiet period before re-converting
	} `yaml:"watch" toml:"watch"`
}

// DefaultPath returns ~/.config/ksc/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locating home directory")
	}
	return filepath.Join(home, ".config", "ksc", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location
// (~/.config/ksc/config.yaml).
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path. Files ending
// in .toml are decoded as TOML, everything else as YAML.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewFileError("error reading config file", path, errors.FileOperationFailed, err)
	}

	// Decoding into the defaults keeps every field the file leaves unset.
	// Theme colors are cleared so a named theme in the file can fill them.
	cfg.Theme.Name = ""
	for _, f := range cfg.themeFields() {
		*f.field = ""
	}
	if isTOML(path) {
		_, err = toml.Decode(string(data), cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "default"
	}
	cfg.fillTheme()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Render.ModifierStyle = types.ModifierNames.String()
	cfg.Render.KeyStyle = types.KeyName.String()
	cfg.Watch.DebounceMS = 100
	cfg.ApplyTheme("default")
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file, as TOML when the
// name ends in .toml. It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewFileError("failed to create config directory", filepath.Dir(path), errors.FileOperationFailed, err)
	}

	data, err := cfg.Marshal(isTOML(path))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewFileError("failed to write config file", path, errors.FileOperationFailed, err)
	}
	return nil
}

// Marshal encodes the configuration as YAML, or TOML when asked.
func (c *Config) Marshal(asTOML bool) ([]byte, error) {
	if asTOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, errors.Wrap(err, "failed to marshal config")
		}
		return buf.Bytes(), nil
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}

	if _, err := types.ParseModifierStyle(c.Render.ModifierStyle); err != nil {
		return errors.WithHint(
			errors.NewConfigError("invalid modifier style", "render.modifier_style", errors.InvalidConfig, err),
			"use names, ascii or symbols")
	}
	if _, err := types.ParseKeyStyle(c.Render.KeyStyle); err != nil {
		return errors.WithHint(
			errors.NewConfigError("invalid key style", "render.key_style", errors.InvalidConfig, err),
			"use name or symbol")
	}
	if !knownTheme(c.Theme.Name) {
		return errors.WithHintf(
			errors.NewConfigError("unknown theme "+c.Theme.Name, "theme.name", errors.InvalidConfig, nil),
			"available themes: %s", strings.Join(ListThemes(), ", "))
	}
	if c.Watch.DebounceMS < 0 {
		return errors.NewConfigError("debounce must be >= 0 milliseconds", "watch.debounce_ms", errors.InvalidConfig, nil)
	}
	return nil
}

// RenderOptions converts the render section. Call Validate first; unknown
// styles fall back to their defaults.
func (c *Config) RenderOptions() types.RenderOptions {
	modStyle, _ := types.ParseModifierStyle(c.Render.ModifierStyle)
	keyStyle, _ := types.ParseKeyStyle(c.Render.KeyStyle)
	return types.RenderOptions{
		ModifierStyle: modStyle,
		PlusSign:      c.Render.PlusSign,
		Hyper:         c.Render.Hyper,
		KeyStyle:      keyStyle,
		ClarifyKeys:   c.Render.ClarifyKeys,
	}
}

var themes = map[string]map[string]string{
	"default": {
		"header":   "213", // Purple
		"modifier": "39",  // Blue
		"key":      "114", // Green
		"error":    "196", // Red
		"muted":    "244", // Grey
	},
	"dark": {
		"header":   "105", // Dark Blue
		"modifier": "33",  // Dark Blue
		"key":      "78",  // Dark Green
		"error":    "160", // Dark Red
		"muted":    "240", // Dark Grey
	},
	"light": {
		"header":   "135", // Light Purple
		"modifier": "117", // Light Blue
		"key":      "150", // Light Green
		"error":    "210", // Light Red
		"muted":    "248", // Light Grey
	},
	"monochrome": {
		"header":   "255", // Bright White
		"modifier": "250", // Light Grey
		"key":      "252", // White
		"error":    "245", // Grey
		"muted":    "241", // Medium Grey
	},
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	if theme, exists := themes[name]; exists {
		return theme
	}
	return themes["default"]
}

type themeField struct {
	field *string
	name  string
}

func (c *Config) themeFields() []themeField {
	return []themeField{
		{&c.Theme.Header, "header"},
		{&c.Theme.Modifier, "modifier"},
		{&c.Theme.Key, "key"},
		{&c.Theme.Error, "error"},
		{&c.Theme.Muted, "muted"},
	}
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)
	c.Theme.Name = name
	for _, f := range c.themeFields() {
		*f.field = theme[f.name]
	}
}

// fillTheme takes colors the file left empty from the named theme.
func (c *Config) fillTheme() {
	theme := GetTheme(c.Theme.Name)
	for _, f := range c.themeFields() {
		if *f.field == "" {
			*f.field = theme[f.name]
		}
	}
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}

func knownTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
