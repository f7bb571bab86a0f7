package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ksc/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runKSC(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestRender(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"$@5"}, "Shift-Command-5"},
		{[]string{"-s", "$@5"}, "⇧⌘5"},
		{[]string{"-s", "-p", "$@5"}, "⇧+⌘+5"},
		{[]string{"^~$@R"}, "Control-Option-Shift-Command-R"},
		{[]string{"-y", "^~$@R"}, "Hyper-R"},
		{[]string{"-y", "hyper", "5"}, "Hyper-5"},
		{[]string{"-yps", "hyper", "5"}, "Hyper+5"},
		{[]string{"-a", "hyper", "5"}, "^~$@5"},
		{[]string{"-s", "-k", "command", "esc"}, "⌘⎋"},
		{[]string{"^leftclick"}, "Control-click"},
		{[]string{"~rightclick"}, "Option-right click"},
		{[]string{"-c", "@."}, "Command-Period (.)"},
		{[]string{"@⌫"}, "Command-Delete"},
		{[]string{"opt", "command", "v"}, "Option-Command-V"},
		{[]string{"F10", "/", "shift-escape", "/", "control-option-right"}, "F10 Shift-Escape Control-Option-Right Arrow"},
		{[]string{"-a", "control x | control c"}, "^X ^C"},
		{[]string{"i"}, "I"},
		{[]string{"command", "i"}, "Command-I"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, stderr, code := runKSC(t, tt.args...)
			assert.Equal(t, exitOK, code, stderr)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestParseError(t *testing.T) {
	stdout, stderr, code := runKSC(t, "command", "//")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "ksc: error parsing 'command //'")
	assert.Contains(t, stderr, "hint: run 'ksc --list'")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "no shortcut", args: nil},
		{name: "conflicting styles", args: []string{"-a", "-s", "command", "x"}, msg: "cannot be combined"},
		{name: "unknown flag", args: []string{"--bogus", "x"}, msg: "unknown flag"},
		{name: "bad match", args: []string{"--list", "--match", "["}, msg: "invalid --match pattern"},
		{name: "convert without file", args: []string{"convert"}, msg: "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runKSC(t, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Usage:")
			if tt.msg != "" {
				assert.Contains(t, stderr, tt.msg)
			}
		})
	}
}

func TestList(t *testing.T) {
	stdout, _, code := runKSC(t, "--list")
	require.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "Key "))
	assert.Contains(t, stdout, "Escape")
	assert.NotContains(t, stdout, "Hyper")

	stdout, _, code = runKSC(t, "-l", "-y")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Hyper")

	stdout, _, code = runKSC(t, "-l", "-m", "*arrow")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Up Arrow")
	assert.NotContains(t, stdout, "Escape")
}

func TestVersion(t *testing.T) {
	stdout, _, code := runKSC(t, "--version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, version)
}

func TestDebugLogging(t *testing.T) {
	stdout, stderr, code := runKSC(t, "--debug", "command", "q")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Command-Q\n", stdout)
	assert.Contains(t, stderr, "level=debug")
	assert.Contains(t, stderr, "Rendering")

	_, stderr, _ = runKSC(t, "command", "q")
	assert.NotContains(t, stderr, "level=debug")
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	return testutils.WriteFile(t, t.TempDir(), name, content)
}

func TestConfigFileDefaults(t *testing.T) {
	path := writeTemp(t, "config.yaml", "render:\n  modifier_style: symbols\n  hyper: true\n")

	stdout, _, code := runKSC(t, "--config", path, "command", "q")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "⌘Q\n", stdout)

	stdout, _, code = runKSC(t, "--config", path, "hyper", "q")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "HyperQ\n", stdout)

	// flags override the file
	stdout, _, code = runKSC(t, "--config", path, "-a", "hyper", "q")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "^~$@Q\n", stdout)
}

func TestConfigFileInvalid(t *testing.T) {
	path := writeTemp(t, "config.yaml", "render:\n  key_style: glyph\n")

	_, stderr, code := runKSC(t, "--config", path, "command", "q")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "render.key_style")
	assert.Contains(t, stderr, "hint: use name or symbol")
}

func TestConvert(t *testing.T) {
	path := writeTemp(t, "shortcuts.txt", "# editing\ncommand z\nfred\n\nshift-command-z\n")

	stdout, stderr, code := runKSC(t, "convert", "-s", path)
	assert.Equal(t, exitError, code)
	assert.Equal(t, "# editing\n⌘Z\n\n⇧⌘Z\n", stdout)
	assert.Contains(t, stderr, "ksc: line 3: error parsing 'fred'")
	assert.Contains(t, stderr, "1 of 5 lines could not be parsed")

	clean := writeTemp(t, "clean.txt", "command z\n")
	stdout, _, code = runKSC(t, "convert", clean)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Command-Z\n", stdout)
}

func TestConvertMissingFile(t *testing.T) {
	_, stderr, code := runKSC(t, "convert", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "file not found")
}

func TestConvertWatchStdin(t *testing.T) {
	_, stderr, code := runKSC(t, "convert", "--watch", "-")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "--watch needs a file")
}

func TestConfigShow(t *testing.T) {
	stdout, _, code := runKSC(t, "config", "show")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "modifier_style: names")
	assert.Contains(t, stdout, "debounce_ms: 100")

	stdout, _, code = runKSC(t, "config", "show", "--toml")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "[render]")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ksc", "config.yaml")

	stdout, _, code := runKSC(t, "--config", path, "config", "init", "--theme", "dark")
	require.Equal(t, exitOK, code)
	assert.Equal(t, path+"\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: dark")

	_, stderr, code := runKSC(t, "--config", path, "config", "init")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "config file already exists")
	assert.Contains(t, stderr, "hint: use --force")

	_, _, code = runKSC(t, "--config", path, "config", "init", "--force")
	assert.Equal(t, exitOK, code)

	_, stderr, code = runKSC(t, "--config", filepath.Join(t.TempDir(), "x.yaml"), "config", "init", "--theme", "neon")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unknown theme neon")
}

func TestConfigThemes(t *testing.T) {
	stdout, _, code := runKSC(t, "config", "themes")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "* default\n")
	assert.Contains(t, stdout, "  dark\n")
}
