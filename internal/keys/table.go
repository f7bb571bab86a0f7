package keys

import (
	"fmt"
	"strings"

	"ksc/pkg/types"
)

// functionKeyCount matches the function keys NSEvent defines.
const functionKeyCount = 35

// Modifiers come first and in Apple's display order. Fn has no glyph, so its
// symbol is the two-letter name.
var modifierTable = []types.Key{
	{Symbol: "Fn", Name: "Fn", Aliases: []string{"func", "function", "fn"}, ASCII: "*", Modifier: true},
	// U+2303, not a caret
	{Symbol: "⌃", Name: "Control", Aliases: []string{"control", "cont", "ctrl", "ctl"}, ASCII: "^", Modifier: true},
	{Symbol: "⌥", Name: "Option", Aliases: []string{"option", "opt", "alt"}, ASCII: "~", Modifier: true},
	{Symbol: "⇧", Name: "Shift", Aliases: []string{"shift", "shft"}, ASCII: "$", Modifier: true},
	{Symbol: "⌘", Name: "Command", Aliases: []string{"command", "cmd", "clover"}, ASCII: "@", Modifier: true},
}

var namedKeyTable = []types.Key{
	{Symbol: "⎋", Name: "Escape", Aliases: []string{"escape", "esc"}},
	{Symbol: "⇥", Name: "Tab", Aliases: []string{"tab"}},
	{Symbol: "⇪", Name: "Caps Lock", Aliases: []string{"capslock", "caps"}},
	{Symbol: "␣", Name: "Space", Aliases: []string{"space"}},
	{Symbol: "⏏", Name: "Eject", Aliases: []string{"eject"}},
	{Symbol: "⌫", Name: "Delete", Aliases: []string{"delete", "del"}},
	{Symbol: "⌦", Name: "Forward Delete", Aliases: []string{"forwarddelete", "fwddelete", "forwarddel", "fwddel"}},
	{Symbol: "⌧", Name: "Clear", Aliases: []string{"clear"}, Clarified: "Clear (⌧)"},
	{Symbol: "↩", Name: "Return", Aliases: []string{"return", "rtn"}},
	{Symbol: "⌅", Name: "Enter", Aliases: []string{"enter", "ent"}},
	{Symbol: "⇞", Name: "Page Up", Aliases: []string{"pageup", "pgup"}},
	{Symbol: "⇟", Name: "Page Down", Aliases: []string{"pagedown", "pgdown"}},
	{Symbol: "↖", Name: "Home", Aliases: []string{"home"}},
	{Symbol: "↘", Name: "End", Aliases: []string{"end"}},
	{Symbol: "←", Name: "Left Arrow", Aliases: []string{"leftarrow", "left"}},
	{Symbol: "→", Name: "Right Arrow", Aliases: []string{"rightarrow", "right"}},
	{Symbol: "↑", Name: "Up Arrow", Aliases: []string{"uparrow", "up"}},
	{Symbol: "↓", Name: "Down Arrow", Aliases: []string{"downarrow", "down"}},
	{Symbol: "leftclick", Name: "click", Aliases: []string{"leftclick", "click"}},
	{Symbol: "rightclick", Name: "right click", Aliases: []string{"rightclick", "rclick"}},
	{Symbol: "`", Name: "`", Aliases: []string{"grave", "backtick", "backquote"}, Shifted: "~", Clarified: "Grave (`)"},
	{Symbol: "~", Name: "~", Aliases: []string{"tilde"}, Clarified: "Tilde (~)"},
	{Symbol: "1", Name: "1", Shifted: "!"},
	{Symbol: "2", Name: "2", Shifted: "@"},
	{Symbol: "3", Name: "3", Shifted: "#"},
	{Symbol: "4", Name: "4", Shifted: "$"},
	{Symbol: "5", Name: "5", Shifted: "%"},
	{Symbol: "6", Name: "6", Shifted: "^"},
	{Symbol: "7", Name: "7", Shifted: "&"},
	{Symbol: "8", Name: "8", Shifted: "*"},
	{Symbol: "9", Name: "9", Shifted: "("},
	{Symbol: "0", Name: "0", Shifted: ")"},
	{Symbol: "-", Name: "-", Aliases: []string{"minus"}, Shifted: "_", Clarified: "Minus Sign (-)"},
	{Symbol: "_", Name: "_", Aliases: []string{"underscore"}, Clarified: "Underscore (_)"},
	{Symbol: "=", Name: "=", Aliases: []string{"equals", "equal"}, Shifted: "+"},
	{Symbol: "+", Name: "+", Aliases: []string{"plus"}, Clarified: "Plus Sign (+)"},
	{Symbol: "[", Name: "[", Shifted: "{"},
	{Symbol: "]", Name: "]", Shifted: "}"},
	{Symbol: `\`, Name: `\`, Aliases: []string{"backslash"}, Shifted: "|"},
	{Symbol: "|", Name: "|", Aliases: []string{"pipe"}},
	{Symbol: ";", Name: ";", Aliases: []string{"semicolon", "semi"}, Shifted: ":", Clarified: "Semicolon (;)"},
	{Symbol: "'", Name: "'", Aliases: []string{"singlequote", "sq"}, Shifted: `"`, Clarified: "Single Quote (')"},
	{Symbol: `"`, Name: `"`, Aliases: []string{"doublequote", "dq"}, Clarified: `Double Quote (")`},
	{Symbol: ",", Name: ",", Aliases: []string{"comma"}, Shifted: "<", Clarified: "Comma (,)"},
	{Symbol: ".", Name: ".", Aliases: []string{"period"}, Shifted: ">", Clarified: "Period (.)"},
	{Symbol: "/", Name: "/", Aliases: []string{"slash"}, Shifted: "?", Clarified: "Slash (/)"},
	{Symbol: "?", Name: "?", Aliases: []string{"questionmark", "question"}},
}

// table assembles the full key list: modifiers, named keys, F1..F35.
func table() []types.Key {
	all := make([]types.Key, 0, len(modifierTable)+len(namedKeyTable)+functionKeyCount)
	all = append(all, modifierTable...)
	all = append(all, namedKeyTable...)
	for n := 1; n <= functionKeyCount; n++ {
		name := fmt.Sprintf("F%d", n)
		all = append(all, types.Key{Symbol: name, Name: name, Aliases: []string{strings.ToLower(name)}})
	}
	return all
}
