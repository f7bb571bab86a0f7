package keys

import (
	"strings"

	"ksc/pkg/types"

	"github.com/gobwas/glob"
	"github.com/mattn/go-runewidth"
)

const (
	symbolColumn = 12
	nameColumn   = 18
	aliasRule    = 50
)

// ListOptions controls the known-keys listing.
type ListOptions struct {
	// ShowHyper adds a Hyper row after the modifiers.
	ShowHyper bool
	// Match, when set, keeps only keys whose symbol, name or an alias
	// matches, compared in lowercase.
	Match glob.Glob
}

// CompileMatch compiles a case-insensitive key filter such as "f1*".
func CompileMatch(pattern string) (glob.Glob, error) {
	return glob.Compile(strings.ToLower(pattern))
}

// ListKnownKeys formats every named key of the default registry.
func ListKnownKeys(showHyper bool) string {
	return Default().List(ListOptions{ShowHyper: showHyper})
}

// List formats the modifiers and every key that has a name, clarified name or
// alias beyond its own glyph, one per row.
func (r *Registry) List(opts ListOptions) string {
	rows := []string{
		row("Key", "Name", "Inputs"),
		row(strings.Repeat("-", symbolColumn), strings.Repeat("-", nameColumn), strings.Repeat("-", aliasRule)),
	}

	hyperPending := opts.ShowHyper
	for _, k := range r.keys {
		if hyperPending && !k.Modifier {
			if matchesHyper(opts.Match) {
				rows = append(rows, row(" ", HyperName, strings.ToLower(HyperName)))
			}
			hyperPending = false
		}
		if !k.Named() || !matches(opts.Match, k) {
			continue
		}
		rows = append(rows, row(k.Symbol, k.Label(true), strings.Join(k.Aliases, ",")))
	}
	return strings.Join(rows, "\n")
}

func row(symbol, name, aliases string) string {
	return runewidth.FillRight(symbol, symbolColumn) + " " + runewidth.FillRight(name, nameColumn) + " " + aliases
}

func matches(g glob.Glob, k types.Key) bool {
	if g == nil {
		return true
	}
	candidates := append([]string{k.Symbol, k.Name, k.Clarified}, k.Aliases...)
	for _, c := range candidates {
		if c != "" && g.Match(strings.ToLower(c)) {
			return true
		}
	}
	return false
}

func matchesHyper(g glob.Glob) bool {
	return g == nil || g.Match(strings.ToLower(HyperName))
}
