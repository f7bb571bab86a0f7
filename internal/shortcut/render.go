package shortcut

import (
	"strings"

	"ksc/internal/keys"
	"ksc/pkg/types"
)

// Render formats s according to opts. It never fails: key symbols without a
// registry entry are written as they are.
func Render(s Shortcut, opts types.RenderOptions) string {
	return render(keys.Default(), s, opts)
}

// Render formats s according to opts.
func (s Shortcut) Render(opts types.RenderOptions) string {
	return Render(s, opts)
}

func render(r *keys.Registry, s Shortcut, opts types.RenderOptions) string {
	tokens := append(modifierTokens(r, s, opts), keyToken(r, s.key, opts))

	switch opts.ModifierStyle {
	case types.ModifierSymbols:
		if opts.PlusSign {
			return strings.Join(tokens, "+")
		}
		return strings.Join(tokens, "")
	case types.ModifierASCII:
		return strings.Join(tokens, "")
	default:
		return strings.Join(tokens, "-")
	}
}

func modifierTokens(r *keys.Registry, s Shortcut, opts types.RenderOptions) []string {
	if opts.Hyper && opts.ModifierStyle != types.ModifierASCII && isHyper(r, s) {
		return []string{keys.HyperName}
	}
	tokens := make([]string, 0, len(s.mods)+1)
	for _, m := range s.mods {
		switch opts.ModifierStyle {
		case types.ModifierASCII:
			tokens = append(tokens, m.ASCII)
		case types.ModifierSymbols:
			tokens = append(tokens, m.Symbol)
		default:
			tokens = append(tokens, m.Name)
		}
	}
	return tokens
}

func keyToken(r *keys.Registry, symbol string, opts types.RenderOptions) string {
	if opts.KeyStyle == types.KeySymbol {
		return symbol
	}
	if k, ok := r.BySymbol(symbol); ok {
		return k.Label(opts.ClarifyKeys)
	}
	return symbol
}

// isHyper reports whether the modifiers are exactly Control, Option, Shift
// and Command.
func isHyper(r *keys.Registry, s Shortcut) bool {
	hyper := r.HyperModifiers()
	if len(s.mods) != len(hyper) {
		return false
	}
	for i := range hyper {
		if s.mods[i].Symbol != hyper[i].Symbol {
			return false
		}
	}
	return true
}
