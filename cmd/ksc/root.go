package main

import (
	"fmt"
	"strings"

	"ksc/internal/config"
	"ksc/internal/errors"
	"ksc/internal/keys"
	"ksc/internal/log"
	"ksc/internal/shortcut"
	"ksc/pkg/types"

	"github.com/spf13/cobra"
)

var errNoShortcuts = errors.New("no shortcut given")

// renderFlags are the options shared by the root command and convert.
type renderFlags struct {
	ascii   bool
	symbols bool
	plus    bool
	hyper   bool
	keySyms bool
	clarify bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&f.ascii, "modifier-ascii", "a", false, "write modifiers as ASCII characters (^~$@)")
	flags.BoolVarP(&f.symbols, "modifier-symbols", "s", false, "write modifiers as Mac glyphs (⌃⌥⇧⌘)")
	flags.BoolVarP(&f.plus, "plus-sign", "p", false, "put + between modifier glyphs")
	flags.BoolVarP(&f.hyper, "hyper", "y", false, "write Control-Option-Shift-Command as Hyper")
	flags.BoolVarP(&f.keySyms, "key-symbols", "k", false, "write keys as glyphs (⎋ instead of Escape)")
	flags.BoolVarP(&f.clarify, "clarify-keys", "c", false, "clarify punctuation keys, e.g. Period (.)")
}

func (f *renderFlags) validate() error {
	if f.ascii && f.symbols {
		return &usageError{err: errors.New("--modifier-ascii and --modifier-symbols cannot be combined")}
	}
	return nil
}

// options starts from the configured defaults; flags only switch things on.
func (f *renderFlags) options(cfg *config.Config) types.RenderOptions {
	opts := cfg.RenderOptions()
	switch {
	case f.ascii:
		opts.ModifierStyle = types.ModifierASCII
	case f.symbols:
		opts.ModifierStyle = types.ModifierSymbols
	}
	if f.keySyms {
		opts.KeyStyle = types.KeySymbol
	}
	opts.PlusSign = opts.PlusSign || f.plus
	opts.Hyper = opts.Hyper || f.hyper
	opts.ClarifyKeys = opts.ClarifyKeys || f.clarify
	return opts
}

// newRootCmd creates the root command
func newRootCmd(a *app) *cobra.Command {
	var (
		rf    renderFlags
		list  bool
		match string
	)

	rootCmd := &cobra.Command{
		Use:   "ksc [flags] SHORTCUT...",
		Short: "Canonicalize Mac keyboard shortcuts",
		Long: `ksc reads a keyboard shortcut written any way you like and prints it in a
consistent style.

  ksc command shift r        Shift-Command-R
  ksc -s opt cmd right       ⌥⌘Right Arrow
  ksc -a control-option-del  ^~Delete

Several shortcuts may be given at once, separated by " / " or " | ".`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rf.validate(); err != nil {
				return err
			}
			if list {
				return a.list(rf.hyper || a.cfg.Render.Hyper, match)
			}
			if len(args) == 0 {
				return &usageError{err: errNoShortcuts}
			}
			return a.render(strings.Join(args, " "), rf.options(a.cfg))
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rf.register(rootCmd)
	rootCmd.Flags().BoolVarP(&list, "list", "l", false, "list the known key names and exit")
	rootCmd.Flags().StringVarP(&match, "match", "m", "", "with --list, only keys whose symbol, name or alias matches a glob")

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/ksc/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newInteractiveCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup enables debug logging and loads the configuration. A broken default
// config only warns; a broken --config file is an error.
func (a *app) setup() error {
	log.SetDebug(a.debug)

	if a.cfgFile != "" {
		cfg, err := config.LoadConfigFile(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.LogWithError(err).Warn("Using default settings")
		cfg = config.New()
	}
	a.cfg = cfg
	return nil
}

func (a *app) render(text string, opts types.RenderOptions) error {
	log.LogWithFields(log.F("input", text), log.F("style", opts.ModifierStyle.String())).Debug("Rendering")

	shortcuts, err := shortcut.ParseAll(text)
	if err != nil {
		return errors.WithHint(err, "run 'ksc --list' to see every recognized key name")
	}

	rendered := make([]string, len(shortcuts))
	for i, s := range shortcuts {
		rendered[i] = s.Render(opts)
	}
	fmt.Fprintln(a.stdout, strings.Join(rendered, " "))
	return nil
}

func (a *app) list(showHyper bool, match string) error {
	opts := keys.ListOptions{ShowHyper: showHyper}
	if match != "" {
		g, err := keys.CompileMatch(match)
		if err != nil {
			return &usageError{err: errors.Wrapf(err, "invalid --match pattern %q", match)}
		}
		opts.Match = g
	}
	fmt.Fprintln(a.stdout, keys.Default().List(opts))
	return nil
}
