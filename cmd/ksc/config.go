package main

import (
	"fmt"
	"os"
	"strings"

	"ksc/internal/config"
	"ksc/internal/errors"
	"ksc/internal/log"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Args:  cobra.NoArgs,
	}

	var asTOML bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Marshal(asTOML)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}
	show.Flags().BoolVar(&asTOML, "toml", false, "print TOML instead of YAML")

	var (
		force bool
		theme string
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithHint(
					errors.NewFileError("config file already exists", path, errors.FileOperationFailed, nil),
					"use --force to overwrite it")
			}

			cfg := config.New()
			if theme != "" {
				cfg.ApplyTheme(theme)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if err := config.SaveConfig(cfg, path); err != nil {
				return err
			}
			log.LogWithFields(log.F("path", path)).Debug("Wrote config")
			fmt.Fprintln(a.stdout, path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&theme, "theme", "", "theme for the interactive view ("+strings.Join(config.ListThemes(), ", ")+")")

	themes := &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListThemes() {
				marker := " "
				if name == a.cfg.Theme.Name {
					marker = "*"
				}
				fmt.Fprintf(a.stdout, "%s %s\n", marker, name)
			}
		},
	}

	cmd.AddCommand(show, initCmd, themes)
	return cmd
}
