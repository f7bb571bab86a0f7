package main

import (
	"ksc/internal/tui"

	"github.com/spf13/cobra"
)

// newInteractiveCmd creates the interactive command
func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Preview every rendering style while you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(a.cfg)
		},
	}
}
