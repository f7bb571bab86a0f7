package main

import (
	"fmt"
	"io"
	"os"

	"ksc/internal/config"
	"ksc/internal/errors"
	"ksc/internal/log"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks failures that should print usage and exit with exitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usageArgs turns positional argument errors into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// app carries the state shared by the root command and its subcommands.
type app struct {
	cfgFile string
	debug   bool
	cfg     *config.Config

	stdout io.Writer
	stderr io.Writer
}

// Entry point for the application
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log.Configure(log.WithOutput(stderr))

	a := &app{stdout: stdout, stderr: stderr}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return exitOK
	}

	var ue *usageError
	if errors.As(err, &ue) {
		if !errors.Is(ue.err, errNoShortcuts) {
			fmt.Fprintf(stderr, "ksc: %v\n", ue.err)
		}
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}

	fmt.Fprintf(stderr, "ksc: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(stderr, "hint: %s\n", hint)
	}
	return exitError
}
