package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ksc/internal/convert"
	"ksc/internal/errors"
	"ksc/internal/log"
	"ksc/internal/watch"
	"ksc/pkg/types"

	"github.com/spf13/cobra"
)

// newConvertCmd creates the convert command
func newConvertCmd(a *app) *cobra.Command {
	var (
		rf       renderFlags
		watching bool
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Render every shortcut in a file, one expression per line",
		Long: `Render every shortcut in FILE, one expression per line. Blank lines and lines
starting with # are copied unchanged. Use - to read standard input.

With --watch the file is converted again each time it changes, until interrupted.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rf.validate(); err != nil {
				return err
			}
			opts := rf.options(a.cfg)
			path := args[0]

			if watching {
				if path == "-" {
					return &usageError{err: errors.New("--watch needs a file, not standard input")}
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return a.watchFile(ctx, path, opts)
			}

			if path == "-" {
				return a.convert(cmd.InOrStdin(), opts)
			}
			return a.convertFile(path, opts)
		},
	}

	rf.register(cmd)
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "convert again whenever the file changes")
	return cmd
}

func (a *app) convertFile(path string, opts types.RenderOptions) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileError("file not found", path, errors.FileNotFound, err)
		}
		return errors.NewFileError("cannot open file", path, errors.FileAccessDenied, err)
	}
	defer f.Close()
	return a.convert(f, opts)
}

func (a *app) convert(r io.Reader, opts types.RenderOptions) error {
	lines, err := convert.Lines(r, opts)
	if err != nil {
		return err
	}

	for _, l := range lines {
		if l.Err != nil {
			fmt.Fprintf(a.stderr, "ksc: %v\n", l.Err)
			continue
		}
		fmt.Fprintln(a.stdout, l.Output)
	}

	if failed := convert.Failed(lines); failed > 0 {
		return errors.WithHint(
			errors.Newf("%d of %d lines could not be parsed", failed, len(lines)),
			"run 'ksc --list' to see every recognized key name")
	}
	return nil
}

func (a *app) watchFile(ctx context.Context, path string, opts types.RenderOptions) error {
	debounce := time.Duration(a.cfg.Watch.DebounceMS) * time.Millisecond
	daemon, err := watch.NewDaemon(path, debounce, func(p string) error {
		return a.convertFile(p, opts)
	})
	if err != nil {
		return err
	}

	log.LogWithFields(log.F("file", path), log.F("debounce", debounce.String())).Info("Watching for changes")
	if err := daemon.Run(ctx); err != nil {
		return err
	}
	status := daemon.Status()
	log.LogWithFields(log.F("runs", status.Runs), log.F("failures", status.Failures)).Info("Stopped watching")
	return nil
}
