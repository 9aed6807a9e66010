package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ariel-frischer/clkpr/internal/errors"
	"github.com/ariel-frischer/clkpr/internal/output"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check the changelog whenever it changes",
	Long: `Watch the changelog file and re-run the check on every change.

Useful while resolving merge conflicts: each save is validated,
repaired, and rewritten in canonical form immediately. Errors are
reported without stopping the watch. Stop with Ctrl-C.

Examples:
  clkpr watch
  clkpr watch -f docs/CHANGES.md`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return runWatch(ctx, cmd)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(ctx context.Context, cmd *cobra.Command) error {
	if _, err := os.Stat(cfg.File); err != nil {
		return errors.NewIOError(
			fmt.Sprintf("changelog %s does not exist", cfg.File),
			"Run 'clkpr create' to start one",
		)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on
	// save and the inode-level watch would be lost.
	dir := filepath.Dir(cfg.File)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	idle := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(cmd.ErrOrStderr()))
	idle.Suffix = fmt.Sprintf(" watching %s", cfg.File)

	runCheck(cmd)
	idle.Start()
	defer idle.Stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watchLoop(ctx, cmd, watcher, idle)
	})
	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// watchLoop dispatches filesystem events, debouncing bursts of writes
// into a single re-check.
func watchLoop(ctx context.Context, cmd *cobra.Command, watcher *fsnotify.Watcher, idle *spinner.Spinner) error {
	debounce := cfg.WatchDebounceDuration()
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	target := filepath.Clean(cfg.File)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				timer.Reset(debounce)
			}
		case <-timer.C:
			idle.Stop()
			runCheck(cmd)
			idle.Start()
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// runCheck performs one check pass, reporting failures without ending
// the watch.
func runCheck(cmd *cobra.Command) {
	report, err := newKeeper().Check()
	if err != nil {
		errors.FprintError(cmd.ErrOrStderr(), errors.FromError(err))
		return
	}
	if report.Wrote {
		printReport(cmd, report, fmt.Sprintf("Repaired %s", cfg.File))
	} else {
		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s is valid", cfg.File))
	}
}
