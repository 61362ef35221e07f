package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"engagedash/internal/logging"
	"engagedash/internal/watch"
)

// watchCmd re-renders the dashboard whenever the state file changes
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the dashboard when the state file changes",
	Long: `Shows the dashboard and redraws it every time the state file is
written, for example by "engage campaign add" in another terminal.
Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchState(ctx, cmd.OutOrStdout())
}

// watchState draws once, then on every settled change until ctx ends.
func watchState(ctx context.Context, out io.Writer) error {
	log := logging.For(logger, logging.CategoryWatch)
	store := newStore()

	var mu sync.Mutex
	draw := func() {
		mu.Lock()
		defer mu.Unlock()
		doc := store.Load()
		fmt.Fprint(out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
		fmt.Fprintln(out, renderDashboard(doc, cfg.UI.Width))
	}

	draw()

	w, err := watch.New(store.Path(), cfg.GetWatchDebounce(), func(context.Context) {
		log.Debug("state changed, redrawing")
		draw()
	}, log)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()
	log.Debug("watching state file", zap.String("path", w.Path()))

	<-ctx.Done()
	log.Debug("watch stopped", zap.Int("redraws", w.Stats().Callbacks))
	return nil
}
