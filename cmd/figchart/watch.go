package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ukaji3/figchart-go/internal/logging"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

func newWatchCommand() *cobra.Command {
	flags := &chartFlags{}
	cmd := &cobra.Command{
		Use:   "watch <input>",
		Short: "Rebuild the chart whenever the data or settings file changes",
		Long: `watch builds the chart once, then rebuilds it each time the input file or
the settings file is written. A failed rebuild is logged and the previous
output is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), appFrom(cmd), flags, args[0], cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	return cmd
}

func runWatch(ctx context.Context, app *appContext, flags *chartFlags, input string, w io.Writer) error {
	log := app.log.Named("watch")

	watched := map[string]bool{}
	for _, p := range []string{input, flags.settingsPath} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Directories are watched so that atomic saves, which replace the file,
	// keep being seen.
	dirs := map[string]bool{}
	for p := range watched {
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	rebuild := func() {
		data, err := flags.render(app, input)
		if err != nil {
			log.Warn("rebuild failed, keeping previous output", logging.String("input", input), logging.Err(err))
			return
		}
		if err := flags.write(w, data); err != nil {
			log.Error("failed to write chart", logging.Err(err))
			return
		}
		log.Info("chart rebuilt", logging.String("input", input))
	}

	rebuild()

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				log.Debug("change detected", logging.String("file", ev.Name), logging.String("op", ev.Op.String()))
				timer.Reset(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", logging.Err(err))
		case <-timer.C:
			rebuild()
		}
	}
}
