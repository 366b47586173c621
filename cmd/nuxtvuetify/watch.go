package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/logger"
)

type watchOptions struct {
	resolve  resolveOptions
	debounce time.Duration
}

func newWatchCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve the payloads whenever the options file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.resolve.context, "context", contextBoth, "Execution context to assemble: client, server or both")
	cmd.Flags().StringVarP(&opts.resolve.outPath, "out", "o", "", "Rewrite the runtime configuration to this file on every change")
	cmd.Flags().BoolVar(&opts.resolve.scanComponents, "scan-components", false, "Check aliases against the installed UI library")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", 300*time.Millisecond, "Quiet period before re-resolving after a change")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, rootFlags *rootFlags, opts *watchOptions) error {
	path, err := validateConfigPath(rootFlags.configPath)
	if err != nil {
		return newCommandError("watch", "resolving config path", err, "Pass the options file with --config.")
	}
	contexts, err := contextsFor(opts.resolve.context)
	if err != nil {
		return newCommandError("watch", "selecting execution context", err, "Use --context client, server or both.")
	}

	log, err := newCommandLogger(cmd, rootFlags)
	if err != nil {
		return newCommandError("watch", "creating logger", err, "Check the logger configuration.")
	}

	emit := func() {
		report, err := buildResolveReport(ctx, log, rootFlags, &opts.resolve, contexts)
		if err != nil {
			log.Error(err, "resolve failed")
			return
		}
		if report == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Module disabled; nothing to resolve.")
			return
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			log.Error(err, "write report")
		}
	}
	emit()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newCommandError("watch", "creating file watcher", err, "Check the system's inotify limits.")
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return newCommandError("watch", fmt.Sprintf("watching %q", filepath.Dir(path)), err, "Check directory permissions.")
	}
	log.WithFields(map[string]any{"path": path}).Info("watching options file")

	return watchLoop(ctx, watcher.Events, watcher.Errors, path, opts.debounce, log, emit)
}

// watchLoop calls onChange once per burst of writes to target, after debounce
// has passed without further events. It returns when ctx is done or the
// watcher channels close.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, target string, debounce time.Duration, log *logger.Logger, onChange func()) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug("watcher stopped")
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.WithFields(map[string]any{"op": event.Op.String()}).Debug("options file changed")
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Error(err, "watcher error")
		}
	}
}
