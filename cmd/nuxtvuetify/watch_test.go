package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/logger"
)

func TestWatchLoopDebouncesTargetWrites(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	changed := make(chan struct{}, 4)
	done := make(chan error, 1)

	go func() {
		done <- watchLoop(ctx, events, errs, "/project/vuetify.yaml", 100*time.Millisecond, logger.Nop(), func() {
			changed <- struct{}{}
		})
	}()

	events <- fsnotify.Event{Name: "/project/other.yaml", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/project/vuetify.yaml", Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: "/project/vuetify.yaml", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/project/vuetify.yaml", Op: fsnotify.Create}
	errs <- errors.New("queue overflow")

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a reload after writes to the options file")
	}

	select {
	case <-changed:
		t.Fatal("burst of writes should reload once")
	case <-time.After(250 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}

func TestWatchLoopStopsWhenEventsClose(t *testing.T) {
	t.Parallel()

	events := make(chan fsnotify.Event)
	close(events)

	err := watchLoop(context.Background(), events, nil, "/project/vuetify.yaml", time.Millisecond, logger.Nop(), func() {
		t.Fatal("no change expected")
	})
	require.NoError(t, err)
}

func TestWatchRequiresConfig(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "watch")
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file is required")
}
