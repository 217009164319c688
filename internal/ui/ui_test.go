package ui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/raihan324/Food-Application/internal/actor"
	"github.com/raihan324/Food-Application/internal/backend"
	"github.com/raihan324/Food-Application/internal/feed"
	"github.com/raihan324/Food-Application/internal/fooditem"
	"github.com/raihan324/Food-Application/internal/notify"
)

var testActor = &actor.Actor{ID: "u1", Name: "Ann", Email: "a@x.com"}

func newRunOptions(t *testing.T) Options {
	t.Helper()
	handle := backend.NewOrigin().Open()
	notifier := notify.New()
	repo := fooditem.NewRepository(handle, fooditem.DefaultStorageKey, actor.NewStatic(testActor), notifier, nil)
	return Options{
		Repo: repo,
		Feed: feed.New(repo, notifier, handle, fooditem.DefaultStorageKey, time.Hour, nil),
	}
}

// The feed hands the first snapshot to its subscriber synchronously, before
// Subscribe returns; the program must reach its run loop regardless, or
// startup hangs on the very first Send.
func TestRun_StartsWhileInitialSnapshotIsPending(t *testing.T) {
	opts := newRunOptions(t)
	_, err := opts.Repo.Create(context.Background(), fooditem.Draft{
		Name: "Soup", Description: "d", Category: "c", Price: 1,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = run(ctx, opts, tea.WithInput(strings.NewReader("")), tea.WithOutput(io.Discard))
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("dashboard never started: initial snapshot delivery blocked the run loop")
	}
}

func TestRun_ReleasesFeedSubscriptionOnExit(t *testing.T) {
	opts := newRunOptions(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = run(ctx, opts, tea.WithInput(strings.NewReader("")), tea.WithOutput(io.Discard))
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after context cancellation")
	}

	// The dashboard was the only consumer; its exit must have stopped the
	// feed session, so a fresh subscriber starts a new one cleanly.
	got := make(chan []fooditem.FoodItem, 1)
	unsub := opts.Feed.Subscribe(func(items []fooditem.FoodItem) { got <- items })
	defer unsub()
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("feed unusable after the dashboard exited")
	}
}
