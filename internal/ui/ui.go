// Package ui renders the food dashboard: an entry form and a listing table
// that stays current with the shared collection. Both panes are plain view
// adapters; all reads and writes go through the repository, and snapshots
// arrive through the feed.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raihan324/Food-Application/internal/actor"
	"github.com/raihan324/Food-Application/internal/feed"
	"github.com/raihan324/Food-Application/internal/fooditem"
	"github.com/raihan324/Food-Application/internal/logging"
)

// Options configures the dashboard.
type Options struct {
	Repo       *fooditem.Repository
	Feed       *feed.Feed
	Actor      *actor.Actor // nil renders the signed-out header
	ExportPath string       // target file for the printable report
	Log        logging.Logger
}

// Run boots the dashboard until the user quits or ctx is cancelled. The
// feed subscription is released on every exit path so the poller can shut
// down when this was the last consumer.
func Run(ctx context.Context, opts Options) error {
	return run(ctx, opts, tea.WithAltScreen())
}

func run(ctx context.Context, opts Options, extra ...tea.ProgramOption) error {
	if opts.Log == nil {
		opts.Log = logging.NewNopLogger()
	}

	progOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, extra...)
	p := tea.NewProgram(newModel(opts), progOpts...)

	// The feed delivers the first snapshot synchronously inside Subscribe,
	// and Send cannot drain until the program loop below is running, so the
	// subscription must live on its own goroutine.
	unsubCh := make(chan func(), 1)
	go func() {
		unsubCh <- opts.Feed.Subscribe(func(items []fooditem.FoodItem) {
			p.Send(snapshotMsg(items))
		})
	}()
	defer func() { (<-unsubCh)() }()

	_, err := p.Run()
	return err
}
