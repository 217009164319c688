// Package feed keeps view adapters current. A subscriber gets the list
// immediately on registration, then again whenever any of three sources
// reports a change: the in-process notifier (this instance's own writes),
// the backend watch (other instances' writes), or the freshness poller
// (anything the first two missed). Snapshots are whole lists, so duplicate
// or coalesced deliveries are harmless.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/raihan324/Food-Application/internal/backend"
	"github.com/raihan324/Food-Application/internal/fooditem"
	"github.com/raihan324/Food-Application/internal/logging"
	"github.com/raihan324/Food-Application/internal/notify"
	"github.com/raihan324/Food-Application/internal/poll"
)

// DefaultInterval is the freshness poll cadence; it bounds how stale a view
// can get when every change signal is lost.
const DefaultInterval = time.Second

// Lister is the read side of the repository.
type Lister interface {
	List(ctx context.Context, filters ...fooditem.Filter) ([]fooditem.FoodItem, error)
}

// Feed multiplexes change sources into list snapshots. The poller and the
// backend watch run only while at least one subscriber is attached.
type Feed struct {
	lister   Lister
	notifier *notify.Notifier
	backend  backend.Backend
	key      string
	interval time.Duration
	log      logging.Logger

	// lifeMu serializes session start/stop; mu guards the subscriber set.
	lifeMu sync.Mutex
	mu     sync.Mutex
	seq    int
	subs   map[int]func([]fooditem.FoodItem)

	// Session state, valid while subscribers exist. Owned under lifeMu.
	cancel       context.CancelFunc
	unsubNotify  func()
	poller       *poll.Poller
	refresh      chan struct{}
	dispatchDone chan struct{}
}

func New(lister Lister, notifier *notify.Notifier, b backend.Backend, key string, interval time.Duration, log logging.Logger) *Feed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Feed{
		lister:   lister,
		notifier: notifier,
		backend:  b,
		key:      key,
		interval: interval,
		log:      log,
		subs:     make(map[int]func([]fooditem.FoodItem)),
	}
}

// Subscribe registers fn, delivers the current list to it right away, and
// returns its deregistration func. The first subscriber starts the watch
// and the poller; deregistering the last one stops both.
func (f *Feed) Subscribe(fn func([]fooditem.FoodItem)) (unsubscribe func()) {
	f.lifeMu.Lock()
	f.mu.Lock()
	f.seq++
	id := f.seq
	f.subs[id] = fn
	first := len(f.subs) == 1
	f.mu.Unlock()
	if first {
		f.start()
	}
	f.lifeMu.Unlock()

	if items, err := f.lister.List(context.Background()); err != nil {
		f.log.Error(context.Background(), "initial snapshot failed", "error", err)
	} else {
		fn(items)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			f.lifeMu.Lock()
			f.mu.Lock()
			delete(f.subs, id)
			last := len(f.subs) == 0
			f.mu.Unlock()
			if last {
				f.stop()
			}
			f.lifeMu.Unlock()
		})
	}
}

// start launches the session. Caller holds lifeMu.
func (f *Feed) start() {
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.refresh = make(chan struct{}, 1)

	refresh := f.refresh
	kick := func() {
		select {
		case refresh <- struct{}{}:
		default:
		}
	}

	f.unsubNotify = f.notifier.Subscribe(kick)

	if watchCh, err := f.backend.Watch(ctx, f.key); err != nil {
		// Polling still bounds staleness when the signal channel is down.
		f.log.Error(ctx, "backend watch unavailable, relying on polling", "error", err)
	} else {
		go func() {
			for range watchCh {
				kick()
			}
		}()
	}

	f.poller = poll.New(f.interval, kick)
	f.poller.Start()

	f.dispatchDone = make(chan struct{})
	go f.dispatch(ctx, refresh, f.dispatchDone)
	f.log.Debug(ctx, "feed started", "key", f.key, "interval", f.interval)
}

// stop tears the session down on the last unsubscribe. Caller holds lifeMu.
func (f *Feed) stop() {
	f.cancel()
	f.unsubNotify()
	f.poller.Stop()
	<-f.dispatchDone

	f.cancel = nil
	f.unsubNotify = nil
	f.poller = nil
	f.refresh = nil
	f.dispatchDone = nil
	f.log.Debug(context.Background(), "feed stopped", "key", f.key)
}

func (f *Feed) dispatch(ctx context.Context, refresh <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-refresh:
			f.deliver(ctx)
		}
	}
}

func (f *Feed) deliver(ctx context.Context) {
	items, err := f.lister.List(ctx)
	if err != nil {
		if ctx.Err() == nil {
			f.log.Error(ctx, "list refresh failed", "error", err)
		}
		return
	}

	f.mu.Lock()
	fns := make([]func([]fooditem.FoodItem), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(items)
	}
}
