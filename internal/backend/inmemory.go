package backend

import (
	"context"
	"sync"
)

// Origin is an in-memory stand-in for the shared store. Each call to Open
// yields an independent handle; a write through one handle signals watchers
// on every other handle, reproducing the asymmetry of the real signal.
// Tests use Seed to install content without any signal at all.
type Origin struct {
	mu       sync.Mutex
	values   map[string][]byte
	watchers []*originWatcher
}

type originWatcher struct {
	owner *InMemory
	key   string
	ch    chan struct{}
}

func NewOrigin() *Origin {
	return &Origin{values: make(map[string][]byte)}
}

// Open returns a new handle, modelling one more running instance of the
// application attached to the same origin.
func (o *Origin) Open() *InMemory {
	return &InMemory{origin: o}
}

// Seed writes a value directly, bypassing the change signal. This models a
// write whose signal was lost, which only the freshness poller can recover.
func (o *Origin) Seed(key string, value []byte) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.values[key] = append([]byte(nil), value...)
}

func (o *Origin) set(from *InMemory, key string, value []byte) {
	o.mu.Lock()
	o.values[key] = append([]byte(nil), value...)
	var notify []chan struct{}
	for _, w := range o.watchers {
		if w.owner != from && w.key == key {
			notify = append(notify, w.ch)
		}
	}
	o.mu.Unlock()

	for _, ch := range notify {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (o *Origin) get(key string) []byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	v, ok := o.values[key]
	if !ok {
		return nil
	}
	return append([]byte(nil), v...)
}

func (o *Origin) addWatcher(w *originWatcher) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.watchers = append(o.watchers, w)
}

func (o *Origin) removeWatcher(w *originWatcher) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, cur := range o.watchers {
		if cur == w {
			o.watchers = append(o.watchers[:i], o.watchers[i+1:]...)
			break
		}
	}
}

// InMemory is one instance's handle onto an Origin. It satisfies Backend.
type InMemory struct {
	origin *Origin
}

func (m *InMemory) Get(ctx context.Context, key string) ([]byte, error) {
	return m.origin.get(key), nil
}

func (m *InMemory) Set(ctx context.Context, key string, value []byte) error {
	m.origin.set(m, key, value)
	return nil
}

func (m *InMemory) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	w := &originWatcher{owner: m, key: key, ch: make(chan struct{}, 1)}
	m.origin.addWatcher(w)

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer m.origin.removeWatcher(w)
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.ch:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
