// Package notify implements the same-context half of change delivery. The
// backend's native signal is only ever delivered to other instances, so the
// writer publishes here, synchronously, right after each successful write.
package notify

import "sync"

// Notifier fans a parameterless "the collection changed" event out to
// in-process subscribers. Dispatch is synchronous in Publish's goroutine.
type Notifier struct {
	mu   sync.Mutex
	seq  int
	subs map[int]func()
}

func New() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// Subscribe registers fn and returns its deregistration func. Unsubscribing
// more than once is harmless.
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	n.seq++
	id := n.seq
	n.subs[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

// Publish invokes every subscriber registered at call time. Subscribers are
// called without the lock held, so they may subscribe or unsubscribe freely.
func (n *Notifier) Publish() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
