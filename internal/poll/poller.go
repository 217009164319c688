// Package poll implements the freshness poller: a fixed-cadence re-read
// that recovers from lost or never-delivered change signals. Its staleness
// window is bounded by the interval.
package poll

import (
	"sync"
	"time"
)

// Poller invokes fn every interval while running. Start and Stop are safe
// to call from any goroutine; Stop blocks until the loop has exited so the
// caller knows no further invocation of fn is in flight.
type Poller struct {
	interval time.Duration
	fn       func()

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func New(interval time.Duration, fn func()) *Poller {
	return &Poller{interval: interval, fn: fn}
}

// Start launches the poll loop. Calling Start on a running poller is a
// no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	go p.run(p.stop, p.done)
}

// Stop halts the loop and waits for it to finish. Stopping a poller that is
// not running is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop, p.done = nil, nil
	p.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (p *Poller) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.fn()
		}
	}
}
