// Package lifecycle coordinates normal operation against a one-time close.
package lifecycle

import (
	"errors"
	"sync"
)

var (
	ErrClosed = errors.New("closed")
)

// Guard admits calls through Do until Close is called, then drains the
// in-flight calls before running the close function exactly once.
type Guard struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	done   chan struct{}
	closed bool
}

func NewGuard() *Guard {
	return &Guard{
		done: make(chan struct{}),
	}
}

// Do runs f unless the guard has been closed, in which case it returns
// ErrClosed without running f.
func (g *Guard) Do(f func() error) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}
	g.wg.Add(1)
	g.mu.Unlock()

	defer g.wg.Done()
	return f()
}

// Close marks the guard closed, waits for in-flight Do calls to drain, runs f
// and returns.  Concurrent and repeated Close calls all block until the first
// one has finished; only the first runs f.
func (g *Guard) Close(f func()) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		<-g.done
		return
	}
	g.closed = true
	g.mu.Unlock()

	g.wg.Wait()
	f()
	close(g.done)
}
