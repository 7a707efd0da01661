// Package ready implements a one-time readiness gate. Outer surfaces wait for
// the gate before serving requests; the gated component itself stays unaware
// of it.
package ready

import (
	"context"
	"sync"
	"sync/atomic"
)

// InitFunc performs the one-time initialization guarded by a Gate.
type InitFunc func(ctx context.Context) error

type Gate struct {
	init  InitFunc
	once  sync.Once
	done  chan struct{}
	ready atomic.Bool
	err   error
}

func NewGate(init InitFunc) *Gate {
	return &Gate{
		init: init,
		done: make(chan struct{}),
	}
}

// Initialize runs the init function exactly once. Concurrent callers block
// until it completes, and every caller gets the same error. A failed
// initialization is final: the gate never becomes ready.
func (g *Gate) Initialize(ctx context.Context) error {
	g.once.Do(func() {
		defer close(g.done)

		if g.init != nil {
			g.err = g.init(ctx)
		}

		if g.err == nil {
			g.ready.Store(true)
		}
	})

	return g.err
}

// Wait blocks until initialization has completed, returning its error, or
// until ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return g.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether initialization completed successfully.
func (g *Gate) Ready() bool {
	return g.ready.Load()
}

// Done is closed once initialization has completed, successfully or not.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}
