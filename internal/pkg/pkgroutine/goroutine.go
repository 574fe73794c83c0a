package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// Manager bounds how many tasks run at once and tracks them for Wait.
//
// Scheduling never blocks the caller: a task waits for a free slot on its own
// goroutine and gives up when its context ends first.
type Manager struct {
	mu   sync.Mutex
	errs []error
	wg   sync.WaitGroup
	sema chan struct{}
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go runs f in the background. A returned error, a panic or a context that
// ends before f starts is reported by Wait.
func (g *Manager) Go(ctx context.Context, f func(ctx context.Context) error) {
	g.spawn(ctx, func() {
		defer func() {
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "panic occurred in goroutine", "stack", string(debug.Stack()))
				g.record(fmt.Errorf("panic: %v", rvr))
			}
		}()

		if err := f(ctx); err != nil {
			g.record(err)
		}
	}, func(err error) {
		slog.WarnContext(ctx, "goroutine canceled before start", "because", err)
		g.record(err)
	})
}

// Wait blocks until every scheduled task finishes and returns the collected
// errors joined together.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()

	return errors.Join(g.errs...)
}

// spawn calls run once a slot is free, or canceled if ctx ends first.
func (g *Manager) spawn(ctx context.Context, run func(), canceled func(err error)) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		select {
		case g.sema <- struct{}{}:
		case <-ctx.Done():
			canceled(ctx.Err())
			return
		}
		defer func() { <-g.sema }()

		run()
	}()
}

func (g *Manager) record(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}
