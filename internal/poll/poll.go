// Package poll enforces the at-most-one-in-flight-per-purpose contract
// for the screens' update cycles. Starting work for a purpose cancels
// whatever is still running for that purpose; a cancelled operation
// observes its context and must not publish a stale result.
package poll

import (
	"context"
	"sync"
)

type Poller struct {
	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func New() *Poller {
	return &Poller{cancels: make(map[string]context.CancelFunc)}
}

// Begin cancels whatever is in flight for the purpose and returns a
// fresh context for the next operation. The caller runs the operation
// itself (e.g. inside a bubbletea command) and must check the context
// before applying its result.
func (p *Poller) Begin(purpose string) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	p.mu.Lock()
	if prev, ok := p.cancels[purpose]; ok {
		prev()
	}
	p.cancels[purpose] = cancel
	p.mu.Unlock()

	return ctx
}

// Go runs fn on its own goroutine under a Begin context.
func (p *Poller) Go(purpose string, fn func(ctx context.Context)) {
	ctx := p.Begin(purpose)
	go fn(ctx)
}

// Stop cancels any in-flight operation for a purpose. Safe to call
// repeatedly, including for purposes that never ran.
func (p *Poller) Stop(purpose string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cancel, ok := p.cancels[purpose]; ok {
		cancel()
		delete(p.cancels, purpose)
	}
}

// StopAll cancels everything in flight. Used when a screen goes away.
func (p *Poller) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for purpose, cancel := range p.cancels {
		cancel()
		delete(p.cancels, purpose)
	}
}
