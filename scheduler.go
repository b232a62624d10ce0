package lazystore

import (
	"context"
	"sync"
)

// Reader is re-evaluated by a Scheduler until it settles. Both
// FetchReader and RedirectReader implement it.
type Reader interface {
	Evaluate(ctx context.Context) (any, bool)
	Settled() bool
	OnChange(fn func())
}

var (
	_ Reader = (*FetchReader)(nil)
	_ Reader = (*RedirectReader)(nil)
)

// Scheduler drives registered readers through their evaluation
// sequence. Any reader state change or query completion wakes the run
// loop, which re-evaluates every unsettled reader.
type Scheduler struct {
	mu      sync.Mutex
	readers []Reader
	wake    chan struct{}
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{wake: make(chan struct{}, 1)}
}

// Add registers a reader and wires its change notifications to the
// scheduler's wake signal.
func (s *Scheduler) Add(readers ...Reader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range readers {
		r.OnChange(s.Wake)
		s.readers = append(s.readers, r)
	}
}

// Wake requests another evaluation round. Safe to call from any
// goroutine; coalesces concurrent requests.
func (s *Scheduler) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run evaluates readers until every registered reader has settled or
// ctx ends. Readers that can never settle (a redirect reader whose key
// is never set) keep Run blocked until ctx cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if s.evaluate(ctx) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
		}
	}
}

// evaluate runs one round and reports whether everything settled.
func (s *Scheduler) evaluate(ctx context.Context) bool {
	s.mu.Lock()
	readers := make([]Reader, len(s.readers))
	copy(readers, s.readers)
	s.mu.Unlock()

	settled := true
	for _, r := range readers {
		if r.Settled() {
			continue
		}
		if _, ok := r.Evaluate(ctx); !ok {
			settled = false
		}
	}
	return settled
}
