package lazyfake

import (
	"context"
	"sync"
	"testing"

	"github.com/goforj/lazystore"
	"github.com/goforj/lazystore/lazycore"
)

// Source is a scriptable query source for tests. Fetch blocks until
// Resolve or Fail is called, so tests control exactly when the remote
// result "lands".
type Source struct {
	mu       sync.Mutex
	calls    int
	resolved bool
	doc      lazycore.Document
	err      error
	ready    chan struct{}
}

// NewSource creates a pending source.
func NewSource() *Source {
	return &Source{ready: make(chan struct{})}
}

// NewResolvedSource creates a source whose document is available
// immediately.
func NewResolvedSource(doc lazycore.Document) *Source {
	s := NewSource()
	s.Resolve(doc)
	return s
}

// Driver implements lazycore.QuerySource.
func (s *Source) Driver() lazycore.Driver { return lazycore.Driver("fake") }

// Fetch implements lazycore.QuerySource.
func (s *Source) Fetch(ctx context.Context, _ lazycore.Descriptor) (lazycore.Document, error) {
	s.mu.Lock()
	s.calls++
	ready := s.ready
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-ready:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc, s.err
}

// Resolve unblocks pending fetches with doc.
func (s *Source) Resolve(doc lazycore.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return
	}
	s.resolved = true
	s.doc = doc
	close(s.ready)
}

// Fail unblocks pending fetches with err.
func (s *Source) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return
	}
	s.resolved = true
	s.err = err
	close(s.ready)
}

// Calls returns how many times Fetch was invoked.
func (s *Source) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// AssertCalls verifies the fetch invocation count.
func (s *Source) AssertCalls(t *testing.T, times int) {
	t.Helper()
	if got := s.Calls(); got != times {
		t.Fatalf("expected %d fetches, got %d", times, got)
	}
}

// Navigator records navigations for assertions.
type Navigator struct {
	mu    sync.Mutex
	paths []string
}

// NewNavigator creates an empty recording navigator.
func NewNavigator() *Navigator { return &Navigator{} }

// Navigate implements lazycore.Navigator.
func (n *Navigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

// Paths returns the recorded navigation targets in order.
func (n *Navigator) Paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.paths))
	copy(out, n.paths)
	return out
}

// AssertNavigations verifies the recorded targets match want exactly.
func (n *Navigator) AssertNavigations(t *testing.T, want ...string) {
	t.Helper()
	got := n.Paths()
	if len(got) != len(want) {
		t.Fatalf("expected %d navigations %v, got %v", len(want), want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected navigation %d to be %q, got %q", i, want[i], got[i])
		}
	}
}

// Op identifies a store operation for assertions.
type Op string

const (
	OpLookup   Op = "lookup"
	OpFetch    Op = "fetch"
	OpFallback Op = "fallback"
	OpSet      Op = "set"
	OpDelete   Op = "delete"
)

// Accessor wraps a store accessor and counts operations per key,
// including how often fetch and fallback thunks actually ran.
type Accessor struct {
	inner  lazystore.Accessor
	mu     sync.Mutex
	counts map[Op]map[string]int
}

// NewAccessor wraps inner; a nil inner wraps a fresh store.
func NewAccessor(inner lazystore.Accessor) *Accessor {
	if inner == nil {
		inner = lazystore.NewStore()
	}
	return &Accessor{
		inner:  inner,
		counts: make(map[Op]map[string]int),
	}
}

// GetOrPopulate implements lazystore.Accessor.
func (a *Accessor) GetOrPopulate(key string, fetch func() any, fallback func()) (any, bool) {
	a.record(OpLookup, key)
	var countedFetch func() any
	if fetch != nil {
		countedFetch = func() any {
			a.record(OpFetch, key)
			return fetch()
		}
	}
	var countedFallback func()
	if fallback != nil {
		countedFallback = func() {
			a.record(OpFallback, key)
			fallback()
		}
	}
	return a.inner.GetOrPopulate(key, countedFetch, countedFallback)
}

// Set implements lazystore.Accessor.
func (a *Accessor) Set(key string, value any) {
	a.record(OpSet, key)
	a.inner.Set(key, value)
}

// Delete implements lazystore.Accessor.
func (a *Accessor) Delete(key string) {
	a.record(OpDelete, key)
	a.inner.Delete(key)
}

// Count returns calls for op+key.
func (a *Accessor) Count(op Op, key string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[op][key]
}

// AssertCalled verifies key was touched by op the expected number of times.
func (a *Accessor) AssertCalled(t *testing.T, op Op, key string, times int) {
	t.Helper()
	if got := a.Count(op, key); got != times {
		t.Fatalf("expected %s %q called %d times, got %d", op, key, times, got)
	}
}

// AssertNotCalled ensures key was never touched by op.
func (a *Accessor) AssertNotCalled(t *testing.T, op Op, key string) {
	t.Helper()
	if got := a.Count(op, key); got != 0 {
		t.Fatalf("expected %s %q not called, got %d", op, key, got)
	}
}

func (a *Accessor) record(op Op, key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.counts[op] == nil {
		a.counts[op] = make(map[string]int)
	}
	a.counts[op][key]++
}
