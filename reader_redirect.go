package lazystore

import (
	"context"
	"sync"

	"github.com/goforj/lazystore/lazycore"
)

// RedirectReader composes an Accessor with a navigation side effect.
// It has no fetch path: a miss can only be resolved by something
// external calling Set on the same key. On the first miss the reader
// arms and navigates to the target path exactly once; repeated
// evaluations while the key stays absent do not navigate again. Once
// the key is present the reader settles and returns the memoized value.
type RedirectReader struct {
	slots  Accessor
	key    string
	target string
	nav    lazycore.Navigator

	mu      sync.Mutex
	state   ReaderState
	memoVal any
	notify  func()
}

// NewRedirectReader builds a reader that redirects to target while key
// is absent.
func NewRedirectReader(slots Accessor, key, target string, nav lazycore.Navigator) *RedirectReader {
	return &RedirectReader{
		slots:  slots,
		key:    key,
		target: target,
		nav:    nav,
	}
}

// Evaluate runs one synchronous pass over the store.
func (r *RedirectReader) Evaluate(_ context.Context) (any, bool) {
	r.mu.Lock()

	if r.state == StateSettled {
		value := r.memoVal
		r.mu.Unlock()
		return value, true
	}

	before := r.state
	value, ok := r.slots.GetOrPopulate(r.key, nil, r.arm)
	if ok {
		r.state = StateSettled
		r.memoVal = value
	}
	changed := r.state != before
	fn := r.notify
	r.mu.Unlock()

	if changed && fn != nil {
		fn()
	}
	return value, ok
}

// State reports the reader's position in the Idle/Armed/Settled machine.
func (r *RedirectReader) State() ReaderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Settled reports whether the store holds the reader's value.
func (r *RedirectReader) Settled() bool { return r.State() == StateSettled }

// OnChange registers fn to run after a state change.
func (r *RedirectReader) OnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = fn
}

// arm runs with r.mu held, inside the store's fallback. The Idle→Armed
// transition performs the one-shot navigation.
func (r *RedirectReader) arm() {
	if r.state != StateIdle {
		return
	}
	r.state = StateArmed
	if r.nav != nil {
		r.nav.Navigate(r.target)
	}
}
