package lazystore

import (
	"context"
	"sync"

	"github.com/goforj/lazystore/lazycore"
)

// FetchReader composes an Accessor with an asynchronous query source.
// Evaluate returns the stored value on a hit. On the first miss the
// reader arms: the source runs once in the background, and until its
// document lands every evaluation keeps returning (nil, false). Once
// the document arrives, the next evaluation extracts the configured
// field, populates the store, and settles; from then on the memoized
// value is returned without touching the store.
//
// The source is never invoked before arming and never invoked twice. A
// failed fetch leaves the reader armed (the error is available via Err)
// so an external Set on the same key can still settle it.
type FetchReader struct {
	slots  Accessor
	key    string
	source lazycore.QuerySource
	desc   lazycore.Descriptor
	field  string

	mu       sync.Mutex
	state    ReaderState
	doc      lazycore.Document
	fetchErr error
	rev      uint64
	memoRev  uint64
	memoVal  any
	notify   func()
}

// NewFetchReader builds a reader that caches desc's resolved field
// under key. field names the document field whose value is stored.
func NewFetchReader(slots Accessor, key string, source lazycore.QuerySource, desc lazycore.Descriptor, field string) *FetchReader {
	return &FetchReader{
		slots:  slots,
		key:    key,
		source: source,
		desc:   desc,
		field:  field,
	}
}

// Evaluate runs one synchronous pass over the store. It never blocks
// on the query; ctx bounds only the background fetch launched when the
// reader arms.
func (r *FetchReader) Evaluate(ctx context.Context) (any, bool) {
	r.mu.Lock()

	if r.state == StateSettled && r.memoRev == r.rev {
		value := r.memoVal
		r.mu.Unlock()
		return value, true
	}

	var fetch func() any
	if r.doc != nil {
		doc := r.doc
		fetch = func() any { return doc[r.field] }
	}

	before := r.state
	value, ok := r.slots.GetOrPopulate(r.key, fetch, func() { r.arm(ctx) })
	if ok {
		r.state = StateSettled
		r.memoVal = value
		r.memoRev = r.rev
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
func (r *FetchReader) State() ReaderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Settled reports whether the store holds the reader's value.
func (r *FetchReader) Settled() bool { return r.State() == StateSettled }

// Err returns the query failure, if any. A failed query never
// populates the store and is not retried.
func (r *FetchReader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetchErr
}

// OnChange registers fn to run after a state change or query
// completion. A Scheduler uses it to re-evaluate the reader.
func (r *FetchReader) OnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = fn
}

// arm runs with r.mu held, inside the store's fallback.
func (r *FetchReader) arm(ctx context.Context) {
	if r.state != StateIdle {
		return
	}
	r.state = StateArmed
	go r.run(ctx)
}

func (r *FetchReader) run(ctx context.Context) {
	doc, err := r.source.Fetch(ctx, r.desc)

	r.mu.Lock()
	r.fetchErr = err
	if err == nil && doc != nil {
		r.doc = doc
		r.rev++
	}
	fn := r.notify
	r.mu.Unlock()

	if fn != nil {
		fn()
	}
}
