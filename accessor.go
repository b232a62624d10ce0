package lazystore

import "context"

// Accessor exposes a store's three operations without committing the
// caller to a concrete store. Readers hold an Accessor, never the map.
type Accessor interface {
	GetOrPopulate(key string, fetch func() any, fallback func()) (any, bool)
	Set(key string, value any)
	Delete(key string)
}

var _ Accessor = (*Store)(nil)

type ctxKey struct{}

// WithStore binds a store to the context for the duration of a session
// scope. Descendant call sites recover it with From.
func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, store)
}

// From returns the store bound to ctx, or the unbound accessor when no
// store is in scope. Callers outside any store lifetime get
// miss-with-no-effect behavior rather than a failure.
func From(ctx context.Context) Accessor {
	if store, ok := ctx.Value(ctxKey{}).(*Store); ok && store != nil {
		return store
	}
	return Unbound()
}

// Unbound returns the no-op accessor: every lookup misses, fetch and
// fallback are never invoked, and writes are discarded.
func Unbound() Accessor { return unboundAccessor{} }

type unboundAccessor struct{}

func (unboundAccessor) GetOrPopulate(string, func() any, func()) (any, bool) {
	return nil, false
}

func (unboundAccessor) Set(string, any) {}

func (unboundAccessor) Delete(string) {}
