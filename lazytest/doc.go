// Package lazytest provides a backend-agnostic contract suite for
// lazycore.QuerySource implementations. Driver packages run it against
// a stub or a real backend to prove miss, hit, and stability behavior.
package lazytest
