package lazystore

import "time"

// Observer receives events for store operations. It is called after
// each operation completes, under the store lock, so implementations
// must not call back into the store.
type Observer interface {
	OnStoreOp(op string, key string, hit bool, dur time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(op string, key string, hit bool, dur time.Duration)

// OnStoreOp implements Observer.
func (f ObserverFunc) OnStoreOp(op string, key string, hit bool, dur time.Duration) {
	if f == nil {
		return
	}
	f(op, key, hit, dur)
}
