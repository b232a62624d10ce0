package lazystore

import (
	"testing"
	"time"
)

type storeEvent struct {
	op  string
	key string
	hit bool
}

func TestObserverReceivesStoreEvents(t *testing.T) {
	var events []storeEvent
	store := NewStore().WithObserver(ObserverFunc(func(op, key string, hit bool, _ time.Duration) {
		events = append(events, storeEvent{op: op, key: key, hit: hit})
	}))

	store.Set("key", "value")
	store.GetOrPopulate("key", nil, nil)
	store.GetOrPopulate("other", func() any { return 1 }, nil)
	store.GetOrPopulate("absent", nil, nil)
	store.Delete("key")

	want := []storeEvent{
		{op: "set", key: "key"},
		{op: "get_or_populate", key: "key", hit: true},
		{op: "populate", key: "other"},
		{op: "get_or_populate", key: "absent"},
		{op: "delete", key: "key"},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i, event := range want {
		if events[i] != event {
			t.Fatalf("event %d: expected %+v, got %+v", i, event, events[i])
		}
	}
}

func TestNilObserverFuncIsSafe(t *testing.T) {
	var f ObserverFunc
	f.OnStoreOp("get_or_populate", "key", false, 0)

	store := NewStore().WithObserver(f)
	store.Set("key", "value")
}
