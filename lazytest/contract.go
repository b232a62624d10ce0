package lazytest

import (
	"context"
	"fmt"
	"testing"

	"github.com/goforj/lazystore/lazycore"
)

// Options configures the shared query-source contract checks.
type Options struct {
	// Miss is a descriptor the source must report no data for.
	Miss lazycore.Descriptor
	// Hit is a descriptor the source must resolve.
	Hit lazycore.Descriptor
	// Want lists fields the resolved document must contain. Values are
	// compared by their printed form to tolerate driver numeric types.
	Want lazycore.Document
	// NullSemantics relaxes expectations for sources that never have
	// data; only the miss check runs.
	NullSemantics bool
}

// RunQuerySourceContract runs a backend-agnostic source contract suite.
func RunQuerySourceContract(t *testing.T, source lazycore.QuerySource, opts Options) {
	t.Helper()
	ctx := context.Background()

	// A miss is (nil, nil), never an error.
	doc, err := source.Fetch(ctx, opts.Miss)
	if err != nil {
		t.Fatalf("miss fetch failed: %v", err)
	}
	if doc != nil {
		t.Fatalf("expected no data for miss descriptor, got %v", doc)
	}

	if opts.NullSemantics {
		return
	}

	doc, err = source.Fetch(ctx, opts.Hit)
	if err != nil {
		t.Fatalf("hit fetch failed: %v", err)
	}
	if doc == nil {
		t.Fatalf("expected document for hit descriptor")
	}
	for field, want := range opts.Want {
		got, ok := doc[field]
		if !ok {
			t.Fatalf("expected field %q in document %v", field, doc)
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("field %q: expected %v, got %v", field, want, got)
		}
	}

	// Resolution is stable: fetching the same descriptor again yields
	// the same fields.
	again, err := source.Fetch(ctx, opts.Hit)
	if err != nil || again == nil {
		t.Fatalf("repeat fetch failed: doc=%v err=%v", again, err)
	}
	for field := range opts.Want {
		if fmt.Sprint(again[field]) != fmt.Sprint(doc[field]) {
			t.Fatalf("field %q changed between fetches: %v vs %v", field, doc[field], again[field])
		}
	}
}
