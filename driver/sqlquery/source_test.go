package sqlquery

import (
	"context"
	"testing"

	"github.com/goforj/lazystore/lazycore"
	"github.com/goforj/lazystore/lazytest"
)

func newFakeSource(t *testing.T) lazycore.QuerySource {
	t.Helper()
	source, err := New(Config{DriverName: "docfake", DSN: "docs"})
	if err != nil {
		t.Fatalf("new source failed: %v", err)
	}
	return source
}

func TestSQLSourceContract(t *testing.T) {
	source := newFakeSource(t)
	lazytest.RunQuerySourceContract(t, source, lazytest.Options{
		Miss: lazycore.Descriptor{Query: "SELECT token, expires FROM missing"},
		Hit:  lazycore.Descriptor{Query: "SELECT token, expires FROM tokens WHERE name = ?", Args: []any{"api"}},
		Want: lazycore.Document{"token": "abc", "expires": int64(3600)},
	})
}

func TestSQLSourceRowBecomesDocument(t *testing.T) {
	source := newFakeSource(t)
	doc, err := source.Fetch(context.Background(), lazycore.Descriptor{Query: "SELECT token, expires FROM tokens"})
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if doc["token"] != "abc" {
		t.Fatalf("expected text column normalized to string, got %T %v", doc["token"], doc["token"])
	}
	if doc["expires"] != int64(3600) {
		t.Fatalf("expected numeric column preserved, got %T %v", doc["expires"], doc["expires"])
	}
}

func TestSQLSourceNoRowsMeansNoData(t *testing.T) {
	source := newFakeSource(t)
	doc, err := source.Fetch(context.Background(), lazycore.Descriptor{Query: "SELECT token FROM missing"})
	if err != nil || doc != nil {
		t.Fatalf("expected no data, got doc=%v err=%v", doc, err)
	}
}

func TestSQLSourceSurfacesQueryErrors(t *testing.T) {
	source := newFakeSource(t)
	if _, err := source.Fetch(context.Background(), lazycore.Descriptor{Query: "SELECT token FROM failing"}); err == nil {
		t.Fatalf("expected query error to surface")
	}
}

func TestSQLSourceRequiresDatabase(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected config error without a database")
	}
	if _, err := New(Config{DriverName: "docfake"}); err == nil {
		t.Fatalf("expected config error without a DSN")
	}
}

func TestSQLSourceDriver(t *testing.T) {
	if got := newFakeSource(t).Driver(); got != lazycore.DriverSQL {
		t.Fatalf("expected sql driver, got %s", got)
	}
}
