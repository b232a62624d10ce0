package lazyfake

import (
	"context"

	"github.com/goforj/lazystore/lazycore"
)

// StaticSource resolves descriptors from a fixed table, keyed by the
// descriptor's Query. Unknown queries report no data.
type StaticSource struct {
	docs map[string]lazycore.Document
}

// NewStaticSource creates a source over docs.
func NewStaticSource(docs map[string]lazycore.Document) *StaticSource {
	return &StaticSource{docs: docs}
}

// Driver implements lazycore.QuerySource.
func (s *StaticSource) Driver() lazycore.Driver { return lazycore.Driver("static") }

// Fetch implements lazycore.QuerySource.
func (s *StaticSource) Fetch(_ context.Context, desc lazycore.Descriptor) (lazycore.Document, error) {
	return s.docs[desc.Query], nil
}
