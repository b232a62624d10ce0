package lazystore_test

import (
	"context"
	"testing"

	"github.com/goforj/lazystore"
	"github.com/goforj/lazystore/lazycore"
	"github.com/goforj/lazystore/lazyfake"
	"github.com/goforj/lazystore/lazytest"
)

func TestLazytestRunQuerySourceContract_StaticSource(t *testing.T) {
	source := lazyfake.NewStaticSource(map[string]lazycore.Document{
		"token": {"token": "abc", "expires": 3600},
	})
	lazytest.RunQuerySourceContract(t, source, lazytest.Options{
		Miss: lazycore.Descriptor{Query: "unknown"},
		Hit:  lazycore.Descriptor{Query: "token"},
		Want: lazycore.Document{"token": "abc"},
	})
}

func TestLazytestRunQuerySourceContract_NullSource(t *testing.T) {
	source := lazystore.NewQuerySource(context.Background(), lazystore.SourceConfig{})
	lazytest.RunQuerySourceContract(t, source, lazytest.Options{
		Miss:          lazycore.Descriptor{Query: "anything"},
		NullSemantics: true,
	})
}
