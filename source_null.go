package lazystore

import (
	"context"

	"github.com/goforj/lazystore/lazycore"
)

// nullSource never has data. It backs the null driver so a fetch
// reader built without a real source arms once and then waits forever
// on an external Set, mirroring the redirect reader's resolution path.
type nullSource struct{}

func newNullSource() lazycore.QuerySource { return nullSource{} }

func (nullSource) Driver() lazycore.Driver { return lazycore.DriverNull }

func (nullSource) Fetch(context.Context, lazycore.Descriptor) (lazycore.Document, error) {
	return nil, nil
}
