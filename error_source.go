package lazystore

import (
	"context"

	"github.com/goforj/lazystore/lazycore"
)

// errorSource is returned when a driver fails to initialize; it
// preserves the driver identity while surfacing the construction error
// on every fetch.
type errorSource struct {
	driver lazycore.Driver
	err    error
}

func newErrorSource(driver lazycore.Driver, err error) lazycore.QuerySource {
	return &errorSource{driver: driver, err: err}
}

func (e *errorSource) Driver() lazycore.Driver { return e.driver }

func (e *errorSource) Fetch(context.Context, lazycore.Descriptor) (lazycore.Document, error) {
	return nil, e.err
}
