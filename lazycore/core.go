package lazycore

import (
	"context"
	"encoding/json"
)

// Document is a resolved query result: a flat JSON-shaped object whose
// fields readers extract values from.
type Document = map[string]any

// Descriptor describes a query in driver-neutral terms. Each driver
// interprets the fields it needs: Query is a redis key, a NATS subject,
// a SQL statement, a DynamoDB key value, or an HTTP URL; Args carries
// positional SQL arguments; Payload is the request body for
// request/reply transports.
type Descriptor struct {
	Query   string
	Args    []any
	Payload []byte
}

// QuerySource resolves a Descriptor to a Document. Fetch blocks until
// the result is available or ctx ends. A (nil, nil) return means the
// source has no data for the descriptor; it is not an error.
type QuerySource interface {
	Driver() Driver
	Fetch(ctx context.Context, desc Descriptor) (Document, error)
}

// Navigator performs a fire-and-forget navigation to a path. It is the
// redirect reader's fallback effect.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(path string) {
	if f == nil {
		return
	}
	f(path)
}

// DecodeDocument decodes a JSON object payload into a Document.
// Empty payloads decode to no data.
func DecodeDocument(body []byte) (Document, error) {
	if len(body) == 0 {
		return nil, nil
	}
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
