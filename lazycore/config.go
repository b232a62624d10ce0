package lazycore

import "time"

// BaseConfig contains shared, backend-agnostic driver configuration.
type BaseConfig struct {
	// Prefix namespaces descriptor queries on shared backends
	// (redis keys, NATS subjects, dynamo key values).
	Prefix string

	// Timeout bounds a single Fetch when > 0.
	Timeout time.Duration
}
