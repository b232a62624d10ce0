package lazystore

// ReaderState tracks a reader's miss-resolution progress. Idle means
// the fallback effect has not fired; Armed means it fired exactly once
// and the reader is waiting for data; Settled means the store holds the
// value. Re-entry into Armed after Settled does not happen.
type ReaderState int

const (
	StateIdle ReaderState = iota
	StateArmed
	StateSettled
)

func (s ReaderState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}
