package natsquery

import (
	"context"
	"errors"
	"time"

	"github.com/goforj/lazystore/lazycore"
	"github.com/nats-io/nats.go"
)

const (
	defaultTimeout = 5 * time.Second
	defaultPrefix  = "app"
)

// Conn captures the subset of nats.Conn used by the source.
type Conn interface {
	RequestWithContext(ctx context.Context, subj string, data []byte) (*nats.Msg, error)
}

// Config configures a NATS request/reply query source.
type Config struct {
	lazycore.BaseConfig
	Conn Conn
}

type source struct {
	conn    Conn
	prefix  string
	timeout time.Duration
}

// New builds a NATS-backed lazycore.QuerySource. The descriptor's
// Query names a subject; Payload is sent as the request body and the
// reply is decoded as a JSON document. A missing responder or an empty
// reply means no data.
//
// Defaults:
// - Timeout: 5*time.Second when zero
// - Prefix: "app" when empty (subjects become "<prefix>.<query>")
// - Conn: nil allowed (fetches return errors until a connection is provided)
func New(cfg Config) lazycore.QuerySource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &source{
		conn:    cfg.Conn,
		prefix:  prefix,
		timeout: timeout,
	}
}

func (s *source) Driver() lazycore.Driver { return lazycore.DriverNATS }

func (s *source) Fetch(ctx context.Context, desc lazycore.Descriptor) (lazycore.Document, error) {
	if s.conn == nil {
		return nil, errors.New("nats query connection unavailable")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	msg, err := s.conn.RequestWithContext(ctx, s.subject(desc.Query), desc.Payload)
	if err != nil {
		if errors.Is(err, nats.ErrNoResponders) {
			return nil, nil
		}
		return nil, err
	}
	return lazycore.DecodeDocument(msg.Data)
}

func (s *source) subject(query string) string {
	if s.prefix == "" {
		return query
	}
	return s.prefix + "." + query
}
