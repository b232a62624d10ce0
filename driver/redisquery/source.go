package redisquery

import (
	"context"
	"errors"
	"time"

	"github.com/goforj/lazystore/lazycore"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout = 5 * time.Second
	defaultPrefix  = "app"
)

// Client captures the subset of redis.Client used by the source.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Config configures a Redis-backed query source.
type Config struct {
	lazycore.BaseConfig
	Client Client
}

type source struct {
	client  Client
	prefix  string
	timeout time.Duration
}

// New builds a Redis-backed lazycore.QuerySource. The descriptor's
// Query names a redis key holding a JSON document.
//
// Defaults:
// - Timeout: 5*time.Second when zero
// - Prefix: "app" when empty
// - Client: nil allowed (fetches return errors until a client is provided)
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
		client:  cfg.Client,
		prefix:  prefix,
		timeout: timeout,
	}
}

func (s *source) Driver() lazycore.Driver { return lazycore.DriverRedis }

func (s *source) Fetch(ctx context.Context, desc lazycore.Descriptor) (lazycore.Document, error) {
	if s.client == nil {
		return nil, errors.New("redis query client unavailable")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	body, err := s.client.Get(ctx, s.queryKey(desc.Query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return lazycore.DecodeDocument(body)
}

func (s *source) queryKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}
