package redisquery

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// stubClient is an in-memory Client used for unit tests.
type stubClient struct {
	store  map[string]string
	getErr error
}

func newStubClient() *stubClient {
	return &stubClient{store: make(map[string]string)}
}

func (c *stubClient) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if c.getErr != nil {
		cmd.SetErr(c.getErr)
		return cmd
	}
	if val, ok := c.store[key]; ok {
		cmd.SetVal(val)
		return cmd
	}
	cmd.SetErr(redis.Nil)
	return cmd
}
