package lazystore

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/goforj/lazystore/driver/dynamoquery"
	"github.com/goforj/lazystore/driver/natsquery"
	"github.com/goforj/lazystore/driver/redisquery"
	"github.com/goforj/lazystore/lazycore"
)

const (
	defaultSourcePrefix  = "app"
	defaultSourceTimeout = 5 * time.Second
)

// SourceConfig controls how a QuerySource is constructed.
type SourceConfig struct {
	Driver lazycore.Driver

	// Prefix namespaces queries on shared backends.
	Prefix string

	// Timeout bounds a single fetch when > 0.
	Timeout time.Duration

	// RedisClient is required when DriverRedis is used.
	RedisClient redisquery.Client

	// NATSConn is required when DriverNATS is used.
	NATSConn natsquery.Conn

	// DB, or SQLDriverName+SQLDSN, is required when DriverSQL is used.
	DB            *sql.DB
	SQLDriverName string
	SQLDSN        string

	// DynamoClient is optional for DriverDynamo; when nil a client is
	// built from DynamoRegion and DynamoEndpoint.
	DynamoClient   dynamoquery.DynamoAPI
	DynamoRegion   string
	DynamoEndpoint string
	DynamoTable    string

	// BaseURL and HTTPClient configure DriverHTTP.
	BaseURL    string
	HTTPClient *http.Client
}

func (c SourceConfig) withDefaults() SourceConfig {
	if c.Driver == "" {
		c.Driver = lazycore.DriverNull
	}
	if c.Prefix == "" {
		c.Prefix = defaultSourcePrefix
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultSourceTimeout
	}
	return c
}

func (c SourceConfig) base() lazycore.BaseConfig {
	return lazycore.BaseConfig{
		Prefix:  c.Prefix,
		Timeout: c.Timeout,
	}
}
