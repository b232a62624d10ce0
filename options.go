package lazystore

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/goforj/lazystore/driver/dynamoquery"
	"github.com/goforj/lazystore/driver/natsquery"
	"github.com/goforj/lazystore/driver/redisquery"
)

// SourceOption mutates SourceConfig when constructing a query source.
type SourceOption func(SourceConfig) SourceConfig

// WithPrefix sets the query namespace for shared backends.
func WithPrefix(prefix string) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.Prefix = prefix
		return cfg
	}
}

// WithTimeout bounds a single fetch.
func WithTimeout(timeout time.Duration) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.Timeout = timeout
		return cfg
	}
}

// WithRedisClient sets the redis client; required when using DriverRedis.
func WithRedisClient(client redisquery.Client) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.RedisClient = client
		return cfg
	}
}

// WithNATSConn sets the NATS connection; required when using DriverNATS.
func WithNATSConn(conn natsquery.Conn) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.NATSConn = conn
		return cfg
	}
}

// WithDB sets an open database handle for DriverSQL.
func WithDB(db *sql.DB) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.DB = db
		return cfg
	}
}

// WithSQLDSN sets the database/sql driver name and DSN for DriverSQL.
func WithSQLDSN(driverName, dsn string) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.SQLDriverName = driverName
		cfg.SQLDSN = dsn
		return cfg
	}
}

// WithDynamoClient sets the DynamoDB client for DriverDynamo.
func WithDynamoClient(client dynamoquery.DynamoAPI) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.DynamoClient = client
		return cfg
	}
}

// WithDynamoTable sets the DynamoDB table for DriverDynamo.
func WithDynamoTable(table string) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.DynamoTable = table
		return cfg
	}
}

// WithBaseURL sets the base URL for DriverHTTP.
func WithBaseURL(baseURL string) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.BaseURL = baseURL
		return cfg
	}
}

// WithHTTPClient sets the HTTP client for DriverHTTP.
func WithHTTPClient(client *http.Client) SourceOption {
	return func(cfg SourceConfig) SourceConfig {
		cfg.HTTPClient = client
		return cfg
	}
}
