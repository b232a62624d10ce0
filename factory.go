package lazystore

import (
	"context"
	"database/sql"

	"github.com/goforj/lazystore/driver/dynamoquery"
	"github.com/goforj/lazystore/driver/httpquery"
	"github.com/goforj/lazystore/driver/natsquery"
	"github.com/goforj/lazystore/driver/redisquery"
	"github.com/goforj/lazystore/driver/sqlquery"
	"github.com/goforj/lazystore/lazycore"
)

// NewQuerySource returns a concrete query source for the requested
// driver. Construction never fails outright: when a driver cannot be
// built, the returned source preserves the driver identity and
// surfaces the construction error on every fetch.
func NewQuerySource(ctx context.Context, cfg SourceConfig) lazycore.QuerySource {
	cfg = cfg.withDefaults()
	switch cfg.Driver {
	case lazycore.DriverRedis:
		return redisquery.New(redisquery.Config{
			BaseConfig: cfg.base(),
			Client:     cfg.RedisClient,
		})
	case lazycore.DriverNATS:
		return natsquery.New(natsquery.Config{
			BaseConfig: cfg.base(),
			Conn:       cfg.NATSConn,
		})
	case lazycore.DriverSQL:
		source, err := sqlquery.New(sqlquery.Config{
			BaseConfig: cfg.base(),
			DB:         cfg.DB,
			DriverName: cfg.SQLDriverName,
			DSN:        cfg.SQLDSN,
		})
		if err != nil {
			return newErrorSource(lazycore.DriverSQL, err)
		}
		return source
	case lazycore.DriverDynamo:
		source, err := dynamoquery.New(ctx, dynamoquery.Config{
			BaseConfig: cfg.base(),
			Client:     cfg.DynamoClient,
			Region:     cfg.DynamoRegion,
			Endpoint:   cfg.DynamoEndpoint,
			Table:      cfg.DynamoTable,
		})
		if err != nil {
			return newErrorSource(lazycore.DriverDynamo, err)
		}
		return source
	case lazycore.DriverHTTP:
		return httpquery.New(httpquery.Config{
			BaseConfig: cfg.base(),
			BaseURL:    cfg.BaseURL,
			Client:     cfg.HTTPClient,
		})
	default:
		return newNullSource()
	}
}

// NewQuerySourceWith builds a query source using a driver and a set of
// functional options.
func NewQuerySourceWith(ctx context.Context, driver lazycore.Driver, opts ...SourceOption) lazycore.QuerySource {
	cfg := SourceConfig{Driver: driver}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return NewQuerySource(ctx, cfg)
}

// NewRedisQuerySource is a convenience for a redis-backed source.
func NewRedisQuerySource(ctx context.Context, client redisquery.Client, opts ...SourceOption) lazycore.QuerySource {
	return NewQuerySourceWith(ctx, lazycore.DriverRedis, append([]SourceOption{WithRedisClient(client)}, opts...)...)
}

// NewNATSQuerySource is a convenience for a NATS request/reply source.
func NewNATSQuerySource(ctx context.Context, conn natsquery.Conn, opts ...SourceOption) lazycore.QuerySource {
	return NewQuerySourceWith(ctx, lazycore.DriverNATS, append([]SourceOption{WithNATSConn(conn)}, opts...)...)
}

// NewSQLQuerySource is a convenience for a SQL-backed source over an
// open database handle.
func NewSQLQuerySource(ctx context.Context, db *sql.DB, opts ...SourceOption) lazycore.QuerySource {
	return NewQuerySourceWith(ctx, lazycore.DriverSQL, append([]SourceOption{WithDB(db)}, opts...)...)
}

// NewHTTPQuerySource is a convenience for an HTTP GET source.
func NewHTTPQuerySource(ctx context.Context, baseURL string, opts ...SourceOption) lazycore.QuerySource {
	return NewQuerySourceWith(ctx, lazycore.DriverHTTP, append([]SourceOption{WithBaseURL(baseURL)}, opts...)...)
}
