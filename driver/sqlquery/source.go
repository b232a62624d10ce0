package sqlquery

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/goforj/lazystore/lazycore"
)

const defaultTimeout = 5 * time.Second

// Config configures a SQL-backed query source. Provide either an open
// DB or a DriverName/DSN pair; DB wins when both are set.
type Config struct {
	lazycore.BaseConfig
	DB         *sql.DB
	DriverName string
	DSN        string
}

type source struct {
	db      *sql.DB
	timeout time.Duration
}

// New builds a SQL-backed lazycore.QuerySource. The descriptor's Query
// is a statement expected to yield at most one row; the row's columns
// become the document fields, with Args bound positionally. No rows
// means no data.
func New(cfg Config) (lazycore.QuerySource, error) {
	db := cfg.DB
	if db == nil {
		if cfg.DriverName == "" || cfg.DSN == "" {
			return nil, errors.New("sql query source requires a DB or a driver name and DSN")
		}
		opened, err := sql.Open(cfg.DriverName, cfg.DSN)
		if err != nil {
			return nil, err
		}
		db = opened
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &source{db: db, timeout: timeout}, nil
}

func (s *source) Driver() lazycore.Driver { return lazycore.DriverSQL }

func (s *source) Fetch(ctx context.Context, desc lazycore.Descriptor) (lazycore.Document, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	rows, err := s.db.QueryContext(ctx, desc.Query, desc.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	values := make([]any, len(cols))
	targets := make([]any, len(cols))
	for i := range values {
		targets[i] = &values[i]
	}
	if err := rows.Scan(targets...); err != nil {
		return nil, err
	}
	doc := make(lazycore.Document, len(cols))
	for i, col := range cols {
		doc[col] = normalize(values[i])
	}
	return doc, rows.Err()
}

// normalize maps driver-specific scan results onto document-friendly
// values; text columns arrive as []byte from several drivers.
func normalize(value any) any {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}
