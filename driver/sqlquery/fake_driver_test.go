package sqlquery

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
)

// docDriver is a fake database/sql driver that serves a single token
// row for unit tests.
type docDriver struct{}

func (d *docDriver) Open(string) (driver.Conn, error) { return &docConn{}, nil }

type docConn struct{}

func (c *docConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not impl") }
func (c *docConn) Close() error                        { return nil }
func (c *docConn) Begin() (driver.Tx, error)           { return nil, errors.New("not impl") }

func (c *docConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	if strings.Contains(query, "failing") {
		return nil, errors.New("query boom")
	}
	if strings.Contains(query, "missing") {
		return &docRows{}, nil
	}
	return &docRows{rows: [][]driver.Value{{[]byte("abc"), int64(3600)}}}, nil
}

type docRows struct {
	rows [][]driver.Value
	idx  int
}

func (r *docRows) Columns() []string { return []string{"token", "expires"} }
func (r *docRows) Close() error      { return nil }

func (r *docRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}

func init() {
	sql.Register("docfake", &docDriver{})
}
