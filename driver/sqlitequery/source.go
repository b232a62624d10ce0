package sqlitequery

import (
	"github.com/goforj/lazystore/driver/sqlquery"
	"github.com/goforj/lazystore/lazycore"
	_ "modernc.org/sqlite"
)

// Config configures a SQLite-backed query source.
type Config struct {
	lazycore.BaseConfig
	DSN string
}

// New builds a SQLite-backed lazycore.QuerySource using the cgo-free
// modernc driver. DSN may be a file path or ":memory:".
func New(cfg Config) (lazycore.QuerySource, error) {
	return sqlquery.New(sqlquery.Config{
		BaseConfig: cfg.BaseConfig,
		DriverName: "sqlite",
		DSN:        cfg.DSN,
	})
}
