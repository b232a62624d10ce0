package postgresquery

import (
	"github.com/goforj/lazystore/driver/sqlquery"
	"github.com/goforj/lazystore/lazycore"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Config configures a postgres-backed query source.
type Config struct {
	lazycore.BaseConfig
	DSN string
}

// New builds a postgres-backed lazycore.QuerySource using the pgx
// stdlib driver.
func New(cfg Config) (lazycore.QuerySource, error) {
	return sqlquery.New(sqlquery.Config{
		BaseConfig: cfg.BaseConfig,
		DriverName: "pgx",
		DSN:        cfg.DSN,
	})
}
