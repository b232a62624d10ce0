package mysqlquery

import (
	_ "github.com/go-sql-driver/mysql"
	"github.com/goforj/lazystore/driver/sqlquery"
	"github.com/goforj/lazystore/lazycore"
)

// Config configures a MySQL-backed query source.
type Config struct {
	lazycore.BaseConfig
	DSN string
}

// New builds a MySQL-backed lazycore.QuerySource.
func New(cfg Config) (lazycore.QuerySource, error) {
	return sqlquery.New(sqlquery.Config{
		BaseConfig: cfg.BaseConfig,
		DriverName: "mysql",
		DSN:        cfg.DSN,
	})
}
