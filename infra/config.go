package infra

import (
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

type MysqlConfig struct {
	Host               string
	Port               string
	Database           string
	User               string
	Password           string
	MaxOpenConnections int
	ConnMaxLifetime    time.Duration
}

// DSN builds the driver connection string. Times are stored and parsed as UTC, and
// ClientFoundRows makes UPDATE report matched rows, so that a no-op update of an existing
// row is not mistaken for a missing one.
func (config MysqlConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = config.User
	cfg.Passwd = config.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(config.Host, config.Port)
	cfg.DBName = config.Database
	cfg.Collation = "utf8mb4_unicode_ci"
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}

type SentryConfig struct {
	Dsn         string
	Environment string
	Release     string
}
