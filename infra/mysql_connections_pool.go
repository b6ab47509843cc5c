package infra

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/VividCortex/mysqlerr"
	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/go-sql-driver/mysql"
)

const (
	MAX_CONNECTIONS      = 25
	CONN_MAX_LIFETIME    = 5 * time.Minute
	databaseWaitAttempts = 30
)

func NewMysqlConnectionPool(config MysqlConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	maxConns := config.MaxOpenConnections
	if maxConns <= 0 {
		maxConns = MAX_CONNECTIONS
	}
	lifetime := config.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = CONN_MAX_LIFETIME
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxLifetime(lifetime)
	return db, nil
}

// WaitForDatabase pings the database until it answers. The db container accepts
// connections a few seconds after the api container starts.
func WaitForDatabase(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(databaseWaitAttempts),
		retry.Delay(500*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransientConnectionError),
		retry.OnRetry(func(n uint, err error) {
			logger.InfoContext(ctx, "database not ready yet", "attempt", n+1, "error", err.Error())
		}),
	)
	return errors.Wrap(err, "database is not reachable")
}

// Access denied or unknown database will not fix themselves by waiting.
func isTransientConnectionError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlerr.ER_DBACCESS_DENIED_ERROR, mysqlerr.ER_ACCESS_DENIED_ERROR, mysqlerr.ER_BAD_DB_ERROR:
			return false
		}
	}
	return true
}
