package repositories

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	"github.com/srct/whats-open/models"
)

type ExecutorGetter struct {
	db *sql.DB
}

func NewExecutorGetter(db *sql.DB) ExecutorGetter {
	return ExecutorGetter{db: db}
}

func (g ExecutorGetter) GetExecutor() Executor {
	return g.db
}

func (g ExecutorGetter) Transaction(ctx context.Context, fn func(tx Transaction) error) (err error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "Error starting transaction")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(&MysqlTx{tx: tx}); err != nil {
		_ = tx.Rollback()
		// helper: The callback can return ErrIgnoreRollBackError
		// to explicitly specify that the error should be ignored.
		if errors.Is(err, models.ErrIgnoreRollBackError) {
			return nil
		}
		return errors.Wrap(err, "Error executing transaction")
	}
	return errors.Wrap(tx.Commit(), "Error committing transaction")
}
