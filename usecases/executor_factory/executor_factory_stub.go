package executor_factory

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
)

// ExecutorFactoryStub hands out executors backed by sqlmock. Usecase tests mock the
// repositories, so no statement ever reaches the handle.
type ExecutorFactoryStub struct {
	Db   *sql.DB
	Mock sqlmock.Sqlmock
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	db, mock, _ := sqlmock.New()
	mock.MatchExpectationsInOrder(false)

	return ExecutorFactoryStub{
		Db:   db,
		Mock: mock,
	}
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return stub.Db
}

type TransactionFactoryStub struct {
	ExecutorFactoryStub
}

func NewTransactionFactoryStub(executorFactory ExecutorFactoryStub) TransactionFactoryStub {
	return TransactionFactoryStub{executorFactory}
}

type transactionStub struct {
	*sql.DB
}

func (transactionStub) RawTx() *sql.Tx {
	return nil
}

// Transaction runs fn against the sqlmock handle without opening a real transaction.
func (stub TransactionFactoryStub) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	err := fn(transactionStub{stub.Db})
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return err
}
