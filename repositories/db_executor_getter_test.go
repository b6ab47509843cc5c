package repositories

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/srct/whats-open/models"
)

func TestTransaction_RollbackOnError(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := NewExecutorGetter(db).Transaction(ctx, func(tx Transaction) error {
		return errors.New("boom")
	})
	assert.ErrorContains(t, err, "boom")
}

func TestTransaction_IgnoreRollbackError(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := NewExecutorGetter(db).Transaction(ctx, func(tx Transaction) error {
		return models.ErrIgnoreRollBackError
	})
	assert.NoError(t, err)
}

func TestTransaction_Commit(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := NewExecutorGetter(db).Transaction(ctx, func(tx Transaction) error {
		assert.NotNil(t, tx.RawTx())
		return nil
	})
	assert.NoError(t, err)
}
