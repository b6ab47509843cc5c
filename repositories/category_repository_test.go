package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/VividCortex/mysqlerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
)

var categoryColumns = []string{"id", "name", "created_at", "updated_at"}

func TestListCategories(t *testing.T) {
	db, mock := newMockDb(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`^SELECT id, name, created_at, updated_at FROM categories WHERE name = \? ORDER BY name, id$`).
		WithArgs("Dining").
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(int64(1), "Dining", now, now))

	categories, err := NewDbRepository().ListCategories(ctx, db, models.CategoryFilters{Name: "Dining"})
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{Id: 1, Name: "Dining", CreatedAt: now, UpdatedAt: now}}, categories)
}

func TestGetCategoryById_NotFound(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectQuery(`^SELECT id, name, created_at, updated_at FROM categories WHERE id = \?$`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(categoryColumns))

	_, err := NewDbRepository().GetCategoryById(ctx, db, 42)
	assert.ErrorIs(t, err, models.NotFoundError)
}

func TestCreateCategory(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectExec(`^INSERT INTO categories \(name\) VALUES \(\?\)$`).
		WithArgs("Shops").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := NewDbRepository().CreateCategory(ctx, db, models.CreateCategoryInput{Name: "Shops"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectExec(`^INSERT INTO categories`).
		WillReturnError(&mysql.MySQLError{Number: mysqlerr.ER_DUP_ENTRY, Message: "Duplicate entry 'Shops'"})

	_, err := NewDbRepository().CreateCategory(ctx, db, models.CreateCategoryInput{Name: "Shops"})
	assert.ErrorIs(t, err, models.ConflictError)
}

func TestUpdateCategory(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectExec(`^UPDATE categories SET updated_at = CURRENT_TIMESTAMP\(6\), name = \? WHERE id = \?$`).
		WithArgs("Food", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewDbRepository().UpdateCategory(ctx, db, models.UpdateCategoryInput{Id: 3, Name: pure_utils.Ptr("Food")})
	assert.NoError(t, err)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectExec(`^DELETE FROM categories WHERE id = \?$`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewDbRepository().DeleteCategory(ctx, db, 3)
	assert.ErrorIs(t, err, models.NotFoundError)
}

func TestDeleteCategory_Referenced(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectExec(`^DELETE FROM categories WHERE id = \?$`).
		WithArgs(3).
		WillReturnError(&mysql.MySQLError{Number: mysqlerr.ER_ROW_IS_REFERENCED_2, Message: "a foreign key constraint fails"})

	err := NewDbRepository().DeleteCategory(ctx, db, 3)
	assert.ErrorIs(t, err, models.BadParameterError)
}
