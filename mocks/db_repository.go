package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
)

// DbRepository mocks the MySQL repository. Variadic id arguments are recorded as a slice.
type DbRepository struct {
	mock.Mock
}

func (r *DbRepository) Liveness(ctx context.Context, exec repositories.Executor) error {
	args := r.Called(ctx, exec)
	return args.Error(0)
}

func (r *DbRepository) ListCategories(ctx context.Context, exec repositories.Executor, filters models.CategoryFilters) ([]models.Category, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (r *DbRepository) GetCategoryById(ctx context.Context, exec repositories.Executor, id int64) (models.Category, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Category), args.Error(1)
}

func (r *DbRepository) CreateCategory(ctx context.Context, exec repositories.Executor, input models.CreateCategoryInput) (int64, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(int64), args.Error(1)
}

func (r *DbRepository) UpdateCategory(ctx context.Context, exec repositories.Executor, input models.UpdateCategoryInput) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *DbRepository) DeleteCategory(ctx context.Context, exec repositories.Executor, id int64) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}

func (r *DbRepository) ListLocations(ctx context.Context, exec repositories.Executor, filters models.LocationFilters) ([]models.Location, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Location), args.Error(1)
}

func (r *DbRepository) GetLocationById(ctx context.Context, exec repositories.Executor, id int64) (models.Location, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Location), args.Error(1)
}

func (r *DbRepository) CreateLocation(ctx context.Context, exec repositories.Executor, input models.CreateLocationInput) (int64, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(int64), args.Error(1)
}

func (r *DbRepository) UpdateLocation(ctx context.Context, exec repositories.Executor, input models.UpdateLocationInput) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *DbRepository) DeleteLocation(ctx context.Context, exec repositories.Executor, id int64) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}
