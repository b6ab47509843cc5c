package mocks

import (
	"context"
	"time"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
)

func (r *DbRepository) ListAlerts(ctx context.Context, exec repositories.Executor, filters models.AlertFilters, now time.Time) ([]models.Alert, error) {
	args := r.Called(ctx, exec, filters, now)
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (r *DbRepository) GetAlertById(ctx context.Context, exec repositories.Executor, id int64) (models.Alert, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Alert), args.Error(1)
}

func (r *DbRepository) CreateAlert(ctx context.Context, exec repositories.Executor, input models.CreateAlertInput) (int64, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(int64), args.Error(1)
}

func (r *DbRepository) UpdateAlert(ctx context.Context, exec repositories.Executor, input models.UpdateAlertInput) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *DbRepository) DeleteAlert(ctx context.Context, exec repositories.Executor, id int64) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}
