package mocks

import (
	"context"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
)

func (r *DbRepository) ListSchedules(ctx context.Context, exec repositories.Executor, ids ...int64) ([]models.Schedule, error) {
	args := r.Called(ctx, exec, ids)
	return args.Get(0).([]models.Schedule), args.Error(1)
}

func (r *DbRepository) GetScheduleById(ctx context.Context, exec repositories.Executor, id int64) (models.Schedule, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Schedule), args.Error(1)
}

func (r *DbRepository) CreateSchedule(ctx context.Context, exec repositories.Executor, input models.CreateScheduleInput) (int64, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(int64), args.Error(1)
}

func (r *DbRepository) UpdateSchedule(ctx context.Context, exec repositories.Executor, input models.UpdateScheduleInput) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *DbRepository) DeleteSchedule(ctx context.Context, exec repositories.Executor, id int64) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}

func (r *DbRepository) TouchSchedule(ctx context.Context, exec repositories.Executor, id int64) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}

func (r *DbRepository) ListOpenTimes(ctx context.Context, exec repositories.Executor, scheduleIds ...int64) ([]models.OpenTime, error) {
	args := r.Called(ctx, exec, scheduleIds)
	return args.Get(0).([]models.OpenTime), args.Error(1)
}

func (r *DbRepository) GetOpenTimeById(ctx context.Context, exec repositories.Executor, id int64) (models.OpenTime, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.OpenTime), args.Error(1)
}

func (r *DbRepository) CreateOpenTime(ctx context.Context, exec repositories.Executor, input models.CreateOpenTimeInput) (int64, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(int64), args.Error(1)
}

func (r *DbRepository) UpdateOpenTime(ctx context.Context, exec repositories.Executor, input models.UpdateOpenTimeInput) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *DbRepository) DeleteOpenTime(ctx context.Context, exec repositories.Executor, id int64) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}
