package mocks

import (
	"context"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
)

func (r *DbRepository) UserByUsername(ctx context.Context, exec repositories.Executor, username string) (models.User, error) {
	args := r.Called(ctx, exec, username)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *DbRepository) UpsertUser(ctx context.Context, exec repositories.Executor, attributes models.UpsertUserAttributes) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *DbRepository) EnsureSuperuser(ctx context.Context, exec repositories.Executor, username, email string) error {
	args := r.Called(ctx, exec, username, email)
	return args.Error(0)
}

func (r *DbRepository) UserById(ctx context.Context, exec repositories.Executor, userId int64) (models.User, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *DbRepository) ListUsers(ctx context.Context, exec repositories.Executor, userIds ...int64) ([]models.User, error) {
	args := r.Called(ctx, exec, userIds)
	return args.Get(0).([]models.User), args.Error(1)
}
