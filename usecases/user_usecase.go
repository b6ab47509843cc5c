package usecases

import (
	"context"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/usecases/security"
)

type UserUsecaseRepository interface {
	UserById(ctx context.Context, exec repositories.Executor, userId int64) (models.User, error)
	ListUsers(ctx context.Context, exec repositories.Executor, userIds ...int64) ([]models.User, error)
}

type UserUsecase struct {
	enforceSecurity security.EnforceSecurity
	executorFactory executor_factory.ExecutorFactory
	repository      UserUsecaseRepository
}

// CurrentUser returns the account behind the request credentials.
func (usecase *UserUsecase) CurrentUser(ctx context.Context) (models.User, error) {
	if err := usecase.enforceSecurity.Authenticated(); err != nil {
		return models.User{}, err
	}
	return usecase.repository.UserById(ctx, usecase.executorFactory.NewExecutor(), usecase.enforceSecurity.UserId())
}

func (usecase *UserUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := usecase.enforceSecurity.Superuser(); err != nil {
		return nil, err
	}
	return usecase.repository.ListUsers(ctx, usecase.executorFactory.NewExecutor())
}
