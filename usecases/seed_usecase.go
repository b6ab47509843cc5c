package usecases

import (
	"context"

	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/utils"
)

type seedUserRepository interface {
	EnsureSuperuser(ctx context.Context, exec repositories.Executor, username, email string) error
}

type SeedUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	userRepository  seedUserRepository
	emailDomain     string
}

// SeedSuperuser makes sure the named CAS user exists and is a superuser. It is a no-op
// without a username.
func (usecase *SeedUsecase) SeedSuperuser(ctx context.Context, username string) error {
	if username == "" {
		return nil
	}
	err := usecase.userRepository.EnsureSuperuser(
		ctx,
		usecase.executorFactory.NewExecutor(),
		username,
		username+"@"+usecase.emailDomain,
	)
	if err != nil {
		return err
	}
	utils.LoggerFromContext(ctx).InfoContext(ctx, "superuser seeded", "username", username)
	return nil
}
