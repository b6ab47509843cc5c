package usecases

import (
	"context"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
)

type livenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	livenessRepository livenessRepository
}

func (u *LivenessUsecase) Liveness(ctx context.Context) error {
	return u.livenessRepository.Liveness(ctx, u.executorFactory.NewExecutor())
}

type HealthUsecase struct {
	executorFactory  executor_factory.ExecutorFactory
	healthRepository livenessRepository
}

func (u *HealthUsecase) GetHealthStatus(ctx context.Context) models.HealthStatus {
	err := u.healthRepository.Liveness(ctx, u.executorFactory.NewExecutor())
	return models.HealthStatus{
		Statuses: []models.HealthItemStatus{
			{Name: models.DatabaseHealthItemName, Status: err == nil},
		},
	}
}
