package usecases

import (
	"context"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/usecases/security"
)

type LocationUsecaseRepository interface {
	ListLocations(ctx context.Context, exec repositories.Executor, filters models.LocationFilters) ([]models.Location, error)
	GetLocationById(ctx context.Context, exec repositories.Executor, id int64) (models.Location, error)
	CreateLocation(ctx context.Context, exec repositories.Executor, input models.CreateLocationInput) (int64, error)
	UpdateLocation(ctx context.Context, exec repositories.Executor, input models.UpdateLocationInput) error
	DeleteLocation(ctx context.Context, exec repositories.Executor, id int64) error
}

type LocationUsecase struct {
	enforceSecurity    security.EnforceSecurityDirectory
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         LocationUsecaseRepository
	exportCache        exportCache
}

func (usecase *LocationUsecase) ListLocations(ctx context.Context, filters models.LocationFilters) ([]models.Location, error) {
	return usecase.repository.ListLocations(ctx, usecase.executorFactory.NewExecutor(), filters)
}

func (usecase *LocationUsecase) GetLocation(ctx context.Context, id int64) (models.Location, error) {
	return usecase.repository.GetLocationById(ctx, usecase.executorFactory.NewExecutor(), id)
}

func (usecase *LocationUsecase) CreateLocation(ctx context.Context, input models.CreateLocationInput) (models.Location, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.Location{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Location, error) {
		id, err := usecase.repository.CreateLocation(ctx, tx, input)
		if err != nil {
			return models.Location{}, err
		}
		return usecase.repository.GetLocationById(ctx, tx, id)
	})
}

func (usecase *LocationUsecase) UpdateLocation(ctx context.Context, input models.UpdateLocationInput) (models.Location, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.Location{}, err
	}

	location, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Location, error) {
		if err := usecase.repository.UpdateLocation(ctx, tx, input); err != nil {
			return models.Location{}, err
		}
		return usecase.repository.GetLocationById(ctx, tx, input.Id)
	})
	if err != nil {
		return models.Location{}, err
	}

	usecase.exportCache.Purge()
	return location, nil
}

func (usecase *LocationUsecase) DeleteLocation(ctx context.Context, id int64) error {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return err
	}

	if err := usecase.repository.DeleteLocation(ctx, usecase.executorFactory.NewExecutor(), id); err != nil {
		return err
	}
	usecase.exportCache.Purge()
	return nil
}
