package usecases

import (
	"context"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/usecases/security"
)

type OpenTimeUsecaseRepository interface {
	ListOpenTimes(ctx context.Context, exec repositories.Executor, scheduleIds ...int64) ([]models.OpenTime, error)
	GetOpenTimeById(ctx context.Context, exec repositories.Executor, id int64) (models.OpenTime, error)
	CreateOpenTime(ctx context.Context, exec repositories.Executor, input models.CreateOpenTimeInput) (int64, error)
	UpdateOpenTime(ctx context.Context, exec repositories.Executor, input models.UpdateOpenTimeInput) error
	DeleteOpenTime(ctx context.Context, exec repositories.Executor, id int64) error
	TouchSchedule(ctx context.Context, exec repositories.Executor, id int64) error
}

// OpenTimeUsecase bumps the updated_at of the parent schedule on every write, which feeds
// the Last-Modified of the schedule export.
type OpenTimeUsecase struct {
	enforceSecurity    security.EnforceSecurityDirectory
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         OpenTimeUsecaseRepository
	exportCache        exportCache
}

func (usecase *OpenTimeUsecase) ListOpenTimes(ctx context.Context, filters models.OpenTimeFilters) ([]models.OpenTime, error) {
	var scheduleIds []int64
	if filters.ScheduleId != 0 {
		scheduleIds = append(scheduleIds, filters.ScheduleId)
	}
	return usecase.repository.ListOpenTimes(ctx, usecase.executorFactory.NewExecutor(), scheduleIds...)
}

func (usecase *OpenTimeUsecase) GetOpenTime(ctx context.Context, id int64) (models.OpenTime, error) {
	return usecase.repository.GetOpenTimeById(ctx, usecase.executorFactory.NewExecutor(), id)
}

func (usecase *OpenTimeUsecase) CreateOpenTime(ctx context.Context, input models.CreateOpenTimeInput) (models.OpenTime, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.OpenTime{}, err
	}
	if err := input.Validate(); err != nil {
		return models.OpenTime{}, err
	}

	openTime, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.OpenTime, error) {
		id, err := usecase.repository.CreateOpenTime(ctx, tx, input)
		if err != nil {
			return models.OpenTime{}, err
		}
		if err := usecase.repository.TouchSchedule(ctx, tx, input.ScheduleId); err != nil {
			return models.OpenTime{}, err
		}
		return usecase.repository.GetOpenTimeById(ctx, tx, id)
	})
	if err != nil {
		return models.OpenTime{}, err
	}

	usecase.exportCache.Purge()
	return openTime, nil
}

func (usecase *OpenTimeUsecase) UpdateOpenTime(ctx context.Context, input models.UpdateOpenTimeInput) (models.OpenTime, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.OpenTime{}, err
	}
	if err := input.Validate(); err != nil {
		return models.OpenTime{}, err
	}

	openTime, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.OpenTime, error) {
		if err := usecase.repository.UpdateOpenTime(ctx, tx, input); err != nil {
			return models.OpenTime{}, err
		}
		updated, err := usecase.repository.GetOpenTimeById(ctx, tx, input.Id)
		if err != nil {
			return models.OpenTime{}, err
		}
		if err := usecase.repository.TouchSchedule(ctx, tx, updated.ScheduleId); err != nil {
			return models.OpenTime{}, err
		}
		return updated, nil
	})
	if err != nil {
		return models.OpenTime{}, err
	}

	usecase.exportCache.Purge()
	return openTime, nil
}

func (usecase *OpenTimeUsecase) DeleteOpenTime(ctx context.Context, id int64) error {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return err
	}

	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		openTime, err := usecase.repository.GetOpenTimeById(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := usecase.repository.DeleteOpenTime(ctx, tx, id); err != nil {
			return err
		}
		return usecase.repository.TouchSchedule(ctx, tx, openTime.ScheduleId)
	})
	if err != nil {
		return err
	}

	usecase.exportCache.Purge()
	return nil
}
