package usecases

import (
	"context"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/usecases/security"
)

type ScheduleUsecaseRepository interface {
	ListSchedules(ctx context.Context, exec repositories.Executor, ids ...int64) ([]models.Schedule, error)
	GetScheduleById(ctx context.Context, exec repositories.Executor, id int64) (models.Schedule, error)
	CreateSchedule(ctx context.Context, exec repositories.Executor, input models.CreateScheduleInput) (int64, error)
	UpdateSchedule(ctx context.Context, exec repositories.Executor, input models.UpdateScheduleInput) error
	DeleteSchedule(ctx context.Context, exec repositories.Executor, id int64) error
	ListOpenTimes(ctx context.Context, exec repositories.Executor, scheduleIds ...int64) ([]models.OpenTime, error)
}

type ScheduleUsecase struct {
	enforceSecurity    security.EnforceSecurityDirectory
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ScheduleUsecaseRepository
	exportCache        exportCache
}

func (usecase *ScheduleUsecase) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	exec := usecase.executorFactory.NewExecutor()
	schedules, err := usecase.repository.ListSchedules(ctx, exec)
	if err != nil {
		return nil, err
	}
	openTimes, err := usecase.repository.ListOpenTimes(ctx, exec)
	if err != nil {
		return nil, err
	}
	return attachOpenTimes(schedules, openTimes), nil
}

func (usecase *ScheduleUsecase) GetSchedule(ctx context.Context, id int64) (models.Schedule, error) {
	return usecase.getSchedule(ctx, usecase.executorFactory.NewExecutor(), id)
}

func (usecase *ScheduleUsecase) getSchedule(ctx context.Context, exec repositories.Executor, id int64) (models.Schedule, error) {
	schedule, err := usecase.repository.GetScheduleById(ctx, exec, id)
	if err != nil {
		return models.Schedule{}, err
	}
	openTimes, err := usecase.repository.ListOpenTimes(ctx, exec, id)
	if err != nil {
		return models.Schedule{}, err
	}
	schedule.OpenTimes = openTimes
	return schedule, nil
}

func (usecase *ScheduleUsecase) CreateSchedule(ctx context.Context, input models.CreateScheduleInput) (models.Schedule, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.Schedule{}, err
	}
	if err := input.Validate(); err != nil {
		return models.Schedule{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Schedule, error) {
		id, err := usecase.repository.CreateSchedule(ctx, tx, input)
		if err != nil {
			return models.Schedule{}, err
		}
		return usecase.getSchedule(ctx, tx, id)
	})
}

func (usecase *ScheduleUsecase) UpdateSchedule(ctx context.Context, input models.UpdateScheduleInput) (models.Schedule, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.Schedule{}, err
	}

	schedule, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Schedule, error) {
		current, err := usecase.repository.GetScheduleById(ctx, tx, input.Id)
		if err != nil {
			return models.Schedule{}, err
		}
		if err := input.ValidateAgainst(current); err != nil {
			return models.Schedule{}, err
		}
		if err := usecase.repository.UpdateSchedule(ctx, tx, input); err != nil {
			return models.Schedule{}, err
		}
		return usecase.getSchedule(ctx, tx, input.Id)
	})
	if err != nil {
		return models.Schedule{}, err
	}

	usecase.exportCache.Purge()
	return schedule, nil
}

func (usecase *ScheduleUsecase) DeleteSchedule(ctx context.Context, id int64) error {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return err
	}

	if err := usecase.repository.DeleteSchedule(ctx, usecase.executorFactory.NewExecutor(), id); err != nil {
		return err
	}
	usecase.exportCache.Purge()
	return nil
}

// attachOpenTimes sets on each schedule the open times that belong to it, keeping the
// order in which they were listed.
func attachOpenTimes(schedules []models.Schedule, openTimes []models.OpenTime) []models.Schedule {
	bySchedule := pure_utils.GroupBy(openTimes, func(ot models.OpenTime) int64 { return ot.ScheduleId })
	for i := range schedules {
		schedules[i].OpenTimes = bySchedule[schedules[i].Id]
	}
	return schedules
}
