package usecases

import (
	"context"
	"time"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/repositories/clock"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/usecases/security"
)

type AlertUsecaseRepository interface {
	ListAlerts(ctx context.Context, exec repositories.Executor, filters models.AlertFilters, now time.Time) ([]models.Alert, error)
	GetAlertById(ctx context.Context, exec repositories.Executor, id int64) (models.Alert, error)
	CreateAlert(ctx context.Context, exec repositories.Executor, input models.CreateAlertInput) (int64, error)
	UpdateAlert(ctx context.Context, exec repositories.Executor, input models.UpdateAlertInput) error
	DeleteAlert(ctx context.Context, exec repositories.Executor, id int64) error
}

type AlertUsecase struct {
	enforceSecurity    security.EnforceSecurityDirectory
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         AlertUsecaseRepository
	clock              clock.Clock
}

// ListAlerts returns the alerts active right now, or every alert when filters.All is set.
func (usecase *AlertUsecase) ListAlerts(ctx context.Context, filters models.AlertFilters) ([]models.Alert, error) {
	return usecase.repository.ListAlerts(ctx, usecase.executorFactory.NewExecutor(), filters, usecase.clock.Now())
}

func (usecase *AlertUsecase) GetAlert(ctx context.Context, id int64) (models.Alert, error) {
	return usecase.repository.GetAlertById(ctx, usecase.executorFactory.NewExecutor(), id)
}

func (usecase *AlertUsecase) CreateAlert(ctx context.Context, input models.CreateAlertInput) (models.Alert, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.Alert{}, err
	}
	if err := input.Validate(); err != nil {
		return models.Alert{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Alert, error) {
		id, err := usecase.repository.CreateAlert(ctx, tx, input)
		if err != nil {
			return models.Alert{}, err
		}
		return usecase.repository.GetAlertById(ctx, tx, id)
	})
}

func (usecase *AlertUsecase) UpdateAlert(ctx context.Context, input models.UpdateAlertInput) (models.Alert, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.Alert{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Alert, error) {
		current, err := usecase.repository.GetAlertById(ctx, tx, input.Id)
		if err != nil {
			return models.Alert{}, err
		}
		if err := input.ValidateAgainst(current); err != nil {
			return models.Alert{}, err
		}
		if err := usecase.repository.UpdateAlert(ctx, tx, input); err != nil {
			return models.Alert{}, err
		}
		return usecase.repository.GetAlertById(ctx, tx, input.Id)
	})
}

func (usecase *AlertUsecase) DeleteAlert(ctx context.Context, id int64) error {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return err
	}
	return usecase.repository.DeleteAlert(ctx, usecase.executorFactory.NewExecutor(), id)
}
