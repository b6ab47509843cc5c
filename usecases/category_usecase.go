package usecases

import (
	"context"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/usecases/security"
)

type CategoryUsecaseRepository interface {
	ListCategories(ctx context.Context, exec repositories.Executor, filters models.CategoryFilters) ([]models.Category, error)
	GetCategoryById(ctx context.Context, exec repositories.Executor, id int64) (models.Category, error)
	CreateCategory(ctx context.Context, exec repositories.Executor, input models.CreateCategoryInput) (int64, error)
	UpdateCategory(ctx context.Context, exec repositories.Executor, input models.UpdateCategoryInput) error
	DeleteCategory(ctx context.Context, exec repositories.Executor, id int64) error
}

// exportCache is emptied by every write that can change the legacy schedule export.
type exportCache interface {
	Purge()
}

type CategoryUsecase struct {
	enforceSecurity    security.EnforceSecurityDirectory
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         CategoryUsecaseRepository
	exportCache        exportCache
}

func (usecase *CategoryUsecase) ListCategories(ctx context.Context, filters models.CategoryFilters) ([]models.Category, error) {
	return usecase.repository.ListCategories(ctx, usecase.executorFactory.NewExecutor(), filters)
}

func (usecase *CategoryUsecase) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return usecase.repository.GetCategoryById(ctx, usecase.executorFactory.NewExecutor(), id)
}

func (usecase *CategoryUsecase) CreateCategory(ctx context.Context, input models.CreateCategoryInput) (models.Category, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.Category{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Category, error) {
		id, err := usecase.repository.CreateCategory(ctx, tx, input)
		if err != nil {
			return models.Category{}, err
		}
		return usecase.repository.GetCategoryById(ctx, tx, id)
	})
}

func (usecase *CategoryUsecase) UpdateCategory(ctx context.Context, input models.UpdateCategoryInput) (models.Category, error) {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return models.Category{}, err
	}

	category, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (models.Category, error) {
		if err := usecase.repository.UpdateCategory(ctx, tx, input); err != nil {
			return models.Category{}, err
		}
		return usecase.repository.GetCategoryById(ctx, tx, input.Id)
	})
	if err != nil {
		return models.Category{}, err
	}

	usecase.exportCache.Purge()
	return category, nil
}

func (usecase *CategoryUsecase) DeleteCategory(ctx context.Context, id int64) error {
	if err := usecase.enforceSecurity.WriteDirectory(); err != nil {
		return err
	}

	if err := usecase.repository.DeleteCategory(ctx, usecase.executorFactory.NewExecutor(), id); err != nil {
		return err
	}
	usecase.exportCache.Purge()
	return nil
}
