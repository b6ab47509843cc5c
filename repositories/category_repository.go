package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/dbmodels"
)

func (repo *DbRepository) ListCategories(ctx context.Context, exec Executor, filters models.CategoryFilters) ([]models.Category, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCategoryColumn...).
		From(dbmodels.TABLE_CATEGORIES).
		OrderBy("name", "id")

	if filters.Name != "" {
		query = query.Where(squirrel.Eq{"name": filters.Name})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCategory)
}

func (repo *DbRepository) GetCategoryById(ctx context.Context, exec Executor, id int64) (models.Category, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCategoryColumn...).
			From(dbmodels.TABLE_CATEGORIES).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptCategory,
	)
}

func (repo *DbRepository) CreateCategory(ctx context.Context, exec Executor, input models.CreateCategoryInput) (int64, error) {
	return ExecBuilderReturningId(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CATEGORIES).
			Columns("name").
			Values(input.Name),
	)
}

func (repo *DbRepository) UpdateCategory(ctx context.Context, exec Executor, input models.UpdateCategoryInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CATEGORIES).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP(6)")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}

	return ExecBuilderAffectingRow(ctx, exec, query)
}

func (repo *DbRepository) DeleteCategory(ctx context.Context, exec Executor, id int64) error {
	return ExecBuilderAffectingRow(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_CATEGORIES).
			Where(squirrel.Eq{"id": id}),
	)
}
