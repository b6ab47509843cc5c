package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/dbmodels"
)

// ListSchedules returns every schedule when no id is given. Open times are not loaded.
func (repo *DbRepository) ListSchedules(ctx context.Context, exec Executor, ids ...int64) ([]models.Schedule, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectScheduleColumn...).
		From(dbmodels.TABLE_SCHEDULES).
		OrderBy("name", "id")

	if len(ids) > 0 {
		query = query.Where(squirrel.Eq{"id": ids})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptSchedule)
}

func (repo *DbRepository) GetScheduleById(ctx context.Context, exec Executor, id int64) (models.Schedule, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectScheduleColumn...).
			From(dbmodels.TABLE_SCHEDULES).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptSchedule,
	)
}

func (repo *DbRepository) CreateSchedule(ctx context.Context, exec Executor, input models.CreateScheduleInput) (int64, error) {
	return ExecBuilderReturningId(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_SCHEDULES).
			Columns("name", "valid_start", "valid_end", "twenty_four_hours").
			Values(input.Name, input.ValidStart, input.ValidEnd, input.TwentyFourHours),
	)
}

func (repo *DbRepository) UpdateSchedule(ctx context.Context, exec Executor, input models.UpdateScheduleInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_SCHEDULES).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP(6)")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.ValidStart != nil {
		query = query.Set("valid_start", *input.ValidStart)
	}
	if input.ValidEnd != nil {
		query = query.Set("valid_end", *input.ValidEnd)
	}
	if input.TwentyFourHours != nil {
		query = query.Set("twenty_four_hours", *input.TwentyFourHours)
	}

	return ExecBuilderAffectingRow(ctx, exec, query)
}

func (repo *DbRepository) DeleteSchedule(ctx context.Context, exec Executor, id int64) error {
	return ExecBuilderAffectingRow(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_SCHEDULES).
			Where(squirrel.Eq{"id": id}),
	)
}

// TouchSchedule bumps updated_at, so that changes to its open times show in Last-Modified.
func (repo *DbRepository) TouchSchedule(ctx context.Context, exec Executor, id int64) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_SCHEDULES).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP(6)")).
			Where(squirrel.Eq{"id": id}),
	)
}
