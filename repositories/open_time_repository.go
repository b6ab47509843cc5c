package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/dbmodels"
)

// ListOpenTimes returns the open times of the given schedules, or all of them when none is given.
func (repo *DbRepository) ListOpenTimes(ctx context.Context, exec Executor, scheduleIds ...int64) ([]models.OpenTime, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectOpenTimeColumn...).
		From(dbmodels.TABLE_OPEN_TIMES).
		OrderBy("schedule_id", "start_day", "start_time", "id")

	if len(scheduleIds) > 0 {
		query = query.Where(squirrel.Eq{"schedule_id": scheduleIds})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptOpenTime)
}

func (repo *DbRepository) GetOpenTimeById(ctx context.Context, exec Executor, id int64) (models.OpenTime, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectOpenTimeColumn...).
			From(dbmodels.TABLE_OPEN_TIMES).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptOpenTime,
	)
}

func (repo *DbRepository) CreateOpenTime(ctx context.Context, exec Executor, input models.CreateOpenTimeInput) (int64, error) {
	return ExecBuilderReturningId(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_OPEN_TIMES).
			Columns("schedule_id", "start_day", "start_time", "end_day", "end_time").
			Values(input.ScheduleId, int(input.StartDay), input.StartTime, int(input.EndDay), input.EndTime),
	)
}

func (repo *DbRepository) UpdateOpenTime(ctx context.Context, exec Executor, input models.UpdateOpenTimeInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_OPEN_TIMES).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP(6)")).
		Where(squirrel.Eq{"id": input.Id})

	if input.StartDay != nil {
		query = query.Set("start_day", int(*input.StartDay))
	}
	if input.StartTime != nil {
		query = query.Set("start_time", *input.StartTime)
	}
	if input.EndDay != nil {
		query = query.Set("end_day", int(*input.EndDay))
	}
	if input.EndTime != nil {
		query = query.Set("end_time", *input.EndTime)
	}

	return ExecBuilderAffectingRow(ctx, exec, query)
}

func (repo *DbRepository) DeleteOpenTime(ctx context.Context, exec Executor, id int64) error {
	return ExecBuilderAffectingRow(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_OPEN_TIMES).
			Where(squirrel.Eq{"id": id}),
	)
}
