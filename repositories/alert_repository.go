package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/dbmodels"
)

// ListAlerts returns the alerts active at now, or every alert with filters.All.
func (repo *DbRepository) ListAlerts(ctx context.Context, exec Executor, filters models.AlertFilters, now time.Time) ([]models.Alert, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAlertColumn...).
		From(dbmodels.TABLE_ALERTS).
		OrderBy("start_datetime DESC", "id DESC")

	if !filters.All {
		query = query.
			Where(squirrel.Lt{"start_datetime": now}).
			Where(squirrel.Gt{"end_datetime": now})
	}
	if filters.UrgencyTag != "" {
		query = query.Where(squirrel.Eq{"urgency_tag": filters.UrgencyTag})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAlert)
}

func (repo *DbRepository) GetAlertById(ctx context.Context, exec Executor, id int64) (models.Alert, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAlertColumn...).
			From(dbmodels.TABLE_ALERTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptAlert,
	)
}

func (repo *DbRepository) CreateAlert(ctx context.Context, exec Executor, input models.CreateAlertInput) (int64, error) {
	return ExecBuilderReturningId(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_ALERTS).
			Columns("urgency_tag", "subject", "body", "url", "start_datetime", "end_datetime").
			Values(input.UrgencyTag, input.Subject, input.Body, input.Url, input.StartDatetime, input.EndDatetime),
	)
}

func (repo *DbRepository) UpdateAlert(ctx context.Context, exec Executor, input models.UpdateAlertInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_ALERTS).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP(6)")).
		Where(squirrel.Eq{"id": input.Id})

	if input.UrgencyTag != nil {
		query = query.Set("urgency_tag", *input.UrgencyTag)
	}
	if input.Subject != nil {
		query = query.Set("subject", *input.Subject)
	}
	if input.Body != nil {
		query = query.Set("body", *input.Body)
	}
	if input.Url != nil {
		query = query.Set("url", *input.Url)
	}
	if input.StartDatetime != nil {
		query = query.Set("start_datetime", *input.StartDatetime)
	}
	if input.EndDatetime != nil {
		query = query.Set("end_datetime", *input.EndDatetime)
	}

	return ExecBuilderAffectingRow(ctx, exec, query)
}

func (repo *DbRepository) DeleteAlert(ctx context.Context, exec Executor, id int64) error {
	return ExecBuilderAffectingRow(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_ALERTS).
			Where(squirrel.Eq{"id": id}),
	)
}
