package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/srct/whats-open/models"
)

// RowScanner is implemented by *sql.Rows
type RowScanner interface {
	Scan(dest ...any) error
}

func SqlToListOfRow[Model any](ctx context.Context, exec Executor, query squirrel.Sqlizer, adapter func(row RowScanner) (Model, error)) ([]Model, error) {
	models := make([]Model, 0)
	err := ForEachRow(ctx, exec, query, func(row RowScanner) error {
		model, err := adapter(row)
		if err == nil {
			models = append(models, model)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return models, nil
}

func SqlToOptionalRow[Model any](ctx context.Context, exec Executor, s squirrel.Sqlizer, adapter func(row RowScanner) (Model, error)) (*Model, error) {
	models, err := SqlToListOfRow(ctx, exec, s, adapter)
	if err != nil {
		return nil, err
	}

	numberOfResults := len(models)
	if numberOfResults == 0 {
		return nil, nil
	}

	model := models[0]
	if numberOfResults > 1 {
		return nil, errors.New(fmt.Sprintf("except 1 or 0 %v, %d rows in the result", reflect.TypeOf(model), numberOfResults))
	}
	return &model, nil
}

func SqlToRow[Model any](ctx context.Context, exec Executor, s squirrel.Sqlizer, adapter func(row RowScanner) (Model, error)) (Model, error) {
	model, err := SqlToOptionalRow(ctx, exec, s, adapter)
	var zeroModel Model
	if err != nil {
		return zeroModel, err
	}
	if model == nil {
		return zeroModel, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zeroModel))
	}
	return *model, nil
}

func ForEachRow(ctx context.Context, exec Executor, query squirrel.Sqlizer, fn func(row RowScanner) error) error {
	rows, err := queryBuilder(ctx, exec, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return errors.Wrap(rows.Err(), "error iterating over rows")
}

func queryBuilder(ctx context.Context, exec Executor, query squirrel.Sqlizer) (*sql.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}
	rows, err := exec.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("error executing sql query: %s", sql))
	}
	return rows, nil
}
