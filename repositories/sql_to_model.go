package repositories

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/srct/whats-open/models"
)

// executes the sql query with the given executor and returns a list of models using the provided adapter.
// Rows are mapped onto DBModel through its `db` struct tags.
func SqlToListOfModels[DBModel, Model any](ctx context.Context, exec Executor, query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error)) ([]Model, error) {
	rows, err := queryBuilder(ctx, exec, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dbModels []DBModel
	if err := sqlx.StructScan(rows, &dbModels); err != nil {
		var zeroDbModel DBModel
		return nil, errors.Wrap(err, fmt.Sprintf("error scanning row to struct %T", zeroDbModel))
	}

	result := make([]Model, 0, len(dbModels))
	for _, dbModel := range dbModels {
		model, err := adapter(dbModel)
		if err != nil {
			return nil, err
		}
		result = append(result, model)
	}
	return result, nil
}

// executes the sql query with the given executor and returns a models using the provided adapter
// If no result is returned by the query, returns nil
func SqlToOptionalModel[DBModel, Model any](ctx context.Context, exec Executor, s squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error)) (*Model, error) {
	modelslist, err := SqlToListOfModels(ctx, exec, s, adapter)
	if err != nil {
		return nil, err
	}

	numberOfResults := len(modelslist)
	if numberOfResults == 0 {
		return nil, nil
	}
	model := modelslist[0]
	if numberOfResults > 1 {
		return nil, errors.New(fmt.Sprintf("except 1 or 0 %v, %d rows in the result", reflect.TypeOf(model), numberOfResults))
	}
	return &model, nil
}

// executes the sql query with the given executor and returns a models using the provided adapter
// if no result is returned by the query, returns a NotFoundError
func SqlToModel[DBModel, Model any](ctx context.Context, exec Executor, s squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error)) (Model, error) {
	model, err := SqlToOptionalModel(ctx, exec, s, adapter)
	var zeroModel Model
	if err != nil {
		return zeroModel, err
	}
	if model == nil {
		return zeroModel, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zeroModel))
	}
	return *model, nil
}
