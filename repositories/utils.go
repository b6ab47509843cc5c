package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
)

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func ExecBuilder(ctx context.Context, exec Executor, builder squirrel.Sqlizer) error {
	_, err := execBuilder(ctx, exec, builder)
	return err
}

// ExecBuilderReturningId runs an insert and returns the AUTO_INCREMENT id it generated.
func ExecBuilderReturningId(ctx context.Context, exec Executor, builder squirrel.Sqlizer) (int64, error) {
	result, err := execBuilder(ctx, exec, builder)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return id, errors.Wrap(err, "can't read inserted id")
}

// ExecBuilderAffectingRow fails with a NotFoundError when the statement touched nothing.
func ExecBuilderAffectingRow(ctx context.Context, exec Executor, builder squirrel.Sqlizer) error {
	result, err := execBuilder(ctx, exec, builder)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "can't read affected rows")
	}
	if affected == 0 {
		return errors.Wrap(models.NotFoundError, "no row matched the statement")
	}
	return nil
}

func execBuilder(ctx context.Context, exec Executor, builder squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}
	result, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(adaptMysqlError(err), fmt.Sprintf("error executing sql query: %s", query))
	}
	return result, nil
}

func columnsNames(tablename string, fields []string) []string {
	return pure_utils.Map(fields, func(f string) string {
		return fmt.Sprintf("%s.%s", tablename, f)
	})
}
