package repositories

import (
	"github.com/VividCortex/mysqlerr"
	"github.com/cockroachdb/errors"
	"github.com/go-sql-driver/mysql"

	"github.com/srct/whats-open/models"
)

func IsUniqueViolationError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlerr.ER_DUP_ENTRY
}

func IsForeignKeyViolationError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) &&
		(mysqlErr.Number == mysqlerr.ER_ROW_IS_REFERENCED_2 || mysqlErr.Number == mysqlerr.ER_NO_REFERENCED_ROW_2)
}

// adaptMysqlError tags constraint violations with the matching sentinel error.
func adaptMysqlError(err error) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolationError(err):
		// e.g. "Error 1062: Duplicate entry 'southside' for key 'facilities_slug_key'"
		return errors.Join(models.ConflictError, err)
	case IsForeignKeyViolationError(err):
		// e.g. "Error 1452: Cannot add or update a child row: a foreign key constraint fails"
		return errors.Join(models.BadParameterError, err)
	}
	return err
}
