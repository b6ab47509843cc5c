package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/dbmodels"
)

func (repo *DbRepository) UserById(ctx context.Context, exec Executor, userId int64) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.UserFields...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUser,
	)
}

func (repo *DbRepository) UserByUsername(ctx context.Context, exec Executor, username string) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.UserFields...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"username": username}),
		dbmodels.AdaptUser,
	)
}

func (repo *DbRepository) ListUsers(ctx context.Context, exec Executor, userIds ...int64) ([]models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.UserFields...).
		From(dbmodels.TABLE_USERS).
		OrderBy("username")
	if len(userIds) > 0 {
		query = query.Where(squirrel.Eq{"id": userIds})
	}
	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUser)
}

// UpsertUser records a CAS login: the user is created on first sight, its email and
// last_login refreshed afterwards.
func (repo *DbRepository) UpsertUser(ctx context.Context, exec Executor, attributes models.UpsertUserAttributes) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_USERS).
			Columns("username", "email", "last_login").
			Values(attributes.Username, attributes.Email, attributes.LastLogin).
			Suffix("ON DUPLICATE KEY UPDATE email = VALUES(email), last_login = VALUES(last_login)"),
	)
}

// EnsureSuperuser creates the user if needed and grants it superuser rights.
func (repo *DbRepository) EnsureSuperuser(ctx context.Context, exec Executor, username, email string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_USERS).
			Columns("username", "email", "is_superuser").
			Values(username, email, true).
			Suffix("ON DUPLICATE KEY UPDATE is_superuser = TRUE"),
	)
}
