package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/utils"
)

type DBUser struct {
	Id          int64     `db:"id"`
	Username    string    `db:"username"`
	Email       string    `db:"email"`
	IsSuperuser bool      `db:"is_superuser"`
	LastLogin   null.Time `db:"last_login"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const TABLE_USERS = "users"

var UserFields = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:          db.Id,
		Username:    db.Username,
		Email:       db.Email,
		IsSuperuser: db.IsSuperuser,
		LastLogin:   db.LastLogin,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
