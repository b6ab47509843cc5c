package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srct/whats-open/models"
)

func TestUpsertUser(t *testing.T) {
	db, mock := newMockDb(t)
	login := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(`^INSERT INTO users \(username,email,last_login\) VALUES \(\?,\?,\?\) ` +
		`ON DUPLICATE KEY UPDATE email = VALUES\(email\), last_login = VALUES\(last_login\)$`).
		WithArgs("gmason", "gmason@gmu.edu", login).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := NewDbRepository().UpsertUser(ctx, db, models.UpsertUserAttributes{
		Username:  "gmason",
		Email:     "gmason@gmu.edu",
		LastLogin: login,
	})
	assert.NoError(t, err)
}

func TestUserByUsername(t *testing.T) {
	db, mock := newMockDb(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`^SELECT id, username, email, is_superuser, last_login, created_at, updated_at FROM users WHERE username = \?$`).
		WithArgs("gmason").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "is_superuser", "last_login", "created_at", "updated_at"}).
			AddRow(int64(3), "gmason", "gmason@gmu.edu", true, now, now, now))

	user, err := NewDbRepository().UserByUsername(ctx, db, "gmason")
	require.NoError(t, err)
	assert.True(t, user.IsSuperuser)
	assert.Equal(t, now, user.LastLogin.Time)
	assert.Equal(t, models.Credentials{UserId: 3, Username: "gmason", Email: "gmason@gmu.edu", IsSuperuser: true}, user.Credentials())
}

func TestEnsureSuperuser(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectExec(`^INSERT INTO users \(username,email,is_superuser\) VALUES \(\?,\?,\?\) ON DUPLICATE KEY UPDATE is_superuser = TRUE$`).
		WithArgs("admin", "admin@gmu.edu", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, NewDbRepository().EnsureSuperuser(ctx, db, "admin", "admin@gmu.edu"))
}
