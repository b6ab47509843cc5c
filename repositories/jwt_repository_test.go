package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/clock"
)

func TestJwtRepository_RoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewMock(now)
	repo := NewJWTRepository([]byte("secret"), c)
	creds := models.Credentials{UserId: 3, Username: "gmason", Email: "gmason@gmu.edu", IsSuperuser: true}

	token, err := repo.EncodeToken(now.Add(time.Hour), creds)
	require.NoError(t, err)

	decoded, err := repo.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, creds, decoded)

	c.Advance(2 * time.Hour)
	_, err = repo.ValidateToken(token)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestJwtRepository_WrongKey(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewMock(now)

	token, err := NewJWTRepository([]byte("secret"), c).EncodeToken(now.Add(time.Hour), models.Credentials{UserId: 1})
	require.NoError(t, err)

	_, err = NewJWTRepository([]byte("other secret"), c).ValidateToken(token)
	assert.ErrorIs(t, err, models.UnAuthorizedError)

	_, err = NewJWTRepository([]byte("secret"), c).ValidateToken("not a token")
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}
