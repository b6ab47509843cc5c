package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/srct/whats-open/models"
)

type JwtRepository struct {
	mock.Mock
}

func (m *JwtRepository) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	args := m.Called(expirationTime, creds)
	return args.String(0), args.Error(1)
}

func (m *JwtRepository) ValidateToken(token string) (models.Credentials, error) {
	args := m.Called(token)
	return args.Get(0).(models.Credentials), args.Error(1)
}
