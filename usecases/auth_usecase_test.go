package usecases

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srct/whats-open/mocks"
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/clock"
	"github.com/srct/whats-open/usecases/executor_factory"
)

type authUsecaseMocks struct {
	cas        *mocks.CasRepository
	jwt        *mocks.JwtRepository
	repository *mocks.DbRepository
	clock      *clock.Mock
}

func newAuthUsecase() (*AuthUsecase, authUsecaseMocks) {
	m := authUsecaseMocks{
		cas:        new(mocks.CasRepository),
		jwt:        new(mocks.JwtRepository),
		repository: new(mocks.DbRepository),
		clock:      clock.NewMock(time.Date(2024, 9, 2, 14, 0, 0, 0, time.UTC)),
	}
	return &AuthUsecase{
		executorFactory: executor_factory.NewExecutorFactoryStub(),
		casRepository:   m.cas,
		tokenRepository: m.jwt,
		userRepository:  m.repository,
		clock:           m.clock,
		emailDomain:     "gmu.edu",
		tokenLifetime:   2 * time.Hour,
	}, m
}

func TestLogin(t *testing.T) {
	service, _ := url.Parse("https://whatsopen.gmu.edu/auth/callback")
	ctx := context.Background()

	t.Run("username falls back to the institutional domain", func(t *testing.T) {
		usecase, m := newAuthUsecase()
		now := m.clock.Now()
		m.cas.On("ValidateServiceTicket", ctx, service, "ST-1").
			Return(models.CasIdentity{Username: "gmason"}, nil)
		m.repository.On("UpsertUser", ctx, mock.Anything, models.UpsertUserAttributes{
			Username:  "gmason",
			Email:     "gmason@gmu.edu",
			LastLogin: now,
		}).Return(nil)
		user := models.User{Id: 3, Username: "gmason", Email: "gmason@gmu.edu"}
		m.repository.On("UserByUsername", ctx, mock.Anything, "gmason").Return(user, nil)
		m.jwt.On("EncodeToken", now.Add(2*time.Hour), user.Credentials()).Return("signed", nil)

		token, expiresAt, err := usecase.Login(ctx, service, "ST-1")

		require.NoError(t, err)
		assert.Equal(t, "signed", token)
		assert.Equal(t, now.Add(2*time.Hour), expiresAt)
		m.cas.AssertExpectations(t)
		m.repository.AssertExpectations(t)
		m.jwt.AssertExpectations(t)
	})

	t.Run("mail attribute outside the domain is rejected", func(t *testing.T) {
		usecase, m := newAuthUsecase()
		m.cas.On("ValidateServiceTicket", ctx, service, "ST-2").Return(models.CasIdentity{
			Username:   "visitor",
			Attributes: map[string][]string{"mail": {"visitor@example.com"}},
		}, nil)

		_, _, err := usecase.Login(ctx, service, "ST-2")

		assert.ErrorIs(t, err, models.ErrEmailDomainNotAllowed)
		assert.ErrorIs(t, err, models.ForbiddenError)
		m.repository.AssertNotCalled(t, "UpsertUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mail attribute inside the domain is kept", func(t *testing.T) {
		usecase, m := newAuthUsecase()
		m.cas.On("ValidateServiceTicket", ctx, service, "ST-3").Return(models.CasIdentity{
			Username:   "gmason",
			Attributes: map[string][]string{"mail": {"George.Mason@GMU.edu"}},
		}, nil)
		m.repository.On("UpsertUser", ctx, mock.Anything, mock.MatchedBy(func(a models.UpsertUserAttributes) bool {
			return a.Email == "George.Mason@GMU.edu"
		})).Return(nil)
		m.repository.On("UserByUsername", ctx, mock.Anything, "gmason").Return(models.User{Id: 3}, nil)
		m.jwt.On("EncodeToken", mock.Anything, mock.Anything).Return("signed", nil)

		_, _, err := usecase.Login(ctx, service, "ST-3")

		require.NoError(t, err)
		m.repository.AssertExpectations(t)
	})

	t.Run("invalid ticket", func(t *testing.T) {
		usecase, m := newAuthUsecase()
		m.cas.On("ValidateServiceTicket", ctx, service, "ST-bad").
			Return(models.CasIdentity{}, models.ErrInvalidServiceTicket)

		_, _, err := usecase.Login(ctx, service, "ST-bad")

		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})
}

func TestSeedSuperuser(t *testing.T) {
	ctx := context.Background()
	repository := new(mocks.DbRepository)
	usecase := SeedUsecase{
		executorFactory: executor_factory.NewExecutorFactoryStub(),
		userRepository:  repository,
		emailDomain:     "gmu.edu",
	}
	repository.On("EnsureSuperuser", ctx, mock.Anything, "admin", "admin@gmu.edu").Return(nil)

	require.NoError(t, usecase.SeedSuperuser(ctx, "admin"))
	require.NoError(t, usecase.SeedSuperuser(ctx, ""))
	repository.AssertNumberOfCalls(t, "EnsureSuperuser", 1)
}
