package usecases

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/repositories/clock"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/utils"
)

// CAS attribute holding the institutional email of the user
const casMailAttribute = "mail"

type casRepository interface {
	LoginUrl(service *url.URL) string
	LogoutUrl(service *url.URL) string
	ValidateServiceTicket(ctx context.Context, service *url.URL, ticket string) (models.CasIdentity, error)
}

type tokenRepository interface {
	EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error)
	ValidateToken(token string) (models.Credentials, error)
}

type authUserRepository interface {
	UpsertUser(ctx context.Context, exec repositories.Executor, attributes models.UpsertUserAttributes) error
	UserByUsername(ctx context.Context, exec repositories.Executor, username string) (models.User, error)
}

type AuthUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	casRepository   casRepository
	tokenRepository tokenRepository
	userRepository  authUserRepository
	clock           clock.Clock
	emailDomain     string
	tokenLifetime   time.Duration
}

func (usecase *AuthUsecase) LoginUrl(service *url.URL) string {
	return usecase.casRepository.LoginUrl(service)
}

func (usecase *AuthUsecase) LogoutUrl(service *url.URL) string {
	return usecase.casRepository.LogoutUrl(service)
}

// Login validates a CAS service ticket, records the user and hands out an access token.
func (usecase *AuthUsecase) Login(ctx context.Context, service *url.URL, ticket string) (string, time.Time, error) {
	identity, err := usecase.casRepository.ValidateServiceTicket(ctx, service, ticket)
	if err != nil {
		return "", time.Time{}, err
	}

	email := identity.Attribute(casMailAttribute)
	if email == "" {
		email = identity.Username + "@" + usecase.emailDomain
	}
	if !usecase.isAllowedEmail(email) {
		utils.MetricLoginCount.With(prometheus.Labels{"outcome": "rejected"}).Inc()
		return "", time.Time{}, errors.Wrapf(models.ErrEmailDomainNotAllowed, "%s is not in domain %s", email, usecase.emailDomain)
	}

	now := usecase.clock.Now()
	exec := usecase.executorFactory.NewExecutor()
	err = usecase.userRepository.UpsertUser(ctx, exec, models.UpsertUserAttributes{
		Username:  identity.Username,
		Email:     email,
		LastLogin: now,
	})
	if err != nil {
		return "", time.Time{}, err
	}
	user, err := usecase.userRepository.UserByUsername(ctx, exec, identity.Username)
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := now.Add(usecase.tokenLifetime)
	token, err := usecase.tokenRepository.EncodeToken(expiresAt, user.Credentials())
	if err != nil {
		return "", time.Time{}, err
	}

	utils.MetricLoginCount.With(prometheus.Labels{"outcome": "success"}).Inc()
	utils.LoggerFromContext(ctx).InfoContext(ctx, "user logged in", "username", user.Username)
	return token, expiresAt, nil
}

func (usecase *AuthUsecase) ValidateToken(ctx context.Context, token string) (models.Credentials, error) {
	return usecase.tokenRepository.ValidateToken(token)
}

func (usecase *AuthUsecase) isAllowedEmail(email string) bool {
	if usecase.emailDomain == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(usecase.emailDomain))
}
