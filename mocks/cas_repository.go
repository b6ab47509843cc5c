package mocks

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"github.com/srct/whats-open/models"
)

type CasRepository struct {
	mock.Mock
}

func (m *CasRepository) LoginUrl(service *url.URL) string {
	args := m.Called(service)
	return args.String(0)
}

func (m *CasRepository) LogoutUrl(service *url.URL) string {
	args := m.Called(service)
	return args.String(0)
}

func (m *CasRepository) ValidateServiceTicket(ctx context.Context, service *url.URL, ticket string) (models.CasIdentity, error) {
	args := m.Called(ctx, service, ticket)
	return args.Get(0).(models.CasIdentity), args.Error(1)
}
