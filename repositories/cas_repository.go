package repositories

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/cas.v2"

	"github.com/srct/whats-open/models"
)

// CasRepository talks to the campus CAS server.
type CasRepository struct {
	casUrl    *url.URL
	validator *cas.ServiceTicketValidator
}

func NewCasRepository(casUrl string, client *http.Client) (*CasRepository, error) {
	parsed, err := url.Parse(casUrl)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid CAS url %q", casUrl)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &CasRepository{
		casUrl:    parsed,
		validator: cas.NewServiceTicketValidator(client, parsed),
	}, nil
}

func (repo *CasRepository) LoginUrl(service *url.URL) string {
	u := repo.casUrl.JoinPath("login")
	u.RawQuery = url.Values{"service": {service.String()}}.Encode()
	return u.String()
}

func (repo *CasRepository) LogoutUrl(service *url.URL) string {
	u := repo.casUrl.JoinPath("logout")
	if service != nil {
		u.RawQuery = url.Values{"service": {service.String()}}.Encode()
	}
	return u.String()
}

// ValidateServiceTicket runs the CAS 2.0 serviceValidate exchange.
func (repo *CasRepository) ValidateServiceTicket(ctx context.Context, service *url.URL, ticket string) (models.CasIdentity, error) {
	if ticket == "" {
		return models.CasIdentity{}, errors.Wrap(models.ErrInvalidServiceTicket, "missing ticket")
	}

	response, err := repo.validator.ValidateTicket(service, ticket)
	if err != nil {
		var authErr *cas.AuthenticationError
		if errors.As(err, &authErr) {
			return models.CasIdentity{}, errors.Wrapf(models.ErrInvalidServiceTicket, "%s: %s", authErr.Code, authErr.Message)
		}
		return models.CasIdentity{}, errors.Wrap(err, "error validating CAS service ticket")
	}

	return models.CasIdentity{
		Username:   response.User,
		Attributes: map[string][]string(response.Attributes),
	}, nil
}
