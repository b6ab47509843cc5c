package security

import (
	"github.com/cockroachdb/errors"

	"github.com/srct/whats-open/models"
)

type EnforceSecurity interface {
	Authenticated() error
	Superuser() error
	UserId() int64
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func (e *EnforceSecurityImpl) Authenticated() error {
	if !e.Credentials.IsAuthenticated() {
		return errors.Wrap(models.UnAuthorizedError, "authentication required")
	}
	return nil
}

func (e *EnforceSecurityImpl) Superuser() error {
	if err := e.Authenticated(); err != nil {
		return err
	}
	if !e.Credentials.IsSuperuser {
		return errors.Wrapf(models.ForbiddenError, "user %s is not a superuser", e.Credentials.Username)
	}
	return nil
}

func (e *EnforceSecurityImpl) UserId() int64 {
	return e.Credentials.UserId
}
