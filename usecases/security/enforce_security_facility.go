package security

import (
	"github.com/cockroachdb/errors"

	"github.com/srct/whats-open/models"
)

type EnforceSecurityFacility interface {
	EnforceSecurity
	CreateFacility() error
	UpdateFacility(facility models.Facility, input models.UpdateFacilityInput) error
	DeleteFacility(facility models.Facility) error
}

type EnforceSecurityFacilityImpl struct {
	EnforceSecurity
}

func (e *EnforceSecurityFacilityImpl) CreateFacility() error {
	return e.Superuser()
}

// UpdateFacility lets owners edit their own facility, but only a superuser can change
// who owns it.
func (e *EnforceSecurityFacilityImpl) UpdateFacility(facility models.Facility, input models.UpdateFacilityInput) error {
	if err := e.Authenticated(); err != nil {
		return err
	}
	if e.Superuser() == nil {
		return nil
	}
	if !facility.IsOwnedBy(e.UserId()) {
		return errors.Wrapf(models.ForbiddenError, "user is not an owner of facility %s", facility.Slug)
	}
	if input.OwnerIds != nil {
		return errors.Wrap(models.ForbiddenError, "only a superuser can change the owners of a facility")
	}
	return nil
}

func (e *EnforceSecurityFacilityImpl) DeleteFacility(facility models.Facility) error {
	return e.Superuser()
}
