package models

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var (
	ErrEmailDomainNotAllowed = errors.Wrap(ForbiddenError, "email domain is not allowed")
	ErrInvalidServiceTicket  = errors.Wrap(UnAuthorizedError, "invalid CAS service ticket")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Schedule and alert validation errors
var (
	ErrInvalidWeekday        = errors.Wrap(BadParameterError, "day must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidTimeOfDay      = errors.Wrap(BadParameterError, "time must be formatted as HH:MM or HH:MM:SS")
	ErrInvalidAlertPeriod    = errors.Wrap(BadParameterError, "end_datetime must be after start_datetime")
	ErrInvalidSchedulePeriod = errors.Wrap(BadParameterError, "valid_end must not be before valid_start")
)

type FieldValidationError map[string]string

func (e FieldValidationError) Error() string {
	return fmt.Sprintf("%v", map[string]string(e))
}

func (e FieldValidationError) wrap() error {
	return errors.Join(BadParameterError, e)
}
