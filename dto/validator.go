package dto

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/srct/whats-open/models"
)

// RegisterValidators installs the domain validation tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}
	return registerValidators(v)
}

func registerValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldNameFromTag)

	validations := map[string]validator.Func{
		"phone": func(fl validator.FieldLevel) bool {
			return models.PhoneNumberRegexp.MatchString(fl.Field().String())
		},
		"tapingo_url": func(fl validator.FieldLevel) bool {
			return models.TapingoUrlRegexp.MatchString(fl.Field().String())
		},
		"campus_region": func(fl validator.FieldLevel) bool {
			return models.CampusRegion(fl.Field().String()).IsValid()
		},
		"facility_classifier": func(fl validator.FieldLevel) bool {
			return models.FacilityClassifier(fl.Field().String()).IsValid()
		},
		"urgency_tag": func(fl validator.FieldLevel) bool {
			return models.UrgencyTag(fl.Field().String()).IsValid()
		},
		"time_of_day": func(fl validator.FieldLevel) bool {
			_, err := models.ParseTimeOfDay(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errors.Wrapf(err, "registering validation %s", tag)
		}
	}
	return nil
}

func fieldNameFromTag(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if len(name) > 0 {
		if name == "-" {
			return ""
		}
		return name
	}

	name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if len(name) > 0 {
		return name
	}

	return ""
}

// AdaptFieldValidationError maps generic validation error to human-readable error
// messages, to be returned in the response.
func AdaptFieldValidationError(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.Join(strings.Split(fe.Param(), " "), ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at least %s character", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at most %s character", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gtfield":
		return fmt.Sprintf("must be after `%s`", fe.Param())
	case "url":
		return "must be a valid URL"
	case "phone":
		return "must be a 10 digit phone number"
	case "tapingo_url":
		return "must start with https://www.tapingo.com/"
	case "campus_region":
		return "must be one of front royal, prince william, fairfax, arlington"
	case "facility_classifier":
		return "must be empty or shopmason"
	case "urgency_tag":
		return "must be one of info, minor, major, emergency"
	case "time_of_day":
		return "must be formatted as HH:MM or HH:MM:SS"
	}
	return "is invalid"
}

// AdaptBindingError turns a gin binding failure into a BadParameterError, keeping
// a message per invalid field when the validator produced them.
func AdaptBindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := models.FieldValidationError{}
		for _, fe := range validationErrors {
			fields[fe.Field()] = AdaptFieldValidationError(fe)
		}
		return errors.Join(models.BadParameterError, fields)
	}
	return errors.Join(models.BadParameterError, err)
}
