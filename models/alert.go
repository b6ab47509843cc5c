package models

import (
	"time"
)

type UrgencyTag string

const (
	UrgencyInfo      UrgencyTag = "info"
	UrgencyMinor     UrgencyTag = "minor"
	UrgencyMajor     UrgencyTag = "major"
	UrgencyEmergency UrgencyTag = "emergency"
)

var UrgencyTags = []UrgencyTag{UrgencyInfo, UrgencyMinor, UrgencyMajor, UrgencyEmergency}

func (u UrgencyTag) IsValid() bool {
	for _, tag := range UrgencyTags {
		if u == tag {
			return true
		}
	}
	return false
}

type Alert struct {
	Id            int64
	UrgencyTag    UrgencyTag
	Subject       string
	Body          string
	Url           string
	StartDatetime time.Time
	EndDatetime   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActiveAt is strict at both ends of the alert period.
func (a Alert) IsActiveAt(now time.Time) bool {
	return a.StartDatetime.Before(now) && now.Before(a.EndDatetime)
}

func (a Alert) String() string {
	return a.Subject
}

type CreateAlertInput struct {
	UrgencyTag    UrgencyTag
	Subject       string
	Body          string
	Url           string
	StartDatetime time.Time
	EndDatetime   time.Time
}

func (input CreateAlertInput) Validate() error {
	if !input.UrgencyTag.IsValid() {
		return FieldValidationError{"urgency_tag": "must be one of info, minor, major, emergency"}.wrap()
	}
	if !input.EndDatetime.After(input.StartDatetime) {
		return ErrInvalidAlertPeriod
	}
	return nil
}

type UpdateAlertInput struct {
	Id            int64
	UrgencyTag    *UrgencyTag
	Subject       *string
	Body          *string
	Url           *string
	StartDatetime *time.Time
	EndDatetime   *time.Time
}

// ValidateAgainst checks the update once merged with the stored alert.
func (input UpdateAlertInput) ValidateAgainst(current Alert) error {
	if input.UrgencyTag != nil && !input.UrgencyTag.IsValid() {
		return FieldValidationError{"urgency_tag": "must be one of info, minor, major, emergency"}.wrap()
	}
	start, end := current.StartDatetime, current.EndDatetime
	if input.StartDatetime != nil {
		start = *input.StartDatetime
	}
	if input.EndDatetime != nil {
		end = *input.EndDatetime
	}
	if !end.After(start) {
		return ErrInvalidAlertPeriod
	}
	return nil
}

type AlertFilters struct {
	// All lists expired and future alerts too
	All        bool
	UrgencyTag UrgencyTag
}
