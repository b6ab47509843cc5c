package models

import (
	"time"

	"github.com/guregu/null/v5"
)

// Schedule groups the open times of a facility. A schedule with both ValidStart and
// ValidEnd set can be used as a special schedule, in effect only between those instants.
type Schedule struct {
	Id              int64
	Name            string
	ValidStart      null.Time
	ValidEnd        null.Time
	TwentyFourHours bool
	OpenTimes       []OpenTime
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s Schedule) IsOpenAt(now time.Time) bool {
	if s.TwentyFourHours {
		return true
	}
	for _, openTime := range s.OpenTimes {
		if openTime.IsOpenAt(now) {
			return true
		}
	}
	return false
}

// IsInEffectAt reports whether now falls inside [ValidStart, ValidEnd]. Schedules missing
// either bound are never in effect.
func (s Schedule) IsInEffectAt(now time.Time) bool {
	if !s.ValidStart.Valid || !s.ValidEnd.Valid {
		return false
	}
	return !now.Before(s.ValidStart.Time) && !now.After(s.ValidEnd.Time)
}

func (s Schedule) String() string {
	return s.Name
}

type CreateScheduleInput struct {
	Name            string
	ValidStart      null.Time
	ValidEnd        null.Time
	TwentyFourHours bool
}

func (input CreateScheduleInput) Validate() error {
	return validateSchedulePeriod(input.ValidStart, input.ValidEnd)
}

type UpdateScheduleInput struct {
	Id              int64
	Name            *string
	ValidStart      *null.Time
	ValidEnd        *null.Time
	TwentyFourHours *bool
}

func validateSchedulePeriod(start, end null.Time) error {
	if start.Valid && end.Valid && end.Time.Before(start.Time) {
		return ErrInvalidSchedulePeriod
	}
	return nil
}

// ValidateAgainst checks the update once merged with the stored schedule.
func (input UpdateScheduleInput) ValidateAgainst(current Schedule) error {
	start, end := current.ValidStart, current.ValidEnd
	if input.ValidStart != nil {
		start = *input.ValidStart
	}
	if input.ValidEnd != nil {
		end = *input.ValidEnd
	}
	return validateSchedulePeriod(start, end)
}
