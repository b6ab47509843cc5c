package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAlert_IsActiveAt(t *testing.T) {
	alert := Alert{StartDatetime: at(1, 8, 0, 0), EndDatetime: at(1, 18, 0, 0)}

	assert.True(t, alert.IsActiveAt(at(1, 12, 0, 0)))
	assert.False(t, alert.IsActiveAt(at(1, 8, 0, 0)), "start is exclusive")
	assert.False(t, alert.IsActiveAt(at(1, 18, 0, 0)), "end is exclusive")
	assert.False(t, alert.IsActiveAt(at(2, 12, 0, 0)))
}

func TestCreateAlertInput_Validate(t *testing.T) {
	input := CreateAlertInput{
		UrgencyTag:    UrgencyMajor,
		Subject:       "Power outage",
		StartDatetime: at(1, 8, 0, 0),
		EndDatetime:   at(1, 9, 0, 0),
	}
	assert.NoError(t, input.Validate())

	input.EndDatetime = input.StartDatetime
	assert.ErrorIs(t, input.Validate(), ErrInvalidAlertPeriod)

	input.EndDatetime = at(2, 0, 0, 0)
	input.UrgencyTag = "panic"
	assert.ErrorIs(t, input.Validate(), BadParameterError)
}

func TestUpdateAlertInput_ValidateAgainst(t *testing.T) {
	current := Alert{StartDatetime: at(1, 8, 0, 0), EndDatetime: at(1, 18, 0, 0)}

	end := at(1, 20, 0, 0)
	assert.NoError(t, UpdateAlertInput{EndDatetime: &end}.ValidateAgainst(current))

	start := at(1, 19, 0, 0)
	assert.ErrorIs(t, UpdateAlertInput{StartDatetime: &start}.ValidateAgainst(current), ErrInvalidAlertPeriod)

	shifted := current.StartDatetime.Add(-time.Hour)
	assert.NoError(t, UpdateAlertInput{StartDatetime: &shifted}.ValidateAgainst(current))
}
