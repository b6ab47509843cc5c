package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday
func at(day, hour, minute, second int) time.Time {
	return time.Date(2024, 1, day, hour, minute, second, 0, time.UTC)
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(at(1, 12, 0, 0)))
	assert.Equal(t, Saturday, WeekdayOf(at(6, 12, 0, 0)))
	assert.Equal(t, Sunday, WeekdayOf(at(7, 12, 0, 0)))
	assert.Equal(t, "Sunday", Sunday.String())
	assert.False(t, Weekday(7).IsValid())
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(8, 30, 0), tod)

	tod, err = ParseTimeOfDay("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59:59", tod.String())

	tod, err = ParseTimeOfDay("17:00:00.500000")
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(17, 0, 0)+TimeOfDay(500*time.Millisecond), tod)

	for _, bad := range []string{"", "8", "24:00", "12:60", "aa:bb", "12:00:61", "1:2:3:4"} {
		_, err := ParseTimeOfDay(bad)
		assert.ErrorIs(t, err, BadParameterError, bad)
	}
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan([]byte("07:15:00")))
	assert.Equal(t, NewTimeOfDay(7, 15, 0), tod)

	require.NoError(t, tod.Scan("22:00:00"))
	assert.Equal(t, NewTimeOfDay(22, 0, 0), tod)

	assert.Error(t, tod.Scan(42))

	value, err := NewTimeOfDay(9, 5, 0).Value()
	require.NoError(t, err)
	assert.Equal(t, "09:05:00", value)
}

func TestOpenTime_IsOpenAt(t *testing.T) {
	sameDay := OpenTime{StartDay: Monday, StartTime: NewTimeOfDay(8, 0, 0), EndDay: Monday, EndTime: NewTimeOfDay(17, 0, 0)}
	multiDay := OpenTime{StartDay: Tuesday, StartTime: NewTimeOfDay(20, 0, 0), EndDay: Thursday, EndTime: NewTimeOfDay(2, 0, 0)}
	weekWrap := OpenTime{StartDay: Friday, StartTime: NewTimeOfDay(18, 0, 0), EndDay: Monday, EndTime: NewTimeOfDay(6, 0, 0)}

	tests := []struct {
		name     string
		openTime OpenTime
		now      time.Time
		expected bool
	}{
		{"same day, inside", sameDay, at(1, 12, 0, 0), true},
		{"same day, at opening", sameDay, at(1, 8, 0, 0), true},
		{"same day, at closing", sameDay, at(1, 17, 0, 0), true},
		{"same day, just after closing", sameDay, at(1, 17, 0, 1), false},
		{"same day, just before opening", sameDay, at(1, 7, 59, 59), false},
		{"same day, other day", sameDay, at(2, 12, 0, 0), false},
		{"multi day, before start on start day", multiDay, at(2, 19, 0, 0), false},
		{"multi day, start day evening", multiDay, at(2, 21, 0, 0), true},
		{"multi day, middle day", multiDay, at(3, 4, 0, 0), true},
		{"multi day, end day early", multiDay, at(4, 1, 0, 0), true},
		{"multi day, end day late", multiDay, at(4, 3, 0, 0), false},
		{"multi day, before range", multiDay, at(1, 23, 0, 0), false},
		{"multi day, after range", multiDay, at(5, 0, 0, 0), false},
		{"week wrap, friday evening", weekWrap, at(5, 19, 0, 0), true},
		{"week wrap, friday afternoon", weekWrap, at(5, 17, 0, 0), false},
		{"week wrap, saturday", weekWrap, at(6, 12, 0, 0), true},
		{"week wrap, sunday", weekWrap, at(7, 3, 0, 0), true},
		{"week wrap, monday early", weekWrap, at(1, 5, 0, 0), true},
		{"week wrap, monday after end", weekWrap, at(1, 7, 0, 0), false},
		{"week wrap, wednesday", weekWrap, at(3, 12, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.openTime.IsOpenAt(tt.now))
		})
	}
}

func TestOpenTime_String(t *testing.T) {
	ot := OpenTime{StartDay: Monday, StartTime: NewTimeOfDay(8, 0, 0), EndDay: Monday, EndTime: NewTimeOfDay(17, 0, 0)}
	assert.Equal(t, "Monday 08:00:00 to Monday 17:00:00", ot.String())
}

func TestCreateOpenTimeInput_Validate(t *testing.T) {
	assert.NoError(t, CreateOpenTimeInput{StartDay: Monday, EndDay: Sunday}.Validate())
	assert.ErrorIs(t, CreateOpenTimeInput{StartDay: -1, EndDay: Sunday}.Validate(), ErrInvalidWeekday)
	bad := Weekday(9)
	assert.ErrorIs(t, UpdateOpenTimeInput{EndDay: &bad}.Validate(), BadParameterError)
}
