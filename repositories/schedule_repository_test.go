package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srct/whats-open/models"
)

func TestListSchedules(t *testing.T) {
	db, mock := newMockDb(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`^SELECT id, name, valid_start, valid_end, twenty_four_hours, created_at, updated_at ` +
		`FROM schedules WHERE id IN \(\?,\?\) ORDER BY name, id$`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "valid_start", "valid_end", "twenty_four_hours", "created_at", "updated_at",
		}).
			AddRow(int64(1), "Regular", nil, nil, false, now, now).
			AddRow(int64(2), "Finals", now, now.Add(48*time.Hour), true, now, now))

	schedules, err := NewDbRepository().ListSchedules(ctx, db, 1, 2)
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.False(t, schedules[0].ValidStart.Valid)
	assert.Equal(t, null.TimeFrom(now.Add(48*time.Hour)), schedules[1].ValidEnd)
	assert.True(t, schedules[1].TwentyFourHours)
}

func TestListOpenTimes(t *testing.T) {
	db, mock := newMockDb(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`^SELECT id, schedule_id, start_day, start_time, end_day, end_time, created_at, updated_at ` +
		`FROM open_times WHERE schedule_id IN \(\?\) ORDER BY schedule_id, start_day, start_time, id$`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "schedule_id", "start_day", "start_time", "end_day", "end_time", "created_at", "updated_at",
		}).
			AddRow(int64(10), int64(1), int64(0), []byte("08:00:00"), int64(0), []byte("17:30:00.000000"), now, now))

	openTimes, err := NewDbRepository().ListOpenTimes(ctx, db, 1)
	require.NoError(t, err)
	require.Len(t, openTimes, 1)
	assert.Equal(t, models.Monday, openTimes[0].StartDay)
	assert.Equal(t, models.NewTimeOfDay(8, 0, 0), openTimes[0].StartTime)
	assert.Equal(t, models.NewTimeOfDay(17, 30, 0), openTimes[0].EndTime)
}

func TestCreateOpenTime(t *testing.T) {
	db, mock := newMockDb(t)

	mock.ExpectExec(`^INSERT INTO open_times \(schedule_id,start_day,start_time,end_day,end_time\) VALUES \(\?,\?,\?,\?,\?\)$`).
		WithArgs(1, 4, "18:00:00", 0, "06:00:00").
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := NewDbRepository().CreateOpenTime(ctx, db, models.CreateOpenTimeInput{
		ScheduleId: 1,
		StartDay:   models.Friday,
		StartTime:  models.NewTimeOfDay(18, 0, 0),
		EndDay:     models.Monday,
		EndTime:    models.NewTimeOfDay(6, 0, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}
