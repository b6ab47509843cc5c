package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srct/whats-open/models"
)

var alertColumns = []string{
	"id", "urgency_tag", "subject", "body", "url", "start_datetime", "end_datetime", "created_at", "updated_at",
}

func TestListAlerts_ActiveOnly(t *testing.T) {
	db, mock := newMockDb(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`^SELECT id, urgency_tag, .* FROM alerts WHERE start_datetime < \? AND end_datetime > \? AND urgency_tag = \? ` +
		`ORDER BY start_datetime DESC, id DESC$`).
		WithArgs(now, now, "major").
		WillReturnRows(sqlmock.NewRows(alertColumns).
			AddRow(int64(1), "major", "Power outage", "Southside is **closed**", "", now.Add(-time.Hour), now.Add(time.Hour), now, now))

	alerts, err := NewDbRepository().ListAlerts(ctx, db, models.AlertFilters{UrgencyTag: models.UrgencyMajor}, now)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.UrgencyMajor, alerts[0].UrgencyTag)
	assert.True(t, alerts[0].IsActiveAt(now))
}

func TestListAlerts_All(t *testing.T) {
	db, mock := newMockDb(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`^SELECT id, urgency_tag, .* FROM alerts ORDER BY start_datetime DESC, id DESC$`).
		WillReturnRows(sqlmock.NewRows(alertColumns))

	alerts, err := NewDbRepository().ListAlerts(ctx, db, models.AlertFilters{All: true}, now)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
