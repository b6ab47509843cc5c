package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/utils"
)

type DBSchedule struct {
	Id              int64     `db:"id"`
	Name            string    `db:"name"`
	ValidStart      null.Time `db:"valid_start"`
	ValidEnd        null.Time `db:"valid_end"`
	TwentyFourHours bool      `db:"twenty_four_hours"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

const TABLE_SCHEDULES = "schedules"

var SelectScheduleColumn = utils.ColumnList[DBSchedule]()

// AdaptSchedule leaves OpenTimes empty, they are loaded separately.
func AdaptSchedule(db DBSchedule) (models.Schedule, error) {
	return models.Schedule{
		Id:              db.Id,
		Name:            db.Name,
		ValidStart:      db.ValidStart,
		ValidEnd:        db.ValidEnd,
		TwentyFourHours: db.TwentyFourHours,
		CreatedAt:       db.CreatedAt,
		UpdatedAt:       db.UpdatedAt,
	}, nil
}

type DBOpenTime struct {
	Id         int64            `db:"id"`
	ScheduleId int64            `db:"schedule_id"`
	StartDay   int              `db:"start_day"`
	StartTime  models.TimeOfDay `db:"start_time"`
	EndDay     int              `db:"end_day"`
	EndTime    models.TimeOfDay `db:"end_time"`
	CreatedAt  time.Time        `db:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at"`
}

const TABLE_OPEN_TIMES = "open_times"

var SelectOpenTimeColumn = utils.ColumnList[DBOpenTime]()

func AdaptOpenTime(db DBOpenTime) (models.OpenTime, error) {
	return models.OpenTime{
		Id:         db.Id,
		ScheduleId: db.ScheduleId,
		StartDay:   models.Weekday(db.StartDay),
		StartTime:  db.StartTime,
		EndDay:     models.Weekday(db.EndDay),
		EndTime:    db.EndTime,
		CreatedAt:  db.CreatedAt,
		UpdatedAt:  db.UpdatedAt,
	}, nil
}
