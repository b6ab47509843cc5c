package dbmodels

import (
	"time"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/utils"
)

type DBAlert struct {
	Id            int64     `db:"id"`
	UrgencyTag    string    `db:"urgency_tag"`
	Subject       string    `db:"subject"`
	Body          string    `db:"body"`
	Url           string    `db:"url"`
	StartDatetime time.Time `db:"start_datetime"`
	EndDatetime   time.Time `db:"end_datetime"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

const TABLE_ALERTS = "alerts"

var SelectAlertColumn = utils.ColumnList[DBAlert]()

func AdaptAlert(db DBAlert) (models.Alert, error) {
	return models.Alert{
		Id:            db.Id,
		UrgencyTag:    models.UrgencyTag(db.UrgencyTag),
		Subject:       db.Subject,
		Body:          db.Body,
		Url:           db.Url,
		StartDatetime: db.StartDatetime,
		EndDatetime:   db.EndDatetime,
		CreatedAt:     db.CreatedAt,
		UpdatedAt:     db.UpdatedAt,
	}, nil
}
