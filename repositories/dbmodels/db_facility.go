package dbmodels

import (
	"time"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/utils"
)

type DBFacility struct {
	Id             int64     `db:"id"`
	Name           string    `db:"facility_name"`
	Slug           string    `db:"slug"`
	CategoryId     int64     `db:"facility_category_id"`
	LocationId     int64     `db:"facility_location_id"`
	MainScheduleId int64     `db:"main_schedule_id"`
	Note           string    `db:"note"`
	Logo           string    `db:"logo"`
	TapingoUrl     string    `db:"tapingo_url"`
	PhoneNumber    string    `db:"phone_number"`
	Classifier     string    `db:"facility_classifier"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const (
	TABLE_FACILITIES                 = "facilities"
	TABLE_FACILITY_SPECIAL_SCHEDULES = "facility_special_schedules"
	TABLE_FACILITY_OWNERS            = "facility_owners"
	TABLE_FACILITY_PRODUCT_TAGS      = "facility_product_tags"
)

var SelectFacilityColumn = utils.ColumnList[DBFacility]()

// AdaptFacility only fills the facility's own columns. Links are attached by the repository.
func AdaptFacility(db DBFacility) (models.Facility, error) {
	return models.Facility{
		Id:             db.Id,
		Name:           db.Name,
		Slug:           db.Slug,
		CategoryId:     db.CategoryId,
		LocationId:     db.LocationId,
		MainScheduleId: db.MainScheduleId,
		Note:           db.Note,
		Logo:           db.Logo,
		TapingoUrl:     db.TapingoUrl,
		PhoneNumber:    db.PhoneNumber,
		Classifier:     models.FacilityClassifier(db.Classifier),
		CreatedAt:      db.CreatedAt,
		UpdatedAt:      db.UpdatedAt,
	}, nil
}

type DBFacilitySpecialSchedule struct {
	FacilityId int64 `db:"facility_id"`
	ScheduleId int64 `db:"schedule_id"`
	Position   int   `db:"position"`
}

var SelectFacilitySpecialScheduleColumn = utils.ColumnList[DBFacilitySpecialSchedule]()

type DBFacilityOwner struct {
	FacilityId int64 `db:"facility_id"`
	UserId     int64 `db:"user_id"`
}

var SelectFacilityOwnerColumn = utils.ColumnList[DBFacilityOwner]()

type DBFacilityTag struct {
	FacilityId int64  `db:"facility_id"`
	Name       string `db:"name"`
}
