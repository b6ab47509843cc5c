package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"
	"github.com/paulmach/orb"

	"github.com/srct/whats-open/models"
)

type DBLocation struct {
	Id               int64      `db:"id"`
	Building         string     `db:"building"`
	FriendlyBuilding string     `db:"friendly_building"`
	Address          string     `db:"address"`
	CampusRegion     string     `db:"campus_region"`
	OnCampus         bool       `db:"on_campus"`
	Longitude        null.Float `db:"longitude"`
	Latitude         null.Float `db:"latitude"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

const TABLE_LOCATIONS = "locations"

// The POINT column is read back as two plain coordinates.
var SelectLocationColumn = []string{
	"id",
	"building",
	"friendly_building",
	"address",
	"campus_region",
	"on_campus",
	"ST_X(coordinate_location) AS longitude",
	"ST_Y(coordinate_location) AS latitude",
	"created_at",
	"updated_at",
}

func AdaptLocation(db DBLocation) (models.Location, error) {
	location := models.Location{
		Id:               db.Id,
		Building:         db.Building,
		FriendlyBuilding: db.FriendlyBuilding,
		Address:          db.Address,
		CampusRegion:     models.CampusRegion(db.CampusRegion),
		OnCampus:         db.OnCampus,
		CreatedAt:        db.CreatedAt,
		UpdatedAt:        db.UpdatedAt,
	}
	if db.Longitude.Valid && db.Latitude.Valid {
		location.Coordinate = orb.Point{db.Longitude.Float64, db.Latitude.Float64}
	}
	return location, nil
}
