package dto

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/srct/whats-open/models"
)

type APILocation struct {
	Id                 int64             `json:"id"`
	Modified           time.Time         `json:"modified"`
	Building           string            `json:"building"`
	FriendlyBuilding   string            `json:"friendly_building"`
	Address            string            `json:"address"`
	CampusRegion       string            `json:"campus_region"`
	OnCampus           bool              `json:"on_campus"`
	CoordinateLocation *geojson.Geometry `json:"coordinate_location"`
}

func AdaptLocationDto(l models.Location) APILocation {
	return APILocation{
		Id:                 l.Id,
		Modified:           l.UpdatedAt,
		Building:           l.Building,
		FriendlyBuilding:   l.FriendlyBuilding,
		Address:            l.Address,
		CampusRegion:       string(l.CampusRegion),
		OnCampus:           l.OnCampus,
		CoordinateLocation: geojson.NewGeometry(l.Coordinate),
	}
}

type LocationFilters struct {
	CampusRegion string `form:"campus_region" binding:"omitempty,campus_region"`
	OnCampus     *bool  `form:"on_campus"`
	Building     string `form:"building"`
}

func AdaptLocationFilters(f LocationFilters) models.LocationFilters {
	return models.LocationFilters{
		CampusRegion: models.CampusRegion(f.CampusRegion),
		OnCampus:     f.OnCampus,
		Building:     f.Building,
	}
}

type CreateLocationBody struct {
	Building           string            `json:"building" binding:"required,max=100"`
	FriendlyBuilding   string            `json:"friendly_building" binding:"max=10"`
	Address            string            `json:"address" binding:"max=100"`
	CampusRegion       string            `json:"campus_region" binding:"required,campus_region"`
	OnCampus           *bool             `json:"on_campus"`
	CoordinateLocation *geojson.Geometry `json:"coordinate_location" binding:"required"`
}

func AdaptCreateLocationInput(body CreateLocationBody) (models.CreateLocationInput, error) {
	onCampus := true
	if body.OnCampus != nil {
		onCampus = *body.OnCampus
	}
	if body.CoordinateLocation == nil {
		return models.CreateLocationInput{}, errors.Wrap(models.BadParameterError, "coordinate_location is required")
	}
	point, err := pointOf(body.CoordinateLocation)
	if err != nil {
		return models.CreateLocationInput{}, err
	}
	return models.CreateLocationInput{
		Building:         body.Building,
		FriendlyBuilding: body.FriendlyBuilding,
		Address:          body.Address,
		CampusRegion:     models.CampusRegion(body.CampusRegion),
		OnCampus:         onCampus,
		Coordinate:       point,
	}, nil
}

type UpdateLocationBody struct {
	Building           *string           `json:"building" binding:"omitempty,min=1,max=100"`
	FriendlyBuilding   *string           `json:"friendly_building" binding:"omitempty,max=10"`
	Address            *string           `json:"address" binding:"omitempty,max=100"`
	CampusRegion       *string           `json:"campus_region" binding:"omitempty,campus_region"`
	OnCampus           *bool             `json:"on_campus"`
	CoordinateLocation *geojson.Geometry `json:"coordinate_location"`
}

func AdaptUpdateLocationInput(id int64, body UpdateLocationBody) (models.UpdateLocationInput, error) {
	input := models.UpdateLocationInput{
		Id:               id,
		Building:         body.Building,
		FriendlyBuilding: body.FriendlyBuilding,
		Address:          body.Address,
		OnCampus:         body.OnCampus,
	}
	if body.CampusRegion != nil {
		region := models.CampusRegion(*body.CampusRegion)
		input.CampusRegion = &region
	}
	if body.CoordinateLocation != nil {
		point, err := pointOf(body.CoordinateLocation)
		if err != nil {
			return models.UpdateLocationInput{}, err
		}
		input.Coordinate = &point
	}
	return input, nil
}

func pointOf(g *geojson.Geometry) (orb.Point, error) {
	if g == nil {
		return orb.Point{}, nil
	}
	point, ok := g.Geometry().(orb.Point)
	if !ok {
		return orb.Point{}, errors.Wrap(models.BadParameterError, "coordinate_location must be a GeoJSON Point")
	}
	return point, nil
}
