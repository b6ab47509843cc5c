package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb"
)

type CampusRegion string

const (
	CampusRegionFrontRoyal    CampusRegion = "front royal"
	CampusRegionPrinceWilliam CampusRegion = "prince william"
	CampusRegionFairfax       CampusRegion = "fairfax"
	CampusRegionArlington     CampusRegion = "arlington"
)

var CampusRegions = []CampusRegion{
	CampusRegionFrontRoyal,
	CampusRegionPrinceWilliam,
	CampusRegionFairfax,
	CampusRegionArlington,
}

func (r CampusRegion) IsValid() bool {
	for _, region := range CampusRegions {
		if r == region {
			return true
		}
	}
	return false
}

// DisplayName is the human readable name of the region
func (r CampusRegion) DisplayName() string {
	switch r {
	case CampusRegionFrontRoyal:
		return "Front Royal"
	case CampusRegionPrinceWilliam:
		return "Prince William County Science and Technology"
	case CampusRegionFairfax:
		return "Fairfax"
	case CampusRegionArlington:
		return "Arlington"
	}
	return string(r)
}

type Location struct {
	Id               int64
	Building         string
	FriendlyBuilding string
	Address          string
	CampusRegion     CampusRegion
	OnCampus         bool
	// Coordinate is a (longitude, latitude) pair
	Coordinate orb.Point
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (l Location) String() string {
	return fmt.Sprintf("%s on %s Campus", l.Building, titleCase(string(l.CampusRegion)))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type CreateLocationInput struct {
	Building         string
	FriendlyBuilding string
	Address          string
	CampusRegion     CampusRegion
	OnCampus         bool
	Coordinate       orb.Point
}

type UpdateLocationInput struct {
	Id               int64
	Building         *string
	FriendlyBuilding *string
	Address          *string
	CampusRegion     *CampusRegion
	OnCampus         *bool
	Coordinate       *orb.Point
}

type LocationFilters struct {
	CampusRegion CampusRegion
	OnCampus     *bool
	Building     string
}
