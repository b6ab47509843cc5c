package models

import (
	"regexp"
	"time"
)

const DefaultFacilityLogo = "https://wopen-cdn.dhaynes.xyz/default.png"

var (
	TapingoUrlRegexp  = regexp.MustCompile(`^https://www.tapingo.com/`)
	PhoneNumberRegexp = regexp.MustCompile(`^\(?([0-9]{3})\)?[-.●]?([0-9]{3})[-.●]?([0-9]{4})$`)
)

type FacilityClassifier string

const (
	FacilityClassifierNone      FacilityClassifier = ""
	FacilityClassifierShopMason FacilityClassifier = "shopmason"
)

func (c FacilityClassifier) IsValid() bool {
	return c == FacilityClassifierNone || c == FacilityClassifierShopMason
}

type Facility struct {
	Id                 int64
	Name               string
	Slug               string
	CategoryId         int64
	LocationId         int64
	MainScheduleId     int64
	Note               string
	Logo               string
	TapingoUrl         string
	PhoneNumber        string
	Classifier         FacilityClassifier
	ProductTags        []string
	OwnerIds           []int64
	SpecialScheduleIds []int64
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Hydrated relations, set when the facility is loaded with its dependencies.
	Category         Category
	Location         Location
	MainSchedule     Schedule
	SpecialSchedules []Schedule
}

// IsOpenAt lets the first special schedule in effect at now decide, even when it is
// closed. Without one, the main schedule decides.
func (f Facility) IsOpenAt(now time.Time) bool {
	for _, special := range f.SpecialSchedules {
		if special.IsInEffectAt(now) {
			return special.IsOpenAt(now)
		}
	}
	return f.MainSchedule.IsOpenAt(now)
}

func (f Facility) IsOwnedBy(userId int64) bool {
	for _, id := range f.OwnerIds {
		if id == userId {
			return true
		}
	}
	return false
}

// LastModified is the latest update among the facility and the schedules it displays.
func (f Facility) LastModified() time.Time {
	last := f.UpdatedAt
	schedules := append([]Schedule{f.MainSchedule}, f.SpecialSchedules...)
	for _, s := range schedules {
		if s.UpdatedAt.After(last) {
			last = s.UpdatedAt
		}
		for _, ot := range s.OpenTimes {
			if ot.UpdatedAt.After(last) {
				last = ot.UpdatedAt
			}
		}
	}
	return last
}

func (f Facility) String() string {
	return f.Name
}

type CreateFacilityInput struct {
	Name               string
	CategoryId         int64
	LocationId         int64
	MainScheduleId     int64
	Note               string
	Logo               string
	TapingoUrl         string
	PhoneNumber        string
	Classifier         FacilityClassifier
	ProductTags        []string
	OwnerIds           []int64
	SpecialScheduleIds []int64
}

func (input CreateFacilityInput) Validate() error {
	return validateFacilityFields(&input.TapingoUrl, &input.PhoneNumber, &input.Classifier)
}

// UpdateFacilityInput only touches the fields that are set. Slices are replaced as a whole.
type UpdateFacilityInput struct {
	Slug               string
	Name               *string
	CategoryId         *int64
	LocationId         *int64
	MainScheduleId     *int64
	Note               *string
	Logo               *string
	TapingoUrl         *string
	PhoneNumber        *string
	Classifier         *FacilityClassifier
	ProductTags        *[]string
	OwnerIds           *[]int64
	SpecialScheduleIds *[]int64
}

func (input UpdateFacilityInput) Validate() error {
	return validateFacilityFields(input.TapingoUrl, input.PhoneNumber, input.Classifier)
}

func validateFacilityFields(tapingoUrl, phoneNumber *string, classifier *FacilityClassifier) error {
	errs := FieldValidationError{}
	if tapingoUrl != nil && *tapingoUrl != "" && !TapingoUrlRegexp.MatchString(*tapingoUrl) {
		errs["tapingo_url"] = "must start with https://www.tapingo.com/"
	}
	if phoneNumber != nil && *phoneNumber != "" && !PhoneNumberRegexp.MatchString(*phoneNumber) {
		errs["phone_number"] = "must be a 10 digit phone number"
	}
	if classifier != nil && !classifier.IsValid() {
		errs["facility_classifier"] = "must be empty or shopmason"
	}
	if len(errs) > 0 {
		return errs.wrap()
	}
	return nil
}

type FacilityFilters struct {
	CategoryId   int64
	OnCampus     *bool
	CampusRegion CampusRegion
	Classifier   *FacilityClassifier
	OpenNow      *bool
	Search       string
	Tags         []string
}
