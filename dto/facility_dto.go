package dto

import (
	"strings"
	"time"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
)

type APIFacility struct {
	Id                 int64         `json:"id"`
	Modified           time.Time     `json:"modified"`
	Name               string        `json:"facility_name"`
	Slug               string        `json:"slug"`
	Category           APICategory   `json:"facility_category"`
	Location           APILocation   `json:"facility_location"`
	MainSchedule       APISchedule   `json:"main_schedule"`
	SpecialSchedules   []APISchedule `json:"special_schedules"`
	IsOpen             bool          `json:"is_open"`
	Note               string        `json:"note"`
	NoteHtml           string        `json:"note_html"`
	Logo               string        `json:"logo"`
	TapingoUrl         string        `json:"tapingo_url"`
	PhoneNumber        string        `json:"phone_number"`
	FacilityClassifier string        `json:"facility_classifier"`
	Owners             []int64       `json:"owners"`
}

// AdaptFacilityDto expects a hydrated facility. The open status is computed at now.
func AdaptFacilityDto(f models.Facility, now time.Time) APIFacility {
	owners := f.OwnerIds
	if owners == nil {
		owners = []int64{}
	}
	return APIFacility{
		Id:                 f.Id,
		Modified:           f.UpdatedAt,
		Name:               f.Name,
		Slug:               f.Slug,
		Category:           AdaptCategoryDto(f.Category),
		Location:           AdaptLocationDto(f.Location),
		MainSchedule:       AdaptScheduleDto(f.MainSchedule),
		SpecialSchedules:   pure_utils.Map(f.SpecialSchedules, AdaptScheduleDto),
		IsOpen:             f.IsOpenAt(now),
		Note:               f.Note,
		NoteHtml:           renderMarkdown(f.Note),
		Logo:               f.Logo,
		TapingoUrl:         f.TapingoUrl,
		PhoneNumber:        f.PhoneNumber,
		FacilityClassifier: string(f.Classifier),
		Owners:             owners,
	}
}

type FacilityFilters struct {
	Category           int64   `form:"category"`
	OnCampus           *bool   `form:"on_campus"`
	CampusRegion       string  `form:"campus_region" binding:"omitempty,campus_region"`
	FacilityClassifier *string `form:"facility_classifier" binding:"omitempty,facility_classifier"`
	OpenNow            *bool   `form:"open_now"`
	Search             string  `form:"search"`
	Tags               string  `form:"tags"`
}

func AdaptFacilityFilters(f FacilityFilters) models.FacilityFilters {
	filters := models.FacilityFilters{
		CategoryId:   f.Category,
		OnCampus:     f.OnCampus,
		CampusRegion: models.CampusRegion(f.CampusRegion),
		OpenNow:      f.OpenNow,
		Search:       strings.TrimSpace(f.Search),
		Tags:         splitTags(f.Tags),
	}
	if f.FacilityClassifier != nil {
		filters.Classifier = pure_utils.Ptr(models.FacilityClassifier(*f.FacilityClassifier))
	}
	return filters
}

func splitTags(raw string) []string {
	tags := make([]string, 0)
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return pure_utils.Uniq(tags)
}

type CreateFacilityBody struct {
	Name               string   `json:"facility_name" binding:"required,max=100"`
	Category           int64    `json:"facility_category" binding:"required"`
	Location           int64    `json:"facility_location" binding:"required"`
	MainSchedule       int64    `json:"main_schedule" binding:"required"`
	SpecialSchedules   []int64  `json:"special_schedules"`
	Note               string   `json:"note"`
	Logo               string   `json:"logo" binding:"omitempty,url,max=200"`
	TapingoUrl         string   `json:"tapingo_url" binding:"omitempty,tapingo_url,max=200"`
	PhoneNumber        string   `json:"phone_number" binding:"omitempty,phone,max=18"`
	FacilityClassifier string   `json:"facility_classifier" binding:"omitempty,facility_classifier"`
	ProductTags        []string `json:"facility_product_tags" binding:"dive,min=1,max=100"`
	Owners             []int64  `json:"owners"`
}

func AdaptCreateFacilityInput(body CreateFacilityBody) models.CreateFacilityInput {
	logo := body.Logo
	if logo == "" {
		logo = models.DefaultFacilityLogo
	}
	return models.CreateFacilityInput{
		Name:               body.Name,
		CategoryId:         body.Category,
		LocationId:         body.Location,
		MainScheduleId:     body.MainSchedule,
		Note:               body.Note,
		Logo:               logo,
		TapingoUrl:         body.TapingoUrl,
		PhoneNumber:        body.PhoneNumber,
		Classifier:         models.FacilityClassifier(body.FacilityClassifier),
		ProductTags:        body.ProductTags,
		OwnerIds:           body.Owners,
		SpecialScheduleIds: body.SpecialSchedules,
	}
}

type UpdateFacilityBody struct {
	Name               *string   `json:"facility_name" binding:"omitempty,min=1,max=100"`
	Category           *int64    `json:"facility_category" binding:"omitempty,min=1"`
	Location           *int64    `json:"facility_location" binding:"omitempty,min=1"`
	MainSchedule       *int64    `json:"main_schedule" binding:"omitempty,min=1"`
	SpecialSchedules   *[]int64  `json:"special_schedules"`
	Note               *string   `json:"note"`
	Logo               *string   `json:"logo" binding:"omitempty,url,max=200"`
	TapingoUrl         *string   `json:"tapingo_url" binding:"omitempty,tapingo_url,max=200"`
	PhoneNumber        *string   `json:"phone_number" binding:"omitempty,phone,max=18"`
	FacilityClassifier *string   `json:"facility_classifier" binding:"omitempty,facility_classifier"`
	ProductTags        *[]string `json:"facility_product_tags" binding:"omitempty,dive,min=1,max=100"`
	Owners             *[]int64  `json:"owners"`
}

func AdaptUpdateFacilityInput(slug string, body UpdateFacilityBody) models.UpdateFacilityInput {
	input := models.UpdateFacilityInput{
		Slug:               slug,
		Name:               body.Name,
		CategoryId:         body.Category,
		LocationId:         body.Location,
		MainScheduleId:     body.MainSchedule,
		Note:               body.Note,
		Logo:               body.Logo,
		TapingoUrl:         body.TapingoUrl,
		PhoneNumber:        body.PhoneNumber,
		ProductTags:        body.ProductTags,
		OwnerIds:           body.Owners,
		SpecialScheduleIds: body.SpecialSchedules,
	}
	if body.FacilityClassifier != nil {
		input.Classifier = pure_utils.Ptr(models.FacilityClassifier(*body.FacilityClassifier))
	}
	return input
}
