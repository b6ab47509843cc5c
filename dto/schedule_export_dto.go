package dto

import (
	"time"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
)

// APIScheduleExport is wrapped in an object so the top level of the document is never an array.
type APIScheduleExport struct {
	Data []APIExportedFacility `json:"data"`
}

type APIExportedFacility struct {
	Id               int64         `json:"id"`
	Name             string        `json:"name"`
	Slug             string        `json:"slug"`
	Category         APICategory   `json:"category"`
	MainSchedule     APISchedule   `json:"main_schedule"`
	SpecialSchedules []APISchedule `json:"special_schedules"`
	IsOpen           bool          `json:"is_open"`
	Modified         time.Time     `json:"modified"`
}

func AdaptScheduleExportDto(export models.ScheduleExport, now time.Time) APIScheduleExport {
	return APIScheduleExport{
		Data: pure_utils.Map(export.Facilities, func(f models.Facility) APIExportedFacility {
			return APIExportedFacility{
				Id:               f.Id,
				Name:             f.Name,
				Slug:             f.Slug,
				Category:         AdaptCategoryDto(f.Category),
				MainSchedule:     AdaptScheduleDto(f.MainSchedule),
				SpecialSchedules: pure_utils.Map(f.SpecialSchedules, AdaptScheduleDto),
				IsOpen:           f.IsOpenAt(now),
				Modified:         f.UpdatedAt,
			}
		}),
	}
}
