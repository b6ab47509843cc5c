package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
)

type APIOpenTime struct {
	Id        int64     `json:"id"`
	Modified  time.Time `json:"modified"`
	Schedule  int64     `json:"schedule"`
	StartDay  int       `json:"start_day"`
	StartTime string    `json:"start_time"`
	EndDay    int       `json:"end_day"`
	EndTime   string    `json:"end_time"`
}

func AdaptOpenTimeDto(ot models.OpenTime) APIOpenTime {
	return APIOpenTime{
		Id:        ot.Id,
		Modified:  ot.UpdatedAt,
		Schedule:  ot.ScheduleId,
		StartDay:  int(ot.StartDay),
		StartTime: ot.StartTime.String(),
		EndDay:    int(ot.EndDay),
		EndTime:   ot.EndTime.String(),
	}
}

type APISchedule struct {
	Id              int64         `json:"id"`
	OpenTimes       []APIOpenTime `json:"open_times"`
	Modified        time.Time     `json:"modified"`
	Name            string        `json:"name"`
	ValidStart      null.Time     `json:"valid_start"`
	ValidEnd        null.Time     `json:"valid_end"`
	TwentyFourHours bool          `json:"twenty_four_hours"`
}

func AdaptScheduleDto(s models.Schedule) APISchedule {
	return APISchedule{
		Id:              s.Id,
		OpenTimes:       pure_utils.Map(s.OpenTimes, AdaptOpenTimeDto),
		Modified:        s.UpdatedAt,
		Name:            s.Name,
		ValidStart:      s.ValidStart,
		ValidEnd:        s.ValidEnd,
		TwentyFourHours: s.TwentyFourHours,
	}
}

type CreateScheduleBody struct {
	Name            string    `json:"name" binding:"required,max=100"`
	ValidStart      null.Time `json:"valid_start"`
	ValidEnd        null.Time `json:"valid_end"`
	TwentyFourHours bool      `json:"twenty_four_hours"`
}

func AdaptCreateScheduleInput(body CreateScheduleBody) models.CreateScheduleInput {
	return models.CreateScheduleInput{
		Name:            body.Name,
		ValidStart:      body.ValidStart,
		ValidEnd:        body.ValidEnd,
		TwentyFourHours: body.TwentyFourHours,
	}
}

type UpdateScheduleBody struct {
	Name            *string                    `json:"name" binding:"omitempty,min=1,max=100"`
	ValidStart      pure_utils.Null[time.Time] `json:"valid_start"`
	ValidEnd        pure_utils.Null[time.Time] `json:"valid_end"`
	TwentyFourHours *bool                      `json:"twenty_four_hours"`
}

func AdaptUpdateScheduleInput(id int64, body UpdateScheduleBody) models.UpdateScheduleInput {
	input := models.UpdateScheduleInput{
		Id:              id,
		Name:            body.Name,
		TwentyFourHours: body.TwentyFourHours,
	}
	if body.ValidStart.Set {
		input.ValidStart = pure_utils.Ptr(null.TimeFromPtr(body.ValidStart.Ptr()))
	}
	if body.ValidEnd.Set {
		input.ValidEnd = pure_utils.Ptr(null.TimeFromPtr(body.ValidEnd.Ptr()))
	}
	return input
}

type OpenTimeFilters struct {
	Schedule int64 `form:"schedule"`
}

func AdaptOpenTimeFilters(f OpenTimeFilters) models.OpenTimeFilters {
	return models.OpenTimeFilters{ScheduleId: f.Schedule}
}

type CreateOpenTimeBody struct {
	Schedule  int64  `json:"schedule" binding:"required"`
	StartDay  *int   `json:"start_day" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required,time_of_day"`
	EndDay    *int   `json:"end_day" binding:"required,min=0,max=6"`
	EndTime   string `json:"end_time" binding:"required,time_of_day"`
}

func AdaptCreateOpenTimeInput(body CreateOpenTimeBody) (models.CreateOpenTimeInput, error) {
	startTime, err := models.ParseTimeOfDay(body.StartTime)
	if err != nil {
		return models.CreateOpenTimeInput{}, err
	}
	endTime, err := models.ParseTimeOfDay(body.EndTime)
	if err != nil {
		return models.CreateOpenTimeInput{}, err
	}
	return models.CreateOpenTimeInput{
		ScheduleId: body.Schedule,
		StartDay:   models.Weekday(*body.StartDay),
		StartTime:  startTime,
		EndDay:     models.Weekday(*body.EndDay),
		EndTime:    endTime,
	}, nil
}

type UpdateOpenTimeBody struct {
	StartDay  *int    `json:"start_day" binding:"omitempty,min=0,max=6"`
	StartTime *string `json:"start_time" binding:"omitempty,time_of_day"`
	EndDay    *int    `json:"end_day" binding:"omitempty,min=0,max=6"`
	EndTime   *string `json:"end_time" binding:"omitempty,time_of_day"`
}

func AdaptUpdateOpenTimeInput(id int64, body UpdateOpenTimeBody) (models.UpdateOpenTimeInput, error) {
	input := models.UpdateOpenTimeInput{Id: id}
	if body.StartDay != nil {
		input.StartDay = pure_utils.Ptr(models.Weekday(*body.StartDay))
	}
	if body.EndDay != nil {
		input.EndDay = pure_utils.Ptr(models.Weekday(*body.EndDay))
	}
	if body.StartTime != nil {
		t, err := models.ParseTimeOfDay(*body.StartTime)
		if err != nil {
			return input, err
		}
		input.StartTime = &t
	}
	if body.EndTime != nil {
		t, err := models.ParseTimeOfDay(*body.EndTime)
		if err != nil {
			return input, err
		}
		input.EndTime = &t
	}
	return input, nil
}
