package dto

import (
	"time"

	"github.com/srct/whats-open/models"
)

type APIAlert struct {
	Id            int64     `json:"id"`
	Modified      time.Time `json:"modified"`
	UrgencyTag    string    `json:"urgency_tag"`
	Subject       string    `json:"subject"`
	Body          string    `json:"body"`
	BodyHtml      string    `json:"body_html"`
	Url           string    `json:"url"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

func AdaptAlertDto(a models.Alert) APIAlert {
	return APIAlert{
		Id:            a.Id,
		Modified:      a.UpdatedAt,
		UrgencyTag:    string(a.UrgencyTag),
		Subject:       a.Subject,
		Body:          a.Body,
		BodyHtml:      renderMarkdown(a.Body),
		Url:           a.Url,
		StartDatetime: a.StartDatetime,
		EndDatetime:   a.EndDatetime,
	}
}

type AlertFilters struct {
	All        bool   `form:"all"`
	UrgencyTag string `form:"urgency_tag" binding:"omitempty,urgency_tag"`
}

func AdaptAlertFilters(f AlertFilters) models.AlertFilters {
	return models.AlertFilters{
		All:        f.All,
		UrgencyTag: models.UrgencyTag(f.UrgencyTag),
	}
}

type CreateAlertBody struct {
	UrgencyTag    string    `json:"urgency_tag" binding:"omitempty,urgency_tag"`
	Subject       string    `json:"subject" binding:"required,max=130"`
	Body          string    `json:"body"`
	Url           string    `json:"url" binding:"omitempty,url,max=200"`
	StartDatetime time.Time `json:"start_datetime" binding:"required"`
	EndDatetime   time.Time `json:"end_datetime" binding:"required,gtfield=StartDatetime"`
}

func AdaptCreateAlertInput(body CreateAlertBody) models.CreateAlertInput {
	urgency := models.UrgencyTag(body.UrgencyTag)
	if urgency == "" {
		urgency = models.UrgencyInfo
	}
	return models.CreateAlertInput{
		UrgencyTag:    urgency,
		Subject:       body.Subject,
		Body:          body.Body,
		Url:           body.Url,
		StartDatetime: body.StartDatetime.UTC(),
		EndDatetime:   body.EndDatetime.UTC(),
	}
}

type UpdateAlertBody struct {
	UrgencyTag    *string    `json:"urgency_tag" binding:"omitempty,urgency_tag"`
	Subject       *string    `json:"subject" binding:"omitempty,min=1,max=130"`
	Body          *string    `json:"body"`
	Url           *string    `json:"url" binding:"omitempty,url,max=200"`
	StartDatetime *time.Time `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
}

func AdaptUpdateAlertInput(id int64, body UpdateAlertBody) models.UpdateAlertInput {
	input := models.UpdateAlertInput{
		Id:      id,
		Subject: body.Subject,
		Body:    body.Body,
		Url:     body.Url,
	}
	if body.UrgencyTag != nil {
		urgency := models.UrgencyTag(*body.UrgencyTag)
		input.UrgencyTag = &urgency
	}
	if body.StartDatetime != nil {
		start := body.StartDatetime.UTC()
		input.StartDatetime = &start
	}
	if body.EndDatetime != nil {
		end := body.EndDatetime.UTC()
		input.EndDatetime = &end
	}
	return input
}
