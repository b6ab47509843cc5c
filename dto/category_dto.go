package dto

import (
	"time"

	"github.com/srct/whats-open/models"
)

type APICategory struct {
	Id       int64     `json:"id"`
	Name     string    `json:"name"`
	Modified time.Time `json:"modified"`
}

func AdaptCategoryDto(c models.Category) APICategory {
	return APICategory{
		Id:       c.Id,
		Name:     c.Name,
		Modified: c.UpdatedAt,
	}
}

type CategoryFilters struct {
	Name string `form:"name"`
}

func AdaptCategoryFilters(f CategoryFilters) models.CategoryFilters {
	return models.CategoryFilters{Name: f.Name}
}

type CreateCategoryBody struct {
	Name string `json:"name" binding:"required,max=100"`
}

func AdaptCreateCategoryInput(body CreateCategoryBody) models.CreateCategoryInput {
	return models.CreateCategoryInput{Name: body.Name}
}

type UpdateCategoryBody struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
}

func AdaptUpdateCategoryInput(id int64, body UpdateCategoryBody) models.UpdateCategoryInput {
	return models.UpdateCategoryInput{Id: id, Name: body.Name}
}
