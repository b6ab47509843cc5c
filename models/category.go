package models

import "time"

type Category struct {
	Id        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Category) String() string {
	return c.Name
}

type CreateCategoryInput struct {
	Name string
}

type UpdateCategoryInput struct {
	Id   int64
	Name *string
}

type CategoryFilters struct {
	Name string
}
