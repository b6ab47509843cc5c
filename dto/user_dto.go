package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/srct/whats-open/models"
)

type APIUser struct {
	Id          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsSuperuser bool      `json:"is_superuser"`
	LastLogin   null.Time `json:"last_login"`
	Modified    time.Time `json:"modified"`
}

func AdaptUserDto(u models.User) APIUser {
	return APIUser{
		Id:          u.Id,
		Username:    u.Username,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
		LastLogin:   u.LastLogin,
		Modified:    u.UpdatedAt,
	}
}
