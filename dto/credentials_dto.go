package dto

import (
	"github.com/srct/whats-open/models"
)

type Credentials struct {
	UserId      int64  `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
}

func AdaptCredentialDto(creds models.Credentials) Credentials {
	return Credentials{
		UserId:      creds.UserId,
		Username:    creds.Username,
		Email:       creds.Email,
		IsSuperuser: creds.IsSuperuser,
	}
}

func AdaptCredentials(dto Credentials) models.Credentials {
	return models.Credentials{
		UserId:      dto.UserId,
		Username:    dto.Username,
		Email:       dto.Email,
		IsSuperuser: dto.IsSuperuser,
	}
}
