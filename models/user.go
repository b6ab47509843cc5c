package models

import (
	"time"

	"github.com/guregu/null/v5"
)

type User struct {
	Id          int64
	Username    string
	Email       string
	IsSuperuser bool
	LastLogin   null.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (u User) Credentials() Credentials {
	return Credentials{
		UserId:      u.Id,
		Username:    u.Username,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
	}
}

type UpsertUserAttributes struct {
	Username  string
	Email     string
	LastLogin time.Time
}

// CasIdentity is what a successful service ticket validation tells us about the user.
type CasIdentity struct {
	Username   string
	Attributes map[string][]string
}

func (i CasIdentity) Attribute(name string) string {
	values := i.Attributes[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
