package models

// Credentials are carried by the access token handed out after a CAS login.
type Credentials struct {
	UserId      int64
	Username    string
	Email       string
	IsSuperuser bool
}

func (c Credentials) IsAuthenticated() bool {
	return c.UserId != 0
}
