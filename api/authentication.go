package api

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/utils"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (models.Credentials, error)
}

type Authentication struct {
	validator tokenValidator
}

func NewAuthentication(validator tokenValidator) Authentication {
	return Authentication{validator: validator}
}

// Middleware stores the credentials of a valid bearer token in the request context. Requests
// without an Authorization header go through anonymously. A malformed, expired or forged
// token is rejected with a 401.
func (a Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()
	token, err := utils.ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		presentError(c, err)
		c.Abort()
		return
	}
	if token == "" {
		c.Next()
		return
	}

	credentials, err := a.validator.ValidateToken(ctx, token)
	if err != nil {
		presentError(c, err)
		c.Abort()
		return
	}

	newContext := utils.StoreCredentialsInContext(ctx, credentials)
	logger := utils.LoggerFromContext(newContext).With(
		slog.String("username", credentials.Username),
		slog.Bool("superuser", credentials.IsSuperuser),
	)
	c.Request = c.Request.WithContext(utils.StoreLoggerInContext(newContext, logger))
	c.Next()
}

func requireAuthentication(c *gin.Context) {
	creds, found := utils.CredentialsFromCtx(c.Request.Context())
	if !found || !creds.IsAuthenticated() {
		presentError(c, models.UnAuthorizedError)
		c.Abort()
		return
	}
	c.Next()
}
