package api

import (
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/usecases"
)

const callbackPath = "/auth/callback"

// callbackService is the CAS service url. CAS compares it byte for byte between the login
// redirect and the ticket validation, so both sides build it here.
func callbackService(publicUrl, next string) (*url.URL, error) {
	service, err := url.Parse(publicUrl)
	if err != nil {
		return nil, errors.Wrap(err, "invalid public url")
	}
	service = service.JoinPath(callbackPath)
	if next != "" {
		service.RawQuery = url.Values{"next": {next}}.Encode()
	}
	return service, nil
}

func handleLogin(uc usecases.Usecases, conf Configuration) func(c *gin.Context) {
	return func(c *gin.Context) {
		service, err := callbackService(conf.PublicUrl, c.Query("next"))
		if presentError(c, err) {
			return
		}
		usecase := uc.NewAuthUsecase()
		c.Redirect(http.StatusFound, usecase.LoginUrl(service))
	}
}

func handleLoginCallback(uc usecases.Usecases, conf Configuration) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ticket := c.Query("ticket")
		if ticket == "" {
			presentError(c, errors.Wrap(models.BadParameterError, "missing CAS ticket"))
			return
		}
		service, err := callbackService(conf.PublicUrl, c.Query("next"))
		if presentError(c, err) {
			return
		}

		usecase := uc.NewAuthUsecase()
		token, expiresAt, err := usecase.Login(ctx, service, ticket)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptAccessToken(token, expiresAt))
	}
}

func handleLogout(uc usecases.Usecases, conf Configuration) func(c *gin.Context) {
	return func(c *gin.Context) {
		service, err := url.Parse(conf.PublicUrl)
		if presentError(c, err) {
			return
		}
		usecase := uc.NewAuthUsecase()
		c.Redirect(http.StatusFound, usecase.LogoutUrl(service))
	}
}
