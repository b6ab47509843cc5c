package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/usecases"
)

func handleGetCurrentUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := usecase.CurrentUser(ctx)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptUserDto(user))
	}
}

func handleListUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		users, err := usecase.ListUsers(ctx)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(users, dto.AdaptUserDto))
	}
}
