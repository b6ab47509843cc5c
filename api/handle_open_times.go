package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/usecases"
)

func handleListOpenTimes(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var filters dto.OpenTimeFilters
		if presentError(c, bindQuery(c, &filters)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewOpenTimeUsecase()
		openTimes, err := usecase.ListOpenTimes(ctx, dto.AdaptOpenTimeFilters(filters))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(openTimes, dto.AdaptOpenTimeDto))
	}
}

func handleGetOpenTime(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewOpenTimeUsecase()
		openTime, err := usecase.GetOpenTime(ctx, id)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptOpenTimeDto(openTime))
	}
}

func handleCreateOpenTime(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateOpenTimeBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}
		input, err := dto.AdaptCreateOpenTimeInput(body)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewOpenTimeUsecase()
		openTime, err := usecase.CreateOpenTime(ctx, input)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptOpenTimeDto(openTime))
	}
}

func handleUpdateOpenTime(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}
		var body dto.UpdateOpenTimeBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}
		input, err := dto.AdaptUpdateOpenTimeInput(id, body)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewOpenTimeUsecase()
		openTime, err := usecase.UpdateOpenTime(ctx, input)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptOpenTimeDto(openTime))
	}
}

func handleDeleteOpenTime(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewOpenTimeUsecase()
		if presentError(c, usecase.DeleteOpenTime(ctx, id)) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
