package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/usecases"
)

func handleListAlerts(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var filters dto.AlertFilters
		if presentError(c, bindQuery(c, &filters)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAlertUsecase()
		alerts, err := usecase.ListAlerts(ctx, dto.AdaptAlertFilters(filters))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(alerts, dto.AdaptAlertDto))
	}
}

func handleGetAlert(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAlertUsecase()
		alert, err := usecase.GetAlert(ctx, id)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptAlertDto(alert))
	}
}

func handleCreateAlert(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateAlertBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAlertUsecase()
		alert, err := usecase.CreateAlert(ctx, dto.AdaptCreateAlertInput(body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptAlertDto(alert))
	}
}

func handleUpdateAlert(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}
		var body dto.UpdateAlertBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAlertUsecase()
		alert, err := usecase.UpdateAlert(ctx, dto.AdaptUpdateAlertInput(id, body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptAlertDto(alert))
	}
}

func handleDeleteAlert(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAlertUsecase()
		if presentError(c, usecase.DeleteAlert(ctx, id)) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
