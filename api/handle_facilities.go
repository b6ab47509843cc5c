package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/usecases"
)

func handleListFacilities(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var filters dto.FacilityFilters
		if presentError(c, bindQuery(c, &filters)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewFacilityUsecase()
		facilities, err := usecase.ListFacilities(ctx, dto.AdaptFacilityFilters(filters))
		if presentError(c, err) {
			return
		}
		now := usecase.Now()
		c.JSON(http.StatusOK, pure_utils.Map(facilities, func(f models.Facility) dto.APIFacility {
			return dto.AdaptFacilityDto(f, now)
		}))
	}
}

func handleGetFacility(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewFacilityUsecase()
		facility, err := usecase.GetFacility(ctx, c.Param("slug"))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptFacilityDto(facility, usecase.Now()))
	}
}

func handleCreateFacility(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateFacilityBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewFacilityUsecase()
		facility, err := usecase.CreateFacility(ctx, dto.AdaptCreateFacilityInput(body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptFacilityDto(facility, usecase.Now()))
	}
}

func handleUpdateFacility(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.UpdateFacilityBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewFacilityUsecase()
		facility, err := usecase.UpdateFacility(ctx, dto.AdaptUpdateFacilityInput(c.Param("slug"), body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptFacilityDto(facility, usecase.Now()))
	}
}

func handleDeleteFacility(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewFacilityUsecase()
		if presentError(c, usecase.DeleteFacility(ctx, c.Param("slug"))) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
