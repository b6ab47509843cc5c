package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/usecases"
)

func handleListLocations(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var filters dto.LocationFilters
		if presentError(c, bindQuery(c, &filters)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewLocationUsecase()
		locations, err := usecase.ListLocations(ctx, dto.AdaptLocationFilters(filters))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(locations, dto.AdaptLocationDto))
	}
}

func handleGetLocation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewLocationUsecase()
		location, err := usecase.GetLocation(ctx, id)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptLocationDto(location))
	}
}

func handleCreateLocation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateLocationBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}
		input, err := dto.AdaptCreateLocationInput(body)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewLocationUsecase()
		location, err := usecase.CreateLocation(ctx, input)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptLocationDto(location))
	}
}

func handleUpdateLocation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}
		var body dto.UpdateLocationBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}
		input, err := dto.AdaptUpdateLocationInput(id, body)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewLocationUsecase()
		location, err := usecase.UpdateLocation(ctx, input)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptLocationDto(location))
	}
}

func handleDeleteLocation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewLocationUsecase()
		if presentError(c, usecase.DeleteLocation(ctx, id)) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
