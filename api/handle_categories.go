package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/usecases"
)

func handleListCategories(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var filters dto.CategoryFilters
		if presentError(c, bindQuery(c, &filters)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCategoryUsecase()
		categories, err := usecase.ListCategories(ctx, dto.AdaptCategoryFilters(filters))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(categories, dto.AdaptCategoryDto))
	}
}

func handleGetCategory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCategoryUsecase()
		category, err := usecase.GetCategory(ctx, id)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptCategoryDto(category))
	}
}

func handleCreateCategory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateCategoryBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCategoryUsecase()
		category, err := usecase.CreateCategory(ctx, dto.AdaptCreateCategoryInput(body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptCategoryDto(category))
	}
}

func handleUpdateCategory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}
		var body dto.UpdateCategoryBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCategoryUsecase()
		category, err := usecase.UpdateCategory(ctx, dto.AdaptUpdateCategoryInput(id, body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptCategoryDto(category))
	}
}

func handleDeleteCategory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCategoryUsecase()
		if presentError(c, usecase.DeleteCategory(ctx, id)) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
