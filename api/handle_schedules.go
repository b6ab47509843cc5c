package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/usecases"
)

func handleListSchedules(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewScheduleUsecase()
		schedules, err := usecase.ListSchedules(ctx)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(schedules, dto.AdaptScheduleDto))
	}
}

func handleGetSchedule(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewScheduleUsecase()
		schedule, err := usecase.GetSchedule(ctx, id)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptScheduleDto(schedule))
	}
}

func handleCreateSchedule(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateScheduleBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewScheduleUsecase()
		schedule, err := usecase.CreateSchedule(ctx, dto.AdaptCreateScheduleInput(body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptScheduleDto(schedule))
	}
}

func handleUpdateSchedule(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}
		var body dto.UpdateScheduleBody
		if presentError(c, bindJSON(c, &body)) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewScheduleUsecase()
		schedule, err := usecase.UpdateSchedule(ctx, dto.AdaptUpdateScheduleInput(id, body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptScheduleDto(schedule))
	}
}

func handleDeleteSchedule(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := idParam(c)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewScheduleUsecase()
		if presentError(c, usecase.DeleteSchedule(ctx, id)) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
