package api

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/utils"
)

func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	ctx := c.Request.Context()
	logger := utils.LoggerFromContext(ctx)
	errorResponse := dto.APIErrorResponse{}

	var fields models.FieldValidationError
	if errors.As(err, &fields) {
		errorResponse.Fields = fields
	}
	switch {
	case errors.Is(err, models.ErrEmailDomainNotAllowed):
		errorResponse.ErrorCode = dto.EmailDomainNotAllowed
	case errors.Is(err, models.ErrInvalidServiceTicket):
		errorResponse.ErrorCode = dto.InvalidServiceTicket
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		logger.InfoContext(ctx, fmt.Sprintf("BadParameterError: %v", err.Error()))
		errorResponse.Message = err.Error()
		c.JSON(http.StatusBadRequest, errorResponse)
	case errors.Is(err, models.UnAuthorizedError):
		logger.InfoContext(ctx, fmt.Sprintf("UnAuthorizedError: %v", err.Error()))
		errorResponse.Message = err.Error()
		c.JSON(http.StatusUnauthorized, errorResponse)
	case errors.Is(err, models.ForbiddenError):
		logger.InfoContext(ctx, fmt.Sprintf("ForbiddenError: %v", err.Error()))
		errorResponse.Message = err.Error()
		c.JSON(http.StatusForbidden, errorResponse)
	case errors.Is(err, models.NotFoundError):
		logger.InfoContext(ctx, fmt.Sprintf("NotFoundError: %v", err.Error()))
		errorResponse.Message = err.Error()
		c.JSON(http.StatusNotFound, errorResponse)
	case errors.Is(err, models.ConflictError):
		logger.InfoContext(ctx, fmt.Sprintf("ConflictError: %v", err.Error()))
		errorResponse.Message = err.Error()
		c.JSON(http.StatusConflict, errorResponse)
	default:
		utils.LogAndReportSentryError(ctx, err)
		errorResponse.Message = "An unexpected error occurred. Please try again later, or contact support if the problem persists."
		c.JSON(http.StatusInternalServerError, errorResponse)
	}
	return true
}
