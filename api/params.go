package api

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/models"
)

func idParam(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(models.BadParameterError, "invalid id %q", raw)
	}
	return id, nil
}

func bindJSON(c *gin.Context, body any) error {
	if err := c.ShouldBindJSON(body); err != nil {
		return dto.AdaptBindingError(err)
	}
	return nil
}

func bindQuery(c *gin.Context, filters any) error {
	if err := c.ShouldBindQuery(filters); err != nil {
		return dto.AdaptBindingError(err)
	}
	return nil
}
