package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srct/whats-open/dto"
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/usecases"
)

// handleScheduleExport serves the legacy export used by the kiosk front end. It answers
// conditional requests with a 304 when the client copy is still current.
func handleScheduleExport(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewScheduleExportUsecase()
		export, err := usecase.GetScheduleExport(ctx)
		if presentError(c, err) {
			return
		}

		etag := `"` + export.ETag + `"`
		c.Header("ETag", etag)
		if !export.LastModified.IsZero() {
			c.Header("Last-Modified", export.LastModified.UTC().Format(http.TimeFormat))
		}
		if notModified(c.Request, etag, export) {
			c.Status(http.StatusNotModified)
			return
		}

		c.JSON(http.StatusOK, dto.AdaptScheduleExportDto(export, uc.Now()))
	}
}

// notModified applies If-None-Match first. If-Modified-Since is only looked at when the
// request carries no entity tag, and is compared at the one-second precision of HTTP dates.
func notModified(r *http.Request, etag string, export models.ScheduleExport) bool {
	if inm := r.Header.Get("If-None-Match"); inm != "" {
		for _, candidate := range strings.Split(inm, ",") {
			candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
			if candidate == "*" || candidate == etag {
				return true
			}
		}
		return false
	}

	ims := r.Header.Get("If-Modified-Since")
	if ims == "" || export.LastModified.IsZero() {
		return false
	}
	since, err := http.ParseTime(ims)
	if err != nil {
		return false
	}
	return !export.LastModified.Truncate(time.Second).After(since)
}
