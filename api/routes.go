package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/srct/whats-open/usecases"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg("Request timeout"),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, auth Authentication) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.GET("/health", handleHealth(uc))
	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/auth/login", handleLogin(uc, conf))
	r.GET("/auth/callback", handleLoginCallback(uc, conf))
	r.GET("/auth/logout", handleLogout(uc, conf))

	router := r.Group("/", auth.Middleware)
	if conf.DefaultTimeout > 0 {
		router.Use(timeoutMiddleware(conf.DefaultTimeout))
	}

	router.GET("/auth/me", requireAuthentication, handleGetCurrentUser(uc))

	router.GET("/schedule", handleScheduleExport(uc))
	router.GET("/ajax/schedule", handleScheduleExport(uc))

	api := router.Group("/api")

	api.GET("/schedule", handleScheduleExport(uc))

	api.GET("/categories", handleListCategories(uc))
	api.POST("/categories", handleCreateCategory(uc))
	api.GET("/categories/:id", handleGetCategory(uc))
	api.PATCH("/categories/:id", handleUpdateCategory(uc))
	api.DELETE("/categories/:id", handleDeleteCategory(uc))

	api.GET("/locations", handleListLocations(uc))
	api.POST("/locations", handleCreateLocation(uc))
	api.GET("/locations/:id", handleGetLocation(uc))
	api.PATCH("/locations/:id", handleUpdateLocation(uc))
	api.DELETE("/locations/:id", handleDeleteLocation(uc))

	api.GET("/facilities", handleListFacilities(uc))
	api.POST("/facilities", handleCreateFacility(uc))
	api.GET("/facilities/:slug", handleGetFacility(uc))
	api.PATCH("/facilities/:slug", handleUpdateFacility(uc))
	api.DELETE("/facilities/:slug", handleDeleteFacility(uc))

	api.GET("/schedules", handleListSchedules(uc))
	api.POST("/schedules", handleCreateSchedule(uc))
	api.GET("/schedules/:id", handleGetSchedule(uc))
	api.PATCH("/schedules/:id", handleUpdateSchedule(uc))
	api.DELETE("/schedules/:id", handleDeleteSchedule(uc))

	api.GET("/opentimes", handleListOpenTimes(uc))
	api.POST("/opentimes", handleCreateOpenTime(uc))
	api.GET("/opentimes/:id", handleGetOpenTime(uc))
	api.PATCH("/opentimes/:id", handleUpdateOpenTime(uc))
	api.DELETE("/opentimes/:id", handleDeleteOpenTime(uc))

	api.GET("/alerts", handleListAlerts(uc))
	api.POST("/alerts", handleCreateAlert(uc))
	api.GET("/alerts/:id", handleGetAlert(uc))
	api.PATCH("/alerts/:id", handleUpdateAlert(uc))
	api.DELETE("/alerts/:id", handleDeleteAlert(uc))

	api.GET("/users", handleListUsers(uc))
}
