package dto

import (
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
)

type HealthStatusResponse struct {
	IsHealthy bool                       `json:"is_healthy"`
	Status    []HealthItemStatusResponse `json:"status"`
}

type HealthItemStatusResponse struct {
	Name   string `json:"name"`
	IsLive bool   `json:"is_live"`
}

func AdaptHealthItemStatus(status models.HealthItemStatus) HealthItemStatusResponse {
	return HealthItemStatusResponse{
		Name:   string(status.Name),
		IsLive: status.Status,
	}
}

func AdaptHealthStatus(status models.HealthStatus) HealthStatusResponse {
	return HealthStatusResponse{
		IsHealthy: status.IsHealthy(),
		Status:    pure_utils.Map(status.Statuses, AdaptHealthItemStatus),
	}
}
