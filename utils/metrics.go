package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricScheduleExportCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whats_open",
		Name:      "schedule_export_cache_total",
		Help:      "Lookups of the cached schedule export, by result (hit or miss).",
	}, []string{"result"})

	MetricLoginCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whats_open",
		Name:      "logins_total",
		Help:      "CAS logins by outcome.",
	}, []string{"outcome"})
)
