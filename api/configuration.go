package api

import (
	"log/slog"
	"time"
)

type Configuration struct {
	Env                 string
	Port                string
	PublicUrl           string
	CorsOrigins         []string
	RequestLoggingLevel slog.Level
	DefaultTimeout      time.Duration
	MaxBodySize         int64
	EnablePrometheus    bool
}
