package cmd

import (
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/srct/whats-open/api"
	"github.com/srct/whats-open/infra"
	"github.com/srct/whats-open/utils"
)

type ServerConfig struct {
	Api            api.Configuration
	Database       infra.MysqlConfig
	Sentry         infra.SentryConfig
	EmailDomain    string
	Superuser      string
	SecretKey      string
	TokenLifetime  time.Duration
	Timezone       string
	CasUrl         string
	LoggingFormat  string
	ExportCacheTTL time.Duration
}

func LoadDatabaseConfig() infra.MysqlConfig {
	return infra.MysqlConfig{
		Host:               utils.GetEnv("WOPEN_DB_HOST", "localhost"),
		Port:               utils.GetEnv("WOPEN_DB_PORT", "3306"),
		Database:           utils.GetEnv("WOPEN_DB_NAME", "wopen"),
		User:               utils.GetEnv("WOPEN_DB_USER", "wopen"),
		Password:           utils.GetEnv("WOPEN_DB_PASSWORD", ""),
		MaxOpenConnections: utils.GetEnv("WOPEN_DB_MAX_CONNECTIONS", infra.MAX_CONNECTIONS),
	}
}

func LoadServerConfig(apiVersion string) ServerConfig {
	env := utils.GetEnv("WOPEN_ENV", "development")
	port := utils.GetEnv("WOPEN_PORT", "8000")

	return ServerConfig{
		Api: api.Configuration{
			Env:                 env,
			Port:                port,
			PublicUrl:           utils.GetEnv("WOPEN_PUBLIC_URL", "http://localhost:"+port),
			CorsOrigins:         splitList(utils.GetEnv("WOPEN_CORS_ORIGINS", "")),
			RequestLoggingLevel: parseLogLevel(utils.GetEnv("REQUEST_LOGGING_LEVEL", "info")),
			DefaultTimeout:      utils.GetEnvDuration("WOPEN_DEFAULT_TIMEOUT", 10*time.Second),
			MaxBodySize:         int64(utils.GetEnv("WOPEN_MAX_BODY_SIZE", 1<<20)),
			EnablePrometheus:    utils.GetEnv("ENABLE_PROMETHEUS", false),
		},
		Database: LoadDatabaseConfig(),
		Sentry: infra.SentryConfig{
			Dsn:         utils.GetEnv("SENTRY_DSN", ""),
			Environment: env,
			Release:     apiVersion,
		},
		EmailDomain:    utils.GetEnv("WOPEN_EMAIL_DOMAIN", ""),
		Superuser:      utils.GetEnv("WOPEN_SUPERUSER", ""),
		SecretKey:      utils.GetEnv("WOPEN_SECRET_KEY", ""),
		TokenLifetime:  time.Duration(utils.GetEnv("WOPEN_TOKEN_LIFETIME_MINUTE", 120)) * time.Minute,
		Timezone:       utils.GetEnv("WOPEN_TIMEZONE", "America/New_York"),
		CasUrl:         utils.GetEnv("WOPEN_CAS_URL", "https://login.gmu.edu"),
		LoggingFormat:  utils.GetEnv("LOGGING_FORMAT", "text"),
		ExportCacheTTL: utils.GetEnvDuration("WOPEN_EXPORT_CACHE_TTL", 30*time.Second),
	}
}

// Validate reports every invalid setting at once.
func (config ServerConfig) Validate() error {
	var errs []error
	if config.EmailDomain == "" {
		errs = append(errs, errors.New("WOPEN_EMAIL_DOMAIN is required"))
	}
	if config.Database.Host == "" || config.Database.Database == "" || config.Database.User == "" {
		errs = append(errs, errors.New("WOPEN_DB_HOST, WOPEN_DB_NAME and WOPEN_DB_USER are required"))
	}
	if !isPort(config.Database.Port) {
		errs = append(errs, errors.Newf("WOPEN_DB_PORT %q is not a valid port", config.Database.Port))
	}
	if !isPort(config.Api.Port) {
		errs = append(errs, errors.Newf("WOPEN_PORT %q is not a valid port", config.Api.Port))
	}
	if _, err := time.LoadLocation(config.Timezone); err != nil {
		errs = append(errs, errors.Wrapf(err, "WOPEN_TIMEZONE %q", config.Timezone))
	}
	if !isHttpUrl(config.CasUrl) {
		errs = append(errs, errors.Newf("WOPEN_CAS_URL %q must be an http(s) url", config.CasUrl))
	}
	if !isHttpUrl(config.Api.PublicUrl) {
		errs = append(errs, errors.Newf("WOPEN_PUBLIC_URL %q must be an http(s) url", config.Api.PublicUrl))
	}
	if config.LoggingFormat != "text" && config.LoggingFormat != "json" {
		errs = append(errs, errors.Newf("LOGGING_FORMAT must be text or json, got %q", config.LoggingFormat))
	}
	if config.TokenLifetime <= 0 {
		errs = append(errs, errors.New("WOPEN_TOKEN_LIFETIME_MINUTE must be positive"))
	}
	return errors.Join(errs...)
}

func isPort(s string) bool {
	port, err := strconv.ParseUint(s, 10, 16)
	return err == nil && port > 0
}

func isHttpUrl(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
