package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srct/whats-open/api"
	"github.com/srct/whats-open/infra"
)

func validConfig() ServerConfig {
	return ServerConfig{
		Api: api.Configuration{
			Env:       "production",
			Port:      "8000",
			PublicUrl: "https://whatsopen.gmu.edu",
		},
		Database: infra.MysqlConfig{
			Host:     "db",
			Port:     "3306",
			Database: "wopen",
			User:     "wopen",
		},
		EmailDomain:   "gmu.edu",
		TokenLifetime: 2 * time.Hour,
		Timezone:      "UTC",
		CasUrl:        "https://login.gmu.edu",
		LoggingFormat: "json",
	}
}

func TestServerConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("every problem is reported", func(t *testing.T) {
		config := validConfig()
		config.EmailDomain = ""
		config.Database.Port = "mysql"
		config.Timezone = "Mars/Olympus_Mons"
		config.CasUrl = "login.gmu.edu"

		err := config.Validate()
		assert.ErrorContains(t, err, "WOPEN_EMAIL_DOMAIN")
		assert.ErrorContains(t, err, "WOPEN_DB_PORT")
		assert.ErrorContains(t, err, "WOPEN_TIMEZONE")
		assert.ErrorContains(t, err, "WOPEN_CAS_URL")
	})

	t.Run("logging format", func(t *testing.T) {
		config := validConfig()
		config.LoggingFormat = "xml"
		assert.ErrorContains(t, config.Validate(), "LOGGING_FORMAT")
	})
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("WOPEN_ENV", "production")
	t.Setenv("WOPEN_PORT", "9000")
	t.Setenv("WOPEN_EMAIL_DOMAIN", "gmu.edu")
	t.Setenv("WOPEN_DB_HOST", "db")
	t.Setenv("WOPEN_CORS_ORIGINS", "https://a.gmu.edu, https://b.gmu.edu,")
	t.Setenv("WOPEN_TOKEN_LIFETIME_MINUTE", "30")
	t.Setenv("REQUEST_LOGGING_LEVEL", "debug")
	t.Setenv("WOPEN_TIMEZONE", "UTC")

	config := LoadServerConfig("v1")

	assert.Equal(t, "9000", config.Api.Port)
	assert.Equal(t, "http://localhost:9000", config.Api.PublicUrl)
	assert.Equal(t, []string{"https://a.gmu.edu", "https://b.gmu.edu"}, config.Api.CorsOrigins)
	assert.Equal(t, slog.LevelDebug, config.Api.RequestLoggingLevel)
	assert.Equal(t, 30*time.Minute, config.TokenLifetime)
	assert.Equal(t, "db", config.Database.Host)
	assert.Equal(t, "v1", config.Sentry.Release)
	assert.NoError(t, config.Validate())
}
