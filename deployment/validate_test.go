package deployment

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCompose = `
services:
  db:
    image: mysql:5.7
    ports:
      - "3306:3306"
    environment:
      MYSQL_ALLOW_EMPTY_PASSWORD: "no"
      MYSQL_DATABASE: wopen
      MYSQL_USER: wopen
      MYSQL_PASSWORD: ${DB_PASSWORD}
  api:
    build: .
    ports:
      - "8000:8000"
    depends_on:
      - db
    environment:
      - WOPEN_EMAIL_DOMAIN=gmu.edu
      - WOPEN_DB_NAME=wopen
      - WOPEN_DB_USER=wopen
      - WOPEN_DB_PASSWORD=${DB_PASSWORD}
      - WOPEN_DB_HOST=db
      - WOPEN_DB_PORT=3306
      - WOPEN_SUPERUSER=${WOPEN_SUPERUSER:-admin}
      - WOPEN_ENV
`

func parse(t *testing.T, document string) Compose {
	t.Helper()
	compose, err := ParseCompose([]byte(document))
	require.NoError(t, err)
	return compose
}

func messages(violations Violations) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.String()
	}
	return out
}

func TestValidate(t *testing.T) {
	env := map[string]string{"DB_PASSWORD": "s3cret", "WOPEN_ENV": "production"}

	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, Validate(parse(t, validCompose), env))
	})

	t.Run("unset variables are reported on both services", func(t *testing.T) {
		violations := Validate(parse(t, validCompose), map[string]string{})
		assert.ElementsMatch(t, []string{
			"db: MYSQL_PASSWORD is empty",
			"api: WOPEN_DB_PASSWORD is empty",
			"api: WOPEN_ENV is empty",
		}, messages(violations))
	})

	t.Run("empty password allowed", func(t *testing.T) {
		document := strings.Replace(validCompose, `MYSQL_ALLOW_EMPTY_PASSWORD: "no"`, `MYSQL_ALLOW_EMPTY_PASSWORD: "yes"`, 1)
		violations := Validate(parse(t, document), map[string]string{"WOPEN_ENV": "development"})
		assert.Empty(t, violations)
	})

	t.Run("missing dependency and declaration", func(t *testing.T) {
		document := strings.Replace(validCompose, "    depends_on:\n      - db\n", "", 1)
		document = strings.Replace(document, "      - WOPEN_DB_HOST=db\n", "", 1)
		violations := Validate(parse(t, document), env)
		assert.ElementsMatch(t, []string{
			`api: depends_on must contain "db"`,
			"api: WOPEN_DB_HOST is not declared",
		}, messages(violations))
	})

	t.Run("wrong ports", func(t *testing.T) {
		document := strings.Replace(validCompose, `"8000:8000"`, `"3306:8000"`, 1)
		violations := Validate(parse(t, document), env)
		assert.ElementsMatch(t, []string{
			"db: host port 3306 is already published by api",
			"api: must publish 8000:8000",
		}, messages(violations))
	})

	t.Run("extra service", func(t *testing.T) {
		document := validCompose + "  cache:\n    image: redis\n"
		violations := Validate(parse(t, document), env)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0].Message, "expected exactly the services")
	})

	t.Run("required and alternate modifiers", func(t *testing.T) {
		document := strings.Replace(validCompose, "WOPEN_EMAIL_DOMAIN=gmu.edu", "WOPEN_EMAIL_DOMAIN=${DOMAIN:?set DOMAIN}", 1)
		document = strings.Replace(document, "WOPEN_DB_HOST=db", "WOPEN_DB_HOST=${DB_HOST:+mysql}", 1)
		withDomain := map[string]string{"DB_PASSWORD": "s3cret", "WOPEN_ENV": "production", "DOMAIN": "gmu.edu", "DB_HOST": "x"}
		assert.Empty(t, Validate(parse(t, document), withDomain))

		violations := Validate(parse(t, document), env)
		assert.ElementsMatch(t, []string{
			"api: WOPEN_EMAIL_DOMAIN is empty",
			"api: WOPEN_DB_HOST is empty",
		}, messages(violations))
	})

	t.Run("merged environment", func(t *testing.T) {
		document := `
x-api-env: &apienv
  WOPEN_DB_NAME: wopen
  WOPEN_DB_USER: wopen
services:
  db:
    image: mysql:5.7
    ports:
      - "3306:3306"
    environment:
      MYSQL_ALLOW_EMPTY_PASSWORD: "no"
      MYSQL_DATABASE: wopen
      MYSQL_USER: wopen
      MYSQL_PASSWORD: ${DB_PASSWORD}
  api:
    build: .
    ports:
      - "8000:8000"
    depends_on:
      - db
    environment:
      <<: *apienv
      WOPEN_EMAIL_DOMAIN: gmu.edu
      WOPEN_DB_PASSWORD: ${DB_PASSWORD}
      WOPEN_DB_HOST: db
      WOPEN_DB_PORT: 3306
      WOPEN_SUPERUSER: admin
      WOPEN_ENV:
`
		compose := parse(t, document)
		assert.NotContains(t, compose.Services["api"].Environment, "<<")
		assert.Empty(t, Validate(compose, env))
	})

	t.Run("interpolated long syntax ports", func(t *testing.T) {
		document := strings.Replace(validCompose, `      - "3306:3306"`,
			"      - target: 3306\n        published: \"${DB_PORT:-3306}\"", 1)
		assert.Empty(t, Validate(parse(t, document), env))

		violations := Validate(parse(t, document), map[string]string{"DB_PASSWORD": "s3cret", "WOPEN_ENV": "production", "DB_PORT": "3307"})
		assert.Equal(t, []string{"db: must publish 3306:3306"}, messages(violations))

		violations = Validate(parse(t, document), map[string]string{"DB_PASSWORD": "s3cret", "WOPEN_ENV": "production", "DB_PORT": "http"})
		assert.ElementsMatch(t, []string{
			`db: invalid port "http" in "http:3306"`,
			"db: must publish 3306:3306",
		}, messages(violations))
	})

	t.Run("service without image or build", func(t *testing.T) {
		document := strings.Replace(validCompose, "    image: mysql:5.7\n", "", 1)
		violations := Validate(parse(t, document), env)
		assert.Equal(t, []string{"db: declares neither image nor build"}, messages(violations))
	})
}

func TestRepositoryComposeFile(t *testing.T) {
	data, err := os.ReadFile("../docker-compose.yml")
	require.NoError(t, err)

	compose, err := ParseCompose(data)
	require.NoError(t, err)
	assert.Empty(t, Validate(compose, map[string]string{}))
}

func TestInterpolate(t *testing.T) {
	env := map[string]string{"HOST": "db", "EMPTY": ""}

	tests := []struct {
		value string
		want  string
	}{
		{"${HOST}", "db"},
		{"$HOST:3306", "db:3306"},
		{"${MISSING:-fallback}", "fallback"},
		{"${EMPTY:-fallback}", "fallback"},
		{"${EMPTY-fallback}", ""},
		{"${MISSING-fallback}", "fallback"},
		{"${MISSING}", ""},
		{"${HOST:?host is required}", "db"},
		{"${MISSING:?host is required}", ""},
		{"${HOST?host is required}", "db"},
		{"${HOST:+replica}", "replica"},
		{"${EMPTY:+replica}", ""},
		{"${EMPTY+replica}", "replica"},
		{"${MISSING+replica}", ""},
		{"price: $$5", "price: $5"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(tt.value, env))
		})
	}
}

func TestEnvironMap(t *testing.T) {
	env := EnvironMap([]string{"A=1", "B=x=y", "C="})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "C": ""}, env)
}
