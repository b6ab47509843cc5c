package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("WOPEN_TEST_STRING", "fairfax")
	t.Setenv("WOPEN_TEST_INT", "42")
	t.Setenv("WOPEN_TEST_BOOL", "true")
	t.Setenv("WOPEN_TEST_EMPTY", "")

	assert.Equal(t, "fairfax", GetEnv("WOPEN_TEST_STRING", "arlington"))
	assert.Equal(t, 42, GetEnv("WOPEN_TEST_INT", 0))
	assert.True(t, GetEnv("WOPEN_TEST_BOOL", false))
	assert.Equal(t, "default", GetEnv("WOPEN_TEST_EMPTY", "default"))
	assert.Equal(t, 8000, GetEnv("WOPEN_TEST_UNSET", 8000))
}

func TestGetEnv_InvalidValuePanics(t *testing.T) {
	t.Setenv("WOPEN_TEST_INT", "not a number")
	assert.Panics(t, func() { GetEnv("WOPEN_TEST_INT", 0) })
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("WOPEN_TEST_SECONDS", "30")
	t.Setenv("WOPEN_TEST_DURATION", "2m")

	assert.Equal(t, 30*time.Second, GetEnvDuration("WOPEN_TEST_SECONDS", time.Second))
	assert.Equal(t, 2*time.Minute, GetEnvDuration("WOPEN_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("WOPEN_TEST_UNSET", time.Second))
}
