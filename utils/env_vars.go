package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type envVarType interface {
	string | int | bool | float64
}

func GetEnv[T envVarType](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	value, err := parseEnvValue[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVar, err))
	}
	return value
}

func GetRequiredEnv[T envVarType](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	value, err := parseEnvValue[T](envValue)
	if err != nil {
		log.Fatalf("Environment variable %s is not valid: %s", envVar, err)
	}
	return value
}

// GetEnvDuration reads a duration such as "15s" or "2m". A bare integer is read as seconds.
func GetEnvDuration(envVar string, defaultValue time.Duration) time.Duration {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	if seconds, err := strconv.Atoi(envValue); err == nil {
		return time.Duration(seconds) * time.Second
	}
	d, err := time.ParseDuration(envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid. '%s' is not a duration", envVar, envValue))
	}
	return d
}

func parseEnvValue[T envVarType](envValue string) (T, error) {
	var value T
	switch ptr := any(&value).(type) {
	case *string:
		*ptr = envValue
	case *int:
		i, err := strconv.Atoi(envValue)
		if err != nil {
			return value, fmt.Errorf("'%s' is not an integer", envValue)
		}
		*ptr = i
	case *bool:
		b, err := strconv.ParseBool(envValue)
		if err != nil {
			return value, fmt.Errorf("'%s' cannot be converted to bool", envValue)
		}
		*ptr = b
	case *float64:
		f, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return value, fmt.Errorf("'%s' is not a number", envValue)
		}
		*ptr = f
	}
	return value, nil
}
