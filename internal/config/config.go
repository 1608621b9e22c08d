// Package config reads process settings from the environment, after an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process settings shared by the CLI and the server.
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Project     string
	Reference   string
	CORSOrigins []string
}

// Load reads a .env file when one exists, then the SKYARA_* variables.
// Variables already set in the environment win over the file.
func Load(envPath ...string) (*Config, error) {
	if err := godotenv.Load(envPath...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	port, err := getEnvAsInt("SKYARA_PORT", 8080)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        port,
		LogLevel:    getEnvAsString("SKYARA_LOG_LEVEL", "info"),
		LogFormat:   getEnvAsString("SKYARA_LOG_FORMAT", "json"),
		Project:     getEnvAsString("SKYARA_PROJECT", ""),
		Reference:   getEnvAsString("SKYARA_REFERENCE", ""),
		CORSOrigins: splitList(getEnvAsString("SKYARA_CORS_ORIGINS", "*")),
	}, nil
}

func getEnvAsString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok || valueStr == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer: %w", key, valueStr, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
