// Package config provides shared configuration utilities.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// the key, or fallback if the variable is unset or empty.
func GetEnvInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(GetEnv(key, ""))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// NewLogger creates a timestamped logger on stderr. Its level comes from
// LOG_LEVEL and defaults to info.
func NewLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if value := GetEnv("LOG_LEVEL", ""); value != "" {
		level, err := log.ParseLevel(value)
		if err != nil {
			logger.Warn("ignoring LOG_LEVEL", "value", value, "err", err)
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
}
