// Package config provides the seqpipe binary's run parameters.
package config

import (
	"os"
	"strings"
	"time"
)

// Run parameters are fixed at compile time.
const (
	Items     = 100
	Producers = 4
	Capacity  = 8
	MaxDelay  = 100 * time.Microsecond
)

// Config holds the binary's settings.
type Config struct {
	Items     int
	Producers int
	Capacity  int
	MaxDelay  time.Duration
	LogLevel  string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load returns the compile-time run parameters. Only the log level comes from the
// environment (SEQPIPE_LOG_LEVEL, default "warn").
func Load() Config {
	return Config{
		Items:     Items,
		Producers: Producers,
		Capacity:  Capacity,
		MaxDelay:  MaxDelay,
		LogLevel:  strings.ToLower(getenv("SEQPIPE_LOG_LEVEL", "warn")),
	}
}
