package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SEQPIPE_LOG_LEVEL", "")
	c := Load()
	if c.Items != 100 || c.Producers != 4 || c.Capacity != 8 {
		t.Fatalf("run parameters: %+v", c)
	}
	if c.MaxDelay != 100*time.Microsecond {
		t.Fatalf("MaxDelay default")
	}
	if c.LogLevel != "warn" {
		t.Fatalf("LogLevel default = %q", c.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SEQPIPE_LOG_LEVEL", "DEBUG")
	c := Load()
	if c.LogLevel != "debug" {
		t.Fatalf("LogLevel env = %q", c.LogLevel)
	}
	if c.Items != Items {
		t.Fatalf("Items must not come from the environment")
	}
}
