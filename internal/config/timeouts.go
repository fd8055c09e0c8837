package config

import (
	"os"
	"time"
)

// Timeouts holds the bounds put on blocking calls.
type Timeouts struct {
	VersionProbe time.Duration // Timeout for running the tool's --version
	Metadata     time.Duration // Timeout for all IMDS and EC2 calls of one run
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - EKSUTIL_TIMEOUT_VERSION_PROBE (default: 30s)
//   - EKSUTIL_TIMEOUT_METADATA (default: 10s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		VersionProbe: parseDuration("EKSUTIL_TIMEOUT_VERSION_PROBE", 30*time.Second),
		Metadata:     parseDuration("EKSUTIL_TIMEOUT_METADATA", 10*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set, fails to parse or is not positive, the default
// value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}
