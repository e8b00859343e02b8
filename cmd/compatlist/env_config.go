package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-compatlist/internal/config"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string        // COMPATLIST_CONFIG: config file name or path
	Style      string        // COMPATLIST_STYLE: CSS style name or path
	Timeout    time.Duration // COMPATLIST_TIMEOUT: PDF generation timeout
}

// knownEnvVars lists valid COMPATLIST_* environment variables.
var knownEnvVars = map[string]bool{
	"COMPATLIST_CONFIG":  true,
	"COMPATLIST_STYLE":   true,
	"COMPATLIST_TIMEOUT": true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive timeout is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("COMPATLIST_CONFIG"),
		Style:      os.Getenv("COMPATLIST_STYLE"),
	}

	if timeout := os.Getenv("COMPATLIST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized COMPATLIST_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "COMPATLIST_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values the config file left empty.
// Flags are merged afterwards, giving: flags > env > config file > defaults.
// The timeout is resolved separately in resolveTimeout.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Style == "" {
		cfg.Style = env.Style
	}
}
