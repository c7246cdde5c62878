// Package config loads bridge configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the bridge.
type Config struct {
	// Port the web adapter listens on.
	Port string `env:"PORT" envDefault:"8000"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `env:"BRIDGE_LOG_LEVEL" envDefault:"info"`
	// LogFormat selects json or console output.
	LogFormat string `env:"BRIDGE_LOG_FORMAT" envDefault:"json"`

	// SearxngURL is the base URL of the SearXNG instance.
	SearxngURL string `env:"SEARXNG_URL" envDefault:"http://localhost:8080"`
	// SearxngTimeout is the outbound request timeout in seconds.
	SearxngTimeout int `env:"SEARXNG_HTTP_TIMEOUT" envDefault:"30"`
	// AdvancedMethod is the HTTP method used for advanced_search (GET or POST).
	AdvancedMethod string `env:"SEARXNG_ADVANCED_METHOD" envDefault:"GET"`

	// MCPTransport selects how the MCP server is exposed: http or stdio.
	MCPTransport string `env:"MCP_TRANSPORT" envDefault:"http"`

	// MaxResults is the default cap on formatted results per call.
	MaxResults int `env:"BRIDGE_MAX_RESULTS" envDefault:"10"`
}

// Load parses configuration from the environment. A positional argument, when
// present, overrides the backend URL unless SEARXNG_URL is set explicitly.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if _, set := os.LookupEnv("SEARXNG_URL"); !set && len(args) > 0 && args[0] != "" {
		cfg.SearxngURL = args[0]
	}

	return cfg, nil
}
