package config

import (
	"github.com/caarlos0/env/v11"

	"meta-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application.
// Fields are populated from environment variables using the
// caarlos0/env library. The nested structs are tagged with envPrefix so
// their fields are parsed with the given prefix. Use Load to construct
// a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// Meta holds the Marketing API credentials. Environment variables
	// prefixed with META_ populate this struct.
	Meta configs.Meta `envPrefix:"META_"`

	// MCP selects the MCP transport. Environment variables prefixed
	// with MCP_ populate this struct.
	MCP configs.MCP `envPrefix:"MCP_"`

	// HTTP holds configuration for the HTTP transport. Environment
	// variables prefixed with HTTP_ populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables
	// prefixed with LOG_ populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
