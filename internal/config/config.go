// Package config loads application configuration from the environment and
// an optional TOML file.
package config

import (
	"os"
	"strings"
)

// Environment mode values.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultAllowedOrigins is the browser origin allow-list used when
// ALLOWED_ORIGINS is not configured.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://app.tutorgate.dev",
}

// Config holds application configuration. It is built once at startup and
// treated as read-only afterwards; handlers receive it explicitly.
// Priority: env vars → config.toml → defaults.
type Config struct {
	// OpenAIKey is the upstream API credential. Empty means the relay is
	// not configured and /api/tutor returns a server configuration error.
	OpenAIKey string

	// ServerPort is the address to bind the server to (e.g., ":3001")
	ServerPort string

	// AllowedOrigins is the CORS allow-list for browser requests.
	AllowedOrigins []string

	// Environment is "development" or "production". Development mode echoes
	// upstream error detail to the client.
	Environment string

	// TextModel handles text-only requests, VisionModel requests that
	// carry an image.
	TextModel   string
	VisionModel string

	// OpenAIBaseURL is the upstream API root, overridable for tests and
	// compatible gateways.
	OpenAIBaseURL string

	// StatsPassword, when set, protects the stats and logs endpoints.
	// It is hashed at startup and never kept in plain text at rest.
	StatsPassword string
}

// Load reads configuration from file and environment variables.
// Environment variables override file config values.
func Load() *Config {
	fileConfig, _ := LoadFile() // Ignore error, use defaults

	return &Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ServerPort:     normalizePort(getEnvOrFile("SERVER_PORT", fileConfig.ServerPort, ":3001")),
		AllowedOrigins: parseOrigins(getEnvOrFile("ALLOWED_ORIGINS", fileConfig.AllowedOrigins, "")),
		Environment:    getEnvOrFile("ENVIRONMENT", fileConfig.Environment, EnvProduction),
		TextModel:      getEnvOrFile("OPENAI_TEXT_MODEL", fileConfig.TextModel, "gpt-4o-mini"),
		VisionModel:    getEnvOrFile("OPENAI_VISION_MODEL", fileConfig.VisionModel, "gpt-4o"),
		OpenAIBaseURL:  getEnvOrFile("OPENAI_BASE_URL", fileConfig.OpenAIBaseURL, "https://api.openai.com/v1"),
		StatsPassword:  os.Getenv("STATS_PASSWORD"),
	}
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// OpenAIConfigured reports whether an upstream credential is present.
func (c *Config) OpenAIConfigured() bool {
	return c.OpenAIKey != ""
}

// parseOrigins splits a comma-separated origin list, trimming whitespace and
// dropping empty entries. An empty input yields the default allow-list.
func parseOrigins(raw string) []string {
	if raw == "" {
		return DefaultAllowedOrigins
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return DefaultAllowedOrigins
	}
	return origins
}

// normalizePort accepts both "3001" and ":3001" forms.
func normalizePort(port string) string {
	if port != "" && !strings.HasPrefix(port, ":") {
		return ":" + port
	}
	return port
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}
