package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
// The upstream credential and stats password are env-only on purpose:
// secrets do not belong in the config file.
type FileConfig struct {
	ServerPort     string `toml:"server_port"`
	AllowedOrigins string `toml:"allowed_origins"` // comma-separated, same as env
	Environment    string `toml:"environment"`
	TextModel      string `toml:"text_model"`
	VisionModel    string `toml:"vision_model"`
	OpenAIBaseURL  string `toml:"openai_base_url"`
}

// ConfigPath returns the path to the config file (~/.tutorgate/config.toml).
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.toml")
}

// LoadFile loads configuration from the TOML file.
// Returns an empty FileConfig if the file doesn't exist.
func LoadFile() (*FileConfig, error) {
	cfg := &FileConfig{}

	path := ConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnsureConfigFile creates a default config file with commented examples if none exists.
func EnsureConfigFile() error {
	path := ConfigPath()

	// If config already exists, do nothing
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	// Ensure directory exists
	if err := EnsureDataDir(); err != nil {
		return err
	}

	defaultConfig := `# Tutorgate Configuration
# Environment variables take priority over values set here.
# The OpenAI API key is env-only: export OPENAI_API_KEY before starting.

# server_port = ":3001"

# Comma-separated browser origins allowed to call the API.
# allowed_origins = "http://localhost:5173,https://app.tutorgate.dev"

# "development" echoes upstream error details to the client.
# environment = "production"

# Models used for text-only and image-bearing requests.
# text_model = "gpt-4o-mini"
# vision_model = "gpt-4o"

# Upstream API root, for tests or OpenAI-compatible gateways.
# openai_base_url = "https://api.openai.com/v1"
`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
