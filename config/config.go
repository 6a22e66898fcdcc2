// Package config handles Wayfarer configuration loading: a YAML file with
// environment-variable expansion, plus direct env overrides for secrets so
// keys never need to live in the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all Wayfarer configuration.
type Config struct {
	Listen    ListenConfig    `yaml:"listen"`
	Model     ModelConfig     `yaml:"model"`
	Weather   WeatherConfig   `yaml:"weather"`
	Search    SearchConfig    `yaml:"search"`
	Store     StoreConfig     `yaml:"store"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Agent     AgentConfig     `yaml:"agent"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ListenConfig defines the HTTP server settings.
type ListenConfig struct {
	Address string `yaml:"address"` // bind address (default: "" = all interfaces)
	Port    int    `yaml:"port"`    // default 8000
}

// ModelConfig selects and configures the model gateway.
type ModelConfig struct {
	Provider string `yaml:"provider"` // gemini, openai, anthropic
	Name     string `yaml:"name"`     // provider default when empty
	APIKey   string `yaml:"api_key"`
}

// WeatherConfig holds the OpenWeather credentials.
type WeatherConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearchConfig holds the Google Custom Search credentials.
type SearchConfig struct {
	APIKey   string `yaml:"api_key"`
	EngineID string `yaml:"engine_id"`
}

// StoreConfig defines preference persistence.
type StoreConfig struct {
	// Path is the SQLite database file. Empty selects the in-memory store.
	Path string `yaml:"path"`
}

// KnowledgeConfig points at an optional corpus file; the built-in corpus is
// used when empty.
type KnowledgeConfig struct {
	CorpusFile string `yaml:"corpus_file"`
}

// AgentConfig tunes the dispatch loop.
type AgentConfig struct {
	MaxToolRounds int `yaml:"max_tool_rounds"` // default 10
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// applyEnv maps environment variables onto config fields. Env values win
// over the file so deployments can keep secrets out of it entirely.
func (c *Config) applyEnv() {
	for env, dst := range map[string]*string{
		"OPENWEATHER_API_KEY":   &c.Weather.APIKey,
		"CUSTOM_SEARCH_API_KEY": &c.Search.APIKey,
		"CUSTOM_SEARCH_CX":      &c.Search.EngineID,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	// the model key variable is provider-specific so one provider's key is
	// never handed to another's client
	keyEnv := map[string]string{
		"gemini":    "GEMINI_API_KEY",
		"openai":    "OPENAI_API_KEY",
		"anthropic": "ANTHROPIC_API_KEY",
	}[c.Model.Provider]
	if keyEnv != "" {
		if v := os.Getenv(keyEnv); v != "" {
			c.Model.APIKey = v
		}
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen: ListenConfig{Port: 8000},
		Model:  ModelConfig{Provider: "gemini"},
		Agent:  AgentConfig{MaxToolRounds: 10},
	}
}

// Load reads configuration from a YAML file, expands ${VAR} references, and
// applies environment overrides. An empty path yields Default() plus env
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that would otherwise fail at first use.
func (c *Config) Validate() error {
	switch c.Model.Provider {
	case "gemini", "openai", "anthropic":
	default:
		return fmt.Errorf("unknown model provider %q", c.Model.Provider)
	}
	if c.Listen.Port <= 0 || c.Listen.Port > 65535 {
		return fmt.Errorf("invalid listen port %d", c.Listen.Port)
	}
	if c.Agent.MaxToolRounds <= 0 {
		return fmt.Errorf("max_tool_rounds must be positive")
	}
	return nil
}
