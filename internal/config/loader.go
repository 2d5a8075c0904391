package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/coopco/mathagent/internal/providers"
)

// ErrMissingCredential is returned by Validate when the selected provider
// has no API key. Both the config and factory paths fail with the same
// sentinel, before any request is attempted.
var ErrMissingCredential = providers.ErrMissingCredential

// Load loads config from the default path (~/.mathagent/config.json), falling
// back to environment variables when the file does not exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	path := filepath.Join(home, ".mathagent", "config.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return FromEnv(), nil
	}
	return LoadFromFile(path)
}

// LoadFromFile loads config from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader loads config from an io.Reader, applying defaults and env overrides.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// FromEnv builds a config purely from environment variables.
func FromEnv() *Config {
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg
}

// applyEnvOverrides applies provider API keys and MATHAGENT_-prefixed overrides.
func applyEnvOverrides(cfg *Config) {
	envMap := map[string]*string{
		"OPENAI_API_KEY":           &cfg.Providers.OpenAI.APIKey,
		"ANTHROPIC_API_KEY":        &cfg.Providers.Anthropic.APIKey,
		"DEEPSEEK_API_KEY":         &cfg.Providers.DeepSeek.APIKey,
		"GROQ_API_KEY":             &cfg.Providers.Groq.APIKey,
		"MATHAGENT_CUSTOM_APIKEY":  &cfg.Providers.Custom.APIKey,
		"MATHAGENT_CUSTOM_BASEURL": &cfg.Providers.Custom.BaseURL,
		"MATHAGENT_MODEL":          &cfg.Agent.Model,
		"MATHAGENT_PROVIDER":       &cfg.Agent.Provider,
		"MATHAGENT_SYSTEM_PROMPT":  &cfg.Agent.SystemPrompt,
		"MATHAGENT_OPENAI_BASEURL": &cfg.Providers.OpenAI.BaseURL,
	}

	for env, ptr := range envMap {
		if val := os.Getenv(env); val != "" {
			*ptr = val
		}
	}
}

// ProviderFor resolves the provider spec and credentials for the configured
// model.
func (c *Config) ProviderFor() (spec *providers.ProviderSpec, apiKey, baseURL string) {
	spec = providers.FindByName(c.Agent.Provider)
	if spec == nil {
		spec = providers.FindByModel(c.Agent.Model)
	}
	if spec == nil {
		spec = providers.FindByName("openai")
	}

	switch spec.Name {
	case "anthropic":
		return spec, c.Providers.Anthropic.APIKey, c.Providers.Anthropic.BaseURL
	case "deepseek":
		return spec, c.Providers.DeepSeek.APIKey, c.Providers.DeepSeek.BaseURL
	case "groq":
		return spec, c.Providers.Groq.APIKey, c.Providers.Groq.BaseURL
	case "custom":
		return spec, c.Providers.Custom.APIKey, c.Providers.Custom.BaseURL
	default:
		return spec, c.Providers.OpenAI.APIKey, c.Providers.OpenAI.BaseURL
	}
}

// Validate checks that the selected provider has a credential. It runs at
// startup, before any network call.
func (c *Config) Validate() error {
	spec, apiKey, _ := c.ProviderFor()
	if apiKey == "" && !spec.IsLocal {
		return fmt.Errorf("%w: set %s for provider %s", ErrMissingCredential, spec.EnvKey, spec.Name)
	}
	return nil
}
