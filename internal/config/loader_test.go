package config

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadFromReader(t *testing.T) {
	jsonData := `{
		"providers": {
			"openai": {
				"apiKey": "sk-test123",
				"baseUrl": "https://api.openai.com/v1"
			}
		},
		"agent": {
			"model": "gpt-4o-mini",
			"maxTokens": 2048,
			"temperature": 0.5,
			"maxTurns": 20
		}
	}`

	cfg, err := LoadFromReader(strings.NewReader(jsonData))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if cfg.Providers.OpenAI.APIKey != "sk-test123" {
		t.Errorf("expected apiKey sk-test123, got %s", cfg.Providers.OpenAI.APIKey)
	}
	if cfg.Agent.Model != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", cfg.Agent.Model)
	}
	if cfg.Agent.MaxTurns != 20 {
		t.Errorf("expected maxTurns 20, got %d", cfg.Agent.MaxTurns)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Agent.Model != "gpt-4.1-nano" {
		t.Errorf("default model = %s, want gpt-4.1-nano", cfg.Agent.Model)
	}
	if cfg.Agent.MaxTurns != 10 {
		t.Errorf("default maxTurns = %d, want 10", cfg.Agent.MaxTurns)
	}
	if cfg.Agent.SystemPrompt == "" {
		t.Error("default system prompt is empty")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("MATHAGENT_MODEL", "gpt-4o")

	cfg := FromEnv()
	if cfg.Providers.OpenAI.APIKey != "sk-env" {
		t.Errorf("apiKey = %s, want sk-env", cfg.Providers.OpenAI.APIKey)
	}
	if cfg.Agent.Model != "gpt-4o" {
		t.Errorf("model = %s, want gpt-4o", cfg.Agent.Model)
	}
}

func TestValidateMissingCredential(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("Validate error = %v, want ErrMissingCredential", err)
	}
}

func TestValidateWithCredential(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Providers.OpenAI.APIKey = "sk-ok"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestProviderForAnthropicModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Agent.Model = "claude-sonnet-4-20250514"
	cfg.Providers.Anthropic.APIKey = "sk-ant"

	spec, apiKey, _ := cfg.ProviderFor()
	if spec.Name != "anthropic" {
		t.Errorf("provider = %s, want anthropic", spec.Name)
	}
	if apiKey != "sk-ant" {
		t.Errorf("apiKey = %s, want sk-ant", apiKey)
	}
}

func TestProviderForExplicitOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Agent.Provider = "custom"
	cfg.Providers.Custom.APIKey = "k"
	cfg.Providers.Custom.BaseURL = "http://localhost:8000/v1"

	spec, _, baseURL := cfg.ProviderFor()
	if spec.Name != "custom" {
		t.Errorf("provider = %s, want custom", spec.Name)
	}
	if baseURL != "http://localhost:8000/v1" {
		t.Errorf("baseURL = %s", baseURL)
	}
}
