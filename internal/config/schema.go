package config

// Config is the top-level configuration
type Config struct {
	Providers ProvidersConfig `json:"providers"`
	Agent     AgentConfig     `json:"agent"`
}

// ProvidersConfig holds API keys and settings for LLM providers
type ProvidersConfig struct {
	OpenAI    ProviderConfig `json:"openai"`
	Anthropic ProviderConfig `json:"anthropic"`
	DeepSeek  ProviderConfig `json:"deepseek"`
	Groq      ProviderConfig `json:"groq"`
	Custom    ProviderConfig `json:"custom"`
}

type ProviderConfig struct {
	APIKey  string `json:"apiKey"`
	BaseURL string `json:"baseUrl"`
}

// AgentConfig holds the executor settings.
type AgentConfig struct {
	Provider     string  `json:"provider,omitempty"` // explicit provider; empty = detect from model
	Model        string  `json:"model"`
	MaxTokens    int     `json:"maxTokens"`
	Temperature  float64 `json:"temperature"`
	MaxTurns     int     `json:"maxTurns"`
	MaxRetries   int     `json:"maxRetries"`
	SystemPrompt string  `json:"systemPrompt"`
}

const defaultSystemPrompt = "You are an agent that can perform basic mathematical operations using tools."

// DefaultConfig returns a Config with sensible defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Model:        "gpt-4.1-nano",
			MaxTokens:    1024,
			Temperature:  0,
			MaxTurns:     10,
			MaxRetries:   3,
			SystemPrompt: defaultSystemPrompt,
		},
	}
}
