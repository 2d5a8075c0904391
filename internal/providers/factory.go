package providers

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when the selected provider has no API
// key. It fails the run before any request is attempted.
var ErrMissingCredential = errors.New("missing API credential")

// Options selects and configures a provider.
type Options struct {
	Provider   string // explicit provider name; empty means detect from model
	Model      string
	APIKey     string
	BaseURL    string
	MaxRetries int
	NoRetry    bool
}

// New builds a Provider for the given options, wrapped with retry unless
// disabled. Provider selection: explicit name first, then model keywords,
// falling back to openai.
func New(opts Options) (Provider, error) {
	spec := FindByName(opts.Provider)
	if spec == nil {
		spec = FindByModel(opts.Model)
	}
	if spec == nil {
		spec = FindByName("openai")
	}

	if opts.APIKey == "" && !spec.IsLocal {
		return nil, fmt.Errorf("%w: provider %s requires an API key (%s)", ErrMissingCredential, spec.Name, spec.EnvKey)
	}

	var p Provider
	switch spec.Name {
	case "anthropic":
		p = NewAnthropicProvider(opts.APIKey)
	default:
		p = NewOpenAICompatProviderFromSpec(spec, opts.APIKey, opts.BaseURL)
	}

	if !opts.NoRetry {
		p = NewRetryProvider(p, opts.MaxRetries)
	}
	return p, nil
}
