package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/coopco/mathagent/internal/providers"
	"github.com/coopco/mathagent/internal/tools"
)

const defaultMaxTurns = 10

// Executor drives a single-turn tool-augmented run: one user message in, one
// final answer out, with tool calls executed in between. An Executor is
// stateless across runs; each Run owns its transcript, so concurrent runs and
// concurrent executors sharing one read-only registry do not interfere.
type Executor struct {
	provider     providers.Provider
	tools        *tools.Registry
	model        string
	maxTokens    int
	temperature  float64
	maxTurns     int
	systemPrompt string
	observer     Observer
}

// ExecutorConfig holds all dependencies and settings for an Executor.
type ExecutorConfig struct {
	Provider     providers.Provider
	Tools        *tools.Registry
	Model        string
	MaxTokens    int
	Temperature  float64
	MaxTurns     int
	SystemPrompt string
	Observer     Observer
}

// NewExecutor creates an Executor from the given config.
func NewExecutor(cfg ExecutorConfig) *Executor {
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	return &Executor{
		provider:     cfg.Provider,
		tools:        cfg.Tools,
		model:        cfg.Model,
		maxTokens:    cfg.MaxTokens,
		temperature:  cfg.Temperature,
		maxTurns:     maxTurns,
		systemPrompt: cfg.SystemPrompt,
		observer:     cfg.Observer,
	}
}

// Result is the outcome of a successful run.
type Result struct {
	Answer     string
	Transcript *Transcript
	Usage      providers.Usage
}

// Run executes the loop for one user message. It returns the model's terminal
// text answer, or the error that ended the run: an unknown tool, invalid tool
// arguments, a provider failure, or the turn limit.
func (e *Executor) Run(ctx context.Context, userMsg string) (*Result, error) {
	transcript := NewTranscript(e.model)
	e.record(transcript, Turn{Kind: TurnUser, Text: userMsg})

	messages := []providers.Message{{Role: "user", Content: userMsg}}
	toolDefs := registryToProviderTools(e.tools.Definitions())

	var usage providers.Usage

	for turn := 0; turn < e.maxTurns; turn++ {
		req := providers.ChatRequest{
			Model:        e.model,
			Messages:     messages,
			Tools:        toolDefs,
			MaxTokens:    e.maxTokens,
			Temperature:  e.temperature,
			SystemPrompt: e.systemPrompt,
		}

		resp, err := e.provider.Chat(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("completion request failed: %w", err)
		}
		usage.Add(resp.Usage)

		messages = append(messages, providers.Message{
			Role:      "assistant",
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		if len(resp.ToolCalls) == 0 {
			e.record(transcript, Turn{Kind: TurnAssistantText, Text: resp.Content})
			return &Result{
				Answer:     resp.Content,
				Transcript: transcript,
				Usage:      usage,
			}, nil
		}

		// Interim commentary accompanying tool calls belongs in the record too.
		if resp.Content != "" {
			e.record(transcript, Turn{Kind: TurnAssistantText, Text: resp.Content})
		}

		for _, tc := range resp.ToolCalls {
			slog.Debug("executing tool", "name", tc.Name, "id", tc.ID)
			e.record(transcript, Turn{
				Kind:      TurnToolCall,
				ToolName:  tc.Name,
				CallID:    tc.ID,
				Arguments: tc.Arguments,
			})

			value, err := e.tools.Invoke(ctx, tc.Name, json.RawMessage(tc.Arguments))
			if err != nil {
				return nil, err
			}

			e.record(transcript, Turn{
				Kind:     TurnToolResult,
				ToolName: tc.Name,
				CallID:   tc.ID,
				Value:    value,
			})
			messages = append(messages, providers.Message{
				Role:       "tool",
				Content:    value,
				ToolCallID: tc.ID,
			})
		}
	}

	return nil, &TurnLimitError{Limit: e.maxTurns}
}

// record appends a turn to the transcript and notifies the observer.
func (e *Executor) record(tr *Transcript, turn Turn) {
	tr.Append(turn)
	if e.observer != nil {
		e.observer(tr.Turns[len(tr.Turns)-1])
	}
}

// registryToProviderTools converts registry definitions to provider tool format.
func registryToProviderTools(defs []tools.ToolDefinition) []providers.ToolDef {
	result := make([]providers.ToolDef, len(defs))
	for i, d := range defs {
		result[i] = providers.ToolDef{
			Type: d.Type,
			Function: providers.FunctionDef{
				Name:        d.Function.Name,
				Description: d.Function.Description,
				Parameters:  d.Function.Parameters,
			},
		}
	}
	return result
}
