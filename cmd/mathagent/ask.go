package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coopco/mathagent/internal/agent"
	"github.com/coopco/mathagent/internal/providers"
	"github.com/coopco/mathagent/internal/tools"
)

const defaultQuestion = "What is 20+(2*4)?"

func newAskCmd(opts *rootOptions) *cobra.Command {
	var transcriptPath string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the agent an arithmetic question",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := defaultQuestion
			if len(args) == 1 {
				question = args[0]
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			spec, apiKey, baseURL := cfg.ProviderFor()
			provider, err := providers.New(providers.Options{
				Provider:   spec.Name,
				Model:      cfg.Agent.Model,
				APIKey:     apiKey,
				BaseURL:    baseURL,
				MaxRetries: cfg.Agent.MaxRetries,
			})
			if err != nil {
				return err
			}

			registry := tools.NewRegistry()
			for _, t := range []tools.Tool{tools.NewAddTool(), tools.NewMultiplyTool()} {
				if err := registry.Register(t); err != nil {
					return err
				}
			}

			var observer agent.Observer
			if opts.verbose {
				observer = traceTurn
			}

			executor := agent.NewExecutor(agent.ExecutorConfig{
				Provider:     provider,
				Tools:        registry,
				Model:        cfg.Agent.Model,
				MaxTokens:    cfg.Agent.MaxTokens,
				Temperature:  cfg.Agent.Temperature,
				MaxTurns:     cfg.Agent.MaxTurns,
				SystemPrompt: cfg.Agent.SystemPrompt,
				Observer:     observer,
			})

			result, err := executor.Run(cmd.Context(), question)
			if err != nil {
				return err
			}

			if transcriptPath != "" {
				if err := writeTranscript(transcriptPath, result.Transcript); err != nil {
					slog.Error("failed to write transcript", "path", transcriptPath, "err", err)
				}
			}

			fmt.Println(result.Answer)
			return nil
		},
	}

	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "write the run transcript to this file as JSONL")

	return cmd
}

// traceTurn logs each transcript turn for --verbose runs.
func traceTurn(turn agent.Turn) {
	switch turn.Kind {
	case agent.TurnToolCall:
		slog.Info("tool call", "tool", turn.ToolName, "args", turn.Arguments)
	case agent.TurnToolResult:
		slog.Info("tool result", "tool", turn.ToolName, "value", turn.Value)
	}
}

func writeTranscript(path string, tr *agent.Transcript) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = tr.WriteTo(f)
	return err
}
