package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coopco/mathagent/internal/config"
)

type rootOptions struct {
	configPath string
	model      string
	maxTurns   int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mathagent",
		Short: "LLM agent that answers arithmetic questions with add/multiply tools",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			// Load .env if present, before config reads the environment.
			if err := godotenv.Load(); err == nil {
				slog.Debug("loaded .env file")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default ~/.mathagent/config.json)")
	cmd.PersistentFlags().StringVar(&opts.model, "model", "", "model identifier (overrides config)")
	cmd.PersistentFlags().IntVar(&opts.maxTurns, "max-turns", 0, "maximum executor turns (overrides config)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging and turn tracing")

	cmd.AddCommand(newAskCmd(opts))
	cmd.AddCommand(newToolsCmd())

	return cmd
}

// loadConfig resolves the effective config for a run, applying flag overrides.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.model != "" {
		cfg.Agent.Model = opts.model
	}
	if opts.maxTurns > 0 {
		cfg.Agent.MaxTurns = opts.maxTurns
	}
	return cfg, nil
}
