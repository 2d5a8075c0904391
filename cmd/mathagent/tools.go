package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coopco/mathagent/internal/tools"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools available to the agent",
		Run: func(cmd *cobra.Command, args []string) {
			registry := tools.NewRegistry()
			registry.Register(tools.NewAddTool())      //nolint:errcheck
			registry.Register(tools.NewMultiplyTool()) //nolint:errcheck

			for _, def := range registry.Definitions() {
				fmt.Printf("%s\t%s\n", def.Function.Name, def.Function.Description)
			}
		},
	}
}
