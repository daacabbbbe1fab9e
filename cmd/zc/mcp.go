package main

import (
	"github.com/spf13/cobra"

	"github.com/paudelnirajan/zenco-companion/internal/mcp"
	"github.com/paudelnirajan/zenco-companion/internal/messages"
)

func newMcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.McpUse,
		Short: messages.McpShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPromptServer(cmd.Context(), Version, mcp.DefaultPresets())
		},
	}
}
