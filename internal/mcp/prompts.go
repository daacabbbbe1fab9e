// Package mcp exposes zenco instruction presets as MCP prompts over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paudelnirajan/zenco-companion/internal/messages"
)

// Preset is a reusable zenco instruction surfaced as an MCP prompt.
type Preset struct {
	Name        string
	Description string
	Instruction string
}

// DefaultPresets returns the built-in instruction presets.
func DefaultPresets() []Preset {
	return []Preset{
		{
			Name:        "explain",
			Description: "Explain what the selected file does",
			Instruction: "Explain what this file does and how its pieces fit together.",
		},
		{
			Name:        "refactor",
			Description: "Suggest a refactor of the selected file",
			Instruction: "Refactor this file for clarity without changing behavior.",
		},
		{
			Name:        "add-tests",
			Description: "Propose tests for the selected file",
			Instruction: "Write tests covering the important behavior of this file.",
		},
		{
			Name:        "fix",
			Description: "Find and fix defects in the selected file",
			Instruction: "Find likely defects in this file and propose fixes.",
		},
	}
}

type promptServerRunner func(ctx context.Context, server *mcp.Server) error

// RunPromptServer starts an MCP prompt server over stdio.
func RunPromptServer(ctx context.Context, version string, presets []Preset) error {
	return runPromptServer(ctx, version, presets, defaultPromptServerRunner)
}

// runPromptServer builds the MCP prompt server and runs it using the provided runner.
func runPromptServer(ctx context.Context, version string, presets []Preset, runner promptServerRunner) error {
	if runner == nil {
		return fmt.Errorf(messages.McpRunPromptServerFailedFmt, errors.New("prompt server runner is nil"))
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "zenco-companion",
		Version: version,
	}, nil)

	for _, preset := range presets {
		preset := preset
		prompt := &mcp.Prompt{
			Name:        preset.Name,
			Description: preset.Description,
		}
		server.AddPrompt(prompt, promptHandler(preset))
	}

	if err := runner(ctx, server); err != nil {
		return fmt.Errorf(messages.McpRunPromptServerFailedFmt, err)
	}

	return nil
}

// defaultPromptServerRunner runs the MCP prompt server over stdio.
func defaultPromptServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func promptHandler(preset Preset) func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: preset.Description,
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: preset.Instruction},
				},
			},
		}, nil
	}
}
