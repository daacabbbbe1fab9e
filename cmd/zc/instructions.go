package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paudelnirajan/zenco-companion/internal/installer"
	"github.com/paudelnirajan/zenco-companion/internal/messages"
)

func newInstructionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstructionsUse,
		Short: messages.InstructionsShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), installer.ManualInstructions())
			return nil
		},
	}
}
