package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paudelnirajan/zenco-companion/internal/messages"
	"github.com/paudelnirajan/zenco-companion/internal/probe"
	"github.com/paudelnirajan/zenco-companion/internal/zenco"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			status := newProbe().Check(cmd.Context())

			switch {
			case !status.Installed:
				_, _ = fmt.Fprintln(out, messages.StatusNotInstalled)
			case status.Version == probe.UnknownVersion:
				_, _ = fmt.Fprintln(out, messages.StatusUnknownVersion)
			default:
				_, _ = fmt.Fprintf(out, messages.StatusInstalledFmt+"\n", status.Version)
			}
			if status.NeedsUpgrade {
				_, _ = fmt.Fprintf(out, messages.StatusUpgradeFmt+"\n", status.Version, zenco.MinimumVersion)
			}
			_, _ = fmt.Fprintf(out, messages.StatusResolvedPathFmt+"\n", status.ResolvedPath)
			return nil
		},
	}
}
