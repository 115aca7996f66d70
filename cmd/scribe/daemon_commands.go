package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check daemon liveness",
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := ctx.client().Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("daemon unreachable at %s: %w", ctx.serverAddress(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daemon at %s reports %q\n", ctx.serverAddress(), health.Status)
			return nil
		},
	}
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon runtime status",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := ctx.client().Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("daemon unreachable at %s: %w", ctx.serverAddress(), err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			runningKind := statusWarn
			if status.Running {
				runningKind = statusOK
			}
			fmt.Fprintln(out, renderStatusLine("Running", runningKind, yesNo(status.Running), colorize))
			fmt.Fprintln(out, renderStatusLine("PID", statusInfo, fmt.Sprintf("%d", status.PID), colorize))
			fmt.Fprintln(out, renderStatusLine("Bind", statusInfo, status.Bind, colorize))
			fmt.Fprintln(out, renderStatusLine("Lock file", statusInfo, status.LockFilePath, colorize))
			fmt.Fprintln(out, renderStatusLine("Captions", statusInfo, status.Capabilities.CaptionsProvider, colorize))
			fmt.Fprintln(out, renderStatusLine("Metadata", statusInfo, strings.Join(status.Capabilities.MetadataProviders, ", "), colorize))
			fmt.Fprintln(out, renderStatusLine("Proxy", statusInfo, yesNo(status.Capabilities.ProxyConfigured), colorize))
			fmt.Fprintln(out, renderStatusLine("Auth", statusInfo, yesNo(status.Capabilities.AuthEnabled), colorize))

			if len(status.Dependencies) > 0 {
				fmt.Fprintln(out)
				rows := make([][]string, 0, len(status.Dependencies))
				for _, dep := range status.Dependencies {
					state := "available"
					if !dep.Available {
						state = dep.Detail
						if state == "" {
							state = "unavailable"
						}
					}
					rows = append(rows, []string{dep.Name, dep.Command, yesNo(dep.Optional), state})
				}
				fmt.Fprintln(out, renderTable([]string{"Dependency", "Command", "Optional", "State"}, rows))
			}
			return nil
		},
	}
}
