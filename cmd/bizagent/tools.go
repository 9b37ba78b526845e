package main

import (
	"log/slog"
	"strings"

	"github.com/Huzaifa-EJ/business-analyst-adk/internal/clifmt"
	"github.com/spf13/cobra"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List available tools",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, _, err := buildRuntime(slog.Default())
			if err != nil {
				return err
			}
			rows := make([]clifmt.Row, 0, len(reg.All()))
			for _, t := range reg.All() {
				rows = append(rows, clifmt.Row{
					Name:   strings.TrimSpace(t.Name()),
					Detail: strings.TrimSpace(t.Description()),
				})
			}
			clifmt.PrintTable(cmd.OutOrStdout(), "Tools", rows)
			return nil
		},
	}
}
