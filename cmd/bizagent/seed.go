package main

import (
	"fmt"

	appdb "github.com/Huzaifa-EJ/business-analyst-adk/db"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo sample data (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := openDatabaseFromViper()
			if err != nil {
				return err
			}
			seeded, err := appdb.SeedDemo(gdb)
			if err != nil {
				return err
			}
			if !seeded {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Demo account already exists; nothing to do.")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Demo data loaded for account \"demo\".")
			return nil
		},
	}
}
