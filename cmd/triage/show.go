package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the loaded networks",
		Long:  `Print the counts and the record table of the currently loaded analysis.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(st)

			store, err := loadRecordStore(ctx, st)
			if err != nil {
				return err
			}

			printSession(cmd.OutOrStdout(), store)
			return nil
		},
	}
}
