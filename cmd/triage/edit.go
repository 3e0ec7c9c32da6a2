package main

import (
	"fmt"

	"github.com/Veraticus/wifi-triage/internal/cli"
	"github.com/Veraticus/wifi-triage/internal/tui"
	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit organization patterns interactively",
		Long: `Open an interactive editor over the loaded networks. Press Enter to reclassify
with the current pattern text, Tab to switch reports and Ctrl+Y to copy the
visible report. The last applied patterns are saved on exit.`,
		Args: cobra.NoArgs,
		RunE: runEdit,
	}

	cmd.Flags().String("org", "", "initial organization SSID patterns")

	return cmd
}

func runEdit(cmd *cobra.Command, _ []string) error {
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

	patterns, err := resolvePatterns(cmd, st)
	if err != nil {
		return fmt.Errorf("failed to resolve organization patterns: %w", err)
	}

	final, err := tui.Run(ctx, store,
		tui.WithPatterns(patterns),
		tui.WithClipboard(clipboardFactory()),
	)
	if err != nil {
		return err
	}

	if err := st.SavePatterns(ctx, final); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Saved organization patterns: "+final))
	return nil
}
