package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/wifi-triage/internal/cli"
	"github.com/Veraticus/wifi-triage/internal/common"
	"github.com/Veraticus/wifi-triage/internal/ingest"
	"github.com/Veraticus/wifi-triage/internal/model"
	"github.com/Veraticus/wifi-triage/internal/report"
	"github.com/Veraticus/wifi-triage/internal/session"
	"github.com/spf13/cobra"
)

func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <results.json|->",
		Short: "Load a new analysis result",
		Long: `Load the result set produced by the analysis service and make it the current
session, replacing whatever was loaded before. Use "-" to read from stdin.

The record table and the main report are printed once loading succeeds.`,
		Args: cobra.ExactArgs(1),
		RunE: runLoad,
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var (
		result model.AnalysisResult
		err    error
	)
	if args[0] == "-" {
		result, err = ingest.Decode(cmd.InOrStdin())
	} else {
		result, err = ingest.DecodeFile(args[0])
	}
	if common.IsWarning(err) {
		fmt.Fprintln(out, cli.FormatWarning("No WiFi networks found in the provided data"))
		return nil
	}
	if err != nil {
		return common.NewUserError("could not load analysis result", err)
	}

	st, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStorage(st)

	store := session.NewStore()
	records := store.SetResult(result)
	stats := store.Stats()

	id, err := st.SaveSession(ctx, records, stats.Total, stats.Flagged)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	common.LogInfo("Loaded analysis result", common.Fields{
		"session": id,
		"records": len(records),
		"flagged": stats.Flagged,
	})

	printSession(out, store)
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.FormatTitle("Report"))
	fmt.Fprint(out, report.MainReport(records))
	return nil
}

// printSession writes the count badges and the record table.
func printSession(out io.Writer, store *session.Store) {
	stats := store.Stats()
	fmt.Fprintln(out, cli.RenderStats(stats.Total, stats.Flagged))
	fmt.Fprintln(out, cli.RenderRecordTable(store.Records()))
}
