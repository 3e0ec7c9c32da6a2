package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/wifi-triage/internal/cli"
	"github.com/Veraticus/wifi-triage/internal/common"
	"github.com/Veraticus/wifi-triage/internal/report"
	"github.com/spf13/cobra"
)

const sectionAll = "all"

// clipboardFactory is swapped in tests.
var clipboardFactory = func() cli.Clipboard { return cli.SystemClipboard{} }

var errCopyNeedsSection = errors.New("--copy and --output need a single --section (main, unknown or known)")

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Classify the loaded networks and print the reports",
		Long: `Split the loaded networks into organization, unknown-vendor and known-vendor
groups and print the copy-out reports.

Organization patterns are a comma-separated list matched case-insensitively
against each SSID. They come from --org when given, otherwise from the
organization.patterns config key, otherwise from the last run.`,
		RunE: runReport,
	}

	cmd.Flags().String("org", "", "comma-separated organization SSID patterns")
	cmd.Flags().String("section", sectionAll, "report to print: main, unknown, known or all")
	cmd.Flags().Bool("copy", false, "copy the selected report to the clipboard")
	cmd.Flags().String("output", "", "write the selected report to a file")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sectionName, _ := cmd.Flags().GetString("section")
	copyOut, _ := cmd.Flags().GetBool("copy")
	outputPath, _ := cmd.Flags().GetString("output")

	var section report.Section
	if sectionName != sectionAll {
		s, ok := report.ParseSection(sectionName)
		if !ok {
			return fmt.Errorf("%w: unknown section %q", common.ErrInvalidConfig, sectionName)
		}
		section = s
	} else if copyOut || outputPath != "" {
		return errCopyNeedsSection
	}

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

	bundle := report.Reclassify(store, patterns)

	if err := st.SavePatterns(ctx, patterns); err != nil {
		return err
	}

	if section == "" {
		printAllSections(out, bundle)
		return nil
	}

	text := bundle.Text(section)
	printArtifact(out, text)

	if outputPath != "" {
		if err := writeOutputFile(outputPath, text); err != nil {
			return err
		}
	}
	if copyOut {
		if err := clipboardFactory().WriteAll(text); err != nil {
			return common.NewUserError("could not copy report to the clipboard", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Copied %s report", section)))
	}

	return nil
}

func printAllSections(out io.Writer, bundle report.Bundle) {
	titles := map[report.Section]string{
		report.SectionMain:    "Report",
		report.SectionUnknown: "Unknown vendor networks",
		report.SectionKnown:   "Known vendor networks",
	}

	for i, s := range report.Sections {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, cli.FormatTitle(titles[s]))
		printArtifact(out, bundle.Text(s))
	}

	if bundle.OrganizationCount > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("%d organization networks excluded", bundle.OrganizationCount)))
	}
}

// printArtifact writes text verbatim, ending with exactly the newlines it already has or one.
func printArtifact(out io.Writer, text string) {
	fmt.Fprint(out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(out)
	}
}
