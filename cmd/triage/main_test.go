package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/wifi-triage/internal/cli"
	"github.com/Veraticus/wifi-triage/internal/report"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResults = `{
  "results": [
    {"ssid": "Guest", "bssid": "66:77:88:99:aa:bb", "vendor": "no match", "flagged": false},
    {"ssid": "True Company WiFi", "bssid": "00:11:22:33:44:55", "vendor": "Cisco", "flagged": false},
    {"ssid": "Printer", "bssid": "3c:2a:f4:00:00:01", "vendor": "Brother Industries, Ltd", "flagged": true}
  ],
  "total": 3,
  "flagged": 1
}`

// setupEnv isolates config and database state for one test.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("TRIAGE_DATABASE_PATH", filepath.Join(dir, "triage.db"))
	t.Setenv("TRIAGE_ORGANIZATION_PATTERNS", "")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "triage version dev")
}

func TestLoadCmd_FromStdin(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, sampleResults, "load", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Networks: 3")
	assert.Contains(t, out, "Flagged Networks: 1")
	assert.Contains(t, out, "Guest 66:77:88:99:aa:bb ---- no match\n")
	assert.Contains(t, out, "Company WiFi 00:11:22:33:44:55 ---- Cisco\n")
	assert.NotContains(t, out, "True Company WiFi")
}

func TestLoadCmd_FromFile(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleResults), 0o600))

	_, err := execute(t, "", "load", path)
	require.NoError(t, err)

	out, err := execute(t, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Printer")
	assert.Contains(t, out, "Total Networks: 3")
}

func TestLoadCmd_NoRecordsWarns(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, sampleResults, "load", "-")
	require.NoError(t, err)

	out, err := execute(t, `{"results": [], "total": 0, "flagged": 0}`, "load", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "No WiFi networks found in the provided data")

	// The previous session is left untouched.
	out, err = execute(t, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Guest")
}

func TestLoadCmd_EmptyInput(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "   ", "load", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "the provided input is empty")
}

func TestShowCmd_NothingLoaded(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "triage load")
}

func TestReportCmd_AllSections(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, sampleResults, "load", "-")
	require.NoError(t, err)

	out, err := execute(t, "", "report", "--org", "Company")
	require.NoError(t, err)

	assert.Contains(t, out, "Unknown vendor networks")
	assert.Contains(t, out, `"Guest"`)
	assert.Contains(t, out, `"Printer"`+report.Divider+`"Brother Industries, Ltd"`)
	assert.Contains(t, out, "1 organization networks excluded")
}

func TestReportCmd_SingleSection(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, sampleResults, "load", "-")
	require.NoError(t, err)

	out, err := execute(t, "", "report", "--org", "company, printer", "--section", "known")
	require.NoError(t, err)
	assert.Equal(t, report.NoKnownVendors+"\n", out)

	out, err = execute(t, "", "report", "--section", "unknown")
	require.NoError(t, err)
	// Patterns from the previous run are reused.
	assert.Equal(t, `"Guest"`+"\n", out)
}

func TestReportCmd_ConfiguredPatterns(t *testing.T) {
	setupEnv(t)
	t.Setenv("TRIAGE_ORGANIZATION_PATTERNS", "guest")
	_, err := execute(t, sampleResults, "load", "-")
	require.NoError(t, err)

	out, err := execute(t, "", "report", "--section", "unknown")
	require.NoError(t, err)
	assert.Equal(t, report.NoUnknownVendors+"\n", out)
}

func TestReportCmd_CopyAndOutput(t *testing.T) {
	dir := setupEnv(t)
	cb := &cli.MemoryClipboard{}
	original := clipboardFactory
	clipboardFactory = func() cli.Clipboard { return cb }
	t.Cleanup(func() { clipboardFactory = original })

	_, err := execute(t, sampleResults, "load", "-")
	require.NoError(t, err)

	outPath := filepath.Join(dir, "unknown.txt")
	_, err = execute(t, "", "report", "--org", "company", "--section", "unknown", "--copy", "--output", outPath)
	require.NoError(t, err)

	assert.Equal(t, `"Guest"`, cb.Text)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, `"Guest"`, string(data))
}

func TestReportCmd_InvalidFlags(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, sampleResults, "load", "-")
	require.NoError(t, err)

	_, err = execute(t, "", "report", "--section", "everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown section "everything"`)

	_, err = execute(t, "", "report", "--copy")
	assert.ErrorIs(t, err, errCopyNeedsSection)
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
