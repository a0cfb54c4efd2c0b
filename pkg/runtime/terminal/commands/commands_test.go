package commands

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
	"github.com/urban-tools/congestion-atlas/pkg/runtime/terminal/export"
	"github.com/urban-tools/congestion-atlas/pkg/services/synth"
)

func testRegistry() synth.Registry {
	return synth.NewRegistry(map[string]synth.GeneratorFactory{
		"traffic":   synth.NewTrafficGenerator,
		"emissions": synth.NewEmissionsGenerator,
		"ridership": synth.NewRidershipGenerator,
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestDomainsCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewDomainsCmd(testRegistry())
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Supported domains:")
	assert.Contains(t, buf.String(), "emissions\nridership\ntraffic")
}

func TestGenerateCmd_WritesCSV(t *testing.T) {
	dir := t.TempDir()

	cmd := NewGenerateCmd(testRegistry())
	cmd.SetArgs([]string{
		"--domain", "emissions",
		"--from", "2023-01-01",
		"--to", "2023-01-10",
		"--out-dir", dir,
		"--seed", "7",
	})

	require.NoError(t, cmd.Execute())

	records := readCSV(t, filepath.Join(dir, "emissions.csv"))
	require.Len(t, records, 11, "header plus ten daily rows")
	assert.Equal(t, []string{
		"date", "pm25", "pm10", "o3", "no2", "co", "policy_active", "period",
	}, records[0])
	assert.Equal(t, "2023-01-01", records[1][0])
	assert.Equal(t, "Before", records[1][7])
}

func TestGenerateCmd_RequiresDomain(t *testing.T) {
	cmd := NewGenerateCmd(testRegistry())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--from", "2023-01-01", "--to", "2023-01-10"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain")
}

func TestGenerateCmd_RejectsMalformedDates(t *testing.T) {
	cmd := NewGenerateCmd(testRegistry())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--domain", "emissions", "--from", "yesterday", "--to", "2023-01-10"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGenerateCmd_RejectsUnknownDomain(t *testing.T) {
	cmd := NewGenerateCmd(testRegistry())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--domain", "bicycles", "--out-dir", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestAnalyzeCmd_PrintsDigestAndExports(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	cmd := NewAnalyzeCmd(testRegistry(), export.NewReporter(&buf))
	cmd.SetArgs([]string{
		"--from", "2023-01-01",
		"--to", "2023-12-31",
		"--seed", "7",
		"--export-dir", dir,
	})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "CONGESTION PRICING ANALYSIS SUMMARY")
	assert.Contains(t, out, "Total metrics analyzed: 11")
	assert.Contains(t, out, "Analysis period: 2023-01-01 to 2023-12-31")

	records := readCSV(t, filepath.Join(dir, "analysis_summary.csv"))
	require.Len(t, records, 12, "header plus eleven metric rows")
	assert.Equal(t, "metric", records[0][0])
	assert.Equal(t, "pm25", records[1][0])
}

func TestChartCmd_SavesFigure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pm25.png")

	cmd := NewChartCmd(testRegistry())
	cmd.SetArgs([]string{
		"--domain", "emissions",
		"--metric", "pm25",
		"--from", "2023-05-01",
		"--to", "2023-07-01",
		"--seed", "3",
		"--out", out,
	})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, out)
}

func TestChartCmd_RejectsUnknownMetric(t *testing.T) {
	cmd := NewChartCmd(testRegistry())
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--domain", "emissions", "--metric", "so2"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrUnknownMetric)
}

func TestLoadProfile_EmptyPathUsesDefaults(t *testing.T) {
	profile, err := loadProfile("")
	require.NoError(t, err)

	assert.Equal(t, "2023-06-01", profile.PolicyStart)
	assert.Equal(t, 0.05, profile.Alpha)
	assert.Equal(t, ".", profile.OutputDir)
}
