package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/crystalix007/interval-vec/internal/report"
	"github.com/crystalix007/interval-vec/interval"
)

// sampleSummary builds a summary from a small sequence with two runs.
func sampleSummary(t *testing.T) report.Summary {
	t.Helper()

	v := interval.New[string]()

	for range 1500 {
		v.Push("a")
	}

	v.Push("b")

	return report.NewSummary(v.Stats(), 0)
}

func TestNewSummary(t *testing.T) {
	t.Parallel()

	summary := report.NewSummary(interval.Stats{Length: 10, Nodes: 4, Height: 3}, 2)

	assert.Equal(t, report.Summary{Length: 10, Runs: 4, Height: 3, Ratio: 2.5, FailedOps: 2}, summary)
}

func TestWrite_table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatTable, sampleSummary(t), false))

	out := buf.String()

	assert.Contains(t, out, "Length")
	assert.Contains(t, out, "1,501")
	assert.Contains(t, out, "750.5")
	assert.NotContains(t, out, "Failed ops")
	assert.NotContains(t, out, "\x1b[")
}

func TestWrite_tableFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	summary := report.NewSummary(interval.Stats{Length: 1, Nodes: 1, Height: 1}, 1200)

	require.NoError(t, report.Write(&buf, report.FormatTable, summary, false))

	out := buf.String()

	assert.Contains(t, out, "FAILED OPS")
	assert.Contains(t, out, "1,200")
}

func TestWrite_json(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	summary := sampleSummary(t)

	require.NoError(t, report.Write(&buf, report.FormatJSON, summary, true))

	var decoded report.Summary

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, summary, decoded)
	assert.NotContains(t, buf.String(), "failed_ops")
}

func TestWrite_yaml(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	summary := sampleSummary(t)

	require.NoError(t, report.Write(&buf, report.FormatYAML, summary, true))

	var decoded report.Summary

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, summary, decoded)
	assert.Contains(t, buf.String(), "runs: 2")
}

func TestWrite_unknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.Write(&buf, "csv", report.Summary{}, false)

	require.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.Empty(t, buf.String())
}
