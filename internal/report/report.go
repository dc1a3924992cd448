// Package report renders the shape of a compressed sequence for the ivec
// command.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/crystalix007/interval-vec/interval"
)

// ErrUnknownFormat is returned by [Write] for an unsupported format.
var ErrUnknownFormat = errors.New("unknown report format")

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Ratio thresholds used to highlight the compression ratio in tables.
const (
	goodRatio = 4.0
	fairRatio = 1.5
)

// ratioDigits is the number of decimal digits shown for the ratio in tables.
const ratioDigits = 2

// Summary is the rendered form of a run.
type Summary struct {
	Length    int     `json:"length"               yaml:"length"`
	Runs      int     `json:"runs"                 yaml:"runs"`
	Height    int     `json:"height"               yaml:"height"`
	Ratio     float64 `json:"ratio"                yaml:"ratio"`
	FailedOps int     `json:"failed_ops,omitempty" yaml:"failed_ops,omitempty"`
}

// NewSummary builds a summary from the statistics of a sequence and the
// number of operations that failed while producing it.
func NewSummary(stats interval.Stats, failedOps int) Summary {
	return Summary{
		Length:    stats.Length,
		Runs:      stats.Nodes,
		Height:    stats.Height,
		Ratio:     stats.Ratio(),
		FailedOps: failedOps,
	}
}

// Write renders summary to w in the given format. Color only affects the
// table format.
func Write(w io.Writer, format string, summary Summary, useColor bool) error {
	switch format {
	case FormatTable:
		_, err := io.WriteString(w, renderTable(summary, useColor)+"\n")

		return err
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(summary)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(summary); err != nil {
			return err
		}

		return encoder.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// renderTable lays the summary out as a two column table.
func renderTable(summary Summary, useColor bool) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRow(table.Row{"Length", humanize.Comma(int64(summary.Length))})
	tbl.AppendRow(table.Row{"Runs", humanize.Comma(int64(summary.Runs))})
	tbl.AppendRow(table.Row{"Height", humanize.Comma(int64(summary.Height))})
	tbl.AppendRow(table.Row{"Values per run", ratioColor(summary.Ratio, useColor).
		Sprint(humanize.FtoaWithDigits(summary.Ratio, ratioDigits))})

	if summary.FailedOps > 0 {
		tbl.AppendFooter(table.Row{"Failed ops", humanize.Comma(int64(summary.FailedOps))})
	}

	return tbl.Render()
}

// ratioColor picks a color reflecting how well the sequence compresses.
func ratioColor(ratio float64, useColor bool) *color.Color {
	var c *color.Color

	switch {
	case ratio >= goodRatio:
		c = color.New(color.FgGreen)
	case ratio >= fairRatio:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}

	if !useColor {
		c.DisableColor()
	}

	return c
}
