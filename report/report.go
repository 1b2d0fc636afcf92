// Package report summarizes how each emulator run ended.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/weiihann/simbench/harness"
)

// Summary is the JSON form of a run.
type Summary struct {
	RunID   string           `json:"run_id"`
	Total   int              `json:"total"`
	Failed  int              `json:"failed"`
	Results []harness.Result `json:"results"`
}

// NewSummary counts failures across results.
func NewSummary(runID string, results []harness.Result) Summary {
	s := Summary{RunID: runID, Total: len(results), Results: results}
	for _, r := range results {
		if r.Failed() {
			s.Failed++
		}
	}

	return s
}

// Generate writes a markdown table with one row per run.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	s := NewSummary("", results)

	fmt.Fprintln(w, "## Emulator Runs")
	fmt.Fprintln(w)

	if s.Failed == 0 {
		fmt.Fprintf(w, "Runs: %d, **all exited cleanly**\n", s.Total)
	} else {
		fmt.Fprintf(w, "Runs: %d, **%d failed**\n", s.Total, s.Failed)
	}

	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Design | Tool | Variant | Workload | Exit "+
		"| Wall Time | Output | Status |")
	fmt.Fprintln(w, "|--------|------|---------|----------|------"+
		"|-----------|--------|--------|")

	for _, r := range results {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %d | %s | %s | %s |\n",
			r.Design,
			r.Tool,
			orDash(r.Variant),
			r.Workload,
			r.ExitCode,
			formatDuration(r.WallTime),
			formatBytes(r.OutputBytes),
			status(r),
		)
	}

	return nil
}

// GenerateJSON writes the run summary as JSON to w.
func GenerateJSON(w io.Writer, runID string, results []harness.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewSummary(runID, results))
}

func status(r harness.Result) string {
	switch {
	case r.Err != "":
		return "error: " + r.Err
	case r.TimedOut:
		return "timeout"
	case r.ExitCode != 0:
		return "exit"
	default:
		return "ok"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func formatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}

	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}

func formatBytes(b uint64) string {
	if b == 0 {
		return "-"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimSuffix(formatted, ".0")

	return formatted + " " + units[unit]
}
