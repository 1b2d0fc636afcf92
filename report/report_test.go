package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/weiihann/simbench/harness"
)

func TestGenerateAllClean(t *testing.T) {
	results := []harness.Result{
		{
			Design:      "rocket20",
			Tool:        "repcut",
			Variant:     "par-2",
			Workload:    "dhrystone.riscv",
			WallTime:    1500 * time.Millisecond,
			OutputBytes: 2048,
		},
		{
			Design:      "rocket20",
			Tool:        "verilator",
			Workload:    "dhrystone.riscv",
			WallTime:    300 * time.Millisecond,
			OutputBytes: 512,
		},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, results); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "all exited cleanly") {
		t.Error("expected clean summary line")
	}
	if !strings.Contains(output, "| rocket20 | repcut | par-2 | dhrystone.riscv | 0 | 1.50s | 2 KB | ok |") {
		t.Errorf("missing repcut row in:\n%s", output)
	}
	if !strings.Contains(output, "| rocket20 | verilator | - | dhrystone.riscv | 0 | 300ms | 512 B | ok |") {
		t.Errorf("missing verilator row in:\n%s", output)
	}
}

func TestGenerateFailures(t *testing.T) {
	results := []harness.Result{
		{Design: "boom21", Tool: "essent", Workload: "a", ExitCode: 134},
		{Design: "boom21", Tool: "essent", Workload: "b", ExitCode: -1, TimedOut: true},
		{Design: "boom21", Tool: "essent", Workload: "c", Err: "write output: disk full"},
		{Design: "boom21", Tool: "essent", Workload: "d"},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, results); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "**3 failed**") {
		t.Errorf("expected 3 failures in:\n%s", output)
	}
	for _, want := range []string{"| exit |", "| timeout |", "error: write output: disk full", "| ok |"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, nil)
	if err == nil {
		t.Error("expected error for empty results")
	}
}

func TestGenerateJSON(t *testing.T) {
	results := []harness.Result{
		{Design: "rocket20", Tool: "patronus", Workload: "qsort", ExitCode: 1},
	}

	var buf bytes.Buffer
	if err := GenerateJSON(&buf, "run-1", results); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed Summary
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if parsed.RunID != "run-1" {
		t.Errorf("run_id = %q, want run-1", parsed.RunID)
	}
	if parsed.Total != 1 || parsed.Failed != 1 {
		t.Errorf("total/failed = %d/%d, want 1/1", parsed.Total, parsed.Failed)
	}
	if parsed.Results[0].Tool != "patronus" {
		t.Errorf("tool = %q, want patronus", parsed.Results[0].Tool)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "-"},
		{10, "10 B"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{10240, "10 KB"},
		{1048576, "1 MB"},
		{1073741824, "1 GB"},
	}

	for _, tt := range tests {
		got := formatBytes(tt.input)
		if got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0ms"},
		{500 * time.Millisecond, "500ms"},
		{999 * time.Millisecond, "999ms"},
		{time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
		{time.Minute, "60.00s"},
	}

	for _, tt := range tests {
		got := formatDuration(tt.input)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
