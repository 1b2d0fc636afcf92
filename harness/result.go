// Package harness resolves emulator builds and runs them against
// benchmark workloads.
package harness

import "time"

// Result records the outcome of one emulator run.
type Result struct {
	Design      string        `json:"design"`
	Tool        string        `json:"tool"`
	Variant     string        `json:"variant,omitempty"`
	Workload    string        `json:"workload"`
	OutputPath  string        `json:"output_path"`
	ExitCode    int           `json:"exit_code"`
	TimedOut    bool          `json:"timed_out,omitempty"`
	WallTime    time.Duration `json:"wall_time_ns"`
	OutputBytes uint64        `json:"output_bytes"`
	// Err is set when the output file could not be written.
	Err string `json:"error,omitempty"`
}

// Failed reports whether the run did not exit cleanly or lost its output.
func (r Result) Failed() bool {
	return r.ExitCode != 0 || r.TimedOut || r.Err != ""
}
