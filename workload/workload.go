// Package workload enumerates the benchmark inputs fed to every emulator
// run. Each entry of the benchmark directory is one workload.
package workload

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is the benchmark directory relative to the working tree.
const DefaultDir = "workloads/benchmarks"

// Workload is a single benchmark input.
type Workload struct {
	// Path is passed to the emulator on its command line.
	Path string
	// Name is the entry's base name, used for output file naming.
	Name string
}

// List returns every entry under dir, files and subdirectories alike,
// in directory iteration order.
func List(dir string) ([]Workload, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list workloads in %s: %w", dir, err)
	}

	workloads := make([]Workload, 0, len(entries))
	for _, e := range entries {
		workloads = append(workloads, Workload{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
		})
	}

	return workloads, nil
}
