// Package task builds the emulator runs for a matrix: one task per
// workload and emulator variant, each with its own output file under
// results/<design>/<tool>[/<tag>]/<workload>.out.
package task

import (
	"fmt"
	"strings"

	"github.com/weiihann/simbench/workload"
)

const DefaultResultsDir = "results"

// Task is one emulator invocation and where its output goes.
type Task struct {
	OutputPath string
	Command    []string

	Design   string
	Tool     string
	Tag      string
	Workload string
}

func (t Task) String() string {
	return t.OutputPath + "\t" + strings.Join(t.Command, " ")
}

// Config controls where tasks read builds and workloads from and what
// their command lines look like.
type Config struct {
	// Root is the directory holding the toolchain build trees.
	Root         string
	WorkloadsDir string
	ResultsDir   string
	// Launcher prefixes every command; HarnessArgs follow the emulator.
	Launcher     []string
	HarnessArgs  []string
}

func DefaultConfig() Config {
	return Config{
		Root:         ".",
		WorkloadsDir: workload.DefaultDir,
		ResultsDir:   DefaultResultsDir,
		Launcher:     []string{"time"},
		HarnessArgs:  []string{"-c"},
	}
}

// CheckUnique returns an error if two tasks write the same file.
func CheckUnique(tasks []Task) error {
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.OutputPath] {
			return fmt.Errorf("duplicate output path %s", t.OutputPath)
		}
		seen[t.OutputPath] = true
	}

	return nil
}
