// Package matrix lists the (tool, design, variant args) combinations a
// run exercises.
package matrix

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one tool and design pair. Args are interpreted by the tool's
// variant strategy: parallelism levels for repcut, optimization labels
// for essent, ignored otherwise.
type Entry struct {
	Tool   string   `yaml:"tool"`
	Design string   `yaml:"design"`
	Args   []string `yaml:"args,omitempty"`
}

// File is the on-disk form of a matrix.
type File struct {
	Entries []Entry `yaml:"entries"`
}

// Default returns the built-in matrix.
func Default() []Entry {
	return []Entry{
		{Tool: "repcut", Design: "rocket20", Args: []string{"2", "4"}},
		{Tool: "repcut", Design: "boom21", Args: []string{"2", "4"}},
		{Tool: "essent", Design: "rocket20", Args: []string{"O3"}},
		{Tool: "essent", Design: "boom21", Args: []string{"O3"}},
		{Tool: "verilator", Design: "rocket20"},
		{Tool: "verilator", Design: "boom21"},
		{Tool: "patronus", Design: "rocket20"},
		{Tool: "patronus", Design: "boom21"},
	}
}

// LoadFromFile reads and validates a matrix file.
func LoadFromFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read matrix file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML matrix.
func Parse(data []byte) ([]Entry, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse matrix YAML: %w", err)
	}

	if err := validate(f.Entries); err != nil {
		return nil, err
	}

	return f.Entries, nil
}

func validate(entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("matrix has no entries")
	}

	seen := make(map[[2]string]bool, len(entries))
	for i, e := range entries {
		if e.Tool == "" {
			return fmt.Errorf("entry at index %d has no tool", i)
		}
		if e.Design == "" {
			return fmt.Errorf("entry %q at index %d has no design", e.Tool, i)
		}

		key := [2]string{e.Tool, e.Design}
		if seen[key] {
			return fmt.Errorf("duplicate entry %s/%s", e.Tool, e.Design)
		}
		seen[key] = true
	}

	return nil
}
