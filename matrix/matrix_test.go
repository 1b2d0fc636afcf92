package matrix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	entries := Default()
	require.Len(t, entries, 8)
	require.NoError(t, validate(entries))

	assert.Equal(t, Entry{Tool: "repcut", Design: "rocket20", Args: []string{"2", "4"}}, entries[0])
	assert.Equal(t, Entry{Tool: "patronus", Design: "boom21"}, entries[7])
}

func TestParse(t *testing.T) {
	data := []byte(`
entries:
  - tool: repcut
    design: rocket20
    args: [2, 4, 8]
  - tool: essent
    design: boom21
    args: [O2, O3]
  - tool: verilator
    design: rocket20
`)

	entries, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, []string{"2", "4", "8"}, entries[0].Args)
	assert.Equal(t, []string{"O2", "O3"}, entries[1].Args)
	assert.Empty(t, entries[2].Args)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "entries: [tool"},
		{"no entries", "entries: []"},
		{"missing tool", "entries:\n  - design: rocket20\n"},
		{"missing design", "entries:\n  - tool: verilator\n"},
		{"duplicate", "entries:\n  - {tool: verilator, design: rocket20}\n  - {tool: verilator, design: rocket20}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - {tool: patronus, design: boom21}\n"), 0o644))

	entries, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Tool: "patronus", Design: "boom21"}}, entries)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
