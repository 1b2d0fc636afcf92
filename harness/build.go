package harness

import (
	"path/filepath"
)

// Build directories of the two toolchains whose output tree differs from
// the tool name.
var canonicalNames = map[string]string{
	"repcut": "repcut-sim",
	"essent": "essent-sim",
}

// Canonicalize maps a tool name to the directory its builds live in.
func Canonicalize(tool string) string {
	if name, ok := canonicalNames[tool]; ok {
		return name
	}

	return tool
}

// BuildDir returns <root>/<canonical-tool>/build-<design>.
func BuildDir(root, tool, design string) string {
	return filepath.Join(root, Canonicalize(tool), "build-"+design)
}

// FixedHarness describes a tool that ships one prebuilt emulator and
// loads the design from a hardware description file at run time.
type FixedHarness struct {
	Tool     string
	BuildDir string
}

// Patronus runs every design through its JIT emulator and the design's
// TestHarness.btor.
var Patronus = FixedHarness{
	Tool:     "patronus",
	BuildDir: "patronus-sim",
}

// Emulator returns the path of the shared emulator binary.
func (h FixedHarness) Emulator(root string) string {
	return filepath.Join(root, h.BuildDir, "patronus", "resources", "emulator")
}

// Description returns the hardware description file for design.
func (h FixedHarness) Description(root, design string) string {
	return filepath.Join(root, h.BuildDir, "build-"+design, "TestHarness.btor")
}
