package harness

import (
	"path/filepath"
	"strconv"
)

// Variant is one emulator build for a tool and design.
type Variant struct {
	BinaryPath string
	// Tag distinguishes builds of the same tool and design.
	// Empty when the tool builds a single emulator.
	Tag string
}

// VariantStrategy turns a tool's variant arguments into emulator builds
// below base.
type VariantStrategy interface {
	Variants(base string, args []string) []Variant
}

// IndexedVariants treats args as integer parallelism levels. Level L
// lives in <base>/<Prefix>L.
type IndexedVariants struct {
	Prefix string
}

// Variants returns nothing if any argument is not an integer.
func (s IndexedVariants) Variants(base string, args []string) []Variant {
	labels := make([]string, 0, len(args))
	for _, a := range args {
		level, err := strconv.Atoi(a)
		if err != nil {
			return nil
		}
		labels = append(labels, s.Prefix+strconv.Itoa(level))
	}

	return LabeledVariants{}.Variants(base, labels)
}

// LabeledVariants treats each arg as a subdirectory label, e.g. an
// optimization level.
type LabeledVariants struct{}

// Variants returns nothing if any label is empty.
func (LabeledVariants) Variants(base string, args []string) []Variant {
	variants := make([]Variant, 0, len(args))
	seen := make(map[string]bool, len(args))

	for _, label := range args {
		if label == "" {
			return nil
		}
		if seen[label] {
			continue
		}
		seen[label] = true

		variants = append(variants, Variant{
			BinaryPath: filepath.Join(base, label, "emulator"),
			Tag:        label,
		})
	}

	return variants
}

// SingleVariant ignores args and yields <base>/emulator.
type SingleVariant struct{}

func (SingleVariant) Variants(base string, _ []string) []Variant {
	return []Variant{{BinaryPath: filepath.Join(base, "emulator")}}
}

// Resolver finds the emulator builds to exercise for a tool and design.
type Resolver struct {
	root       string
	strategies map[string]VariantStrategy
	fallback   VariantStrategy
}

// NewResolver creates a Resolver for build trees under root.
func NewResolver(root string) *Resolver {
	return &Resolver{
		root: root,
		strategies: map[string]VariantStrategy{
			"repcut": IndexedVariants{Prefix: "par-"},
			"essent": LabeledVariants{},
		},
		fallback: SingleVariant{},
	}
}

// Resolve returns the emulator variants for tool and design. Malformed
// args yield no variants rather than an error.
func (r *Resolver) Resolve(tool, design string, args []string) []Variant {
	strategy, ok := r.strategies[tool]
	if !ok {
		strategy = r.fallback
	}

	return strategy.Variants(BuildDir(r.root, tool, design), args)
}
