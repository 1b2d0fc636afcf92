package task

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/weiihann/simbench/harness"
	"github.com/weiihann/simbench/matrix"
	"github.com/weiihann/simbench/workload"
)

// Builder turns matrix entries into tasks.
type Builder struct {
	cfg      Config
	resolver *harness.Resolver
	fixed    harness.FixedHarness
	logger   *slog.Logger
}

// NewBuilder creates a Builder. The patronus tool is built in
// fixed-harness mode, every other tool through the variant resolver.
func NewBuilder(cfg Config, logger *slog.Logger) *Builder {
	return &Builder{
		cfg:      cfg,
		resolver: harness.NewResolver(cfg.Root),
		fixed:    harness.Patronus,
		logger:   logger,
	}
}

// Plan builds the tasks for every entry, in entry order.
func (b *Builder) Plan(entries []matrix.Entry) ([]Task, error) {
	var tasks []Task

	for _, e := range entries {
		var (
			built []Task
			err   error
		)

		if e.Tool == b.fixed.Tool {
			built, err = b.BuildFixedHarness(e.Design)
		} else {
			built, err = b.Build(e.Tool, e.Design, e.Args)
		}

		if err != nil {
			return nil, fmt.Errorf("plan %s/%s: %w", e.Tool, e.Design, err)
		}

		tasks = append(tasks, built...)
	}

	if err := CheckUnique(tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Build creates one task per workload and emulator variant of tool for
// design. Output directories exist when Build returns. Variant tags only
// appear in output paths when more than one variant was resolved.
func (b *Builder) Build(tool, design string, args []string) ([]Task, error) {
	workloads, err := workload.List(b.cfg.WorkloadsDir)
	if err != nil {
		return nil, err
	}

	variants := b.resolver.Resolve(tool, design, args)
	if len(variants) == 0 {
		b.logger.Warn("no emulator variants resolved",
			slog.String("tool", tool),
			slog.String("design", design),
			slog.Any("args", args),
		)

		return nil, nil
	}

	tagged := len(variants) > 1

	dirs := make([]string, len(variants))
	for i, v := range variants {
		dir := filepath.Join(b.cfg.ResultsDir, design, tool)
		if tagged {
			dir = filepath.Join(dir, v.Tag)
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir %s: %w", dir, err)
		}
		dirs[i] = dir
	}

	tasks := make([]Task, 0, len(workloads)*len(variants))
	for _, w := range workloads {
		for i, v := range variants {
			t := Task{
				OutputPath: filepath.Join(dirs[i], w.Name+".out"),
				Command:    b.command(v.BinaryPath, w.Path),
				Design:     design,
				Tool:       tool,
				Workload:   w.Name,
			}
			if tagged {
				t.Tag = v.Tag
			}

			tasks = append(tasks, t)
		}
	}

	b.logger.Debug("built tasks",
		slog.String("tool", tool),
		slog.String("design", design),
		slog.Int("variants", len(variants)),
		slog.Int("tasks", len(tasks)),
	)

	return tasks, nil
}

// BuildFixedHarness creates one task per workload running the shared
// fixed-harness emulator on design's hardware description.
func (b *Builder) BuildFixedHarness(design string) ([]Task, error) {
	emulator := b.fixed.Emulator(b.cfg.Root)
	description := b.fixed.Description(b.cfg.Root, design)

	dir := filepath.Join(b.cfg.ResultsDir, design, b.fixed.Tool)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}

	workloads, err := workload.List(b.cfg.WorkloadsDir)
	if err != nil {
		return nil, err
	}

	tasks := make([]Task, 0, len(workloads))
	for _, w := range workloads {
		tasks = append(tasks, Task{
			OutputPath: filepath.Join(dir, w.Name+".out"),
			Command:    b.command(emulator, description, w.Path),
			Design:     design,
			Tool:       b.fixed.Tool,
			Workload:   w.Name,
		})
	}

	return tasks, nil
}

func (b *Builder) command(binary string, inputs ...string) []string {
	cmd := make([]string, 0, len(b.cfg.Launcher)+1+len(b.cfg.HarnessArgs)+len(inputs))
	cmd = append(cmd, b.cfg.Launcher...)
	cmd = append(cmd, binary)
	cmd = append(cmd, b.cfg.HarnessArgs...)
	cmd = append(cmd, inputs...)

	return cmd
}
