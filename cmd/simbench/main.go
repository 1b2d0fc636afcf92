// Package main provides the CLI entry point for simbench, which runs every
// emulator build of a fixed tool and design matrix against a directory of
// benchmark workloads and saves each run's output under results/.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/weiihann/simbench/harness"
	"github.com/weiihann/simbench/matrix"
	"github.com/weiihann/simbench/pool"
	"github.com/weiihann/simbench/report"
	"github.com/weiihann/simbench/task"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type runConfig struct {
	task       task.Config
	pool       pool.Config
	timeout    time.Duration
	matrixPath string
	outputJSON bool
	verbose    bool
}

func defaultRunConfig() runConfig {
	return runConfig{
		task: task.DefaultConfig(),
		pool: pool.DefaultConfig(),
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := defaultRunConfig()

	root := &cobra.Command{
		Use:   "simbench",
		Short: "Run hardware emulator builds against benchmark workloads",
		Long: `Simbench runs every emulator variant built by each toolchain for each
design against every workload in workloads/benchmarks, capturing each run's
stdout and stderr into results/<design>/<tool>[/<variant>]/<workload>.out.

With no subcommand it runs the built-in matrix.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmarks(cmd.Context(), newLogger(stderr, cfg.verbose), stdout, cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.task.Root, "root", cfg.task.Root,
		"Directory holding the toolchain build trees")
	flags.StringVar(&cfg.task.WorkloadsDir, "workloads", cfg.task.WorkloadsDir,
		"Benchmark workload directory")
	flags.StringVar(&cfg.task.ResultsDir, "results", cfg.task.ResultsDir,
		"Directory receiving captured emulator output")
	flags.StringSliceVar(&cfg.task.Launcher, "launcher", cfg.task.Launcher,
		"Command each emulator is launched under")
	flags.StringVar(&cfg.matrixPath, "matrix", "",
		"YAML matrix file (default: built-in matrix)")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false,
		"Enable debug logging")

	root.Flags().IntVar(&cfg.pool.MaxWorkers, "workers", cfg.pool.MaxWorkers,
		"Maximum number of emulators running at once")
	root.Flags().DurationVar(&cfg.timeout, "timeout", 0,
		"Per-run timeout (0 = none)")
	root.Flags().BoolVar(&cfg.outputJSON, "json", false,
		"Output the run summary as JSON instead of a table")

	root.AddCommand(newPlanCmd(stdout, stderr, &cfg))

	return root
}

func newPlanCmd(stdout, stderr io.Writer, cfg *runConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the tasks a run would execute without running them",
		Long: `Build the task list for the matrix and print one line per task:
the output file, a tab, and the command line. Output directories are
created as they would be for a real run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(stderr, cfg.verbose)

			tasks, err := planTasks(logger, *cfg)
			if err != nil {
				return err
			}

			for _, t := range tasks {
				fmt.Fprintln(stdout, t.String())
			}

			return nil
		},
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func planTasks(logger *slog.Logger, cfg runConfig) ([]task.Task, error) {
	entries := matrix.Default()

	if cfg.matrixPath != "" {
		var err error

		entries, err = matrix.LoadFromFile(cfg.matrixPath)
		if err != nil {
			return nil, fmt.Errorf("load matrix: %w", err)
		}
	}

	builder := task.NewBuilder(cfg.task, logger)

	tasks, err := builder.Plan(entries)
	if err != nil {
		return nil, fmt.Errorf("build tasks: %w", err)
	}

	return tasks, nil
}

func runBenchmarks(
	ctx context.Context,
	logger *slog.Logger,
	stdout io.Writer,
	cfg runConfig,
) error {
	runID := uuid.NewString()
	logger = logger.With(slog.String("run_id", runID))

	logger.InfoContext(ctx, "starting run",
		slog.String("root", cfg.task.Root),
		slog.String("workloads", cfg.task.WorkloadsDir),
		slog.String("results", cfg.task.ResultsDir),
		slog.Int("max_workers", cfg.pool.MaxWorkers),
	)

	tasks, err := planTasks(logger, cfg)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		logger.WarnContext(ctx, "nothing to run")

		return nil
	}

	runner := harness.NewRunner(logger, cfg.timeout)
	results := pool.RunAll(ctx, logger, cfg.pool, tasks, runner)

	if cfg.outputJSON {
		if err := report.GenerateJSON(stdout, runID, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(stdout, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	logger.InfoContext(ctx, "run complete")

	return nil
}
