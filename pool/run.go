package pool

import (
	"context"
	"log/slog"
	"time"

	"github.com/weiihann/simbench/harness"
	"github.com/weiihann/simbench/task"
)

// Runner executes one task's command into its output file.
type Runner interface {
	Run(ctx context.Context, outputPath string, command []string) (*harness.Result, error)
}

// RunAll runs every task and blocks until all have finished. Results are
// returned in task order. A task whose output could not be saved is
// logged and reported through Result.Err; it never stops the others.
func RunAll(
	ctx context.Context,
	logger *slog.Logger,
	cfg Config,
	tasks []task.Task,
	runner Runner,
) []harness.Result {
	results := make([]harness.Result, len(tasks))
	if len(tasks) == 0 {
		return results
	}

	size := Size(len(tasks), cfg.MaxWorkers)

	logger.InfoContext(ctx, "running tasks",
		slog.Int("tasks", len(tasks)),
		slog.Int("workers", size),
	)

	start := time.Now()
	p := New(ctx, size)

	for i, t := range tasks {
		i, t := i, t
		p.Submit(func(ctx context.Context) {
			results[i] = runOne(ctx, logger, runner, t)
		})
	}

	p.Wait()

	logger.InfoContext(ctx, "all tasks finished",
		slog.Int("tasks", len(tasks)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return results
}

func runOne(
	ctx context.Context,
	logger *slog.Logger,
	runner Runner,
	t task.Task,
) harness.Result {
	var result harness.Result

	res, err := runner.Run(ctx, t.OutputPath, t.Command)
	if res != nil {
		result = *res
	}

	result.OutputPath = t.OutputPath
	result.Design = t.Design
	result.Tool = t.Tool
	result.Variant = t.Tag
	result.Workload = t.Workload

	if err != nil {
		result.Err = err.Error()
		logger.ErrorContext(ctx, "task failed",
			slog.String("output", t.OutputPath),
			slog.String("error", err.Error()),
		)

		return result
	}

	logger.DebugContext(ctx, "task finished",
		slog.String("output", t.OutputPath),
		slog.Int("exit_code", result.ExitCode),
		slog.Duration("wall_time", result.WallTime),
	)

	return result
}
