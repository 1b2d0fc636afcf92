package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after a timed-out
// child is killed. Grandchildren (e.g. the emulator under time) may keep
// them open.
const waitDelay = 5 * time.Second

// Runner launches one emulator command and saves what it printed.
type Runner struct {
	// Timeout bounds each run. Zero means no limit.
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(logger *slog.Logger, timeout time.Duration) *Runner {
	return &Runner{
		Timeout: timeout,
		Logger:  logger,
	}
}

// Run executes command and writes its stdout followed by its stderr to
// outputPath, replacing any existing file. A non-zero exit, a timeout
// or a failure to start the command is recorded in the result and the
// output file, not returned. Only failing to write the output is an
// error.
func (r *Runner) Run(
	ctx context.Context,
	outputPath string,
	command []string,
) (*Result, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("run %s: empty command", outputPath)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.WaitDelay = waitDelay
	killProcessGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Debug("starting emulator",
		slog.Any("command", command),
		slog.String("output", outputPath),
	)

	wallStart := time.Now()
	runErr := cmd.Run()
	wallElapsed := time.Since(wallStart)

	result := &Result{
		OutputPath: outputPath,
		WallTime:   wallElapsed,
	}

	var exitErr *exec.ExitError

	switch {
	case runErr == nil:
	case ctx.Err() != nil:
		result.TimedOut = true
		result.ExitCode = -1
	case errors.As(runErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		// Never started: keep the reason alongside anything captured.
		result.ExitCode = -1
		fmt.Fprintf(&stderr, "%s\n", runErr)
	}

	text := strings.ToValidUTF8(stdout.String()+stderr.String(), "�")

	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return result, fmt.Errorf("write output %s: %w", outputPath, err)
	}

	result.OutputBytes = uint64(len(text))

	r.Logger.Debug("emulator finished",
		slog.String("output", outputPath),
		slog.Int("exit_code", result.ExitCode),
		slog.Duration("wall_time", wallElapsed),
	)

	return result, nil
}
