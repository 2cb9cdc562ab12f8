package claude

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/erikmaday/clauditorium/internal/config"
	"github.com/erikmaday/clauditorium/internal/logger"
)

// killGracePeriod bounds how long a killed child may hold its pipes open
// before the wait is abandoned.
const killGracePeriod = 5 * time.Second

// Runner invokes the claude CLI as a one-shot subprocess per call.
type Runner struct {
	bin     string
	timeout time.Duration
}

// NewRunner builds a Runner from the process configuration.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		bin:     cfg.ClaudeBin,
		timeout: cfg.Timeout(),
	}
}

// Run executes the CLI with the given prompt and optional model, returning
// the trimmed stdout on success. Failures come back as a classified *Error.
// The ctx is consulted for the request correlation token only: the configured
// deadline is the sole cancellation primitive, so a dropped client does not
// kill a child that is still producing a response.
func (r *Runner) Run(ctx context.Context, prompt, model string) (string, error) {
	requestID, _ := logger.RequestID(ctx)

	startArgs := []any{"request_id", requestID, "prompt_len", len(prompt)}
	if model != "" {
		startArgs = append(startArgs, "model", model)
	}
	logger.Info("running claude cli", startArgs...)

	runCtx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	args := []string{"-p", prompt}
	if model != "" {
		args = append(args, "--model", model)
	}

	cmd := exec.CommandContext(runCtx, r.bin, args...)
	cmd.Env = filterEnv(os.Environ())
	cmd.WaitDelay = killGracePeriod

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// A clean exit that races the deadline still wins; only a failed run
		// is classified as a timeout.
		if runCtx.Err() == context.DeadlineExceeded {
			logger.Error("claude cli timed out", "request_id", requestID, "timeout", r.timeout)
			return "", newError(KindTimeout,
				fmt.Sprintf("Request timed out after %d seconds", int(r.timeout.Seconds())), runCtx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = "Claude CLI returned non-zero exit code"
			}
			logger.Error("claude cli error", "request_id", requestID,
				"exit_code", exitErr.ExitCode(), "stderr", msg)
			return "", newError(KindCLI, msg, err)
		}
		logger.Error("claude cli failed to start", "request_id", requestID, "error", err)
		return "", newError(KindSpawn, err.Error(), err)
	}

	response := strings.TrimSpace(stdout.String())
	logger.Info("claude cli response", "request_id", requestID, "response_len", len(response))
	return response, nil
}
