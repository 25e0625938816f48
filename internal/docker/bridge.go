package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"github.com/rizface/dnet/internal/logging"
)

// ErrHostUnavailable is returned when the docker CLI cannot be reached at all.
// It is distinct from a command that ran and failed.
var ErrHostUnavailable = errors.New("docker host unavailable")

// Result holds the captured output of one CLI invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs a docker subcommand with an ordered argument list.
// A non-zero exit is not an error; callers inspect Stderr and ExitCode.
type Executor interface {
	Exec(ctx context.Context, subcommand string, args []string) (Result, error)
}

// Bridge executes commands through the docker binary
type Bridge struct {
	binary string
	env    []string
}

// Verify Bridge satisfies Executor at compile time.
var _ Executor = (*Bridge)(nil)

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithEnv appends environment variables to every invocation.
func WithEnv(env ...string) BridgeOption {
	return func(b *Bridge) { b.env = append(b.env, env...) }
}

// NewBridge resolves the docker binary and returns an executor for it.
// If the binary cannot be found the returned executor is Unavailable.
func NewBridge(binary string, opts ...BridgeOption) Executor {
	path, err := exec.LookPath(binary)
	if err != nil {
		logging.L().Warnw("docker binary not found", "binary", binary, "error", err)
		return Unavailable(fmt.Sprintf("%s not found in PATH", binary))
	}

	b := &Bridge{binary: path}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Binary returns the resolved path of the docker binary
func (b *Bridge) Binary() string {
	return b.binary
}

// Exec runs `docker <subcommand> <args...>` and captures its output
func (b *Bridge) Exec(ctx context.Context, subcommand string, args []string) (Result, error) {
	id := uuid.New().String()
	start := time.Now()

	argv := append([]string{subcommand}, args...)
	cmd := exec.CommandContext(ctx, b.binary, argv...)
	cmd.WaitDelay = time.Second
	if len(b.env) > 0 {
		cmd.Env = append(os.Environ(), b.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log := logging.L().With("invocation", id, "subcommand", subcommand)
	log.Debugw("exec", "args", args)

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if ctx.Err() != nil {
			return res, fmt.Errorf("docker %s: %w", subcommand, ctx.Err())
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			log.Errorw("exec failed to start", "error", err)
			return res, fmt.Errorf("%w: %v", ErrHostUnavailable, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	log.Debugw("exec done", "exit", res.ExitCode, "duration", time.Since(start))
	return res, nil
}

// unavailable is the executor used when there is no docker CLI to talk to
type unavailable struct {
	reason string
}

// Unavailable returns an executor that fails every call with ErrHostUnavailable.
func Unavailable(reason string) Executor {
	return unavailable{reason: reason}
}

func (u unavailable) Exec(context.Context, string, []string) (Result, error) {
	return Result{}, fmt.Errorf("%w: %s", ErrHostUnavailable, u.reason)
}

// IsAvailable reports whether e can reach a docker CLI at all
func IsAvailable(e Executor) bool {
	_, ok := e.(unavailable)
	return !ok
}
