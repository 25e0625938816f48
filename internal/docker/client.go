package docker

import (
	"context"
	"errors"
	"strings"

	"github.com/rizface/dnet/internal/logging"
)

// Client runs network operations through an Executor
type Client struct {
	exec Executor
}

// NewClient creates a new client over the given executor
func NewClient(exec Executor) *Client {
	if exec == nil {
		exec = Unavailable("no executor configured")
	}
	return &Client{exec: exec}
}

// Available reports whether the underlying executor can reach docker
func (c *Client) Available() bool {
	return IsAvailable(c.exec)
}

// run executes one subcommand and turns a reported failure into a CommandError
func (c *Client) run(ctx context.Context, subcommand string, args []string) (string, error) {
	res, err := c.exec.Exec(ctx, subcommand, args)
	if err != nil {
		return "", err
	}

	if res.ExitCode != 0 || strings.TrimSpace(res.Stderr) != "" {
		cmdErr := newCommandError(subcommand, res)
		logging.L().Warnw("command failed",
			"subcommand", subcommand,
			"exit", res.ExitCode,
			"stderr", cmdErr.Stderr,
		)
		return "", cmdErr
	}

	return res.Stdout, nil
}

// logParseError records output that could not be interpreted
func logParseError(op string, err error) {
	if errors.Is(err, ErrMalformedOutput) || errors.Is(err, ErrUnexpectedOutput) {
		logging.L().Errorw("malformed output", "operation", op, "error", err)
	}
}
