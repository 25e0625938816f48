package docker

import (
	"errors"
	"fmt"
	"strings"
)

// Friendly messages returned by TranslateError
const (
	MsgActiveEndpoints = "Cannot remove network: it still has containers attached. Disconnect all containers first."
	MsgDuplicateName   = "A network with this name already exists. Choose a different name."
	MsgInvalidSubnet   = "Invalid subnet. Use CIDR notation, for example 172.20.0.0/16."
	MsgNetworkNotFound = "Network not found. It may have been removed; refresh the list."
	MsgNoSuchContainer = "Container not found. Check the container name or ID."
	MsgPermission      = "Permission denied. Make sure you are allowed to talk to the Docker daemon."
)

type translation struct {
	patterns []string
	message  string
}

// translations are checked in order; the first match wins
var translations = []translation{
	{[]string{"has active endpoints", "has active containers"}, MsgActiveEndpoints},
	{[]string{"already exists", "network with name"}, MsgDuplicateName},
	{[]string{"invalid cidr", "invalid subnet"}, MsgInvalidSubnet},
	{[]string{"not found", "no such network"}, MsgNetworkNotFound},
	{[]string{"no such container"}, MsgNoSuchContainer},
	{[]string{"permission denied", "access denied"}, MsgPermission},
}

// TranslateError maps a raw engine message to a user-facing one.
// Unrecognized messages are returned unchanged.
func TranslateError(message string) string {
	lower := strings.ToLower(message)
	for _, t := range translations {
		for _, p := range t.patterns {
			if strings.Contains(lower, p) {
				return t.message
			}
		}
	}
	return message
}

// CommandError is a docker invocation that completed but reported failure
type CommandError struct {
	Subcommand string
	Stderr     string
	ExitCode   int
	Message    string // translated text shown to the user
}

func (e *CommandError) Error() string {
	return e.Message
}

// newCommandError builds a CommandError from a finished invocation
func newCommandError(subcommand string, res Result) *CommandError {
	raw := strings.TrimSpace(res.Stderr)
	if raw == "" {
		raw = fmt.Sprintf("docker %s exited with code %d", subcommand, res.ExitCode)
	}
	return &CommandError{
		Subcommand: subcommand,
		Stderr:     raw,
		ExitCode:   res.ExitCode,
		Message:    TranslateError(strings.TrimPrefix(raw, "Error response from daemon: ")),
	}
}

// UserMessage returns the text to show for an operation failure
func UserMessage(err error) string {
	var cmdErr *CommandError
	var valErr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cmdErr):
		return cmdErr.Message
	case errors.As(err, &valErr):
		return valErr.Message
	case errors.Is(err, ErrHostUnavailable):
		return "Docker is not available. Make sure the docker CLI is installed and the daemon is running."
	case errors.Is(err, ErrMalformedOutput), errors.Is(err, ErrUnexpectedOutput):
		return "Docker returned output that could not be read."
	default:
		return err.Error()
	}
}

// ValidationError is a client-side precondition failure. No command was run.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
