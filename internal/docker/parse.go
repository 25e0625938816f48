package docker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedOutput means stdout could not be decoded as the expected JSON.
	ErrMalformedOutput = errors.New("malformed output")

	// ErrUnexpectedOutput means stdout decoded but did not have the expected shape.
	ErrUnexpectedOutput = errors.New("unexpected output")
)

// ParseLines decodes newline-delimited JSON, one record per non-blank line.
// A single undecodable line fails the whole parse.
func ParseLines[T any](output string) ([]T, error) {
	lines := strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")

	result := make([]T, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var record T
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedOutput, i+1, err)
		}
		result = append(result, record)
	}

	return result, nil
}

// ParseFirst decodes a JSON array and returns its first element
func ParseFirst[T any](output string) (T, error) {
	var zero T

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &items); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(items) == 0 || string(items[0]) == "null" {
		return zero, fmt.Errorf("%w: empty result", ErrUnexpectedOutput)
	}

	var first T
	if err := json.Unmarshal(items[0], &first); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return first, nil
}
