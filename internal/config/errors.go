package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig classifies config files that exist but cannot be
	// turned into a Configuration. Use errors.Is(err, ErrInvalidConfig).
	ErrInvalidConfig = errors.New("invalid config file")

	// ErrMissingField indicates one of the four required keys is absent or null.
	ErrMissingField = errors.New("missing required field")

	// ErrUnknownField indicates a key that is not part of the file format.
	ErrUnknownField = errors.New("unknown field")
)

// ParseError reports a config file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrInvalidConfig.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// unknownField extracts the key name from encoding/json's DisallowUnknownFields error.
func unknownField(err error) (string, bool) {
	const prefix = `json: unknown field "`
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(msg, prefix), `"`), true
}
