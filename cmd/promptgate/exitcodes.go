package main

import (
	"errors"
	"fmt"

	"github.com/davetashner/promptgate/internal/config"
	"github.com/davetashner/promptgate/internal/registry"
)

// Exit codes for the promptgate CLI.
const (
	ExitOK          = 0 // Success.
	ExitInvalidArgs = 1 // Bad arguments or unsupported provider name.
	ExitConfig      = 2 // Config file unreadable or provider section incomplete.
	ExitProvider    = 3 // The provider call failed.
)

type exitCodeError struct {
	code int
	msg  string
	err  error
}

func (e *exitCodeError) Error() string { return e.msg }

func (e *exitCodeError) Unwrap() error { return e.err }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitConfig:
			msg = "promptgate: configuration error"
		case ExitProvider:
			msg = "promptgate: provider call failed"
		default:
			msg = "promptgate: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}

// classify maps an error returned from a command to its exit code. Typed
// registry and config errors are recognized anywhere in the chain.
func classify(err error) *exitCodeError {
	var ece *exitCodeError
	if errors.As(err, &ece) {
		return ece
	}

	code := ExitInvalidArgs
	var (
		unsupported *registry.UnsupportedProviderError
		missing     *registry.MissingSettingsError
		invalid     *registry.InvalidSettingsError
		parse       *config.ConfigParseError
	)
	switch {
	case errors.As(err, &unsupported):
		code = ExitInvalidArgs
	case errors.As(err, &missing), errors.As(err, &invalid), errors.As(err, &parse):
		code = ExitConfig
	}
	return &exitCodeError{code: code, msg: err.Error(), err: err}
}
