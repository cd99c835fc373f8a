package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownMode    = errors.New("unknown indexing mode")
	ErrUnknownFilter  = errors.New("unknown revisit filter")
	ErrCorpusNotFound = errors.New("corpus not found")
)

// Exit codes returned by the command-line driver.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitUsage    = 2
	ExitInput    = 3
)

type AppError struct {
	Err      error
	Message  string
	ExitCode int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, exitCode int, message string) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  message,
		ExitCode: exitCode,
	}
}

func Newf(sentinel error, exitCode int, format string, args ...any) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  fmt.Sprintf(format, args...),
		ExitCode: exitCode,
	}
}

// Invalid is shorthand for an ErrInvalidInput AppError.
func Invalid(format string, args ...any) *AppError {
	return Newf(ErrInvalidInput, ExitInput, format, args...)
}

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}

	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrCorpusNotFound):
		return ExitInput
	case errors.Is(err, ErrUnknownMode), errors.Is(err, ErrUnknownFilter):
		return ExitUsage
	default:
		return ExitInternal
	}
}
