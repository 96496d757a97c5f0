package errors

// ExitCodeError is an error a binary exits with, along with the code to exit with.
type ExitCodeError struct {
	code ExitCode
	error
}

func NewError(err error, exitCode ExitCode) *ExitCodeError {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode, err}
}

func (e *ExitCodeError) GetExitCode() ExitCode {
	if e == nil {
		return 0
	}
	return e.code
}

// Cause makes ExitCodeError work with github.com/pkg/errors.Cause.
func (e *ExitCodeError) Cause() error { return e.error }

func (e *ExitCodeError) Unwrap() error { return e.error }
