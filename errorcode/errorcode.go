// Package errorcode maps command failures to process exit codes.
package errorcode

import "errors"

type Errorcode int

const (
	Success                     Errorcode = 0
	ChecksFailed                Errorcode = 1
	InvalidCommandLineArguments Errorcode = 2
	FileIOError                 Errorcode = 3
)

// Error is an error that should make the process exit with Code.
type Error struct {
	Code Errorcode
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns err tagged with code, or nil if err is nil.
func Wrap(code Errorcode, err error) error {
	if err == nil {
		return nil
	}
	return &Error{code, err}
}

// Of returns the exit code for err. Errors that were never wrapped
// come from argument parsing, so they map to
// InvalidCommandLineArguments.
func Of(err error) Errorcode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return InvalidCommandLineArguments
}
