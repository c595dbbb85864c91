package apperror

import "fmt"

// Error is a classified failure, ready to be shown to a user.
type Error struct {
	Kind    Kind
	Code    string // raw remote code; empty when the failure carried none
	Message string
	Details any // raw failure for unknown kinds
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a classified error for a known kind with its default message.
func New(kind Kind) *Error {
	return &Error{Kind: kind, Code: kind.String(), Message: kind.Message()}
}

// RemoteError is a coded failure produced by a backend adapter.
type RemoteError struct {
	code string
	msg  string
	err  error
}

// Remote creates a coded failure. msg may be empty, in which case the cause's
// message is used.
func Remote(code, msg string, cause error) *RemoteError {
	return &RemoteError{code: code, msg: msg, err: cause}
}

// Code returns the remote error code.
func (e *RemoteError) Code() string { return e.code }

func (e *RemoteError) Error() string {
	switch {
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		return e.code
	}
}

func (e *RemoteError) Unwrap() error { return e.err }
