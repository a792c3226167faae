package clip

import (
	"errors"
	"fmt"
	"syscall"
)

// Kind classifies a clipboard failure. Kinds are usable as errors.Is
// targets:
//
//	if errors.Is(err, clip.ResourceUnavailable) { ... }
type Kind string

const (
	ResourceUnavailable Kind = "resource unavailable"
	AllocationFailed    Kind = "allocation failed"
	LockFailed          Kind = "lock failed"
	TransferFailed      Kind = "transfer failed"
)

func (k Kind) Error() string { return string(k) }

// Error is a failed clipboard operation. Err is the native error, usually a
// syscall.Errno carrying the Win32 error code.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("clipboard %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("clipboard %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is this error's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Code returns the native error code, or 0 if the cause carries none.
func (e *Error) Code() syscall.Errno {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno
	}
	return 0
}
