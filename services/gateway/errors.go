package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrOTPRequestFailed is returned when the OTP could not be issued.
	ErrOTPRequestFailed = errors.New("otp request failed")
	// ErrOTPInvalid is returned when the server rejects the code.
	ErrOTPInvalid = errors.New("otp invalid")
	// ErrListUnavailable is returned when the upcoming event listing fails.
	ErrListUnavailable = errors.New("event list unavailable")
	// ErrDetailUnavailable is returned when an event's details cannot be loaded.
	ErrDetailUnavailable = errors.New("event detail unavailable")
)

// Error describes a failed gateway call. Kind is one of the sentinels above.
type Error struct {
	Op     string
	Status int
	Kind   error
	Err    error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.Error()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the error's kind so callers can test with errors.Is(err, ErrOTPInvalid).
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, kind error, status int, cause error) error {
	return &Error{Op: op, Status: status, Kind: kind, Err: cause}
}
