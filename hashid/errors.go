package hashid

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions. Callers
// should branch on Kind rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindInvalidLength reports input of the wrong size: a byte sequence
	// that is not exactly Size bytes, or a hex string that is not exactly
	// EncodedSize characters.
	KindInvalidLength Kind = "InvalidLength"
	// KindInvalidFormat reports hex input containing a character outside
	// [0-9a-fA-F], or a foreign multihash envelope.
	KindInvalidFormat Kind = "InvalidFormat"
	// KindIO reports a failure reading from, or closing, a caller-supplied
	// source.
	KindIO Kind = "IoError"
)

// Error is the library's structured error type.
//
// Message is intended for humans; do not match on it. Cause, when set, is
// reachable through errors.Is/errors.As via Unwrap.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func wrapError(kind Kind, msg string, cause error) error {
	if cause == nil {
		return newError(kind, msg)
	}
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
