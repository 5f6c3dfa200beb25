// Package apperror defines the error kinds the core reports to its callers.
// Delivery layers translate a Kind into a transport status; the message is safe
// to show to clients.
package apperror

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidArgument
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

// Error is a classified failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on kind and message so a sentinel compares equal to a copy of itself.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }
func Forbidden(message string) *Error       { return New(KindForbidden, message) }
func NotFound(message string) *Error        { return New(KindNotFound, message) }
func Conflict(message string) *Error        { return New(KindConflict, message) }
func InvalidArgument(message string) *Error { return New(KindInvalidArgument, message) }

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HasKind reports whether err carries the given kind.
func HasKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// MessageOf returns the client-safe message for err, or fallback for unclassified errors.
func MessageOf(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
