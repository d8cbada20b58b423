package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error independently of its wire status.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindMissingFields
	KindNotFound
	KindConflict
	KindForbidden
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindMissingFields:
		return "missing_fields"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Body keys used when rendering an Error.
const (
	FieldMessage = "message"
	FieldError   = "error"
)

// Error is a domain error carrying a stable code and a default message.
// Message may contain fmt verbs that are filled from Args.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Args    []any
	Field   string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Text()
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Text renders the default message with its arguments.
func (e *Error) Text() string {
	if len(e.Args) == 0 {
		return e.Message
	}
	return fmt.Sprintf(e.Message, e.Args...)
}

// Is matches errors of the same code so sentinel values survive With and Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Kind == t.Kind
}

// With returns a copy carrying formatting arguments.
func (e *Error) With(args ...any) *Error {
	cp := *e
	cp.Args = args
	return &cp
}

// Wrap returns a copy carrying the underlying cause.
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

// InErrorField returns a copy rendered under the "error" body key.
func (e *Error) InErrorField() *Error {
	cp := *e
	cp.Field = FieldError
	return &cp
}

func New(kind Kind, code, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Field:   FieldMessage,
	}
}

func InvalidArgument(code, message string) *Error {
	return New(KindInvalidArgument, code, message)
}

func MissingFields(code, message string) *Error {
	return New(KindMissingFields, code, message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

func Forbidden(code, message string) *Error {
	return New(KindForbidden, code, message)
}

func Unavailable(code, message string) *Error {
	return New(KindUnavailable, code, message)
}

// Internal wraps an unexpected failure; its message is never the cause text.
func Internal(err error) *Error {
	e := New(KindInternal, CodeInternal, "Internal Server Error")
	e.Err = err
	return e
}

const CodeInternal = "internal_error"

// As extracts a domain error from err.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf reports the kind of err, KindInternal when it is not a domain error.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}
