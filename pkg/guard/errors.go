package guard

import (
	"errors"
	"fmt"
	"log/slog"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	// ErrNullArgument is returned when the checked value is absent.
	ErrNullArgument = errors.New("argument is null")

	// ErrInvalidArgument is returned when the checked value is present but
	// structurally invalid: an empty or blank string, too few elements.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when the checked value is outside a numeric
	// bound, is not a declared enum member, or is the default enum member.
	ErrOutOfRange = errors.New("argument out of range")
)

// ArgumentError describes a rejected function argument.
type ArgumentError struct {
	// Kind is one of ErrNullArgument, ErrInvalidArgument or ErrOutOfRange.
	Kind error
	// Parameter is the name of the offending parameter.
	Parameter string
	// Message is the caller-supplied message, or the default text of the check.
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (parameter '%s')", e.Message, e.Parameter)
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

// LogValue renders the error as a slog group.
func (e *ArgumentError) LogValue() slog.Value {
	kind := ""
	if e.Kind != nil {
		kind = e.Kind.Error()
	}
	return slog.GroupValue(
		slog.String("kind", kind),
		slog.String("parameter", e.Parameter),
		slog.String("message", e.Message),
	)
}

func nullArgument(parameterName, message string) error {
	return &ArgumentError{Kind: ErrNullArgument, Parameter: parameterName, Message: message}
}

func invalidArgument(parameterName, message string) error {
	return &ArgumentError{Kind: ErrInvalidArgument, Parameter: parameterName, Message: message}
}

func outOfRange(parameterName, message string) error {
	return &ArgumentError{Kind: ErrOutOfRange, Parameter: parameterName, Message: message}
}

// IsNullArgument reports whether err is an ErrNullArgument failure.
func IsNullArgument(err error) bool {
	return errors.Is(err, ErrNullArgument)
}

// IsInvalidArgument reports whether err is an ErrInvalidArgument failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsOutOfRange reports whether err is an ErrOutOfRange failure.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// ParameterName extracts the offending parameter name from err.
func ParameterName(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Parameter, true
	}

	return "", false
}
