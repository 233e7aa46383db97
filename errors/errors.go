package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit    Phase = "init"    // runtime/engine initialization
	PhaseParse   Phase = "parse"   // text to representation
	PhaseConvert Phase = "convert" // representation to native scalar
	PhaseFetch   Phase = "fetch"   // cross-locale transport
	PhaseRuntime Phase = "runtime" // locale runtime operations
	PhaseConfig  Phase = "config"  // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindFormat      Kind = "format"       // malformed text input
	KindFault       Kind = "fault"        // locale unreachable or terminated
	KindContract    Kind = "contract"     // caller precondition violated
	KindOverflow    Kind = "overflow"     // native scalar does not fit
	KindOutOfRange  Kind = "out_of_range" // parameter outside supported range
	KindClosed      Kind = "closed"       // operation on a closed resource
	KindUnsupported Kind = "unsupported"
	KindInvalidData Kind = "invalid_data"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Format creates a malformed-text error for string parsing
func Format(text string, base int) *Error {
	preview := text
	if len(preview) > 32 {
		preview = preview[:32] + "..."
	}
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindFormat,
		Detail: fmt.Sprintf("cannot parse %q in base %d", preview, base),
		Value:  text,
	}
}

// BadBase creates an unsupported-base error
func BadBase(base int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("base %d outside supported range 2..62", base),
		Value:  base,
	}
}

// Fault creates a locale-unreachable error. Faults are terminal: the
// locale runtime reports them and aborts the process.
func Fault(localeID int32, detail string) *Error {
	return &Error{
		Phase:  PhaseFetch,
		Kind:   KindFault,
		Detail: fmt.Sprintf("locale %d: %s", localeID, detail),
		Value:  localeID,
	}
}

// Contract creates a caller-precondition error
func Contract(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindContract,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Overflow creates an overflow error for a scalar conversion
func Overflow(value any, targetType string) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value %v does not fit %s", value, targetType),
		Value:  value,
	}
}

// Closed creates an operation-on-closed-resource error
func Closed(what string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Config creates a configuration loading error
func Config(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
