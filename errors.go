package jgd

import (
	"errors"
	"fmt"
	"strings"
)

// Family sentinels. Every typed error below matches exactly one of them.
var (
	// ErrInvalidSchema is returned for malformed schema documents.
	ErrInvalidSchema = errors.New("jgd: invalid schema")

	// ErrInvalidSpec is returned for field or count specifications that cannot
	// be generated.
	ErrInvalidSpec = errors.New("jgd: invalid spec")

	// ErrPattern is returned when a ${...} placeholder cannot be parsed or resolved.
	ErrPattern = errors.New("jgd: pattern error")

	// ErrReference is returned for cross-entity references that cannot be resolved.
	ErrReference = errors.New("jgd: reference error")

	// ErrResource is returned when a run exceeds one of its budgets.
	ErrResource = errors.New("jgd: resource exhausted")
)

// Detail sentinels, carried in the Kind field of the typed errors.
var (
	ErrInvalidRange        = errors.New("jgd: invalid range")
	ErrInvalidProbability  = errors.New("jgd: probability out of [0, 1]")
	ErrNotPrimitive        = errors.New("jgd: array element is not primitive")
	ErrUnknownShape        = errors.New("jgd: unrecognized field spec shape")
	ErrUnknownPattern      = errors.New("jgd: unknown pattern")
	ErrIndexOutOfRange     = errors.New("jgd: index depth out of range")
	ErrUndeclaredReference = errors.New("jgd: reference to undeclared entity or field")
	ErrForwardReference    = errors.New("jgd: forward reference")
	ErrUniquenessExhausted = errors.New("jgd: uniqueness attempts exhausted")
	ErrBudgetExceeded      = errors.New("jgd: budget exceeded")
)

// SchemaError reports a malformed schema document.
type SchemaError struct {
	Path    string // Location in the document, e.g. "entities.users.fields.id"
	Line    int    // Source line, 0 when unknown
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("jgd: schema error")
	writeLocation(&b, e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError returns a new SchemaError.
func NewSchemaError(path, message string, cause error) *SchemaError {
	return &SchemaError{Path: path, Message: message, Cause: cause}
}

// IsSchemaError returns true if the error is a SchemaError.
func IsSchemaError(err error) bool {
	if err == nil {
		return false
	}
	var e *SchemaError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidSchema)
}

// SpecError reports a field or count specification that cannot be generated.
type SpecError struct {
	Path    string
	Kind    error // One of the detail sentinels, may be nil
	Message string
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	return formatKind("jgd: invalid spec", e.Path, e.Kind, e.Message)
}

// Is reports whether target is ErrInvalidSpec or the error kind.
func (e *SpecError) Is(target error) bool {
	return target == ErrInvalidSpec || (e.Kind != nil && target == e.Kind)
}

// NewSpecError returns a new SpecError.
func NewSpecError(path string, kind error, message string) *SpecError {
	return &SpecError{Path: path, Kind: kind, Message: message}
}

// IsSpecError returns true if the error is a SpecError.
func IsSpecError(err error) bool {
	if err == nil {
		return false
	}
	var e *SpecError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidSpec)
}

// PatternError reports a placeholder that cannot be parsed or resolved.
type PatternError struct {
	Path    string
	Pattern string // Placeholder text, e.g. "${name.firstName}"
	Kind    error
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	var b strings.Builder
	b.WriteString(formatKind("jgd: pattern error", e.Path, e.Kind, e.Message))
	if e.Pattern != "" {
		fmt.Fprintf(&b, " (pattern %q)", e.Pattern)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrPattern or the error kind.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern || (e.Kind != nil && target == e.Kind)
}

// NewPatternError returns a new PatternError.
func NewPatternError(pattern string, kind error, message string) *PatternError {
	return &PatternError{Pattern: pattern, Kind: kind, Message: message}
}

// IsPatternError returns true if the error is a PatternError.
func IsPatternError(err error) bool {
	if err == nil {
		return false
	}
	var e *PatternError
	return errors.As(err, &e) || errors.Is(err, ErrPattern)
}

// ReferenceError reports a cross-entity reference that cannot be resolved.
type ReferenceError struct {
	Path    string
	Ref     string // The reference as written, e.g. "users.id"
	Kind    error
	Message string
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	msg := formatKind("jgd: reference error", e.Path, e.Kind, e.Message)
	if e.Ref != "" {
		msg += fmt.Sprintf(" (ref %q)", e.Ref)
	}
	return msg
}

// Is reports whether target is ErrReference or the error kind.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference || (e.Kind != nil && target == e.Kind)
}

// NewReferenceError returns a new ReferenceError.
func NewReferenceError(ref string, kind error, message string) *ReferenceError {
	return &ReferenceError{Ref: ref, Kind: kind, Message: message}
}

// IsReferenceError returns true if the error is a ReferenceError.
func IsReferenceError(err error) bool {
	if err == nil {
		return false
	}
	var e *ReferenceError
	return errors.As(err, &e) || errors.Is(err, ErrReference)
}

// ResourceError reports an exhausted budget such as the node count or the uniqueness retries.
type ResourceError struct {
	Path    string
	Kind    error
	Limit   int
	Message string
}

// Error implements the error interface.
func (e *ResourceError) Error() string {
	msg := formatKind("jgd: resource exhausted", e.Path, e.Kind, e.Message)
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit %d)", e.Limit)
	}
	return msg
}

// Is reports whether target is ErrResource or the error kind.
func (e *ResourceError) Is(target error) bool {
	return target == ErrResource || (e.Kind != nil && target == e.Kind)
}

// NewResourceError returns a new ResourceError.
func NewResourceError(kind error, limit int, message string) *ResourceError {
	return &ResourceError{Kind: kind, Limit: limit, Message: message}
}

// IsResourceError returns true if the error is a ResourceError.
func IsResourceError(err error) bool {
	if err == nil {
		return false
	}
	var e *ResourceError
	return errors.As(err, &e) || errors.Is(err, ErrResource)
}

// AggregateError collects independent errors, for example from a batch of runs.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "jgd: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("jgd: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}

func writeLocation(b *strings.Builder, path string) {
	if path != "" {
		b.WriteString(" at ")
		b.WriteString(path)
	}
}

func formatKind(prefix, path string, kind error, message string) string {
	var b strings.Builder
	b.WriteString(prefix)
	writeLocation(&b, path)
	switch {
	case kind != nil && message != "":
		b.WriteString(": ")
		b.WriteString(strings.TrimPrefix(kind.Error(), "jgd: "))
		b.WriteString(": ")
		b.WriteString(message)
	case kind != nil:
		b.WriteString(": ")
		b.WriteString(strings.TrimPrefix(kind.Error(), "jgd: "))
	case message != "":
		b.WriteString(": ")
		b.WriteString(message)
	}
	return b.String()
}
