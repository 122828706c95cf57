package domain

import "fmt"

// FormatError reports a malformed day, time, or date token in an imported
// row. Rows failing with it are skipped; the batch continues.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return e.Reason }

func NewFormatError(format string, args ...any) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// ValidationError reports a booking request that violates a temporal rule.
// Rule holds the short rule name surfaced to callers.
type ValidationError struct {
	Rule   string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(rule, format string, args ...any) *ValidationError {
	return &ValidationError{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports an overlap with an existing active booking. It is
// distinct from ValidationError so callers can render "slot taken"
// differently from "bad input".
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a room or booking lookup miss.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Reason: fmt.Sprintf(format, args...)}
}

// IntegrityError reports a duplicate natural key hit during an idempotent
// upsert. Importers treat it as a no-op.
type IntegrityError struct {
	Reason string
}

func (e *IntegrityError) Error() string { return e.Reason }

func NewIntegrityError(format string, args ...any) *IntegrityError {
	return &IntegrityError{Reason: fmt.Sprintf(format, args...)}
}
