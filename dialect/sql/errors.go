package sql

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ConstraintError is returned when seeding a table violates a database
// constraint, e.g. a unique index on a column the generator repeated.
type ConstraintError struct {
	Table string
	Err   error
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("dialect/sql: constraint failed on %s: %v", e.Table, e.Err)
}

// Unwrap returns the driver error.
func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// IsConstraintError returns true if the error resulted from a database constraint violation.
func IsConstraintError(err error) bool {
	var e *ConstraintError
	return errors.As(err, &e) ||
		IsUniqueConstraintError(err) ||
		IsForeignKeyConstraintError(err) ||
		IsCheckConstraintError(err)
}

// errorCoder is implemented by pq.Error.
type errorCoder interface {
	Code() string
}

// errorNumberer is implemented by errors exposing a MySQL error number.
type errorNumberer interface {
	Number() uint16
}

// sqlStateError is implemented by errors providing SQLSTATE codes.
type sqlStateError interface {
	SQLState() string
}

// violation describes how each driver reports one class of constraint
// violation.
type violation struct {
	sqlState string   // PostgreSQL SQLSTATE, class 23
	mysql    []uint16 // MySQL error numbers
	messages []string // fallback for drivers without codes, e.g. SQLite
}

var (
	uniqueViolation = violation{
		sqlState: "23505",
		mysql:    []uint16{1062},
		messages: []string{"Error 1062", "violates unique constraint", "UNIQUE constraint failed"},
	}
	foreignKeyViolation = violation{
		sqlState: "23503",
		mysql:    []uint16{1451, 1452},
		messages: []string{"Error 1451", "Error 1452", "violates foreign key constraint", "FOREIGN KEY constraint failed"},
	}
	checkViolation = violation{
		sqlState: "23514",
		mysql:    []uint16{3819},
		messages: []string{"Error 3819", "violates check constraint", "CHECK constraint failed"},
	}
)

func (v violation) match(err error) bool {
	if err == nil {
		return false
	}
	if e, ok := asError[sqlStateError](err); ok && e.SQLState() == v.sqlState {
		return true
	}
	if e, ok := asError[errorCoder](err); ok && e.Code() == v.sqlState {
		return true
	}
	if e, ok := asError[errorNumberer](err); ok && slices.Contains(v.mysql, e.Number()) {
		return true
	}
	msg := err.Error()
	return slices.ContainsFunc(v.messages, func(s string) bool {
		return strings.Contains(msg, s)
	})
}

// IsUniqueConstraintError reports if the error resulted from a DB uniqueness constraint violation.
func IsUniqueConstraintError(err error) bool {
	return uniqueViolation.match(err)
}

// IsForeignKeyConstraintError reports if the error resulted from a database foreign-key constraint violation.
func IsForeignKeyConstraintError(err error) bool {
	return foreignKeyViolation.match(err)
}

// IsCheckConstraintError reports if the error resulted from a database check constraint violation.
func IsCheckConstraintError(err error) bool {
	return checkViolation.match(err)
}

// asError attempts to extract an error implementing interface T from the error chain.
func asError[T any](err error) (T, bool) {
	var target T
	for err != nil {
		if e, ok := err.(T); ok {
			return e, true
		}
		err = errors.Unwrap(err)
	}
	return target, false
}
