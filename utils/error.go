package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

// ValidationError reports input that failed a domain constraint
// (non-positive price, margin out of range, missing reference, ...).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateError reports a unique-column collision found by the
// read-before-write check. The check is not a store constraint, so two
// concurrent creates with the same value can both pass it; the second
// insert then produces a real duplicate row.
type DuplicateError struct {
	Column string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %s", e.Column, e.Value)
}

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
