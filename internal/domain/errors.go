package domain

import (
	"fmt"
)

// Common error types
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// ConflictError represents a lost race against a storage-level uniqueness
// constraint, e.g. two concurrent inserts of the same email. Resolution
// retries once by re-reading before surfacing this error.
type ConflictError struct {
	Key   string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %s", e.Key, e.Value)
}

// EvaluationError represents a malformed or failing segment condition.
// It is scoped to one segment and never aborts evaluation of siblings.
type EvaluationError struct {
	SegmentID string
	Err       error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("segment evaluation failed [%s]: %v", e.SegmentID, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// DownstreamError represents a failure notifying the automation dispatcher.
// The membership transition is the system of record, so this error is logged
// and never rolls a transition back.
type DownstreamError struct {
	Endpoint string
	Err      error
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("automation dispatch failed [%s]: %v", e.Endpoint, e.Err)
}

func (e *DownstreamError) Unwrap() error {
	return e.Err
}
