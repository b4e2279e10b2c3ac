package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents the error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Messages shared by handlers.
const (
	MsgMissingFields       = "Missing required fields"
	MsgMissingStatusFields = "Missing order_id or status"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgNotFound            = "Not found"
	MsgInvalidJSON         = "Invalid JSON body"
)

// ValidationError reports a request that failed input validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// StorageError wraps a failure talking to the database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the operation that failed.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{
		Op:  op,
		Err: err,
	}
}

// Domain errors for business logic
var (
	ErrOrderNotFound = errors.New("Order not found")
	ErrInvalidStatus = errors.New("Invalid status: must be one of pending, processing, completed, cancelled")
)
