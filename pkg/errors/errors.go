// Package errors provides custom error types for the stocktake system.
// These errors enable programmatic error checking with errors.Is and
// carry enough context (field name, offending value) for logging and
// display by the console layer.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the stocktake system
var (
	// ErrNotFound indicates that a requested product was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a product ID is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotActive indicates an attempt to sell an inactive product
	ErrNotActive = errors.New("not active")

	// ErrInvalidQuantity indicates a sale quantity outside the valid range
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidRange indicates a price filter with min greater than max
	ErrInvalidRange = errors.New("invalid range")

	// ErrReadOnly indicates an attempt to modify a read-only store
	ErrReadOnly = errors.New("read only")
)

// NotFoundError represents an error when a product is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// DuplicateIDError represents an attempt to add a product whose ID
// collides (case-insensitively) with an existing one
type DuplicateIDError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s with ID %s already exists", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewDuplicateIDError creates a new DuplicateIDError
func NewDuplicateIDError(resource, id string) *DuplicateIDError {
	return &DuplicateIDError{Resource: resource, ID: id}
}

// NotActiveError represents a sale attempt against an inactive product
type NotActiveError struct {
	ID string
}

// Error implements the error interface
func (e *NotActiveError) Error() string {
	return fmt.Sprintf("product %s is not active", e.ID)
}

// Is implements errors.Is support
func (e *NotActiveError) Is(target error) bool {
	return target == ErrNotActive
}

// InvalidQuantityError represents a sale quantity that is non-positive
// or exceeds the units in stock
type InvalidQuantityError struct {
	ID        string
	Requested int
	InStock   int
}

// Error implements the error interface
func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for product %s (%d in stock)", e.Requested, e.ID, e.InStock)
}

// Is implements errors.Is support
func (e *InvalidQuantityError) Is(target error) bool {
	return target == ErrInvalidQuantity
}

// InvalidRangeError represents a price filter whose bounded minimum
// exceeds its bounded maximum
type InvalidRangeError struct {
	Min float64
	Max float64
}

// Error implements the error interface
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid price range: min %.2f greater than max %.2f", e.Min, e.Max)
}

// Is implements errors.Is support
func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents a malformed numeric or boolean field encountered
// while decoding a catalog line or user input
type ParseError struct {
	Field   string
	Value   string
	Line    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse error in field %s (value %q): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError
func NewParseError(field, value string, err error) *ParseError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Field: field, Value: value, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "append"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotActive checks if an error is a not active error
func IsNotActive(err error) bool {
	return errors.Is(err, ErrNotActive)
}

// IsInvalidQuantity checks if an error is an invalid quantity error
func IsInvalidQuantity(err error) bool {
	return errors.Is(err, ErrInvalidQuantity)
}

// IsInvalidRange checks if an error is an invalid range error
func IsInvalidRange(err error) bool {
	return errors.Is(err, ErrInvalidRange)
}

// IsIOError checks if an error is an IO error
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(field, value string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(field, value, err)
}
