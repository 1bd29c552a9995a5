// Package blas1 structured error types for precondition failures
package blas1

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Dimension errors: negative or mismatched vector lengths
	ErrTypeDimension ErrorType = iota
	// Bounds errors: buffer too small for the addressing pattern
	ErrTypeBounds
	// Invalid argument errors
	ErrTypeInvalidArg
)

// KernelError represents a structured error with context.
// Every KernelError reports a caller bug detected at the call boundary,
// before the kernel touches any memory; numeric edge values (NaN, Inf,
// overflow) are never reported as errors.
type KernelError struct {
	Type    ErrorType
	Op      string // Operation that failed, e.g. "Srot"
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *KernelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("blas1 %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("blas1 %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *KernelError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeDimension:
		return "Dimension"
	case ErrTypeBounds:
		return "Bounds"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewDimensionError creates a dimension error (negative or mismatched lengths)
func NewDimensionError(op string, message string) error {
	return &KernelError{
		Type:    ErrTypeDimension,
		Op:      op,
		Message: message,
	}
}

// NewBoundsError creates a bounds error (buffer too small for n and stride)
func NewBoundsError(op string, message string) error {
	return &KernelError{
		Type:    ErrTypeBounds,
		Op:      op,
		Message: message,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &KernelError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// IsDimensionError checks if an error is a dimension error
func IsDimensionError(err error) bool {
	if e, ok := err.(*KernelError); ok {
		return e.Type == ErrTypeDimension
	}
	return false
}

// IsBoundsError checks if an error is a bounds error
func IsBoundsError(err error) bool {
	if e, ok := err.(*KernelError); ok {
		return e.Type == ErrTypeBounds
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*KernelError); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}
