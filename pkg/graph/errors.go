package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrEmptyGraph   = errors.New("graph has no nodes")
	ErrNodeRange    = errors.New("node id out of range")
	ErrEdgeNotFound = errors.New("edge not found")
	ErrBadEdgeLine  = errors.New("malformed edge line")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op     string // Operation that failed (e.g., "ReadEdgeList", "RemoveEdge")
	Entity string // Entity type (e.g., "node", "edge", "file")
	Line   int    // Input line number (if applicable)
	Detail string // Additional context
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s (line %d): %v", e.Op, e.Entity, e.Line, e.Cause)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Edge sets the entity to "edge".
func (b *ErrorBuilder) Edge() *ErrorBuilder {
	b.err.Entity = "edge"
	return b
}

// File sets the entity to "file" with the given path as detail.
func (b *ErrorBuilder) File(path string) *ErrorBuilder {
	b.err.Entity = "file"
	b.err.Detail = path
	return b
}

// Line sets the input line number.
func (b *ErrorBuilder) Line(n int) *ErrorBuilder {
	b.err.Line = n
	return b
}

// Detail sets additional context.
func (b *ErrorBuilder) Detail(d string) *ErrorBuilder {
	b.err.Detail = d
	return b
}

// Cause sets the underlying error and returns the built error.
func (b *ErrorBuilder) Cause(err error) error {
	b.err.Cause = err
	return &b.err
}
