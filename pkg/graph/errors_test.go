package graph

import (
	"errors"
	"strings"
	"testing"
)

func TestGraphError_Builder(t *testing.T) {
	err := NewError("RemoveEdge").Edge().Cause(ErrEdgeNotFound)

	if !errors.Is(err, ErrEdgeNotFound) {
		t.Error("Expected errors.Is to match the cause")
	}
	if !strings.Contains(err.Error(), "RemoveEdge") {
		t.Errorf("Expected operation in message, got %q", err.Error())
	}
}

func TestGraphError_LineContext(t *testing.T) {
	err := NewError("ReadEdgeList").Edge().Line(42).Cause(ErrBadEdgeLine)

	if !strings.Contains(err.Error(), "line 42") {
		t.Errorf("Expected line number in message, got %q", err.Error())
	}
}

func TestGraphError_Unwrap(t *testing.T) {
	err := NewError("LoadFile").File("edges.txt").Cause(ErrEmptyGraph)

	var ge *GraphError
	if !errors.As(err, &ge) {
		t.Fatal("Expected *GraphError")
	}
	if !errors.Is(errors.Unwrap(err), ErrEmptyGraph) {
		t.Error("Unwrap should return the cause")
	}
}
