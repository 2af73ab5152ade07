// Package graph defines sentinel errors shared by the static and mutable
// graph representations.
package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrVertexCount indicates a negative vertex count at construction.
	ErrVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexRange indicates an endpoint outside [0, NumVertices()).
	ErrVertexRange = errors.New("graph: vertex id out of range")

	// ErrSelfLoop indicates an edge whose two endpoints coincide.
	ErrSelfLoop = errors.New("graph: self-loops are not supported")

	// ErrEmptyGrid indicates a grid constructor received a non-positive
	// height or width.
	ErrEmptyGrid = errors.New("graph: grid dimensions must be positive")
)
