// Package tree defines sentinel errors and traversal policies for the
// parent-array tree model.
package tree

import "errors"

// Sentinel errors for tree construction.
var (
	// ErrEmptyParents indicates a zero-length parent array.
	ErrEmptyParents = errors.New("tree: parent array must be non-empty")

	// ErrInvalidParents indicates a malformed parent array: a non-root node
	// with parent <= itself, a root that is not the last node, or leaves
	// that do not form a contiguous id prefix.
	ErrInvalidParents = errors.New("tree: invalid parent array")
)

// Policy selects whether a traversal yields a node class or skips it.
type Policy int

const (
	// Include keeps the node class in the traversal.
	Include Policy = iota
	// Exclude skips the node class.
	Exclude
)
