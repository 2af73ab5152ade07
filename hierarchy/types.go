// Package hierarchy defines the sentinel errors, result aggregates and
// tunable options shared by the hierarchy builders.
package hierarchy

import (
	"errors"

	"github.com/katalvlaran/hierarch/graph"
	"github.com/katalvlaran/hierarch/tree"
)

// Sentinel errors for hierarchy construction.
var (
	// ErrShapeMismatch indicates that an input array length disagrees with
	// the graph: edge weights shorter or longer than the edge count, or
	// average-linkage value/mass arrays of different lengths.
	ErrShapeMismatch = errors.New("hierarchy: input array length does not match graph")

	// ErrInvalidWeight indicates a NaN or infinite edge weight in the input.
	ErrInvalidWeight = errors.New("hierarchy: edge weights must be finite")

	// ErrDisconnectedGraph indicates that the input graph has more than one
	// connected component, or no vertex at all, so no spanning hierarchy
	// exists. Split the input
	// into connected components before building.
	ErrDisconnectedGraph = errors.New("hierarchy: graph is disconnected")

	// ErrInvariant indicates an internal consistency check failed. It
	// reports a bug in the library rather than invalid input.
	ErrInvariant = errors.New("hierarchy: internal invariant violated")
)

// BPTResult is the output of BPTCanonical: the binary partition tree by
// altitude ordering, its node altitudes, the minimum spanning tree the
// merge sequence traced, and the map from MST edge ids back to input edge
// ids. All arrays are owned by the result.
type BPTResult struct {
	// Tree is the binary partition tree: 2n−1 nodes, leaves [0, n).
	Tree *tree.Tree

	// Altitudes has one entry per tree node: 0 on leaves, the fusion-edge
	// weight on inner nodes. Non-decreasing along every leaf-to-root path.
	Altitudes []float64

	// MST is the minimum spanning tree over the input vertices; its edge k
	// was created by the k-th merge.
	MST *graph.Undirected

	// MSTEdgeMap[k] is the input-graph edge id whose selection produced
	// MST edge k.
	MSTEdgeMap []int
}

// PartitionResult is the output of BinaryPartitionTree: the hierarchy and
// its node altitudes.
type PartitionResult struct {
	Tree      *tree.Tree
	Altitudes []float64
}

// QFZResult is the output of QuasiFlatZones: the simplified hierarchy, its
// altitudes, and the map from its node ids to the canonical BPT's node ids.
type QFZResult struct {
	Tree      *tree.Tree
	Altitudes []float64
	NodeMap   []int
}

// Options holds tunable parameters for the builders.
// Use DefaultOptions() and override via Option functions.
type Options struct {
	// InvariantChecks enables the post-build altitude assertions (zero leaf
	// altitudes, monotonicity). They are O(N) re-validations intended for
	// debugging and tests; production callers normally leave them off.
	// Parent ordering is validated by tree.New on every build regardless.
	InvariantChecks bool
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns the default builder configuration:
//
//	– InvariantChecks = false (trust the construction on the hot path).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		InvariantChecks: false,
	}
}

// WithInvariantChecks returns an Option that enables the post-build
// assertions. A failed assertion surfaces as ErrInvariant.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.InvariantChecks = true
	}
}

// applyOptions folds a list of Option functions over the defaults.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
