// Package hierarchy: the classical linkage policies for the generic binary
// partition tree.
package hierarchy

import "github.com/katalvlaran/hierarch/graph"

// minLinkage keeps a mirrored weight vector and gives the surviving edge
// the minimum of the one or two weights it replaces.
type minLinkage struct {
	weights []float64
}

// MinLinkage returns the single-linkage Weighter over the given initial
// edge weights. The slice is copied; the policy tracks current weights
// privately across merges.
//
// Single linkage defines the distance between regions X and Y as the
// minimum input weight over the edges joining X and Y. With all-distinct
// weights the resulting hierarchy equals BPTCanonical's; tied weights may be
// merged in a different order. Prefer that entry point when only single
// linkage is needed, it is cheaper by a heap.
func MinLinkage(weights []float64) Weighter {
	return &minLinkage{weights: append([]float64(nil), weights...)}
}

// Apply implements Weighter: new weight = min(w1, w2), or w1 alone.
func (l *minLinkage) Apply(_ *graph.Mutable, _, _, _, _ int, neighbours []NewNeighbour) {
	for i := range neighbours {
		nn := &neighbours[i]
		w := l.weights[nn.Edge1]
		if nn.Edge2 >= 0 && l.weights[nn.Edge2] < w {
			w = l.weights[nn.Edge2]
		}
		nn.NewWeight = w
		// Refresh the mirror at the surviving edge so later merges see the
		// value this edge now carries.
		l.weights[nn.Edge1] = w
	}
}

// maxLinkage keeps a mirrored weight vector and gives the surviving edge
// the maximum of the one or two weights it replaces.
type maxLinkage struct {
	weights []float64
}

// MaxLinkage returns the complete-linkage Weighter over the given initial
// edge weights. The slice is copied; the policy tracks current weights
// privately across merges.
//
// Complete linkage defines the distance between regions X and Y as the
// maximum input weight over the edges joining X and Y.
func MaxLinkage(weights []float64) Weighter {
	return &maxLinkage{weights: append([]float64(nil), weights...)}
}

// Apply implements Weighter: new weight = max(w1, w2), or w1 alone.
func (l *maxLinkage) Apply(_ *graph.Mutable, _, _, _, _ int, neighbours []NewNeighbour) {
	for i := range neighbours {
		nn := &neighbours[i]
		w := l.weights[nn.Edge1]
		if nn.Edge2 >= 0 && l.weights[nn.Edge2] > w {
			w = l.weights[nn.Edge2]
		}
		nn.NewWeight = w
		l.weights[nn.Edge1] = w
	}
}

// averageLinkage keeps two mirrored vectors: the current value of each edge
// and the mass behind it. Merging two parallel edges accumulates mass and
// takes the mass-weighted mean of the values.
type averageLinkage struct {
	values []float64
	masses []float64
}

// AverageLinkage returns the average-linkage Weighter over the given edge
// values and masses (typically the number of vertex pairs each edge
// represents; ones for a plain mean). Both slices are copied.
//
// Average linkage defines the distance between regions X and Y as the
// mass-weighted mean of the values of the edges joining X and Y. The heap
// is keyed on the running mean; accumulation is carried in float64.
//
// Returns ErrShapeMismatch when the two slices differ in length.
func AverageLinkage(values, masses []float64) (Weighter, error) {
	if len(values) != len(masses) {
		return nil, ErrShapeMismatch
	}

	return &averageLinkage{
		values: append([]float64(nil), values...),
		masses: append([]float64(nil), masses...),
	}, nil
}

// Apply implements Weighter: two parallel edges combine into
// (v1·m1 + v2·m2) / (m1 + m2) with mass m1 + m2; a single edge carries over.
func (l *averageLinkage) Apply(_ *graph.Mutable, _, _, _, _ int, neighbours []NewNeighbour) {
	for i := range neighbours {
		nn := &neighbours[i]
		value := l.values[nn.Edge1]
		mass := l.masses[nn.Edge1]
		if nn.Edge2 >= 0 {
			m2 := l.masses[nn.Edge2]
			value = (value*mass + l.values[nn.Edge2]*m2) / (mass + m2)
			mass += m2
		}
		nn.NewWeight = value
		l.values[nn.Edge1] = value
		l.masses[nn.Edge1] = mass
	}
}
