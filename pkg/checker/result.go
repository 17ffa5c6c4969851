// Package checker provides the check contract, registry, concurrent runner,
// and report aggregation for scene validation. Checks are pure functions over
// an immutable scene view; the runner executes a requested subset and always
// produces one outcome per requested check.
package checker

import (
	"sort"

	"github.com/Faultbox/modelcheck/pkg/scene"
)

// Shape declares which kind of entities a check reports. Every check fixes
// its shape at registration time and never mixes shapes across runs.
type Shape int

// Result shape constants.
const (
	ShapeNodes Shape = iota
	ShapeVertex
	ShapeEdge
	ShapeFace
	ShapeUV
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeNodes:
		return "nodes"
	case ShapeVertex:
		return "vertices"
	case ShapeEdge:
		return "edges"
	case ShapeFace:
		return "faces"
	case ShapeUV:
		return "uvs"
	default:
		return "unknown"
	}
}

// Result is a check's finding. An empty result means "ran, found nothing",
// which is distinct from a check failure (reported as an error instead).
//
// For ShapeNodes only Nodes is populated; for component shapes Components
// maps each implicated node to the sorted indices flagged within its mesh.
type Result struct {
	Shape      Shape
	Nodes      []scene.NodeID
	Components map[scene.NodeID][]int
}

// NodesResult builds a node-shaped result.
func NodesResult(ids ...scene.NodeID) *Result {
	return &Result{Shape: ShapeNodes, Nodes: ids}
}

// ComponentResult builds a component-shaped result. Index lists are sorted
// and deduplicated; empty lists are dropped.
func ComponentResult(shape Shape, components map[scene.NodeID][]int) *Result {
	out := make(map[scene.NodeID][]int, len(components))
	for id, idxs := range components {
		if len(idxs) == 0 {
			continue
		}
		sorted := append([]int(nil), idxs...)
		sort.Ints(sorted)
		dedup := sorted[:1]
		for _, v := range sorted[1:] {
			if v != dedup[len(dedup)-1] {
				dedup = append(dedup, v)
			}
		}
		out[id] = dedup
	}
	return &Result{Shape: shape, Components: out}
}

// Empty reports whether the result flags nothing.
func (r *Result) Empty() bool {
	return len(r.Nodes) == 0 && len(r.Components) == 0
}

// Count returns the number of flagged entities: node count for ShapeNodes,
// total component indices otherwise.
func (r *Result) Count() int {
	if r.Shape == ShapeNodes {
		return len(r.Nodes)
	}
	n := 0
	for _, idxs := range r.Components {
		n += len(idxs)
	}
	return n
}
