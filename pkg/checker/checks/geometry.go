// Package checks implements the built-in validation checks: topology, UV
// layout, naming, hierarchy, material, and texture analyses. Every check is a
// pure function registered with metadata through RegisterAll.
package checks

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/modelcheck/pkg/checker"
	"github.com/Faultbox/modelcheck/pkg/scene"
)

// degenerateNormal is the squared-magnitude floor below which a winding
// normal is treated as undefined (zero-area or collinear face).
const degenerateNormal = 1e-24

// windingNormal computes the geometric normal of a face from its vertex
// winding by summing cross products of consecutive vertices (Newell's
// method), which stays well-defined for non-planar and non-triangular faces.
// The result is unnormalized; its magnitude is twice the face area.
func windingNormal(m *scene.Mesh, face []int) mgl64.Vec3 {
	var n mgl64.Vec3
	for i := range face {
		cur := m.Positions[face[i]]
		next := m.Positions[face[(i+1)%len(face)]]
		n = n.Add(cur.Cross(next))
	}
	return n
}

// faceArea returns the 3D surface area of a face.
func faceArea(m *scene.Mesh, face []int) float64 {
	return windingNormal(m, face).Len() / 2
}

// faceUVArea returns the UV-space area of a face via the shoelace formula.
func faceUVArea(m *scene.Mesh, fi int) float64 {
	face := m.Faces[fi]
	var sum float64
	for i := range face {
		a := m.FaceUV(fi, i)
		b := m.FaceUV(fi, (i+1)%len(face))
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	return math.Abs(sum) / 2
}

// meshCentroid returns the average of all vertex positions.
func meshCentroid(m *scene.Mesh) mgl64.Vec3 {
	var c mgl64.Vec3
	if len(m.Positions) == 0 {
		return c
	}
	for _, p := range m.Positions {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(m.Positions)))
}

// faceCenter returns the average of a face's corner positions.
func faceCenter(m *scene.Mesh, face []int) mgl64.Vec3 {
	var c mgl64.Vec3
	for _, vi := range face {
		c = c.Add(m.Positions[vi])
	}
	return c.Mul(1 / float64(len(face)))
}

// meshNode pairs a node with its validated geometry.
type meshNode struct {
	node scene.Node
	mesh *scene.Mesh
}

// meshNodes collects all mesh-type nodes with geometry, validating the
// index-range invariant. A violation is malformed input, not a finding.
func meshNodes(view scene.View) ([]meshNode, error) {
	var out []meshNode
	for _, n := range view.Nodes(nil) {
		if n.Type != scene.NodeMesh {
			continue
		}
		m, ok := view.Mesh(n.ID)
		if !ok || m == nil {
			continue
		}
		if err := m.Validate(); err != nil {
			return nil, checker.NewStructuralError(n.ID, "%v", err)
		}
		out = append(out, meshNode{node: n, mesh: m})
	}
	return out, nil
}
