package checks

import (
	"context"

	"github.com/Faultbox/modelcheck/pkg/checker"
	"github.com/Faultbox/modelcheck/pkg/scene"
	"github.com/Faultbox/modelcheck/pkg/spatial"
)

// FlippedNormals flags faces whose winding-derived normal disagrees with the
// face's declared normal by more than 90 degrees. When the mesh declares no
// normals, the winding normal is compared against an outward reference
// (from the mesh centroid toward the face center), which votes a consistent
// orientation for closed meshes. Degenerate faces have no defined normal and
// are never flagged.
func FlippedNormals(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	meshes, err := meshNodes(view)
	if err != nil {
		return nil, err
	}

	flagged := make(map[scene.NodeID][]int)
	for _, mn := range meshes {
		m := mn.mesh
		declared := len(m.Normals) == len(m.Faces) && len(m.Normals) > 0
		centroid := meshCentroid(m)

		for fi, face := range m.Faces {
			if len(face) < 3 {
				continue
			}
			w := windingNormal(m, face)
			if w.Dot(w) < degenerateNormal {
				continue
			}
			reference := faceCenter(m, face).Sub(centroid)
			if declared {
				reference = m.Normals[fi]
			}
			if reference.Dot(reference) < degenerateNormal {
				continue
			}
			// Angle over 90 degrees means a negative dot product.
			if w.Dot(reference) < 0 {
				flagged[mn.node.ID] = append(flagged[mn.node.ID], fi)
			}
		}
	}
	return checker.ComponentResult(checker.ShapeFace, flagged), nil
}

// OverlappingVertices flags every vertex that lies within epsilon of another
// vertex of the same mesh. Each implicated vertex index is reported once;
// a cluster of three coincident vertices yields three flagged indices.
func OverlappingVertices(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	eps, err := p.PositiveFloat("epsilon")
	if err != nil {
		return nil, err
	}

	meshes, errM := meshNodes(view)
	if errM != nil {
		return nil, errM
	}

	flagged := make(map[scene.NodeID][]int)
	for _, mn := range meshes {
		m := mn.mesh
		if len(m.Positions) < 2 {
			continue
		}
		points := make([]spatial.Point, len(m.Positions))
		for i, pos := range m.Positions {
			points[i] = spatial.Point{Index: i, Position: pos}
		}
		grid := spatial.Build(points, eps)

		for i, pos := range m.Positions {
			for _, j := range grid.Near(pos, eps) {
				if j != i {
					flagged[mn.node.ID] = append(flagged[mn.node.ID], i)
					break
				}
			}
		}
	}
	return checker.ComponentResult(checker.ShapeVertex, flagged), nil
}

// ConcaveFaces flags non-convex faces. Each corner's cross product is tested
// against the face's dominant winding; a sign mismatch marks the face.
// Triangles are always convex and never flagged.
func ConcaveFaces(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	meshes, err := meshNodes(view)
	if err != nil {
		return nil, err
	}

	flagged := make(map[scene.NodeID][]int)
	for _, mn := range meshes {
		m := mn.mesh
		for fi, face := range m.Faces {
			if len(face) <= 3 {
				continue
			}
			n := windingNormal(m, face)
			if n.Dot(n) < degenerateNormal {
				continue
			}
			for i := range face {
				prev := m.Positions[face[(i+len(face)-1)%len(face)]]
				cur := m.Positions[face[i]]
				next := m.Positions[face[(i+1)%len(face)]]
				cross := cur.Sub(prev).Cross(next.Sub(cur))
				if cross.Dot(n) < -degenerateNormal {
					flagged[mn.node.ID] = append(flagged[mn.node.ID], fi)
					break
				}
			}
		}
	}
	return checker.ComponentResult(checker.ShapeFace, flagged), nil
}

// Ngons flags faces with more than four sides.
func Ngons(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	return facesWhere(view, func(m *scene.Mesh, fi int) bool {
		return len(m.Faces[fi]) > 4
	})
}

// Triangles flags three-sided faces, for quad-only modeling pipelines.
func Triangles(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	return facesWhere(view, func(m *scene.Mesh, fi int) bool {
		return len(m.Faces[fi]) == 3
	})
}

// ZeroAreaFaces flags faces whose surface area falls below min_area.
func ZeroAreaFaces(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	minArea, err := p.PositiveFloat("min_area")
	if err != nil {
		return nil, err
	}
	return facesWhere(view, func(m *scene.Mesh, fi int) bool {
		return faceArea(m, m.Faces[fi]) < minArea
	})
}

// ZeroLengthEdges flags edges shorter than min_length, indexed over the
// mesh's deterministic edge enumeration.
func ZeroLengthEdges(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	minLen, err := p.PositiveFloat("min_length")
	if err != nil {
		return nil, err
	}

	meshes, errM := meshNodes(view)
	if errM != nil {
		return nil, errM
	}

	flagged := make(map[scene.NodeID][]int)
	for _, mn := range meshes {
		m := mn.mesh
		for ei, e := range m.Edges() {
			d := m.Positions[e.B].Sub(m.Positions[e.A])
			if d.Len() < minLen {
				flagged[mn.node.ID] = append(flagged[mn.node.ID], ei)
			}
		}
	}
	return checker.ComponentResult(checker.ShapeEdge, flagged), nil
}

// facesWhere runs a per-face predicate over every mesh in the scene.
func facesWhere(view scene.View, pred func(m *scene.Mesh, fi int) bool) (*checker.Result, error) {
	meshes, err := meshNodes(view)
	if err != nil {
		return nil, err
	}
	flagged := make(map[scene.NodeID][]int)
	for _, mn := range meshes {
		for fi := range mn.mesh.Faces {
			if pred(mn.mesh, fi) {
				flagged[mn.node.ID] = append(flagged[mn.node.ID], fi)
			}
		}
	}
	return checker.ComponentResult(checker.ShapeFace, flagged), nil
}
