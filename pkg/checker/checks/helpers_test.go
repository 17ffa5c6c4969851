package checks

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/modelcheck/pkg/scene"
)

// meshScene builds a scene holding a single visible mesh node named "m" with
// the given geometry, and returns the scene and the node's ID.
func meshScene(m *scene.Mesh) (*scene.Scene, scene.NodeID) {
	s := scene.NewScene("cm")
	id := s.AddNode(scene.Node{Name: "m", Type: scene.NodeMesh, Visible: true})
	s.SetMesh(id, m)
	return s, id
}

// cubeMesh returns a unit cube with consistent outward winding (faces wound
// counter-clockwise viewed from outside) and no declared normals.
func cubeMesh() *scene.Mesh {
	return &scene.Mesh{
		Positions: []mgl64.Vec3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		Faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4}, // front
			{2, 3, 7, 6}, // back
			{0, 4, 7, 3}, // left
			{1, 2, 6, 5}, // right
		},
	}
}

// flagListEquals reports whether got holds exactly the wanted indices.
func flagListEquals(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
