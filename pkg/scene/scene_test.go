package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMesh_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    Mesh
		wantErr bool
	}{
		{
			name: "valid triangle",
			mesh: Mesh{
				Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
				Faces:     [][]int{{0, 1, 2}},
			},
		},
		{
			name:    "empty mesh",
			mesh:    Mesh{},
			wantErr: false,
		},
		{
			name: "vertex index out of range",
			mesh: Mesh{
				Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}},
				Faces:     [][]int{{0, 1, 2}},
			},
			wantErr: true,
		},
		{
			name: "negative vertex index",
			mesh: Mesh{
				Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
				Faces:     [][]int{{0, -1, 2}},
			},
			wantErr: true,
		},
		{
			name: "corner UV index out of range",
			mesh: Mesh{
				Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
				Faces:     [][]int{{0, 1, 2}},
				UVs:       []mgl64.Vec2{{0, 0}},
				FaceUVs:   [][]int{{0, 0, 5}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMesh_Edges(t *testing.T) {
	// Two triangles sharing edge 1-2.
	m := Mesh{
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		Faces:     [][]int{{0, 1, 2}, {1, 3, 2}},
	}

	edges := m.Edges()
	want := []Edge{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}
	if len(edges) != len(want) {
		t.Fatalf("expected %d edges, got %d: %v", len(want), len(edges), edges)
	}
	for i, e := range want {
		if edges[i] != e {
			t.Errorf("edge %d: expected %v, got %v", i, e, edges[i])
		}
	}
}

func TestMesh_FaceUV(t *testing.T) {
	perVertex := Mesh{
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:     [][]int{{0, 1, 2}},
		UVs:       []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}},
	}
	if uv := perVertex.FaceUV(0, 1); uv != (mgl64.Vec2{1, 0}) {
		t.Errorf("per-vertex FaceUV(0,1) = %v", uv)
	}

	perCorner := Mesh{
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:     [][]int{{0, 1, 2}},
		UVs:       []mgl64.Vec2{{0.5, 0.5}},
		FaceUVs:   [][]int{{0, 0, 0}},
	}
	if uv := perCorner.FaceUV(0, 2); uv != (mgl64.Vec2{0.5, 0.5}) {
		t.Errorf("per-corner FaceUV(0,2) = %v", uv)
	}
}

func TestScene_NodesFilter(t *testing.T) {
	s := NewScene("cm")
	a := s.AddNode(Node{Name: "a", Type: NodeTransform, Visible: true})
	b := s.AddNode(Node{Name: "b", Type: NodeMesh, Parent: a, Visible: true})
	s.AddNode(Node{Name: "c", Type: NodeTransform, Visible: true})

	all := s.Nodes(nil)
	if len(all) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(all))
	}

	filtered := s.Nodes([]NodeID{b})
	if len(filtered) != 1 || filtered[0].Name != "b" {
		t.Fatalf("filter returned %v", filtered)
	}

	// Parent link maintained on both ends.
	parent, ok := s.Node(a)
	if !ok {
		t.Fatal("parent not found")
	}
	if len(parent.Children) != 1 || parent.Children[0] != b {
		t.Errorf("expected parent children [%s], got %v", b, parent.Children)
	}
}

func TestScene_Empty(t *testing.T) {
	s := NewScene("cm")
	if nodes := s.Nodes(nil); len(nodes) != 0 {
		t.Errorf("empty scene returned %d nodes", len(nodes))
	}
	if _, ok := s.Mesh("missing"); ok {
		t.Error("expected no mesh for unknown node")
	}
}

func TestNewNodeID_Unique(t *testing.T) {
	seen := make(map[NodeID]struct{})
	for i := 0; i < 100; i++ {
		id := NewNodeID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate node ID %s", id)
		}
		seen[id] = struct{}{}
	}
}
