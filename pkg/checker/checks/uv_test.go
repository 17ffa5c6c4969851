package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/modelcheck/pkg/checker"
	"github.com/Faultbox/modelcheck/pkg/scene"
)

// stripMesh returns three equal right triangles in 3D with per-corner UVs.
// Triangles 0 and 1 get proportional UV area; triangle 2's UVs are shrunk by
// scale, distorting its 3D-to-UV ratio.
func stripMesh(scale float64) *scene.Mesh {
	return &scene.Mesh{
		Positions: []mgl64.Vec3{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			{2, 0, 0}, {3, 0, 0}, {2, 1, 0},
			{4, 0, 0}, {5, 0, 0}, {4, 1, 0},
		},
		Faces: [][]int{
			{0, 1, 2},
			{3, 4, 5},
			{6, 7, 8},
		},
		UVs: []mgl64.Vec2{
			{0, 0}, {0.2, 0}, {0, 0.2},
			{0.4, 0}, {0.6, 0}, {0.4, 0.2},
			{0.8, 0}, {0.8 + 0.2*scale, 0}, {0.8, 0.2 * scale},
		},
	}
}

func TestUVDistortion_FlagsOutlier(t *testing.T) {
	s, id := meshScene(stripMesh(0.25)) // outlier ratio 16x the median

	res, err := UVDistortion(context.Background(), s, checker.Params{"tolerance_factor": 2.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flagListEquals(res.Components[id], []int{2}) {
		t.Errorf("expected [2], got %v", res.Components[id])
	}
}

func TestUVDistortion_UniformMappingClean(t *testing.T) {
	s, _ := meshScene(stripMesh(1.0))

	res, err := UVDistortion(context.Background(), s, checker.Params{"tolerance_factor": 2.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Empty() {
		t.Errorf("uniform mapping flagged: %v", res.Components)
	}
}

func TestUVDistortion_CollapsedUVsFlagged(t *testing.T) {
	m := &scene.Mesh{
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:     [][]int{{0, 1, 2}},
		UVs:       []mgl64.Vec2{{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}},
	}
	s, id := meshScene(m)

	res, err := UVDistortion(context.Background(), s, checker.Params{"tolerance_factor": 2.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flagListEquals(res.Components[id], []int{0}) {
		t.Errorf("face with collapsed UVs should be flagged, got %v", res.Components[id])
	}
}

func TestUVDistortion_NoUVsIsClean(t *testing.T) {
	s, _ := meshScene(cubeMesh())

	res, err := UVDistortion(context.Background(), s, checker.Params{"tolerance_factor": 2.0})
	if err != nil {
		t.Fatalf("missing UVs must not fail: %v", err)
	}
	if !res.Empty() {
		t.Errorf("mesh without UVs flagged: %v", res.Components)
	}
}

func TestUVDistortion_BadTolerance(t *testing.T) {
	s, _ := meshScene(stripMesh(1.0))

	for _, bad := range []float64{-1, 0, 0.5} {
		_, err := UVDistortion(context.Background(), s, checker.Params{"tolerance_factor": bad})
		var ce *checker.ConfigurationError
		if !errors.As(err, &ce) {
			t.Errorf("tolerance %v: expected ConfigurationError, got %v", bad, err)
		}
	}
}

func TestTexelDensity_FlagsOutlier(t *testing.T) {
	s, id := meshScene(stripMesh(0.25))

	res, err := TexelDensity(context.Background(), s, checker.Params{
		"target_resolution": 1024,
		"tolerance_factor":  2.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flagListEquals(res.Components[id], []int{2}) {
		t.Errorf("expected [2], got %v", res.Components[id])
	}
}

func TestTexelDensity_UniformClean(t *testing.T) {
	s, _ := meshScene(stripMesh(1.0))

	res, err := TexelDensity(context.Background(), s, checker.Params{
		"target_resolution": 1024,
		"tolerance_factor":  2.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Empty() {
		t.Errorf("uniform density flagged: %v", res.Components)
	}
}

func TestUVRange(t *testing.T) {
	m := &scene.Mesh{
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:     [][]int{{0, 1, 2}},
		UVs:       []mgl64.Vec2{{0, 0}, {1.5, 0}, {0, -0.1}},
	}
	s, id := meshScene(m)

	res, err := UVRange(context.Background(), s, checker.Params{"epsilon": 1e-6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flagListEquals(res.Components[id], []int{1, 2}) {
		t.Errorf("expected [1 2], got %v", res.Components[id])
	}
}

func TestMissingUVs(t *testing.T) {
	s := scene.NewScene("cm")
	withUVs := s.AddNode(scene.Node{Name: "mapped", Type: scene.NodeMesh, Visible: true})
	s.SetMesh(withUVs, &scene.Mesh{
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:     [][]int{{0, 1, 2}},
		UVs:       []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}},
	})
	bare := s.AddNode(scene.Node{Name: "bare", Type: scene.NodeMesh, Visible: true})
	s.SetMesh(bare, &scene.Mesh{
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:     [][]int{{0, 1, 2}},
	})

	res, err := MissingUVs(context.Background(), s, checker.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Nodes) != 1 || res.Nodes[0] != bare {
		t.Errorf("expected [%s], got %v", bare, res.Nodes)
	}
}
