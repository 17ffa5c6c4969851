package checks

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Faultbox/modelcheck/pkg/checker"
	"github.com/Faultbox/modelcheck/pkg/scene"
)

// faceRatio is a per-face measurement compared against its mesh's median.
type faceRatio struct {
	face  int
	value float64
}

// medianOf returns the median of the measured values. The median rather than
// the mean keeps a handful of extreme outliers from dragging the reference.
func medianOf(ratios []faceRatio) float64 {
	values := make([]float64, len(ratios))
	for i, r := range ratios {
		values[i] = r.value
	}
	sort.Float64s(values)
	return stat.Quantile(0.5, stat.Empirical, values, nil)
}

// UVDistortion flags faces whose 3D-area to UV-area ratio deviates from the
// mesh's median ratio by more than tolerance_factor in either direction.
// Faces with real surface area but collapsed UVs are flagged outright.
func UVDistortion(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	tol, err := p.PositiveFloat("tolerance_factor")
	if err != nil {
		return nil, err
	}
	if tol < 1 {
		return nil, checker.NewConfigurationError("tolerance_factor", "must be at least 1, got %v", tol)
	}

	meshes, errM := meshNodes(view)
	if errM != nil {
		return nil, errM
	}

	flagged := make(map[scene.NodeID][]int)
	for _, mn := range meshes {
		m := mn.mesh
		if !m.HasUVs() {
			continue
		}

		var ratios []faceRatio
		for fi, face := range m.Faces {
			if len(face) < 3 {
				continue
			}
			area3D := faceArea(m, face)
			areaUV := faceUVArea(m, fi)
			switch {
			case area3D < 1e-12 && areaUV < 1e-12:
				// Degenerate in both spaces, nothing to compare.
			case areaUV < 1e-12:
				flagged[mn.node.ID] = append(flagged[mn.node.ID], fi)
			default:
				ratios = append(ratios, faceRatio{face: fi, value: area3D / areaUV})
			}
		}
		if len(ratios) == 0 {
			continue
		}

		median := medianOf(ratios)
		for _, r := range ratios {
			if r.value > median*tol || r.value < median/tol {
				flagged[mn.node.ID] = append(flagged[mn.node.ID], r.face)
			}
		}
	}
	return checker.ComponentResult(checker.ShapeFace, flagged), nil
}

// TexelDensity flags faces whose texel density (texture pixels per world
// unit, for a target_resolution square texture) strays from the mesh's
// median density by more than tolerance_factor. Meshes without UVs are
// skipped; missing UVs are their own check.
func TexelDensity(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	res, err := p.PositiveInt("target_resolution")
	if err != nil {
		return nil, err
	}
	tol, err := p.PositiveFloat("tolerance_factor")
	if err != nil {
		return nil, err
	}
	if tol < 1 {
		return nil, checker.NewConfigurationError("tolerance_factor", "must be at least 1, got %v", tol)
	}

	meshes, errM := meshNodes(view)
	if errM != nil {
		return nil, errM
	}

	texels := float64(res) * float64(res)
	flagged := make(map[scene.NodeID][]int)
	for _, mn := range meshes {
		m := mn.mesh
		if !m.HasUVs() {
			continue
		}

		var ratios []faceRatio
		for fi, face := range m.Faces {
			if len(face) < 3 {
				continue
			}
			area3D := faceArea(m, face)
			if area3D < 1e-12 {
				continue
			}
			// Texel area covered by the face relative to its surface area.
			density := faceUVArea(m, fi) * texels / area3D
			ratios = append(ratios, faceRatio{face: fi, value: density})
		}
		if len(ratios) == 0 {
			continue
		}

		median := medianOf(ratios)
		if median < 1e-12 {
			continue
		}
		for _, r := range ratios {
			if r.value > median*tol || r.value < median/tol {
				flagged[mn.node.ID] = append(flagged[mn.node.ID], r.face)
			}
		}
	}
	return checker.ComponentResult(checker.ShapeFace, flagged), nil
}

// UVRange flags UV coordinates outside the [0,1] square. Indices refer to
// the mesh's UV pool (which equals vertex indices for per-vertex UVs).
func UVRange(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	eps, ok := p.Float("epsilon")
	if !ok {
		eps = 0
	}
	if eps < 0 {
		return nil, checker.NewConfigurationError("epsilon", "must not be negative, got %v", eps)
	}

	meshes, err := meshNodes(view)
	if err != nil {
		return nil, err
	}

	flagged := make(map[scene.NodeID][]int)
	for _, mn := range meshes {
		for ui, uv := range mn.mesh.UVs {
			if uv.X() < -eps || uv.X() > 1+eps || uv.Y() < -eps || uv.Y() > 1+eps {
				flagged[mn.node.ID] = append(flagged[mn.node.ID], ui)
			}
		}
	}
	return checker.ComponentResult(checker.ShapeUV, flagged), nil
}

// MissingUVs flags mesh nodes that have faces but no UV set at all.
func MissingUVs(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	meshes, err := meshNodes(view)
	if err != nil {
		return nil, err
	}

	var flagged []scene.NodeID
	for _, mn := range meshes {
		if len(mn.mesh.Faces) > 0 && !mn.mesh.HasUVs() {
			flagged = append(flagged, mn.node.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}
