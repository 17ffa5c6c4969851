package checks

import (
	"github.com/Faultbox/modelcheck/pkg/checker"
)

// Check categories.
const (
	CategoryGeneral   = "general"
	CategoryNaming    = "naming"
	CategoryTopology  = "topology"
	CategoryUVs       = "uvs"
	CategoryMaterials = "materials"
)

// All returns every built-in check with its metadata and default parameters.
func All() []checker.Check {
	return []checker.Check{
		// Topology
		{
			ID:       "flipped_normals",
			Category: CategoryTopology,
			Shape:    checker.ShapeFace,
			Defaults: checker.Params{},
			Run:      FlippedNormals,
		},
		{
			ID:       "overlapping_vertices",
			Category: CategoryTopology,
			Shape:    checker.ShapeVertex,
			Defaults: checker.Params{"epsilon": 1e-5},
			Run:      OverlappingVertices,
		},
		{
			ID:       "concave_faces",
			Category: CategoryTopology,
			Shape:    checker.ShapeFace,
			Defaults: checker.Params{},
			Run:      ConcaveFaces,
		},
		{
			ID:       "ngons",
			Category: CategoryTopology,
			Shape:    checker.ShapeFace,
			Defaults: checker.Params{},
			Run:      Ngons,
		},
		{
			ID:       "triangles",
			Category: CategoryTopology,
			Shape:    checker.ShapeFace,
			Defaults: checker.Params{},
			Run:      Triangles,
		},
		{
			ID:       "zero_area_faces",
			Category: CategoryTopology,
			Shape:    checker.ShapeFace,
			Defaults: checker.Params{"min_area": 1e-10},
			Run:      ZeroAreaFaces,
		},
		{
			ID:       "zero_length_edges",
			Category: CategoryTopology,
			Shape:    checker.ShapeEdge,
			Defaults: checker.Params{"min_length": 1e-7},
			Run:      ZeroLengthEdges,
		},

		// UVs
		{
			ID:       "uv_distortion",
			Category: CategoryUVs,
			Shape:    checker.ShapeFace,
			Defaults: checker.Params{"tolerance_factor": 2.0},
			Run:      UVDistortion,
		},
		{
			ID:       "texel_density",
			Category: CategoryUVs,
			Shape:    checker.ShapeFace,
			Defaults: checker.Params{"target_resolution": 1024, "tolerance_factor": 2.0},
			Run:      TexelDensity,
		},
		{
			ID:       "uv_range",
			Category: CategoryUVs,
			Shape:    checker.ShapeUV,
			Defaults: checker.Params{"epsilon": 1e-6},
			Run:      UVRange,
		},
		{
			ID:       "missing_uvs",
			Category: CategoryUVs,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{},
			Run:      MissingUVs,
		},

		// Naming
		{
			ID:       "naming_convention",
			Category: CategoryNaming,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{"pattern": `^[a-z][a-z0-9]*(_[a-z0-9]+)*$`},
			Run:      NamingConvention,
		},
		{
			ID:       "trailing_numbers",
			Category: CategoryNaming,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{},
			Run:      TrailingNumbers,
		},
		{
			ID:       "duplicated_names",
			Category: CategoryNaming,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{},
			Run:      DuplicatedNames,
		},

		// General
		{
			ID:       "hierarchy_depth",
			Category: CategoryGeneral,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{"max_depth": 5},
			Run:      HierarchyDepth,
		},
		{
			ID:       "hidden_objects",
			Category: CategoryGeneral,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{},
			Run:      HiddenObjects,
		},
		{
			ID:       "empty_groups",
			Category: CategoryGeneral,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{},
			Run:      EmptyGroups,
		},
		{
			ID:       "poly_count",
			Category: CategoryGeneral,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{"max_faces": 100000},
			Run:      PolyCount,
		},
		{
			ID:       "scene_units",
			Category: CategoryGeneral,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{"expected": "cm"},
			Run:      SceneUnits,
		},

		// Materials and textures
		{
			ID:       "default_material",
			Category: CategoryMaterials,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{},
			Run:      DefaultMaterial,
		},
		{
			ID:       "unused_shading_nodes",
			Category: CategoryMaterials,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{},
			Run:      UnusedShadingNodes,
		},
		{
			ID:       "missing_textures",
			Category: CategoryMaterials,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{"timeout": "250ms"},
			Run:      MissingTextures,
		},
		{
			ID:       "texture_resolution",
			Category: CategoryMaterials,
			Shape:    checker.ShapeNodes,
			Defaults: checker.Params{"min_resolution": 64, "max_resolution": 4096, "timeout": "250ms"},
			Run:      TextureResolution,
		},
	}
}

// RegisterAll registers every built-in check on the registry.
func RegisterAll(reg *checker.Registry) error {
	for _, c := range All() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
