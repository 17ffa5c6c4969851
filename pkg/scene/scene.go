// Package scene defines the read-only scene model consumed by validation
// checks: nodes, meshes, material bindings, texture references, and the View
// interface that host integrations implement to expose their scene graph.
package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// NodeID is the stable identifier of a scene node. Identifiers are immutable
// for a node's lifetime; names are not.
type NodeID string

// SceneID is the synthetic identifier used for findings that apply to the
// scene as a whole (for example a unit mismatch) rather than to one node.
const SceneID NodeID = "scene"

// NewNodeID returns a freshly generated node identifier.
func NewNodeID() NodeID {
	return NodeID(uuid.NewString())
}

// NodeType tags what kind of entity a node is.
type NodeType string

// Node type constants.
const (
	NodeTransform   NodeType = "transform"
	NodeMesh        NodeType = "mesh"
	NodeShading     NodeType = "shading"
	NodeFileTexture NodeType = "file_texture"
)

// Node is a single entity in the scene graph. Parent is a weak back-reference
// (empty for roots); ownership of children stays with the host scene.
type Node struct {
	ID           NodeID
	Name         string
	Type         NodeType
	Parent       NodeID
	Children     []NodeID
	Visible      bool
	Intermediate bool
}

// Mesh holds the geometry owned by a mesh-type node.
//
// Faces index into Positions. Normals, when present, are per-face declared
// normals; when absent callers derive them from vertex winding. UVs may be
// indexed per vertex (FaceUVs nil, UV index == vertex index) or per face
// corner (FaceUVs[f][c] indexes into UVs). A nil UVs slice means the mesh has
// no UV set, which is a valid state.
type Mesh struct {
	Positions []mgl64.Vec3
	Faces     [][]int
	Normals   []mgl64.Vec3
	UVs       []mgl64.Vec2
	FaceUVs   [][]int
}

// Validate checks the mesh's index-range invariant: every face index must be
// inside the vertex range, and every face-corner UV index inside the UV range.
func (m *Mesh) Validate() error {
	for fi, face := range m.Faces {
		for _, vi := range face {
			if vi < 0 || vi >= len(m.Positions) {
				return fmt.Errorf("face %d references vertex %d, mesh has %d vertices", fi, vi, len(m.Positions))
			}
		}
	}
	if m.FaceUVs != nil {
		if len(m.FaceUVs) != len(m.Faces) {
			return fmt.Errorf("mesh has %d faces but %d face UV lists", len(m.Faces), len(m.FaceUVs))
		}
		for fi, corners := range m.FaceUVs {
			if len(corners) != len(m.Faces[fi]) {
				return fmt.Errorf("face %d has %d corners but %d UV indices", fi, len(m.Faces[fi]), len(corners))
			}
			for _, ui := range corners {
				if ui < 0 || ui >= len(m.UVs) {
					return fmt.Errorf("face %d references UV %d, mesh has %d UVs", fi, ui, len(m.UVs))
				}
			}
		}
	}
	return nil
}

// HasUVs reports whether the mesh carries a UV set.
func (m *Mesh) HasUVs() bool {
	return len(m.UVs) > 0
}

// FaceUV returns the UV coordinate of the given face corner, honoring either
// per-vertex or per-corner indexing.
func (m *Mesh) FaceUV(face, corner int) mgl64.Vec2 {
	if m.FaceUVs != nil {
		return m.UVs[m.FaceUVs[face][corner]]
	}
	return m.UVs[m.Faces[face][corner]]
}

// Edge is an undirected edge between two vertex indices, with A < B.
type Edge struct {
	A, B int
}

// Edges returns the mesh's unique undirected edges in a deterministic order
// (sorted by A, then B). Edge indices reported by checks refer to positions
// in this slice.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]struct{})
	for _, face := range m.Faces {
		n := len(face)
		for i := 0; i < n; i++ {
			a, b := face[i], face[(i+1)%n]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			seen[Edge{a, b}] = struct{}{}
		}
	}
	edges := make([]Edge, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// MaterialBinding relates a mesh node to a shading node. A nil Faces slice
// binds the whole mesh; otherwise only the listed face indices are bound.
type MaterialBinding struct {
	Mesh     NodeID
	Material NodeID
	Faces    []int
}

// TextureRef is a file-texture node's reference to an image on disk. Width
// and Height are resolution metadata when already known to the host (zero
// when unresolved); Path may point at a file that does not exist, which is a
// checkable state rather than an error.
type TextureRef struct {
	Node   NodeID
	Path   string
	Width  int
	Height int
}

// ShadingLink is a directed connection in the shading graph: the upstream
// node From feeds the downstream consumer To (for example a file texture
// feeding a material, or a utility node feeding another utility node).
type ShadingLink struct {
	From NodeID
	To   NodeID
}

// View is the read-only adapter through which checks see a scene. Host
// integrations implement it once; no check depends on host-specific APIs.
// Implementations must tolerate zero nodes and zero-vertex meshes, returning
// empty slices rather than failing.
//
// All methods are safe for concurrent use during a run: the underlying scene
// snapshot is immutable for the duration.
type View interface {
	// Nodes returns node views. A nil filter means all nodes; otherwise only
	// nodes whose ID is in the filter are returned, in scene order.
	Nodes(filter []NodeID) []Node

	// Node returns a single node by ID.
	Node(id NodeID) (Node, bool)

	// Mesh returns the geometry of a mesh-type node, or false if the node
	// does not exist or owns no mesh.
	Mesh(id NodeID) (*Mesh, bool)

	// Bindings returns all material bindings in the scene.
	Bindings() []MaterialBinding

	// Textures returns all file-texture references in the scene.
	Textures() []TextureRef

	// ShadingLinks returns the shading-graph connections.
	ShadingLinks() []ShadingLink

	// DefaultMaterials returns the IDs of shading nodes considered unmodified
	// host defaults (e.g. the initial shader every new mesh is bound to).
	DefaultMaterials() []NodeID

	// Units returns the scene's linear unit setting ("cm", "m", ...).
	Units() string
}
