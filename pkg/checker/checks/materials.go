package checks

import (
	"context"

	"github.com/Faultbox/modelcheck/pkg/checker"
	"github.com/Faultbox/modelcheck/pkg/scene"
)

// DefaultMaterial flags mesh nodes still bound to an unmodified default
// material, and mesh nodes with no material binding at all.
func DefaultMaterial(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	defaults := make(map[scene.NodeID]struct{})
	for _, id := range view.DefaultMaterials() {
		defaults[id] = struct{}{}
	}

	bound := make(map[scene.NodeID]bool)
	onDefault := make(map[scene.NodeID]bool)
	for _, b := range view.Bindings() {
		bound[b.Mesh] = true
		if _, isDefault := defaults[b.Material]; isDefault {
			onDefault[b.Mesh] = true
		}
	}

	var flagged []scene.NodeID
	for _, n := range view.Nodes(nil) {
		if n.Type != scene.NodeMesh {
			continue
		}
		if _, hasGeo := view.Mesh(n.ID); !hasGeo {
			continue
		}
		if !bound[n.ID] || onDefault[n.ID] {
			flagged = append(flagged, n.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}

// UnusedShadingNodes flags shading and file-texture nodes that no visible
// mesh reaches through the binding graph. Reachability walks upstream
// through shading links, so chains of utility nodes feeding a used material
// count as used.
func UnusedShadingNodes(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	// Upstream adjacency: consumer -> feeding nodes.
	upstream := make(map[scene.NodeID][]scene.NodeID)
	for _, l := range view.ShadingLinks() {
		upstream[l.To] = append(upstream[l.To], l.From)
	}

	// Seed with materials bound to visible, non-intermediate meshes.
	reachable := make(map[scene.NodeID]struct{})
	var queue []scene.NodeID
	for _, b := range view.Bindings() {
		mesh, ok := view.Node(b.Mesh)
		if !ok || !mesh.Visible || mesh.Intermediate {
			continue
		}
		if _, seen := reachable[b.Material]; !seen {
			reachable[b.Material] = struct{}{}
			queue = append(queue, b.Material)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, from := range upstream[cur] {
			if _, seen := reachable[from]; !seen {
				reachable[from] = struct{}{}
				queue = append(queue, from)
			}
		}
	}

	var flagged []scene.NodeID
	for _, n := range view.Nodes(nil) {
		if n.Type != scene.NodeShading && n.Type != scene.NodeFileTexture {
			continue
		}
		if _, used := reachable[n.ID]; !used {
			flagged = append(flagged, n.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}
