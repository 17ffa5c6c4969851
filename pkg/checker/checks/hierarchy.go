package checks

import (
	"context"

	"github.com/Faultbox/modelcheck/pkg/checker"
	"github.com/Faultbox/modelcheck/pkg/scene"
)

// HierarchyDepth flags nodes nested deeper than max_depth below the scene
// root (depth counts parent edges). A parent-link cycle is malformed input
// and fails the check with a structural error instead of looping.
func HierarchyDepth(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	maxDepth, err := p.PositiveInt("max_depth")
	if err != nil {
		return nil, err
	}

	var flagged []scene.NodeID
	for _, n := range view.Nodes(nil) {
		depth := 0
		visited := map[scene.NodeID]struct{}{n.ID: {}}
		cur := n
		for cur.Parent != "" {
			parent, ok := view.Node(cur.Parent)
			if !ok {
				return nil, checker.NewStructuralError(cur.ID, "parent %s does not exist", cur.Parent)
			}
			if _, seen := visited[parent.ID]; seen {
				return nil, checker.NewStructuralError(n.ID, "cycle detected in parent links")
			}
			visited[parent.ID] = struct{}{}
			depth++
			cur = parent
		}
		if depth > maxDepth {
			flagged = append(flagged, n.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}

// HiddenObjects flags nodes that are invisible or marked as intermediate
// objects; both normally vanish from output and often indicate leftovers.
func HiddenObjects(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	var flagged []scene.NodeID
	for _, n := range view.Nodes(nil) {
		if n.Type != scene.NodeTransform && n.Type != scene.NodeMesh {
			continue
		}
		if !n.Visible || n.Intermediate {
			flagged = append(flagged, n.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}

// EmptyGroups flags transform nodes with no children.
func EmptyGroups(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	var flagged []scene.NodeID
	for _, n := range view.Nodes(nil) {
		if n.Type == scene.NodeTransform && len(n.Children) == 0 {
			flagged = append(flagged, n.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}

// PolyCount flags mesh nodes whose face count exceeds max_faces.
func PolyCount(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	maxFaces, err := p.PositiveInt("max_faces")
	if err != nil {
		return nil, err
	}

	meshes, errM := meshNodes(view)
	if errM != nil {
		return nil, errM
	}

	var flagged []scene.NodeID
	for _, mn := range meshes {
		if len(mn.mesh.Faces) > maxFaces {
			flagged = append(flagged, mn.node.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}

// SceneUnits reports a finding under the synthetic scene identifier when the
// scene's linear unit differs from the expected one.
func SceneUnits(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	expected, ok := p.String("expected")
	if !ok || expected == "" {
		return nil, checker.NewConfigurationError("expected", "missing")
	}
	if view.Units() != expected {
		return checker.NodesResult(scene.SceneID), nil
	}
	return checker.NodesResult(), nil
}
