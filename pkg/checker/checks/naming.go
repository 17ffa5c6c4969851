package checks

import (
	"context"
	"regexp"

	"github.com/Faultbox/modelcheck/pkg/checker"
	"github.com/Faultbox/modelcheck/pkg/scene"
)

// namedTypes returns the node types a naming check applies to, defaulting to
// transforms and meshes (shading nodes follow host conventions of their own).
func namedTypes(p checker.Params) map[scene.NodeType]struct{} {
	types := map[scene.NodeType]struct{}{
		scene.NodeTransform: {},
		scene.NodeMesh:      {},
	}
	if raw, ok := p["types"]; ok {
		switch v := raw.(type) {
		case []scene.NodeType:
			types = make(map[scene.NodeType]struct{}, len(v))
			for _, t := range v {
				types[t] = struct{}{}
			}
		case []string:
			types = make(map[scene.NodeType]struct{}, len(v))
			for _, t := range v {
				types[scene.NodeType(t)] = struct{}{}
			}
		}
	}
	return types
}

// NamingConvention flags nodes whose name does not match the configured
// pattern. The check is purely string-based and ignores geometry.
func NamingConvention(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	pattern, ok := p.String("pattern")
	if !ok || pattern == "" {
		return nil, checker.NewConfigurationError("pattern", "missing")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, checker.NewConfigurationError("pattern", "%v", err)
	}

	types := namedTypes(p)
	var flagged []scene.NodeID
	for _, n := range view.Nodes(nil) {
		if _, ok := types[n.Type]; !ok {
			continue
		}
		if !re.MatchString(n.Name) {
			flagged = append(flagged, n.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}

var trailingDigits = regexp.MustCompile(`[0-9]+$`)

// TrailingNumbers flags nodes whose name ends in digits, which usually marks
// an unrenamed duplicate ("pCube3").
func TrailingNumbers(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	types := namedTypes(p)
	var flagged []scene.NodeID
	for _, n := range view.Nodes(nil) {
		if _, ok := types[n.Type]; !ok {
			continue
		}
		if trailingDigits.MatchString(n.Name) {
			flagged = append(flagged, n.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}

// DuplicatedNames flags every node whose name occurs more than once in the
// scene, across all node types.
func DuplicatedNames(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	nodes := view.Nodes(nil)
	counts := make(map[string]int, len(nodes))
	for _, n := range nodes {
		counts[n.Name]++
	}

	var flagged []scene.NodeID
	for _, n := range nodes {
		if counts[n.Name] > 1 {
			flagged = append(flagged, n.ID)
		}
	}
	return checker.NodesResult(flagged...), nil
}
