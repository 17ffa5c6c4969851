package checks

import (
	"context"
	"errors"
	"time"

	"github.com/Faultbox/modelcheck/pkg/checker"
	"github.com/Faultbox/modelcheck/pkg/scene"
	"github.com/Faultbox/modelcheck/pkg/texture"
)

// lookupTimeout reads the per-reference probe timeout parameter.
func lookupTimeout(p checker.Params) (time.Duration, error) {
	d, ok := p.Duration("timeout")
	if !ok {
		return 0, checker.NewConfigurationError("timeout", "missing or unparseable")
	}
	if d < 0 {
		return 0, checker.NewConfigurationError("timeout", "must not be negative, got %v", d)
	}
	return d, nil
}

// MissingTextures flags file-texture nodes whose path does not resolve to a
// readable image file within the lookup timeout. An unresolved file is a
// finding about the scene, never an engine failure.
func MissingTextures(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	timeout, err := lookupTimeout(p)
	if err != nil {
		return nil, err
	}

	var flagged []scene.NodeID
	for _, ref := range view.Textures() {
		if _, err := texture.Resolve(ctx, ref.Path, timeout); errors.Is(err, texture.ErrUnresolved) {
			flagged = append(flagged, ref.Node)
		}
	}
	return checker.NodesResult(flagged...), nil
}

// TextureResolution flags file-texture nodes whose resolution falls outside
// [min_resolution, max_resolution] on either axis. Host-provided resolution
// metadata is trusted when present; otherwise the file is probed. A texture
// that cannot be resolved at all is flagged here too, so this check alone
// covers "missing or wrong size".
func TextureResolution(ctx context.Context, view scene.View, p checker.Params) (*checker.Result, error) {
	minRes, err := p.PositiveInt("min_resolution")
	if err != nil {
		return nil, err
	}
	maxRes, err := p.PositiveInt("max_resolution")
	if err != nil {
		return nil, err
	}
	if maxRes < minRes {
		return nil, checker.NewConfigurationError("max_resolution", "must be at least min_resolution (%d), got %d", minRes, maxRes)
	}
	timeout, err := lookupTimeout(p)
	if err != nil {
		return nil, err
	}

	var flagged []scene.NodeID
	for _, ref := range view.Textures() {
		width, height := ref.Width, ref.Height
		if width == 0 || height == 0 {
			info, probeErr := texture.Resolve(ctx, ref.Path, timeout)
			if probeErr != nil {
				flagged = append(flagged, ref.Node)
				continue
			}
			width, height = info.Width, info.Height
		}
		if width < minRes || width > maxRes || height < minRes || height > maxRes {
			flagged = append(flagged, ref.Node)
		}
	}
	return checker.NodesResult(flagged...), nil
}
