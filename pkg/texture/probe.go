// Package texture resolves file-texture references on disk and reads their
// pixel dimensions without decoding full images.
package texture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Dimension probing goes through image.DecodeConfig; these register the
	// formats commonly used for textures.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrUnresolved marks a texture reference whose file could not be resolved:
// missing, unreadable, undecodable, or not resolved within the lookup
// timeout. Callers treat it as a finding, not a failure.
var ErrUnresolved = errors.New("texture unresolved")

// Info holds the resolved pixel dimensions of a texture file.
type Info struct {
	Width  int
	Height int
}

// Probe opens the file and reads its dimensions. TGA files are probed from
// their header directly since the image registry has no TGA support.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrUnresolved, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return probeTGA(f)
	}

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrUnresolved, err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height}, nil
}

// Resolve probes a texture path as a bounded, cancellable lookup. A lookup
// that outlives the timeout (slow network mount, dead automount) reports
// ErrUnresolved rather than blocking the run.
func Resolve(ctx context.Context, path string, timeout time.Duration) (Info, error) {
	if timeout <= 0 {
		return Probe(path)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type probed struct {
		info Info
		err  error
	}
	done := make(chan probed, 1)
	go func() {
		info, err := Probe(path)
		done <- probed{info, err}
	}()

	select {
	case r := <-done:
		return r.info, r.err
	case <-ctx.Done():
		return Info{}, fmt.Errorf("%w: %v", ErrUnresolved, ctx.Err())
	}
}
