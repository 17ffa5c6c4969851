package texture

import (
	"fmt"
	"io"
)

// probeTGA reads dimensions from a TGA header. The 18-byte header stores
// width and height as little-endian uint16 at offsets 12 and 14; only
// unmapped true-color and grayscale images (types 1-3, 9-11) are accepted.
func probeTGA(r io.Reader) (Info, error) {
	var header [18]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Info{}, fmt.Errorf("%w: TGA header too short", ErrUnresolved)
	}

	imageType := header[2]
	switch imageType {
	case 1, 2, 3, 9, 10, 11:
	default:
		return Info{}, fmt.Errorf("%w: unsupported TGA type %d", ErrUnresolved, imageType)
	}

	width := int(header[12]) | int(header[13])<<8
	height := int(header[14]) | int(header[15])<<8
	if width == 0 || height == 0 {
		return Info{}, fmt.Errorf("%w: TGA reports zero dimensions", ErrUnresolved)
	}
	return Info{Width: width, Height: height}, nil
}
