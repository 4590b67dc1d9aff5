// Package codec wraps the external image libraries behind a handle that the
// dispatcher threads through conversion jobs: HEIC decoding via gen2brain/heic
// and encoding to PNG, JPEG, or WebP.
package codec

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gen2brain/heic"
)

// DecodeFunc turns a source image stream into an image.Image.
type DecodeFunc func(io.Reader) (image.Image, error)

// Codec decodes HEIC sources and encodes output formats. The zero value is
// not usable; construct with New. Codec is safe for concurrent use because
// it holds no mutable state after construction.
type Codec struct {
	decode DecodeFunc
}

// New returns a codec backed by the embedded libheif decoder.
func New() *Codec {
	return &Codec{decode: heic.Decode}
}

// NewWithDecoder returns a codec using a caller-supplied decoder. Tests use
// this to feed non-HEIC fixtures through the conversion path.
func NewWithDecoder(decode DecodeFunc) *Codec {
	return &Codec{decode: decode}
}

// DecodeFile opens and decodes a single source image.
func (c *Codec) DecodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer file.Close()

	img, err := c.decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
