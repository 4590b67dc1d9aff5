package codec

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// Encode writes img to w in the given format. Non-opaque sources are
// composited onto a white background for JPEG, which cannot carry alpha, and
// encoded losslessly for WebP so the alpha channel survives. quality applies
// to the lossy encoders only.
func (c *Codec) Encode(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	case FormatJPG:
		if !opaque(img) {
			img = flattenWhite(img)
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encode jpeg: %w", err)
		}
		return nil
	case FormatWEBP:
		opts, err := webpOptions(img, quality)
		if err != nil {
			return fmt.Errorf("webp encoder options: %w", err)
		}
		if err := webp.Encode(w, img, opts); err != nil {
			return fmt.Errorf("encode webp: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func webpOptions(img image.Image, quality int) (*encoder.Options, error) {
	if !opaque(img) {
		return encoder.NewLosslessEncoderOptions(encoder.PresetDefault, 0)
	}
	return encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
}

// flattenWhite composites img onto an opaque white background of identical
// pixel dimensions.
func flattenWhite(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(background, img, image.Point{}, 1.0)
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
