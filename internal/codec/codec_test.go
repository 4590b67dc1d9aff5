package codec_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"heicvert/internal/codec"
)

func transparentImage(t *testing.T, w, h int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: uint8(x * 37 % 256)})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    codec.Format
		wantErr bool
	}{
		{"PNG", codec.FormatPNG, false},
		{"png", codec.FormatPNG, false},
		{"jpg", codec.FormatJPG, false},
		{"JPEG", codec.FormatJPG, false},
		{" webp ", codec.FormatWEBP, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := codec.ParseFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseFormat(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatExtension(t *testing.T) {
	if got := codec.FormatPNG.Extension(); got != "png" {
		t.Fatalf("PNG extension: %q", got)
	}
	if got := codec.FormatJPG.Extension(); got != "jpg" {
		t.Fatalf("JPG extension: %q", got)
	}
	if got := codec.FormatWEBP.Extension(); got != "webp" {
		t.Fatalf("WEBP extension: %q", got)
	}
}

func TestEncodeJPEGFlattensAlpha(t *testing.T) {
	c := codec.NewWithDecoder(png.Decode)
	src := transparentImage(t, 12, 8)

	var buf bytes.Buffer
	if err := c.Encode(&buf, src, codec.FormatJPG, 85); err != nil {
		t.Fatalf("Encode to JPEG failed on alpha source: %v", err)
	}

	decoded, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatalf("decode produced JPEG: %v", err)
	}
	if decoded.Bounds().Dx() != 12 || decoded.Bounds().Dy() != 8 {
		t.Fatalf("dimensions changed: %v", decoded.Bounds())
	}
	// A fully transparent source pixel must come out white, not black.
	fullyTransparent := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	buf.Reset()
	if err := c.Encode(&buf, fullyTransparent, codec.FormatJPG, 85); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := out.At(1, 1).RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Fatalf("transparent pixel not composited onto white: r=%#x g=%#x b=%#x", r, g, b)
	}
}

func TestEncodePNGPreservesAlpha(t *testing.T) {
	c := codec.New()
	src := transparentImage(t, 5, 5)

	var buf bytes.Buffer
	if err := c.Encode(&buf, src, codec.FormatPNG, 85); err != nil {
		t.Fatalf("Encode to PNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode produced PNG: %v", err)
	}
	_, _, _, a := decoded.At(1, 0).RGBA()
	if a == 0xffff {
		t.Fatal("expected alpha to survive PNG encode")
	}
}

func TestDecodeFileUsesInjectedDecoder(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	path := filepath.Join(t.TempDir(), "sample.heic")

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := codec.NewWithDecoder(png.Decode)
	img, err := c.DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if img.Bounds().Dx() != 3 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
}

func TestDecodeFileWrapsDecoderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.heic")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	failure := errors.New("bad bitstream")
	c := codec.NewWithDecoder(func(io.Reader) (image.Image, error) {
		return nil, failure
	})

	_, err := c.DecodeFile(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !errors.Is(err, failure) {
		t.Fatalf("decoder error not wrapped: %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error does not name the source path: %v", err)
	}
}

func TestDecodeFileMissingSource(t *testing.T) {
	c := codec.New()
	if _, err := c.DecodeFile(filepath.Join(t.TempDir(), "absent.heic")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
