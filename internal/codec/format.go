package codec

import (
	"fmt"
	"strings"
)

// Format is a supported output encoding.
type Format string

const (
	FormatPNG  Format = "PNG"
	FormatJPG  Format = "JPG"
	FormatWEBP Format = "WEBP"
)

// ParseFormat canonicalizes a user-supplied format name. JPEG is accepted as
// an alias for JPG.
func ParseFormat(value string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "PNG":
		return FormatPNG, nil
	case "JPG", "JPEG":
		return FormatJPG, nil
	case "WEBP":
		return FormatWEBP, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected PNG, JPG, or WEBP)", value)
	}
}

// Extension returns the canonical lowercase file extension without the dot.
func (f Format) Extension() string {
	return strings.ToLower(string(f))
}

// Lossy reports whether the format takes a quality parameter.
func (f Format) Lossy() bool {
	return f == FormatJPG || f == FormatWEBP
}
