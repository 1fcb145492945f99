package yagl

import (
	"bytes"
	"testing"
)

func TestChunkRoundTripPalette(t *testing.T) {
	f := resolvePixelFormat(flagChunked | flagPalette)
	width, height := 6, 3
	pixels := []byte{
		0, 5, 6, 0, 0, 9,
		1, 2, 3, 4, 5, 6,
		0, 0, 0, 0, 0, 0,
	}

	encoded := encodeChunked(pixels, width, height, f)
	decoded, err := decodeChunked(encoded, width, height, f, len(encoded))
	if err != nil {
		t.Fatalf("decodeChunked: %s", err)
	}
	if !bytes.Equal(decoded, pixels) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", decoded, pixels)
	}
}

func TestChunkRoundTripRGBA(t *testing.T) {
	f := resolvePixelFormat(flagChunked | flagRGB | flagAlpha)
	width, height := 3, 2
	pixels := make([]byte, width*height*f.bpp)
	for i := range pixels {
		pixels[i] = byte(i + 1)
	}
	// make the first pixel of row 0 transparent (alpha byte at offset 3).
	// Only opaque runs are stored, so a transparent pixel decodes as all
	// zero bytes; its colour bytes are zeroed here to match.
	pixels[0], pixels[1], pixels[2], pixels[3] = 0, 0, 0, 0

	encoded := encodeChunked(pixels, width, height, f)
	decoded, err := decodeChunked(encoded, width, height, f, len(encoded))
	if err != nil {
		t.Fatalf("decodeChunked: %s", err)
	}
	if !bytes.Equal(decoded, pixels) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", decoded, pixels)
	}
}

func TestChunkRoundTripEmptyRow(t *testing.T) {
	f := resolvePixelFormat(flagChunked | flagPalette)
	width, height := 4, 1
	pixels := []byte{0, 0, 0, 0}

	encoded := encodeChunked(pixels, width, height, f)
	decoded, err := decodeChunked(encoded, width, height, f, len(encoded))
	if err != nil {
		t.Fatalf("decodeChunked: %s", err)
	}
	if !bytes.Equal(decoded, pixels) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", decoded, pixels)
	}
}

func TestDecodeChunkedOutOfRangeOffset(t *testing.T) {
	f := resolvePixelFormat(flagChunked | flagPalette)
	_, err := decodeChunked([]byte{0xFF, 0xFF}, 4, 1, f, 2)
	if err == nil {
		t.Fatal("expected an out-of-range offset error")
	}
}
