package yagl

import "testing"

func TestResolvePixelFormat(t *testing.T) {
	tests := []struct {
		name  string
		flags byte
		want  pixelFormat
	}{
		{"pal+rgb+alpha", flagPalette | flagRGB | flagAlpha, pixelFormat{bpp: 5, ato: 3, hasPal: true, hasRGB: true, hasAlpha: true}},
		{"rgb+alpha", flagRGB | flagAlpha, pixelFormat{bpp: 4, ato: 3, hasRGB: true, hasAlpha: true}},
		{"pal only", flagPalette, pixelFormat{bpp: 1, ato: 0, hasPal: true}},
		{"rgb only", flagRGB, pixelFormat{bpp: 3, ato: -1, hasRGB: true}},
		{"pal+rgb no alpha", flagPalette | flagRGB, pixelFormat{bpp: 4, ato: -1, hasPal: true, hasRGB: true}},
		{"chunked pal only", flagChunked | flagPalette, pixelFormat{bpp: 1, ato: 0, chunked: true, hasPal: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolvePixelFormat(tt.flags)
			if got != tt.want {
				t.Fatalf("resolvePixelFormat(0x%02X) = %+v, want %+v", tt.flags, got, tt.want)
			}
		})
	}
}
