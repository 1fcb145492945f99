package yagl

// Compression flag bits for a RealSprite's single compression byte,
// per §4.2. "chunked" selects the per-row RLE codec; the remaining
// bits select which pixel channels are present and therefore the
// bytes-per-pixel / alpha-test-offset pair the chunk codec needs.
const (
	flagChunked = 0x08
	flagPalette = 0x01
	flagRGB     = 0x02
	flagAlpha   = 0x04
)

// pixelFormat is the resolved (bpp, ato) pair for a compression byte,
// plus whether the row-edge scan has an alpha/palette test byte to
// walk at all.
type pixelFormat struct {
	bpp       int
	ato       int // offset of the transparency-test byte within a pixel, or -1 if none
	chunked   bool
	hasAlpha  bool
	hasRGB    bool
	hasPal    bool
}

// resolvePixelFormat interprets the per-sprite compression byte into
// (bytes-per-pixel, alpha-test-offset), per §4.2's table.
func resolvePixelFormat(flags byte) pixelFormat {
	f := pixelFormat{
		chunked:  flags&flagChunked != 0,
		hasPal:   flags&flagPalette != 0,
		hasRGB:   flags&flagRGB != 0,
		hasAlpha: flags&flagAlpha != 0,
	}

	switch {
	case f.hasPal && f.hasRGB && f.hasAlpha:
		// palette + RGB + alpha (v2)
		f.bpp, f.ato = 5, 3
	case f.hasRGB && f.hasAlpha:
		// RGB + alpha
		f.bpp, f.ato = 4, 3
	case f.hasPal && !f.hasRGB && !f.hasAlpha:
		// palette only; 0 itself is the transparent value
		f.bpp, f.ato = 1, 0
	case !f.hasPal && f.hasRGB && !f.hasAlpha:
		// RGB with no alpha channel: nothing to test, never transparent
		f.bpp, f.ato = 3, -1
	case f.hasPal && f.hasRGB && !f.hasAlpha:
		f.bpp, f.ato = 4, -1
	default:
		// no recognised channel combination: treat as a single
		// palette byte, matching the format's fallback behaviour.
		f.bpp, f.ato = 1, 0
	}
	return f
}

// pixelOpaque reports whether the pixel starting at byte offset
// px*f.bpp within row is opaque.
func (f pixelFormat) pixelOpaque(row []byte, px int) bool {
	if f.ato < 0 {
		return true
	}
	return row[px*f.bpp+f.ato] != 0
}
