package yagl

import (
	"image"
	"image/color"

	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
)

// RealSprite is one zoom/depth variant of a raster image (§3, §4.4). A
// v2 graphics-section entry's id is the package's sprite-id map key;
// a v1 inline child's id is the running record index at the point it
// was read (§8 Scenario 4) — either way ID is carried on the value
// itself for printing, even though lookup by id goes through the
// package's map, never a pointer (§9).
type RealSprite struct {
	ID     uint32
	Flags  byte
	Width  uint16
	Height uint16
	XRel   int8
	YRel   int8
	Pixels []byte // flat width*height*bpp buffer, row-major
}

func (r *RealSprite) Kind() Kind { return KindRealSprite }

func (r *RealSprite) format() pixelFormat { return resolvePixelFormat(r.Flags) }

// readRealSpriteV1 decodes the body of a v1 inline real sprite: info
// has already been consumed by the dispatcher and is reinterpreted as
// the compression flag byte (§4.3).
func readRealSpriteV1(info byte, r *wire.Reader, id uint32) (*RealSprite, error) {
	width, err := r.U16()
	if err != nil {
		return nil, err
	}
	height, err := r.U16()
	if err != nil {
		return nil, err
	}
	xrel, err := r.I8()
	if err != nil {
		return nil, err
	}
	yrel, err := r.I8()
	if err != nil {
		return nil, err
	}

	f := resolvePixelFormat(info)
	var pixels []byte
	if f.chunked {
		rest, err := r.Bytes(r.Remaining())
		if err != nil {
			return nil, err
		}
		pixels, err = decodeChunked(rest, int(width), int(height), f, len(rest))
		if err != nil {
			return nil, err
		}
	} else {
		pixels, err = r.Bytes(int(width) * int(height) * f.bpp)
		if err != nil {
			return nil, err
		}
	}
	return &RealSprite{ID: id, Flags: info, Width: width, Height: height, XRel: xrel, YRel: yrel, Pixels: pixels}, nil
}

func (r *RealSprite) writeV1Body() []byte {
	w := wire.NewWriter()
	w.U16(r.Width)
	w.U16(r.Height)
	w.I8(r.XRel)
	w.I8(r.YRel)
	f := r.format()
	if f.chunked {
		w.Write(encodeChunked(r.Pixels, int(r.Width), int(r.Height), f))
	} else {
		w.Write(r.Pixels)
	}
	return w.Bytes()
}

func (r *RealSprite) writeBody(ctx *Context) ([]byte, error) {
	return r.writeV1Body(), nil
}

// readRealSpriteV2Body decodes one graphics-section entry (§4.6 step
// 3) after its leading id has already been read by the caller (which
// needs to see the id first to recognise the zero terminator).
func readRealSpriteV2Body(r *wire.Reader, id uint32) (*RealSprite, error) {
	size, err := r.U32()
	if err != nil {
		return nil, err
	}
	flags, err := r.U8()
	if err != nil {
		return nil, err
	}
	width, err := r.U16()
	if err != nil {
		return nil, err
	}
	height, err := r.U16()
	if err != nil {
		return nil, err
	}
	xrel, err := r.I8()
	if err != nil {
		return nil, err
	}
	yrel, err := r.I8()
	if err != nil {
		return nil, err
	}

	f := resolvePixelFormat(flags)
	// size counts everything after the flags byte: width, height, xrel
	// and yrel (6 bytes, already consumed) and then the payload.
	payloadLen := int(size) - 6
	payload, err := r.Bytes(payloadLen)
	if err != nil {
		return nil, err
	}

	var pixels []byte
	if f.chunked {
		pixels, err = decodeChunked(payload, int(width), int(height), f, len(payload))
		if err != nil {
			return nil, err
		}
	} else {
		pixels = payload
	}
	return &RealSprite{ID: id, Flags: flags, Width: width, Height: height, XRel: xrel, YRel: yrel, Pixels: pixels}, nil
}

func writeRealSpriteV2(w *wire.Writer, id uint32, r *RealSprite) {
	f := r.format()
	var payload []byte
	if f.chunked {
		payload = encodeChunked(r.Pixels, int(r.Width), int(r.Height), f)
	} else {
		payload = r.Pixels
	}
	w.U32(id)
	w.U32(uint32(len(payload) + 6))
	w.U8(r.Flags)
	w.U16(r.Width)
	w.U16(r.Height)
	w.I8(r.XRel)
	w.I8(r.YRel)
	w.Write(payload)
}

// image converts the decoded pixel buffer to a stdlib image.Image for
// a SpriteSheetConsumer, mirroring the teacher's own use of
// image.RGBA/color.RGBA for its framebuffer (ppu.go) rather than a
// hand-rolled pixel container.
func (r *RealSprite) image(palette color.Palette) image.Image {
	f := r.format()
	bounds := image.Rect(0, 0, int(r.Width), int(r.Height))
	switch {
	case f.hasPal && !f.hasRGB:
		img := image.NewPaletted(bounds, palette)
		copy(img.Pix, r.Pixels)
		return img
	default:
		img := image.NewNRGBA(bounds)
		for px := 0; px < int(r.Width)*int(r.Height); px++ {
			off := px * f.bpp
			var c color.NRGBA
			switch {
			case f.hasPal && f.hasRGB && f.hasAlpha:
				c = color.NRGBA{R: r.Pixels[off], G: r.Pixels[off+1], B: r.Pixels[off+2], A: r.Pixels[off+3]}
			case f.hasRGB && f.hasAlpha:
				c = color.NRGBA{R: r.Pixels[off], G: r.Pixels[off+1], B: r.Pixels[off+2], A: r.Pixels[off+3]}
			case f.hasPal && f.hasRGB:
				c = color.NRGBA{R: r.Pixels[off+1], G: r.Pixels[off+2], B: r.Pixels[off+3], A: 0xFF}
			default:
				c = color.NRGBA{A: 0xFF}
			}
			img.SetNRGBA(px%int(r.Width), px/int(r.Width), c)
		}
		return img
	}
}

func (r *RealSprite) print(sink *text.Sink, depth int, ctx *Context) error {
	sink.Indentf(depth, "real_sprite {\n")
	sink.Indentf(depth+1, "id: 0x%08X;\n", r.ID)
	sink.Indentf(depth+1, "flags: 0x%02X;\n", r.Flags)
	sink.Indentf(depth+1, "width: %d;\n", r.Width)
	sink.Indentf(depth+1, "height: %d;\n", r.Height)
	sink.Indentf(depth+1, "xrel: %d;\n", r.XRel)
	sink.Indentf(depth+1, "yrel: %d;\n", r.YRel)
	if ctx != nil && ctx.SpriteConsumer != nil {
		ref, err := ctx.SpriteConsumer.PutSprite(r.ID, 0, r.image(ctx.Palette), r.XRel, r.YRel)
		if err != nil {
			return err
		}
		sink.Indentf(depth+1, "ref: %q;\n", ref)
	}
	sink.Indentf(depth, "}\n")
	return nil
}

// FakeSprite is the null placeholder written for a zero-content child
// slot (§4.3: a size-1 child inside a container).
type FakeSprite struct{}

func (f *FakeSprite) Kind() Kind                                   { return KindFakeSprite }
func (f *FakeSprite) writeBody(ctx *Context) ([]byte, error)       { return nil, nil }
func (f *FakeSprite) print(sink *text.Sink, depth int, ctx *Context) error {
	sink.Indentf(depth, "fake_sprite {}\n")
	return nil
}

// RecolourTable is a 256-entry palette index remap (§4.4): a
// size-257 child inside a container (one info/action byte + 256 table
// bytes).
type RecolourTable struct {
	Table [256]byte
}

func (t *RecolourTable) Kind() Kind { return KindRecolourTable }

func readRecolourTable(r *wire.Reader) (*RecolourTable, error) {
	body, err := r.Bytes(256)
	if err != nil {
		return nil, err
	}
	t := &RecolourTable{}
	copy(t.Table[:], body)
	return t, nil
}

func (t *RecolourTable) writeBody(ctx *Context) ([]byte, error) {
	return append([]byte(nil), t.Table[:]...), nil
}

func (t *RecolourTable) print(sink *text.Sink, depth int, ctx *Context) error {
	sink.Indentf(depth, "recolour_table {\n")
	sink.Indentf(depth+1, "table: [")
	for i, b := range t.Table {
		if i > 0 {
			sink.Printf(", ")
		}
		sink.Printf("0x%02X", b)
	}
	sink.Printf("];\n")
	sink.Indentf(depth, "}\n")
	return nil
}

// SpriteIndex is a deferred reference into the package's sprite-id map
// (§3, §9): it stores only the id, never a pointer to the sprites it
// names.
type SpriteIndex struct {
	ID uint32
}

func (s *SpriteIndex) Kind() Kind { return KindSpriteIndex }

func (s *SpriteIndex) writeBody(ctx *Context) ([]byte, error) {
	w := wire.NewWriter()
	w.U32(s.ID)
	return w.Bytes(), nil
}

func readSpriteIndex(r *wire.Reader) (*SpriteIndex, error) {
	id, err := r.U32()
	if err != nil {
		return nil, err
	}
	return &SpriteIndex{ID: id}, nil
}

func (s *SpriteIndex) print(sink *text.Sink, depth int, ctx *Context) error {
	sink.Indentf(depth, "sprite_index { id: 0x%08X; }\n", s.ID)
	return nil
}

func parseSpriteIndex(s *text.Stream) (*SpriteIndex, error) {
	if _, err := s.ExpectIdent("sprite_index"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return nil, err
	}
	if _, err := s.ExpectIdent("id"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Colon); err != nil {
		return nil, err
	}
	idTok, err := s.Expect(text.Int)
	if err != nil {
		return nil, err
	}
	id, err := text.ParseInt(idTok.Text)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.RBrace); err != nil {
		return nil, err
	}
	return &SpriteIndex{ID: uint32(id)}, nil
}

func parseFakeSprite(s *text.Stream) (*FakeSprite, error) {
	if _, err := s.ExpectIdent("fake_sprite"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.RBrace); err != nil {
		return nil, err
	}
	return &FakeSprite{}, nil
}

func parseRecolourTable(s *text.Stream) (*RecolourTable, error) {
	if _, err := s.ExpectIdent("recolour_table"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return nil, err
	}
	if _, err := s.ExpectIdent("table"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Colon); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBracket); err != nil {
		return nil, err
	}

	t := &RecolourTable{}
	for i := 0; ; {
		tok, err := s.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == text.RBracket {
			s.Next()
			break
		}
		v, err := s.Expect(text.Int)
		if err != nil {
			return nil, err
		}
		n, err := text.ParseInt(v.Text)
		if err != nil {
			return nil, err
		}
		if i < len(t.Table) {
			t.Table[i] = byte(n)
		}
		i++
		next, err := s.Peek()
		if err != nil {
			return nil, err
		}
		if next.Kind == text.Comma {
			s.Next()
		}
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.RBrace); err != nil {
		return nil, err
	}
	return t, nil
}

// parseRealSprite reads the metadata real_sprite {...} emits. Its
// pixel payload is not carried in the text form itself; when the
// printer had a SpriteSheetConsumer wired, the block also carries a
// ref field, and a SpriteSheetProvider on ctx is asked for sprite ID
// at zoom 0 to fill in Flags and Pixels (§6); the ref text itself is
// read and not used. With neither wired, Pixels stays empty.
func parseRealSprite(s *text.Stream, ctx *Context) (*RealSprite, error) {
	if _, err := s.ExpectIdent("real_sprite"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return nil, err
	}

	r := &RealSprite{}

	if err := expectField(s, "id"); err != nil {
		return nil, err
	}
	id, err := readIntStatement(s)
	if err != nil {
		return nil, err
	}
	r.ID = uint32(id)

	if err := expectField(s, "flags"); err != nil {
		return nil, err
	}
	flags, err := readIntStatement(s)
	if err != nil {
		return nil, err
	}
	r.Flags = byte(flags)

	if err := expectField(s, "width"); err != nil {
		return nil, err
	}
	width, err := readIntStatement(s)
	if err != nil {
		return nil, err
	}
	r.Width = uint16(width)

	if err := expectField(s, "height"); err != nil {
		return nil, err
	}
	height, err := readIntStatement(s)
	if err != nil {
		return nil, err
	}
	r.Height = uint16(height)

	if err := expectField(s, "xrel"); err != nil {
		return nil, err
	}
	xrel, err := readIntStatement(s)
	if err != nil {
		return nil, err
	}
	r.XRel = int8(xrel)

	if err := expectField(s, "yrel"); err != nil {
		return nil, err
	}
	yrel, err := readIntStatement(s)
	if err != nil {
		return nil, err
	}
	r.YRel = int8(yrel)

	tok, err := s.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == text.Ident && tok.Text == "ref" {
		if err := expectField(s, "ref"); err != nil {
			return nil, err
		}
		refTok, err := s.Expect(text.String)
		if err != nil {
			return nil, err
		}
		if _, err := s.Expect(text.Semicolon); err != nil {
			return nil, err
		}
		if ctx != nil && ctx.SpriteProvider != nil {
			img, xrel, yrel, err := ctx.SpriteProvider.Sprite(r.ID, 0)
			if err != nil {
				return nil, err
			}
			_ = refTok
			filled := spriteFromImage(r.ID, img, xrel, yrel)
			r.Flags, r.Pixels = filled.Flags, filled.Pixels
		}
	}

	if _, err := s.Expect(text.RBrace); err != nil {
		return nil, err
	}
	return r, nil
}

// spriteFromImage converts a decoded image back into a RealSprite's
// flat pixel buffer, the inverse of RealSprite.image. A paletted image
// round-trips through the palette-only format; anything else is
// re-encoded as RGB+alpha, 4 bytes per pixel (§4.2); the
// palette+RGB+alpha format is never produced here.
func spriteFromImage(id uint32, img image.Image, xrel, yrel int8) *RealSprite {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if p, ok := img.(*image.Paletted); ok {
		return &RealSprite{ID: id, Flags: flagPalette, Width: uint16(w), Height: uint16(h), XRel: xrel, YRel: yrel, Pixels: append([]byte(nil), p.Pix...)}
	}
	pixels := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			pixels = append(pixels, c.R, c.G, c.B, c.A)
		}
	}
	return &RealSprite{ID: id, Flags: flagRGB | flagAlpha, Width: uint16(w), Height: uint16(h), XRel: xrel, YRel: yrel, Pixels: pixels}
}

// readIntStatement reads "<int> ;" after the leading "name :" has
// already been consumed by expectField.
func readIntStatement(s *text.Stream) (int64, error) {
	tok, err := s.Expect(text.Int)
	if err != nil {
		return 0, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return 0, err
	}
	return text.ParseInt(tok.Text)
}
