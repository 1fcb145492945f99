package yagl

import (
	"bytes"
	"image"
	"io"

	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
)

// v2Identifier is the 8-byte magic that, following a leading 16-bit
// zero word, marks a container v2 file (§4.6, §6).
var v2Identifier = [8]byte{0x47, 0x52, 0x46, 0x82, 0x0D, 0x0A, 0x1A, 0x0A}

// SpriteSheetProvider supplies decoded pixels for a SpriteIndex during
// text-parse, keyed by sprite id and zoom index. A collaborator (PNG
// packer) implements this; the core never decodes PNG itself (§6).
type SpriteSheetProvider interface {
	Sprite(id uint32, zoom int) (img image.Image, xrel, yrel int8, err error)
}

// SpriteSheetConsumer receives decoded pixels during Print, for the
// collaborator to pack into PNG sheets.
type SpriteSheetConsumer interface {
	PutSprite(id uint32, zoom int, img image.Image, xrel, yrel int8) (ref string, err error)
}

// Package is the top-level entity (§3): container format, declared
// version, the ordered top-level records, and the sprite-id map owned
// by value (§9 — no reference-counted sharing).
type Package struct {
	Format  Format
	Version byte

	// SpriteSectionOffset and GraphicsCompression are the v2 header
	// fields the framer only skips over (§4.6 decode step 1); they are
	// not otherwise interpreted, so they are carried verbatim to keep
	// encode(decode(B)) == B for inputs where a real encoder wrote a
	// nonzero value here.
	SpriteSectionOffset uint32
	GraphicsCompression byte

	Records []Record

	// Sprites maps a v2 graphics-section sprite id to its ordered
	// zoom-tier entries; SpriteIndexOrder preserves insertion order for
	// re-encode (map iteration order is not stable).
	Sprites          map[uint32][]*RealSprite
	SpriteIndexOrder []uint32
}

// NewPackage returns an empty package of the given container format.
func NewPackage(format Format) *Package {
	return &Package{Format: format, Sprites: map[uint32][]*RealSprite{}}
}

func (p *Package) addSprite(id uint32, r *RealSprite) {
	if _, ok := p.Sprites[id]; !ok {
		p.SpriteIndexOrder = append(p.SpriteIndexOrder, id)
	}
	p.Sprites[id] = append(p.Sprites[id], r)
}

// Decode reads a complete NewGRF byte stream into a Package (§4.6
// decode, §4.7 grouping).
func Decode(r io.Reader) (*Package, error) {
	return DecodeDebug(r, nil)
}

// DecodeDebug is Decode with a diagnostic writer attached to the
// Context threaded through decoding (§9's debug-singleton-to-Context
// redesign): when debug is non-nil it receives one line per record
// that fails to classify, immediately before the fatal error returns.
func DecodeDebug(r io.Reader, debug io.Writer) (*Package, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodeBytes(data, debug)
}

func decodeBytes(data []byte, debug io.Writer) (*Package, error) {
	pkg := NewPackage(V1)
	body := data

	if len(data) >= 15 && data[0] == 0 && data[1] == 0 && bytes.Equal(data[2:10], v2Identifier[:]) {
		pkg.Format = V2
		hr := wire.NewReader(data[10:])
		offset, err := hr.U32()
		if err != nil {
			return nil, err
		}
		compression, err := hr.U8()
		if err != nil {
			return nil, err
		}
		pkg.SpriteSectionOffset = offset
		pkg.GraphicsCompression = compression
		body = data[10+hr.Pos():]
	}

	ctx := NewContext(pkg.Format)
	ctx.Debug = debug
	r := wire.NewReader(body)

	var remaining int
	var parent ChildOwner
	recordIndex := 0

	for {
		length, err := readLength(r, pkg.Format)
		if err != nil {
			return nil, err
		}
		if length == 0 {
			break
		}

		info, err := r.U8()
		if err != nil {
			return nil, err
		}

		if pkg.Format == V2 && recordIndex == 0 && info == 0xFF && length == 4 {
			if _, err := r.U32(); err != nil {
				return nil, err
			}
			recordIndex++
			continue
		}

		rest, err := r.Bytes(int(length) - 1)
		if err != nil {
			return nil, err
		}

		topLevel := remaining == 0
		rr := wire.NewReader(rest)
		var rec Record
		switch info {
		case 0xFF:
			var actionByte byte
			actionByte, err = rr.U8()
			if err == nil {
				rec, err = classifyPseudoSprite(actionByte, rr, ctx, topLevel)
			}
		case 0xFD:
			rec, err = readSpriteIndex(rr)
		default:
			rec, err = readRealSpriteV1(info, rr, uint32(recordIndex))
		}
		if err == nil && rr.Remaining() > 0 {
			err = newLengthMismatchError(len(rest), len(rest)-rr.Remaining())
		}
		if err != nil {
			ctx.recordIndex = recordIndex
			ctx.debugf("yagl: decode failed at record %d (info 0x%02X): %s\n", recordIndex, info, err)
			return nil, err
		}

		if topLevel {
			pkg.Records = append(pkg.Records, rec)
			if co, ok := rec.(ChildOwner); ok {
				if n := co.NumDeclaredChildren(); n > 0 {
					remaining, parent = n, co
				}
			}
		} else {
			parent.AppendChild(rec)
			remaining--
		}
		if a8, ok := rec.(*Action08Record); ok {
			ctx.GRFVersion = a8.GRFVersion
			pkg.Version = a8.GRFVersion
		}
		recordIndex++
	}

	if pkg.Format == V2 {
		for {
			id, err := r.U32()
			if err != nil {
				return nil, err
			}
			if id == 0 {
				break
			}
			sprite, err := readRealSpriteV2Body(r, id)
			if err != nil {
				return nil, err
			}
			pkg.addSprite(id, sprite)
		}
	}
	return pkg, nil
}

func readLength(r *wire.Reader, format Format) (uint32, error) {
	if format == V2 {
		return r.U32()
	}
	v, err := r.U16()
	return uint32(v), err
}

func writeLength(w *wire.Writer, format Format, n int) {
	if format == V2 {
		w.U32(uint32(n))
	} else {
		w.U16(uint16(n))
	}
}

// Encode serialises a Package back to bytes (§4.6 encode). The
// record-counter pseudo-sprite is written for v2 only; a v1 stream
// starts directly with its first record.
func Encode(pkg *Package) ([]byte, error) {
	ctx := NewContext(pkg.Format)
	ctx.GRFVersion = pkg.Version

	w := wire.NewWriter()
	if pkg.Format == V2 {
		w.U16(0)
		w.Write(v2Identifier[:])
		w.U32(pkg.SpriteSectionOffset)
		w.U8(pkg.GraphicsCompression)

		writeLength(w, pkg.Format, 4)
		w.U8(0xFF)
		w.U32(uint32(countRecords(pkg.Records)))
	}

	for _, rec := range pkg.Records {
		if err := writeRecordTree(w, pkg.Format, rec, ctx); err != nil {
			return nil, err
		}
	}
	writeLength(w, pkg.Format, 0)

	if pkg.Format == V2 {
		for _, id := range pkg.SpriteIndexOrder {
			for _, sprite := range pkg.Sprites[id] {
				writeRealSpriteV2(w, id, sprite)
			}
		}
		w.U32(0)
	}
	return w.Bytes(), nil
}

func countRecords(records []Record) int {
	n := 0
	for _, rec := range records {
		n++
		if co, ok := rec.(ChildOwner); ok {
			n += len(co.Children())
		}
	}
	return n
}

func writeRecordTree(w *wire.Writer, format Format, rec Record, ctx *Context) error {
	if err := writeOneRecord(w, format, rec, ctx); err != nil {
		return err
	}
	if co, ok := rec.(ChildOwner); ok {
		for _, child := range co.Children() {
			if err := writeOneRecord(w, format, child, ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeOneRecord(w *wire.Writer, format Format, rec Record, ctx *Context) error {
	var payload []byte
	switch v := rec.(type) {
	case *RealSprite:
		body, err := v.writeBody(ctx)
		if err != nil {
			return err
		}
		payload = append([]byte{v.Flags}, body...)
	case *SpriteIndex:
		body, err := v.writeBody(ctx)
		if err != nil {
			return err
		}
		payload = append([]byte{0xFD}, body...)
	default:
		actionByte, ok := rec.Kind().actionByteOf()
		if !ok {
			return newFormatError(0, "record kind %s has no action byte", rec.Kind())
		}
		body, err := rec.writeBody(ctx)
		if err != nil {
			return err
		}
		payload = append([]byte{0xFF, actionByte}, body...)
	}
	writeLength(w, format, len(payload))
	w.Write(payload)
	return nil
}

// Print renders a Package to its YAGL text form (§6). A non-nil
// consumer is called once per sprite zoom tier so pixel payloads can
// be packed into an external sheet instead of living in the text;
// nil is valid and omits the real_sprite ref fields; the v2 sprites
// section is still printed, with empty refs.
func Print(pkg *Package, w io.Writer, consumer SpriteSheetConsumer) error {
	sink := text.NewSink(w)
	ctx := NewContext(pkg.Format)
	ctx.GRFVersion = pkg.Version
	ctx.SpriteConsumer = consumer
	sink.Printf("yagl_version: 1:0:0;\n")
	sink.Indentf(0, "format: %s;\n", pkg.Format)
	for _, rec := range pkg.Records {
		if err := rec.print(sink, 0, ctx); err != nil {
			return err
		}
	}
	return printSpritesSection(pkg, sink, ctx)
}

// printSpritesSection emits the v2 graphics-section entries, which
// have no place in the main record stream (§4.6 step 3 — they are
// read from a separate section, never as 0xFF pseudo-sprites).
func printSpritesSection(pkg *Package, sink *text.Sink, ctx *Context) error {
	if pkg.Format != V2 || len(pkg.SpriteIndexOrder) == 0 {
		return nil
	}
	sink.Indentf(0, "sprites {\n")
	for _, id := range pkg.SpriteIndexOrder {
		sink.Indentf(1, "sprite 0x%08X {\n", id)
		for zoom, sp := range pkg.Sprites[id] {
			ref := ""
			if ctx.SpriteConsumer != nil {
				r, err := ctx.SpriteConsumer.PutSprite(id, zoom, sp.image(ctx.Palette), sp.XRel, sp.YRel)
				if err != nil {
					return err
				}
				ref = r
			}
			sink.Indentf(2, "zoom %d { ref: %q; xrel: %d; yrel: %d; }\n", zoom, ref, sp.XRel, sp.YRel)
		}
		sink.Indentf(1, "}\n")
	}
	sink.Indentf(0, "}\n")
	return nil
}

// Parse reads the YAGL text form back into a Package (§6). Pixel
// payloads are not carried in the text form itself; a non-nil
// provider is consulted to fill them in for real_sprite blocks that
// carry a ref field and for the sprites section's zoom tiers, matching
// the collaborator split of §6. sprite_index records hold only an id.
func Parse(r io.Reader, provider SpriteSheetProvider) (*Package, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := text.NewStream(data)

	if _, err := s.ExpectIdent("yagl_version"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Colon); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := s.Expect(text.Int); err != nil {
			return nil, err
		}
		if i < 2 {
			if _, err := s.Expect(text.Colon); err != nil {
				return nil, err
			}
		}
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}

	if err := expectField(s, "format"); err != nil {
		return nil, err
	}
	formatTok, err := s.Expect(text.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}

	format := V1
	if formatTok.Text == "v2" {
		format = V2
	}
	pkg := NewPackage(format)
	ctx := NewContext(format)
	ctx.SpriteProvider = provider

	for {
		tok, err := s.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == text.EOF {
			break
		}
		if tok.Kind == text.Ident && tok.Text == "sprites" {
			if err := parseSpritesSection(s, ctx, pkg); err != nil {
				return nil, err
			}
			continue
		}
		rec, err := parseRecord(s, ctx)
		if err != nil {
			return nil, err
		}
		if a8, ok := rec.(*Action08Record); ok {
			ctx.GRFVersion = a8.GRFVersion
			pkg.Version = a8.GRFVersion
		}
		pkg.Records = append(pkg.Records, rec)
	}
	return pkg, nil
}

// parseSpritesSection reads the "sprites { sprite 0x.. { zoom N {...} ... } ... }"
// block printSpritesSection emits, the reciprocal of the v2 graphics
// section (§4.6 step 3).
func parseSpritesSection(s *text.Stream, ctx *Context, pkg *Package) error {
	if _, err := s.ExpectIdent("sprites"); err != nil {
		return err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return err
	}
	for {
		tok, err := s.Peek()
		if err != nil {
			return err
		}
		if tok.Kind == text.RBrace {
			s.Next()
			break
		}
		if _, err := s.ExpectIdent("sprite"); err != nil {
			return err
		}
		idTok, err := s.Expect(text.Int)
		if err != nil {
			return err
		}
		id, err := text.ParseInt(idTok.Text)
		if err != nil {
			return err
		}
		if _, err := s.Expect(text.LBrace); err != nil {
			return err
		}
		for {
			zt, err := s.Peek()
			if err != nil {
				return err
			}
			if zt.Kind == text.RBrace {
				s.Next()
				break
			}
			sp, err := parseZoomTier(s, ctx, uint32(id))
			if err != nil {
				return err
			}
			pkg.addSprite(uint32(id), sp)
		}
	}
	return nil
}

func parseZoomTier(s *text.Stream, ctx *Context, id uint32) (*RealSprite, error) {
	if _, err := s.ExpectIdent("zoom"); err != nil {
		return nil, err
	}
	zoomTok, err := s.Expect(text.Int)
	if err != nil {
		return nil, err
	}
	zoom, err := text.ParseInt(zoomTok.Text)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return nil, err
	}
	if err := expectField(s, "ref"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.String); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}
	if err := expectField(s, "xrel"); err != nil {
		return nil, err
	}
	xrel, err := readIntStatement(s)
	if err != nil {
		return nil, err
	}
	if err := expectField(s, "yrel"); err != nil {
		return nil, err
	}
	yrel, err := readIntStatement(s)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.RBrace); err != nil {
		return nil, err
	}

	if ctx.SpriteProvider != nil {
		img, px, py, err := ctx.SpriteProvider.Sprite(id, int(zoom))
		if err != nil {
			return nil, err
		}
		return spriteFromImage(id, img, px, py), nil
	}
	return &RealSprite{ID: id, XRel: int8(xrel), YRel: int8(yrel)}, nil
}

// parseRecord dispatches on the leading identifier of a record's text
// form (its registered Kind keyword, §4.6) to that variant's parser.
func parseRecord(s *text.Stream, ctx *Context) (Record, error) {
	tok, err := s.Peek()
	if err != nil {
		return nil, err
	}
	kind, ok := kindByName[tok.Text]
	if !ok {
		return nil, &text.ParseError{Pos: tok.Pos, Expected: "record keyword", Got: tok.Describe()}
	}

	switch kind {
	case KindAction00:
		return parseAction00(s, ctx)
	case KindAction02:
		return parseAction02(s)
	case KindAction08:
		return parseAction08(s)
	case KindAction01, KindAction05, KindAction0A, KindAction11, KindAction12:
		return parseContainer(kind, s, ctx)
	case KindFakeSprite:
		return parseFakeSprite(s)
	case KindRecolourTable:
		return parseRecolourTable(s)
	case KindSpriteIndex:
		return parseSpriteIndex(s)
	case KindRealSprite:
		return parseRealSprite(s, ctx)
	default:
		return parseOpaque(kind, s)
	}
}
