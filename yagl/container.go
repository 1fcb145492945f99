package yagl

import (
	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
)

// ContainerRecord implements the five container kinds named in §4.4
// (Action01/05/0A/11/12): each declares how many immediately-following
// records belong to it and owns that many children in insertion order.
// The five kinds differ in how many header integers they read and, for
// Action0A/12, in the per-set descriptors that follow them, so one type
// with a per-kind header shape serves all five (the interface-abstraction substitute for the
// source's per-action subclasses, §9).
type ContainerRecord struct {
	kind Kind

	// Header holds the kind-specific leading fields (e.g. Action01's
	// feature byte and num_sets, Action05's type byte), in wire order,
	// every one an extended byte. For Action01/05/11, the last entry
	// is the declared child count (or a factor of it). For Action0A/12
	// (see Sets below) Header holds only the leading num_sets field.
	Header []uint32

	// Sets holds the per-set descriptors that follow Header for
	// Action0A/12 (original_source/records/actions/Action0ARecord.h's
	// SpriteSet: num_sprites uint8, first_sprite uint16). Empty for
	// every other container kind.
	Sets []spriteSet

	children []Record
}

// spriteSet is one Action0A/12 set descriptor: how many real sprites
// the set contributes and the index of its first one.
type spriteSet struct {
	NumSprites  byte
	FirstSprite uint16
}

// containerHeaderShape describes, per container kind, how many header
// extended-bytes it reads in total, including the "number of children"
// field(s), and whether that count is itself a product of two header fields
// (Action01's num_sets × num_sprites_per_set, §4.4) rather than a
// single trailing count. hasSets marks the Action0A/12 shape, where
// Header's last field is num_sets and is followed by that many
// spriteSet descriptors; the declared child count is then the sum of
// each set's NumSprites rather than a header product.
type containerHeaderShape struct {
	fields   int // total header fields including the count field(s)
	countsOf []int
	hasSets  bool
}

var containerShapes = map[Kind]containerHeaderShape{
	KindAction01: {fields: 3, countsOf: []int{1, 2}}, // feature, num_sets, num_sprites_per_set
	KindAction05: {fields: 2, countsOf: []int{1}},    // type, num_sprites
	KindAction0A: {fields: 1, hasSets: true},         // num_sets, then num_sets × {num_sprites, first_sprite}
	KindAction11: {fields: 1, countsOf: []int{0}},    // num_sprites
	KindAction12: {fields: 1, hasSets: true},         // same set-descriptor shape as Action0A
}

func (c *ContainerRecord) Kind() Kind           { return c.kind }
func (c *ContainerRecord) Children() []Record   { return c.children }
func (c *ContainerRecord) AppendChild(r Record) { c.children = append(c.children, r) }

// NumDeclaredChildren returns the total child count the header
// declares. For Action0A/12 this is Σ num_sprites across Sets; for
// every other kind it's the product of containerShapes.countsOf.
func (c *ContainerRecord) NumDeclaredChildren() int {
	shape := containerShapes[c.kind]
	if shape.hasSets {
		n := 0
		for _, set := range c.Sets {
			n += int(set.NumSprites)
		}
		return n
	}
	n := 1
	for _, idx := range shape.countsOf {
		n *= int(c.Header[idx])
	}
	return n
}

func readContainer(kind Kind, r *wire.Reader) (*ContainerRecord, error) {
	shape, ok := containerShapes[kind]
	if !ok {
		return nil, newFormatError(r.Pos(), "unknown container kind %s", kind)
	}
	c := &ContainerRecord{kind: kind, Header: make([]uint32, shape.fields)}
	for i := range c.Header {
		v, err := r.ExtByte()
		if err != nil {
			return nil, err
		}
		c.Header[i] = v
	}
	if shape.hasSets {
		numSets := c.Header[len(c.Header)-1]
		c.Sets = make([]spriteSet, numSets)
		for i := range c.Sets {
			numSprites, err := r.U8()
			if err != nil {
				return nil, err
			}
			firstSprite, err := r.U16()
			if err != nil {
				return nil, err
			}
			c.Sets[i] = spriteSet{NumSprites: numSprites, FirstSprite: firstSprite}
		}
	}
	return c, nil
}

func (c *ContainerRecord) writeBody(ctx *Context) ([]byte, error) {
	w := wire.NewWriter()
	for _, v := range c.Header {
		w.ExtByte(v)
	}
	for _, set := range c.Sets {
		w.U8(set.NumSprites)
		w.U16(set.FirstSprite)
	}
	return w.Bytes(), nil
}

func (c *ContainerRecord) print(sink *text.Sink, depth int, ctx *Context) error {
	sink.Indentf(depth, "%s {\n", c.kind.String())
	for i, v := range c.Header {
		sink.Indentf(depth+1, "header[%d]: 0x%04X;\n", i, v)
	}
	for i, set := range c.Sets {
		sink.Indentf(depth+1, "set[%d] { num_sprites: %d; first_sprite: 0x%04X; }\n", i, set.NumSprites, set.FirstSprite)
	}
	for _, child := range c.children {
		if err := child.print(sink, depth+1, ctx); err != nil {
			return err
		}
	}
	sink.Indentf(depth, "}\n")
	return nil
}

// parseContainer reads a container's header fields and then its
// declared number of children, dispatching each child through the
// generic record-keyword parser.
func parseContainer(kind Kind, s *text.Stream, ctx *Context) (*ContainerRecord, error) {
	shape, ok := containerShapes[kind]
	if !ok {
		return nil, newFormatError(0, "unknown container kind %s", kind)
	}

	if _, err := s.ExpectIdent(kind.String()); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return nil, err
	}

	c := &ContainerRecord{kind: kind, Header: make([]uint32, shape.fields)}
	for i := range c.Header {
		if _, err := s.ExpectIdent("header"); err != nil {
			return nil, err
		}
		if _, err := s.Expect(text.LBracket); err != nil {
			return nil, err
		}
		if _, err := s.Expect(text.Int); err != nil {
			return nil, err
		}
		if _, err := s.Expect(text.RBracket); err != nil {
			return nil, err
		}
		if _, err := s.Expect(text.Colon); err != nil {
			return nil, err
		}
		vTok, err := s.Expect(text.Int)
		if err != nil {
			return nil, err
		}
		v, err := text.ParseInt(vTok.Text)
		if err != nil {
			return nil, err
		}
		if _, err := s.Expect(text.Semicolon); err != nil {
			return nil, err
		}
		c.Header[i] = uint32(v)
	}

	if shape.hasSets {
		numSets := c.Header[len(c.Header)-1]
		c.Sets = make([]spriteSet, numSets)
		for i := range c.Sets {
			set, err := parseSpriteSet(s)
			if err != nil {
				return nil, err
			}
			c.Sets[i] = set
		}
	}

	n := c.NumDeclaredChildren()
	for i := 0; i < n; i++ {
		child, err := parseRecord(s, ctx)
		if err != nil {
			return nil, err
		}
		c.children = append(c.children, child)
	}

	if _, err := s.Expect(text.RBrace); err != nil {
		return nil, err
	}
	return c, nil
}

// parseSpriteSet reads one Action0A/12 "set[i] { num_sprites: N;
// first_sprite: 0xXXXX; }" block, the text form of spriteSet.
func parseSpriteSet(s *text.Stream) (spriteSet, error) {
	if _, err := s.ExpectIdent("set"); err != nil {
		return spriteSet{}, err
	}
	if _, err := s.Expect(text.LBracket); err != nil {
		return spriteSet{}, err
	}
	if _, err := s.Expect(text.Int); err != nil {
		return spriteSet{}, err
	}
	if _, err := s.Expect(text.RBracket); err != nil {
		return spriteSet{}, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return spriteSet{}, err
	}

	if err := expectField(s, "num_sprites"); err != nil {
		return spriteSet{}, err
	}
	numSpritesTok, err := s.Expect(text.Int)
	if err != nil {
		return spriteSet{}, err
	}
	numSprites, err := text.ParseInt(numSpritesTok.Text)
	if err != nil {
		return spriteSet{}, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return spriteSet{}, err
	}

	if err := expectField(s, "first_sprite"); err != nil {
		return spriteSet{}, err
	}
	firstSpriteTok, err := s.Expect(text.Int)
	if err != nil {
		return spriteSet{}, err
	}
	firstSprite, err := text.ParseInt(firstSpriteTok.Text)
	if err != nil {
		return spriteSet{}, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return spriteSet{}, err
	}

	if _, err := s.Expect(text.RBrace); err != nil {
		return spriteSet{}, err
	}
	return spriteSet{NumSprites: byte(numSprites), FirstSprite: uint16(firstSprite)}, nil
}
