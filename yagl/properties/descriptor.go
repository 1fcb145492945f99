// Package properties implements the property descriptor library of
// §4.5: small, reusable objects parameterised by (property id, text
// name, format hint) that define binary read/write and text
// print/parse for a single typed field inside an Action00 feature
// instance. A feature's property table (table.go) maps each text name
// to its property id; several names may share one id, so one binary
// property can project into several text fields.
package properties

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
)

// Value is the decoded form of a single property. Concrete
// descriptors agree on which of the fields they populate; callers
// only touch the field their descriptor documents.
type Value struct {
	Int   int64
	Bool  bool
	Ints  []int64 // fixed array / cargo list
	Bytes []byte  // bridge table's raw 32-entry layout
	Parts []Value // CompositeDescriptor's per-part values, in part order
}

// Descriptor is the capability set every property kind satisfies:
// binary read/write plus text print/parse, per §4.5 and §9.
type Descriptor interface {
	// Name is the stable text-form key this descriptor is registered
	// under (one sub-field of a FeatureTable entry).
	Name() string

	// Read consumes this property's wire form from r.
	Read(r *wire.Reader, grfVersion byte) (Value, error)

	// Write serialises v into w.
	Write(w *wire.Writer, v Value, grfVersion byte) error

	// Print renders v as "name: value;" (or several such statements,
	// for multi-field descriptors) at the given indent depth.
	Print(sink *text.Sink, depth int, v Value) error

	// Parse consumes this property's entire text statement, including
	// its own leading "name :" and trailing ";" — a split descriptor
	// covering several named fields reads all of its statements in one
	// call.
	Parse(s *text.Stream) (Value, error)
}

// expectStatementStart consumes the "name :" prefix every property
// statement opens with, per the text form's "name: value;" grammar.
func expectStatementStart(s *text.Stream, name string) error {
	if _, err := s.ExpectIdent(name); err != nil {
		return err
	}
	_, err := s.Expect(text.Colon)
	return err
}

func expectStatementEnd(s *text.Stream) error {
	_, err := s.Expect(text.Semicolon)
	return err
}

// ---- Integer ----------------------------------------------------

// IntWidth is the wire width of an IntDescriptor.
type IntWidth int

const (
	Width1 IntWidth = 1
	Width2 IntWidth = 2
	Width3 IntWidth = 3
	Width4 IntWidth = 4
)

// IntBase selects decimal or hex rendering on print.
type IntBase int

const (
	Decimal IntBase = iota
	Hex
)

// IntDescriptor is a fixed-width integer field.
type IntDescriptor struct {
	FieldName string
	Width     IntWidth
	Base      IntBase
	Signed    bool
}

func (d *IntDescriptor) Name() string { return d.FieldName }

func (d *IntDescriptor) Read(r *wire.Reader, _ byte) (Value, error) {
	var v int64
	switch d.Width {
	case Width1:
		if d.Signed {
			b, err := r.I8()
			if err != nil {
				return Value{}, err
			}
			v = int64(b)
		} else {
			b, err := r.U8()
			if err != nil {
				return Value{}, err
			}
			v = int64(b)
		}
	case Width2:
		b, err := r.U16()
		if err != nil {
			return Value{}, err
		}
		v = int64(b)
	case Width3:
		b, err := r.U24()
		if err != nil {
			return Value{}, err
		}
		v = int64(b)
	case Width4:
		b, err := r.U32()
		if err != nil {
			return Value{}, err
		}
		v = int64(b)
	default:
		return Value{}, fmt.Errorf("properties: unsupported int width %d", d.Width)
	}
	return Value{Int: v}, nil
}

func (d *IntDescriptor) Write(w *wire.Writer, v Value, _ byte) error {
	switch d.Width {
	case Width1:
		if d.Signed {
			w.I8(int8(v.Int))
		} else {
			w.U8(byte(v.Int))
		}
	case Width2:
		w.U16(uint16(v.Int))
	case Width3:
		w.U24(uint32(v.Int))
	case Width4:
		w.U32(uint32(v.Int))
	default:
		return fmt.Errorf("properties: unsupported int width %d", d.Width)
	}
	return nil
}

func (d *IntDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	if d.Base == Hex {
		sink.Indentf(depth, "%s: 0x%0*X;\n", d.FieldName, d.Width*2, uint64(v.Int))
	} else {
		sink.Indentf(depth, "%s: %d;\n", d.FieldName, v.Int)
	}
	return nil
}

func (d *IntDescriptor) Parse(s *text.Stream) (Value, error) {
	if err := expectStatementStart(s, d.FieldName); err != nil {
		return Value{}, err
	}
	tok, err := s.Expect(text.Int)
	if err != nil {
		return Value{}, err
	}
	n, err := text.ParseInt(tok.Text)
	if err != nil {
		return Value{}, err
	}
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}
	return Value{Int: n}, nil
}

// ---- Boolean ------------------------------------------------------

// BoolDescriptor is a single byte whose true/false wire values are
// feature-specific (e.g. 0x01/0x00, or 0x00/0x02).
type BoolDescriptor struct {
	FieldName string
	TrueByte  byte
	FalseByte byte
}

func (d *BoolDescriptor) Name() string { return d.FieldName }

func (d *BoolDescriptor) Read(r *wire.Reader, _ byte) (Value, error) {
	b, err := r.U8()
	if err != nil {
		return Value{}, err
	}
	return Value{Bool: b == d.TrueByte}, nil
}

func (d *BoolDescriptor) Write(w *wire.Writer, v Value, _ byte) error {
	if v.Bool {
		w.U8(d.TrueByte)
	} else {
		w.U8(d.FalseByte)
	}
	return nil
}

func (d *BoolDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	sink.Indentf(depth, "%s: %t;\n", d.FieldName, v.Bool)
	return nil
}

func (d *BoolDescriptor) Parse(s *text.Stream) (Value, error) {
	if err := expectStatementStart(s, d.FieldName); err != nil {
		return Value{}, err
	}
	tok, err := s.Next()
	if err != nil {
		return Value{}, err
	}
	if tok.Kind != text.Ident || (tok.Text != "true" && tok.Text != "false") {
		return Value{}, &text.ParseError{Pos: tok.Pos, Expected: "'true' or 'false'", Got: tok.Describe()}
	}
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}
	return Value{Bool: tok.Text == "true"}, nil
}

// ---- Fixed-length array of integer --------------------------------

// ArrayDescriptor is a fixed-length array of same-width integers,
// printed as "[ a, b, c ]".
type ArrayDescriptor struct {
	FieldName string
	Count     int
	Width     IntWidth
	Base      IntBase
}

func (d *ArrayDescriptor) Name() string { return d.FieldName }

func (d *ArrayDescriptor) Read(r *wire.Reader, grfVersion byte) (Value, error) {
	elem := &IntDescriptor{Width: d.Width}
	ints := make([]int64, d.Count)
	for i := range ints {
		v, err := elem.Read(r, grfVersion)
		if err != nil {
			return Value{}, err
		}
		ints[i] = v.Int
	}
	return Value{Ints: ints}, nil
}

func (d *ArrayDescriptor) Write(w *wire.Writer, v Value, grfVersion byte) error {
	elem := &IntDescriptor{Width: d.Width}
	for i := 0; i < d.Count; i++ {
		var iv int64
		if i < len(v.Ints) {
			iv = v.Ints[i]
		}
		if err := elem.Write(w, Value{Int: iv}, grfVersion); err != nil {
			return err
		}
	}
	return nil
}

func (d *ArrayDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	parts := make([]string, len(v.Ints))
	for i, n := range v.Ints {
		if d.Base == Hex {
			parts[i] = fmt.Sprintf("0x%0*X", d.Width*2, uint64(n))
		} else {
			parts[i] = strconv.FormatInt(n, 10)
		}
	}
	sink.Indentf(depth, "%s: [ %s ];\n", d.FieldName, strings.Join(parts, ", "))
	return nil
}

func (d *ArrayDescriptor) Parse(s *text.Stream) (Value, error) {
	if err := expectStatementStart(s, d.FieldName); err != nil {
		return Value{}, err
	}
	v, err := d.parseList(s)
	if err != nil {
		return Value{}, err
	}
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}
	return v, nil
}

func (d *ArrayDescriptor) parseList(s *text.Stream) (Value, error) {
	if _, err := s.Expect(text.LBracket); err != nil {
		return Value{}, err
	}
	var ints []int64
	for {
		tok, err := s.Peek()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == text.RBracket {
			s.Next()
			break
		}
		v, err := s.Expect(text.Int)
		if err != nil {
			return Value{}, err
		}
		n, err := text.ParseInt(v.Text)
		if err != nil {
			return Value{}, err
		}
		ints = append(ints, n)

		tok, err = s.Peek()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == text.Comma {
			s.Next()
		}
	}
	return Value{Ints: ints}, nil
}

// ---- Long date ------------------------------------------------------

// epochDays is the fixed epoch (days since 0000-01-01, proleptic
// Gregorian, matching the source's date arithmetic) that long-date
// properties are offset from.
const epochDays = 366

// DateDescriptor is a 32-bit days-since-epoch field.
type DateDescriptor struct {
	FieldName string
}

func (d *DateDescriptor) Name() string { return d.FieldName }

func (d *DateDescriptor) Read(r *wire.Reader, _ byte) (Value, error) {
	v, err := r.U32()
	if err != nil {
		return Value{}, err
	}
	return Value{Int: int64(v)}, nil
}

func (d *DateDescriptor) Write(w *wire.Writer, v Value, _ byte) error {
	w.U32(uint32(v.Int))
	return nil
}

func (d *DateDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	y, m, day := civilFromDays(v.Int - epochDays)
	sink.Indentf(depth, "%s: %04d-%02d-%02d;\n", d.FieldName, y, m, day)
	return nil
}

// Parse reads the "YYYY-MM-DD" form Print emits. Because the lexer has
// no dedicated date token, a "-NN" run lexes as a negative integer
// (the same rule that lets negative property values round-trip); a
// date therefore arrives as three consecutive Int tokens, the second
// and third carrying the leading '-' as sign.
func (d *DateDescriptor) Parse(s *text.Stream) (Value, error) {
	if err := expectStatementStart(s, d.FieldName); err != nil {
		return Value{}, err
	}
	yTok, err := s.Expect(text.Int)
	if err != nil {
		return Value{}, err
	}
	mTok, err := s.Expect(text.Int)
	if err != nil {
		return Value{}, err
	}
	dTok, err := s.Expect(text.Int)
	if err != nil {
		return Value{}, err
	}
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}
	y, err1 := text.ParseInt(yTok.Text)
	m, err2 := text.ParseInt(mTok.Text)
	day, err3 := text.ParseInt(dTok.Text)
	if err1 != nil || err2 != nil || err3 != nil {
		return Value{}, &text.ParseError{Pos: yTok.Pos, Expected: "date (YYYY-MM-DD)", Got: yTok.Describe()}
	}
	if m < 0 {
		m = -m
	}
	if day < 0 {
		day = -day
	}
	return Value{Int: daysFromCivil(int(y), int(m), int(day)) + epochDays}, nil
}

// civilFromDays / daysFromCivil implement Howard Hinnant's days<->civil
// algorithm, used so DateDescriptor never depends on time.Time's own
// (different) epoch.
func civilFromDays(z int64) (year, month, day int) {
	z += 719468
	era := z
	if z < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

func daysFromCivil(y, m, d int) int64 {
	yy := int64(y)
	if m <= 2 {
		yy--
	}
	era := yy
	if yy < 0 {
		era -= 399
	}
	era /= 400
	yoe := yy - era*400
	var mp int64
	if m <= 2 {
		mp = int64(m) + 9
	} else {
		mp = int64(m) - 3
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// ---- Cargo list ----------------------------------------------------

// CargoListDescriptor is a length-prefixed list of 8-bit cargo ids.
type CargoListDescriptor struct {
	FieldName string
}

func (d *CargoListDescriptor) Name() string { return d.FieldName }

func (d *CargoListDescriptor) Read(r *wire.Reader, _ byte) (Value, error) {
	n, err := r.U8()
	if err != nil {
		return Value{}, err
	}
	ints := make([]int64, n)
	for i := range ints {
		b, err := r.U8()
		if err != nil {
			return Value{}, err
		}
		ints[i] = int64(b)
	}
	return Value{Ints: ints}, nil
}

func (d *CargoListDescriptor) Write(w *wire.Writer, v Value, _ byte) error {
	w.U8(byte(len(v.Ints)))
	for _, n := range v.Ints {
		w.U8(byte(n))
	}
	return nil
}

func (d *CargoListDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	parts := make([]string, len(v.Ints))
	for i, n := range v.Ints {
		parts[i] = fmt.Sprintf("0x%02X", n)
	}
	sink.Indentf(depth, "%s: [ %s ];\n", d.FieldName, strings.Join(parts, ", "))
	return nil
}

func (d *CargoListDescriptor) Parse(s *text.Stream) (Value, error) {
	arr := &ArrayDescriptor{FieldName: d.FieldName}
	return arr.Parse(s)
}

// ---- Bridge table ---------------------------------------------------

// BridgeTableDescriptor owns an 8-spritesets x 4-entries (32 total)
// layout, stored as a flat byte array per §4.5.
type BridgeTableDescriptor struct {
	FieldName string
}

const bridgeTableSize = 32

func (d *BridgeTableDescriptor) Name() string { return d.FieldName }

func (d *BridgeTableDescriptor) Read(r *wire.Reader, _ byte) (Value, error) {
	b, err := r.Bytes(bridgeTableSize)
	if err != nil {
		return Value{}, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return Value{Bytes: out}, nil
}

func (d *BridgeTableDescriptor) Write(w *wire.Writer, v Value, _ byte) error {
	buf := make([]byte, bridgeTableSize)
	copy(buf, v.Bytes)
	w.Write(buf)
	return nil
}

func (d *BridgeTableDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	parts := make([]string, len(v.Bytes))
	for i, b := range v.Bytes {
		parts[i] = fmt.Sprintf("0x%02X", b)
	}
	sink.Indentf(depth, "%s: [ %s ];\n", d.FieldName, strings.Join(parts, ", "))
	return nil
}

func (d *BridgeTableDescriptor) Parse(s *text.Stream) (Value, error) {
	if err := expectStatementStart(s, d.FieldName); err != nil {
		return Value{}, err
	}
	v, err := d.parseList(s)
	if err != nil {
		return Value{}, err
	}
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}
	return v, nil
}

func (d *BridgeTableDescriptor) parseList(s *text.Stream) (Value, error) {
	if _, err := s.Expect(text.LBracket); err != nil {
		return Value{}, err
	}
	var bs []byte
	for {
		tok, err := s.Peek()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == text.RBracket {
			s.Next()
			break
		}
		v, err := s.Expect(text.Int)
		if err != nil {
			return Value{}, err
		}
		n, err := text.ParseInt(v.Text)
		if err != nil {
			return Value{}, err
		}
		bs = append(bs, byte(n))

		tok, err = s.Peek()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == text.Comma {
			s.Next()
		}
	}
	return Value{Bytes: bs}, nil
}

// ---- Extended byte --------------------------------------------------

// ExtByteDescriptor is the one-byte-normally, 0xFF-escaped-u16-otherwise
// id encoding from §4.1, exposed as a property so features that store
// an id-like value (e.g. a purchase-list sort key) can use it directly.
type ExtByteDescriptor struct {
	FieldName string
	Base      IntBase
}

func (d *ExtByteDescriptor) Name() string { return d.FieldName }

func (d *ExtByteDescriptor) Read(r *wire.Reader, _ byte) (Value, error) {
	v, err := r.ExtByte()
	if err != nil {
		return Value{}, err
	}
	return Value{Int: int64(v)}, nil
}

func (d *ExtByteDescriptor) Write(w *wire.Writer, v Value, _ byte) error {
	w.ExtByte(uint32(v.Int))
	return nil
}

func (d *ExtByteDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	if d.Base == Hex {
		sink.Indentf(depth, "%s: 0x%04X;\n", d.FieldName, uint64(v.Int))
	} else {
		sink.Indentf(depth, "%s: %d;\n", d.FieldName, v.Int)
	}
	return nil
}

func (d *ExtByteDescriptor) Parse(s *text.Stream) (Value, error) {
	if err := expectStatementStart(s, d.FieldName); err != nil {
		return Value{}, err
	}
	tok, err := s.Expect(text.Int)
	if err != nil {
		return Value{}, err
	}
	n, err := text.ParseInt(tok.Text)
	if err != nil {
		return Value{}, err
	}
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}
	return Value{Int: n}, nil
}

// ---- Composite (one property id, several sequential sub-fields) ----

// CompositeDescriptor groups descriptors that together encode one
// property id: their Read/Write run in sequence against the same
// stream position, and they print/parse as that many independent
// "name: value;" statements. Unlike SplitSignByteDescriptor and
// HighBitFlagDescriptor, the parts do not share a byte — each part
// reads/writes its own bytes (e.g. Houses property 0x0A's
// first_year_available followed by last_year_available).
type CompositeDescriptor struct {
	Parts []Descriptor
}

func (d *CompositeDescriptor) Name() string { return d.Parts[0].Name() }

func (d *CompositeDescriptor) Read(r *wire.Reader, grfVersion byte) (Value, error) {
	parts := make([]Value, len(d.Parts))
	for i, p := range d.Parts {
		v, err := p.Read(r, grfVersion)
		if err != nil {
			return Value{}, err
		}
		parts[i] = v
	}
	return Value{Parts: parts}, nil
}

func (d *CompositeDescriptor) Write(w *wire.Writer, v Value, grfVersion byte) error {
	for i, p := range d.Parts {
		var pv Value
		if i < len(v.Parts) {
			pv = v.Parts[i]
		}
		if err := p.Write(w, pv, grfVersion); err != nil {
			return err
		}
	}
	return nil
}

func (d *CompositeDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	for i, p := range d.Parts {
		var pv Value
		if i < len(v.Parts) {
			pv = v.Parts[i]
		}
		if err := p.Print(sink, depth, pv); err != nil {
			return err
		}
	}
	return nil
}

func (d *CompositeDescriptor) Parse(s *text.Stream) (Value, error) {
	parts := make([]Value, len(d.Parts))
	for i, p := range d.Parts {
		v, err := p.Parse(s)
		if err != nil {
			return Value{}, err
		}
		parts[i] = v
	}
	return Value{Parts: parts}, nil
}

// ---- High-bit flag + magnitude byte ---------------------------------

// HighBitFlagDescriptor packs an unsigned 7-bit magnitude and a
// high-bit boolean flag into one byte (Houses property 0x1A:
// animation_frames in bits 0-6, animation_loops in bit 7). Unlike
// SplitSignByteDescriptor, the magnitude is never negated — the flag
// is a plain OR/AND mask, not a sign.
type HighBitFlagDescriptor struct {
	IntField  string
	BoolField string
}

func (d *HighBitFlagDescriptor) Name() string { return d.IntField }

func (d *HighBitFlagDescriptor) Read(r *wire.Reader, _ byte) (Value, error) {
	b, err := r.U8()
	if err != nil {
		return Value{}, err
	}
	return Value{Int: int64(b & 0x7F), Bool: b&0x80 != 0}, nil
}

func (d *HighBitFlagDescriptor) Write(w *wire.Writer, v Value, _ byte) error {
	b := byte(v.Int) & 0x7F
	if v.Bool {
		b |= 0x80
	}
	w.U8(b)
	return nil
}

func (d *HighBitFlagDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	sink.Indentf(depth, "%s: %d;\n", d.IntField, v.Int)
	sink.Indentf(depth, "%s: %t;\n", d.BoolField, v.Bool)
	return nil
}

// Parse reads both statements in the order Print emits them: the
// magnitude first, then the flag.
func (d *HighBitFlagDescriptor) Parse(s *text.Stream) (Value, error) {
	if err := expectStatementStart(s, d.IntField); err != nil {
		return Value{}, err
	}
	tok, err := s.Expect(text.Int)
	if err != nil {
		return Value{}, err
	}
	n, err := text.ParseInt(tok.Text)
	if err != nil {
		return Value{}, err
	}
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}

	if err := expectStatementStart(s, d.BoolField); err != nil {
		return Value{}, err
	}
	btok, err := s.Next()
	if err != nil {
		return Value{}, err
	}
	if btok.Kind != text.Ident || (btok.Text != "true" && btok.Text != "false") {
		return Value{}, &text.ParseError{Pos: btok.Pos, Expected: "'true' or 'false'", Got: btok.Describe()}
	}
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}

	return Value{Int: n, Bool: btok.Text == "true"}, nil
}

// ---- Split sign/magnitude byte --------------------------------------

// SplitSignByteDescriptor projects one wire byte, read as a two's
// complement int8, into two named text fields: a bool taken from the
// sign and an unsigned magnitude taken from the absolute value. Houses
// property 0x0F (accepts_goods / goods_etc_acceptance) is the only
// user of this shape.
type SplitSignByteDescriptor struct {
	BoolField string
	IntField  string
}

func (d *SplitSignByteDescriptor) Name() string { return d.BoolField }

func (d *SplitSignByteDescriptor) Read(r *wire.Reader, _ byte) (Value, error) {
	b, err := r.I8()
	if err != nil {
		return Value{}, err
	}
	mag := int64(b)
	if mag < 0 {
		mag = -mag
	}
	return Value{Bool: b >= 0, Int: mag}, nil
}

func (d *SplitSignByteDescriptor) Write(w *wire.Writer, v Value, _ byte) error {
	mag := v.Int & 0x7F
	if !v.Bool {
		mag = -mag
	}
	w.I8(int8(mag))
	return nil
}

func (d *SplitSignByteDescriptor) Print(sink *text.Sink, depth int, v Value) error {
	sink.Indentf(depth, "%s: %t;\n", d.BoolField, v.Bool)
	sink.Indentf(depth, "%s: %d;\n", d.IntField, v.Int)
	return nil
}

// Parse reads both statements this descriptor owns, in the order
// Print emits them: the bool field first, then the magnitude.
func (d *SplitSignByteDescriptor) Parse(s *text.Stream) (Value, error) {
	if err := expectStatementStart(s, d.BoolField); err != nil {
		return Value{}, err
	}
	tok, err := s.Next()
	if err != nil {
		return Value{}, err
	}
	if tok.Kind != text.Ident || (tok.Text != "true" && tok.Text != "false") {
		return Value{}, &text.ParseError{Pos: tok.Pos, Expected: "'true' or 'false'", Got: tok.Describe()}
	}
	accepts := tok.Text == "true"
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}

	if err := expectStatementStart(s, d.IntField); err != nil {
		return Value{}, err
	}
	magTok, err := s.Expect(text.Int)
	if err != nil {
		return Value{}, err
	}
	mag, err := text.ParseInt(magTok.Text)
	if err != nil {
		return Value{}, err
	}
	if err := expectStatementEnd(s); err != nil {
		return Value{}, err
	}

	return Value{Bool: accepts, Int: mag}, nil
}

// ---- Unsupported ----------------------------------------------------

// UnsupportedDescriptor always errors; registered for feature tables
// (e.g. original strings) whose every operation is an explicit
// placeholder (§9).
type UnsupportedDescriptor struct {
	FieldName string
	Feature   string
}

func (d *UnsupportedDescriptor) Name() string { return d.FieldName }

func (d *UnsupportedDescriptor) Read(*wire.Reader, byte) (Value, error) {
	return Value{}, fmt.Errorf("properties: unsupported feature %s", d.Feature)
}

func (d *UnsupportedDescriptor) Write(*wire.Writer, Value, byte) error {
	return fmt.Errorf("properties: unsupported feature %s", d.Feature)
}

func (d *UnsupportedDescriptor) Print(*text.Sink, int, Value) error {
	return fmt.Errorf("properties: unsupported feature %s", d.Feature)
}

func (d *UnsupportedDescriptor) Parse(*text.Stream) (Value, error) {
	return Value{}, fmt.Errorf("properties: unsupported feature %s", d.Feature)
}
