package properties

import (
	"bytes"
	"testing"

	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
)

func TestIntDescriptorBinaryRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		d    *IntDescriptor
		v    Value
		want []byte
	}{
		{"u8", &IntDescriptor{FieldName: "x", Width: Width1}, Value{Int: 0x42}, []byte{0x42}},
		{"i8 negative", &IntDescriptor{FieldName: "x", Width: Width1, Signed: true}, Value{Int: -2}, []byte{0xFE}},
		{"u16", &IntDescriptor{FieldName: "x", Width: Width2}, Value{Int: 0x1234}, []byte{0x34, 0x12}},
		{"u32", &IntDescriptor{FieldName: "x", Width: Width4}, Value{Int: 0x12345678}, []byte{0x78, 0x56, 0x34, 0x12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := wire.NewWriter()
			if err := tt.d.Write(w, tt.v, 0); err != nil {
				t.Fatalf("Write: %s", err)
			}
			if !bytes.Equal(w.Bytes(), tt.want) {
				t.Fatalf("wire bytes = % X, want % X", w.Bytes(), tt.want)
			}
			got, err := tt.d.Read(wire.NewReader(w.Bytes()), 0)
			if err != nil {
				t.Fatalf("Read: %s", err)
			}
			if got.Int != tt.v.Int {
				t.Fatalf("Read() = %d, want %d", got.Int, tt.v.Int)
			}
		})
	}
}

func TestIntDescriptorTextRoundTrip(t *testing.T) {
	d := &IntDescriptor{FieldName: "min_year", Base: Hex, Width: Width2}
	var buf bytes.Buffer
	sink := text.NewSink(&buf)
	if err := d.Print(sink, 0, Value{Int: 0x07D0}); err != nil {
		t.Fatalf("Print: %s", err)
	}
	s := text.NewStream(buf.Bytes())
	got, err := d.Parse(s)
	if err != nil {
		t.Fatalf("Parse: %s\ninput: %s", err, buf.String())
	}
	if got.Int != 0x07D0 {
		t.Fatalf("Parse() = 0x%X, want 0x7D0", got.Int)
	}
}

func TestBoolDescriptorCustomWireValues(t *testing.T) {
	d := &BoolDescriptor{FieldName: "flag", TrueByte: 0x01, FalseByte: 0x02}

	w := wire.NewWriter()
	if err := d.Write(w, Value{Bool: false}, 0); err != nil {
		t.Fatalf("Write: %s", err)
	}
	if got := w.Bytes(); len(got) != 1 || got[0] != 0x02 {
		t.Fatalf("false wrote % X, want [0x02]", got)
	}

	got, err := d.Read(wire.NewReader([]byte{0x01}), 0)
	if err != nil {
		t.Fatalf("Read: %s", err)
	}
	if !got.Bool {
		t.Fatalf("Read(0x01) = false, want true")
	}
}

func TestArrayDescriptorRoundTrip(t *testing.T) {
	d := &ArrayDescriptor{FieldName: "layout", Count: 4, Width: Width1}
	v := Value{Ints: []int64{1, 2, 3, 4}}

	w := wire.NewWriter()
	if err := d.Write(w, v, 0); err != nil {
		t.Fatalf("Write: %s", err)
	}
	if !bytes.Equal(w.Bytes(), []byte{1, 2, 3, 4}) {
		t.Fatalf("wire bytes = %v", w.Bytes())
	}

	got, err := d.Read(wire.NewReader(w.Bytes()), 0)
	if err != nil {
		t.Fatalf("Read: %s", err)
	}
	if len(got.Ints) != 4 || got.Ints[2] != 3 {
		t.Fatalf("Read() = %v", got.Ints)
	}
}

// TestSplitSignByteDescriptorScenario6 pins the exact wire bytes named
// by the Houses goods-acceptance scenario: a true flag keeps the
// magnitude as-is, a false flag negates it via two's complement.
func TestSplitSignByteDescriptorScenario6(t *testing.T) {
	d := &SplitSignByteDescriptor{BoolField: "accepts_goods", IntField: "goods_etc_acceptance"}

	w := wire.NewWriter()
	if err := d.Write(w, Value{Bool: true, Int: 0x42}, 0); err != nil {
		t.Fatalf("Write: %s", err)
	}
	if got := w.Bytes(); len(got) != 1 || got[0] != 0x42 {
		t.Fatalf("true+0x42 wrote % X, want [0x42]", got)
	}

	w = wire.NewWriter()
	if err := d.Write(w, Value{Bool: false, Int: 0x42}, 0); err != nil {
		t.Fatalf("Write: %s", err)
	}
	if got := w.Bytes(); len(got) != 1 || got[0] != 0xBE {
		t.Fatalf("false+0x42 wrote % X, want [0xBE]", got)
	}

	got, err := d.Read(wire.NewReader([]byte{0xBE}), 0)
	if err != nil {
		t.Fatalf("Read: %s", err)
	}
	if got.Bool || got.Int != 0x42 {
		t.Fatalf("Read(0xBE) = %+v, want {Bool: false, Int: 0x42}", got)
	}
}

func TestUnsupportedDescriptorAlwaysErrors(t *testing.T) {
	d := &UnsupportedDescriptor{FieldName: "unsupported_string_id"}
	if _, err := d.Read(wire.NewReader([]byte{0x00}), 0); err == nil {
		t.Fatal("Read: expected an error")
	}
	if err := d.Write(wire.NewWriter(), Value{}, 0); err == nil {
		t.Fatal("Write: expected an error")
	}
	if _, err := d.Parse(text.NewStream([]byte("x;"))); err == nil {
		t.Fatal("Parse: expected an error")
	}
}
