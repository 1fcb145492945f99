package yagl

import (
	"bytes"
	"errors"
	"testing"
)

// Scenario 1 (§8): minimal empty v1 container.
func TestDecodeEncodeMinimalV1(t *testing.T) {
	in := []byte{0x00, 0x00}

	pkg, err := Decode(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if pkg.Format != V1 || len(pkg.Records) != 0 {
		t.Fatalf("got format=%s records=%d, want V1, 0 records", pkg.Format, len(pkg.Records))
	}

	out, err := Encode(pkg)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("encode(decode(B)) != B:\n got  % X\n want % X", out, in)
	}
}

// Scenario 2 (§8): minimal v2 container with the leading record-counter
// pseudo-sprite and no user records.
func TestDecodeEncodeMinimalV2(t *testing.T) {
	in := []byte{
		0x00, 0x00, 0x47, 0x52, 0x46, 0x82, 0x0D, 0x0A, 0x1A, 0x0A, // leading zero word + identifier
		0x00, 0x00, 0x00, 0x00, 0xAB, // sprite section offset (0) + compression (0xAB)
		0x04, 0x00, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00, 0x00, // counter pseudo-sprite, count=0
		0x00, 0x00, 0x00, 0x00, // record-stream terminator
		0x00, 0x00, 0x00, 0x00, // graphics-section terminator
	}

	pkg, err := Decode(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if pkg.Format != V2 {
		t.Fatalf("got format=%s, want V2", pkg.Format)
	}
	if len(pkg.Records) != 0 || len(pkg.Sprites) != 0 {
		t.Fatalf("got %d records, %d sprite ids, want 0 and 0", len(pkg.Records), len(pkg.Sprites))
	}
	if pkg.GraphicsCompression != 0xAB {
		t.Fatalf("GraphicsCompression = 0x%02X, want 0xAB", pkg.GraphicsCompression)
	}

	out, err := Encode(pkg)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("encode(decode(B)) != B:\n got  % X\n want % X", out, in)
	}
}

// Scenario 4 (§8): an Action01 declaring one set of two sprites, with two
// inline v1 real-sprite children whose ids are the running record index.
func TestDecodeEncodeContainerWithRealSprites(t *testing.T) {
	in := []byte{
		0x05, 0x00, 0xFF, 0x01, 0x07, 0x01, 0x02, // action01: feature 0x07, 1 set x 2 sprites
		0x09, 0x00, 0x01, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x02, // real sprite, id 1
		0x09, 0x00, 0x01, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x03, 0x04, // real sprite, id 2
		0x00, 0x00, // terminator
	}

	pkg, err := Decode(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if len(pkg.Records) != 1 {
		t.Fatalf("got %d top-level records, want 1", len(pkg.Records))
	}
	co, ok := pkg.Records[0].(ChildOwner)
	if !ok {
		t.Fatalf("top-level record is not a ChildOwner: %T", pkg.Records[0])
	}
	children := co.Children()
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	s1, ok := children[0].(*RealSprite)
	if !ok || s1.ID != 1 {
		t.Fatalf("child 0 = %+v, want RealSprite{ID: 1}", children[0])
	}
	s2, ok := children[1].(*RealSprite)
	if !ok || s2.ID != 2 {
		t.Fatalf("child 1 = %+v, want RealSprite{ID: 2}", children[1])
	}
	if !bytes.Equal(s1.Pixels, []byte{0x01, 0x02}) || !bytes.Equal(s2.Pixels, []byte{0x03, 0x04}) {
		t.Fatalf("pixel mismatch: %v, %v", s1.Pixels, s2.Pixels)
	}

	out, err := Encode(pkg)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("encode(decode(B)) != B:\n got  % X\n want % X", out, in)
	}
}

func TestDecodeEmptyChildIsFakeSprite(t *testing.T) {
	// action05 declaring one sprite, whose single child is a size-1
	// pseudo-sprite: info 0xFF, action 0x00, no further bytes.
	in := []byte{
		0x04, 0x00, 0xFF, 0x05, 0x01, 0x01, // action05: type 0x01, num_sprites=1
		0x02, 0x00, 0xFF, 0x00, // child: FakeSprite
		0x00, 0x00, // terminator
	}
	pkg, err := Decode(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	co := pkg.Records[0].(ChildOwner)
	if len(co.Children()) != 1 {
		t.Fatalf("got %d children, want 1", len(co.Children()))
	}
	if _, ok := co.Children()[0].(*FakeSprite); !ok {
		t.Fatalf("child is %T, want *FakeSprite", co.Children()[0])
	}

	out, err := Encode(pkg)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("encode(decode(B)) != B:\n got  % X\n want % X", out, in)
	}
}

func TestDecodeDebugEmitsDiagnosticOnFailure(t *testing.T) {
	// info 0xFF with an unrecognised action byte (0x15) fails
	// classification; DecodeDebug should log it before returning.
	in := []byte{0x02, 0x00, 0xFF, 0x15}

	var buf bytes.Buffer
	if _, err := DecodeDebug(bytes.NewReader(in), &buf); err == nil {
		t.Fatal("expected a decode error")
	}
	if buf.Len() == 0 {
		t.Fatal("expected a diagnostic line on the debug writer")
	}
}

// TestDecodeUnderreadRaisesLengthMismatch pins §7's "declared length
// does not match body consumed -> fatal": a sprite_index record
// declares 6 bytes but its variant only ever reads 4 (a uint32 id),
// so the trailing byte must surface as a LengthMismatchError rather
// than being silently dropped.
func TestDecodeUnderreadRaisesLengthMismatch(t *testing.T) {
	in := []byte{
		0x06, 0x00, 0xFD, 0x01, 0x00, 0x00, 0x00, 0xAA,
		0x00, 0x00,
	}
	_, err := Decode(bytes.NewReader(in))
	if err == nil {
		t.Fatal("expected a LengthMismatchError")
	}
	var target *LengthMismatchError
	if !errors.As(err, &target) {
		t.Fatalf("Decode error = %v (%T), want a *LengthMismatchError in its chain", err, err)
	}
	if target.Declared != 5 || target.Consumed != 4 {
		t.Fatalf("got %+v, want Declared=5 Consumed=4", target)
	}
}

func TestPrintParseStructuralRoundTrip(t *testing.T) {
	in := []byte{
		0x05, 0x00, 0xFF, 0x01, 0x07, 0x01, 0x02,
		0x09, 0x00, 0x01, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x02,
		0x09, 0x00, 0x01, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x03, 0x04,
		0x00, 0x00,
	}
	pkg, err := Decode(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}

	var buf bytes.Buffer
	if err := Print(pkg, &buf, nil); err != nil {
		t.Fatalf("Print: %s", err)
	}

	reparsed, err := Parse(&buf, nil)
	if err != nil {
		t.Fatalf("Parse: %s\ntext:\n%s", err, buf.String())
	}

	if len(reparsed.Records) != len(pkg.Records) {
		t.Fatalf("got %d records, want %d", len(reparsed.Records), len(pkg.Records))
	}
	co1 := pkg.Records[0].(ChildOwner)
	co2 := reparsed.Records[0].(ChildOwner)
	if len(co1.Children()) != len(co2.Children()) {
		t.Fatalf("got %d children, want %d", len(co2.Children()), len(co1.Children()))
	}
	for i, c := range co1.Children() {
		want := c.(*RealSprite)
		got := co2.Children()[i].(*RealSprite)
		if got.ID != want.ID || got.Width != want.Width || got.Height != want.Height {
			t.Fatalf("child %d metadata mismatch: got %+v, want %+v", i, got, want)
		}
	}
}
