package yagl

import (
	"bytes"
	"testing"

	"github.com/newgrf/yagl/yagl/internal/wire"
)

func TestReadSpriteIndexConsumesWholeBody(t *testing.T) {
	w := wire.NewWriter()
	w.U32(0x01020304)
	r := wire.NewReader(w.Bytes())

	got, err := readSpriteIndex(r)
	if err != nil {
		t.Fatalf("readSpriteIndex: %s", err)
	}
	if got.ID != 0x01020304 {
		t.Fatalf("ID = 0x%X, want 0x01020304", got.ID)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReadRecolourTableConsumesWholeBody(t *testing.T) {
	table := make([]byte, 256)
	for i := range table {
		table[i] = byte(i)
	}
	r := wire.NewReader(table)

	got, err := readRecolourTable(r)
	if err != nil {
		t.Fatalf("readRecolourTable: %s", err)
	}
	if !bytes.Equal(got.Table[:], table) {
		t.Fatalf("Table mismatch")
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReadRealSpriteV1ConsumesWholeBody(t *testing.T) {
	// info 0x01 (flagPalette, uncompressed): width=1, height=2, xrel=0,
	// yrel=0, then 2 raw palette-index pixels.
	body := []byte{0x01, 0x00, 0x02, 0x00, 0x00, 0x00, 0x10, 0x20}
	r := wire.NewReader(body)

	got, err := readRealSpriteV1(flagPalette, r, 7)
	if err != nil {
		t.Fatalf("readRealSpriteV1: %s", err)
	}
	if got.Width != 1 || got.Height != 2 {
		t.Fatalf("got width=%d height=%d, want 1,2", got.Width, got.Height)
	}
	if !bytes.Equal(got.Pixels, []byte{0x10, 0x20}) {
		t.Fatalf("Pixels = % X, want [10 20]", got.Pixels)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", r.Remaining())
	}
}
