package yagl

import (
	"bytes"
	"testing"

	"github.com/newgrf/yagl/yagl/internal/wire"
)

// TestClassifyAction02 pins the sub-kind classifier against
// original_source/records/NewGRFData.cpp:311, which switches on
// data[2] (the byte after the feature byte and the first set-id byte)
// rather than data[1].
func TestClassifyAction02(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want string
	}{
		{"random (triggers)", []byte{0x07, 0x00, 0x80}, "random"},
		{"variable (primary)", []byte{0x07, 0x00, 0x81}, "variable"},
		{"sprite layout", []byte{0x07, 0x02, 0x00}, "sprite_layout"},
		{"industry", []byte{0x0A, 0x02, 0x00}, "industry"},
		{"basic", []byte{0x03, 0x01, 0x02}, "basic"},
		{"too short for sub-kind byte", []byte{0x07}, "sprite_layout"},
		{"empty", nil, "basic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyAction02(tt.body); got != tt.want {
				t.Fatalf("classifyAction02(% X) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestReadAction02ConsumesWholeBody(t *testing.T) {
	body := []byte{0x07, 0x00, 0x81, 0x02, 0x03}
	r := wire.NewReader(body)
	rec, err := readAction02(r)
	if err != nil {
		t.Fatalf("readAction02: %s", err)
	}
	if rec.SubKind != "variable" {
		t.Fatalf("SubKind = %q, want variable", rec.SubKind)
	}
	if !bytes.Equal(rec.Body, body) {
		t.Fatalf("Body = % X, want % X", rec.Body, body)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", r.Remaining())
	}
}
