package yagl

import (
	"bytes"
	"testing"

	"github.com/newgrf/yagl/yagl/internal/wire"
)

func TestContainerNumDeclaredChildren(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		header []uint32
		sets   []spriteSet
		want   int
	}{
		{"action01 num_sets x num_sprites_per_set", KindAction01, []uint32{0x07, 3, 4}, nil, 12},
		{"action05 num_sprites", KindAction05, []uint32{0x01, 5}, nil, 5},
		{"action0a sum of per-set num_sprites", KindAction0A, []uint32{2},
			[]spriteSet{{NumSprites: 3, FirstSprite: 0}, {NumSprites: 4, FirstSprite: 3}}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ContainerRecord{kind: tt.kind, Header: tt.header, Sets: tt.sets}
			if got := c.NumDeclaredChildren(); got != tt.want {
				t.Fatalf("NumDeclaredChildren() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestAction0ASetDescriptorsRoundTrip pins the fix for the previously
// dropped per-set descriptors (original_source's Action0ARecord.h
// SpriteSet: num_sprites uint8, first_sprite uint16): the declared
// child count must be the sum of num_sprites across sets, and the set
// bytes themselves must round-trip through writeBody/readContainer.
func TestAction0ASetDescriptorsRoundTrip(t *testing.T) {
	c := &ContainerRecord{
		kind:   KindAction0A,
		Header: []uint32{2},
		Sets: []spriteSet{
			{NumSprites: 3, FirstSprite: 0x0000},
			{NumSprites: 5, FirstSprite: 0x0003},
		},
	}
	ctx := NewContext(V1)

	body, err := c.writeBody(ctx)
	if err != nil {
		t.Fatalf("writeBody: %s", err)
	}

	got, err := readContainer(KindAction0A, wire.NewReader(body))
	if err != nil {
		t.Fatalf("readContainer: %s", err)
	}
	if len(got.Sets) != 2 {
		t.Fatalf("got %d sets, want 2", len(got.Sets))
	}
	if got.Sets[0] != c.Sets[0] || got.Sets[1] != c.Sets[1] {
		t.Fatalf("sets = %+v, want %+v", got.Sets, c.Sets)
	}
	if got.NumDeclaredChildren() != 8 {
		t.Fatalf("NumDeclaredChildren() = %d, want 8", got.NumDeclaredChildren())
	}
}

func TestContainerBinaryRoundTrip(t *testing.T) {
	c := &ContainerRecord{kind: KindAction01, Header: []uint32{0x07, 2, 3}}
	ctx := NewContext(V1)

	body, err := c.writeBody(ctx)
	if err != nil {
		t.Fatalf("writeBody: %s", err)
	}

	got, err := readContainer(KindAction01, wire.NewReader(body))
	if err != nil {
		t.Fatalf("readContainer: %s", err)
	}
	if len(got.Header) != len(c.Header) {
		t.Fatalf("header length: got %d, want %d", len(got.Header), len(c.Header))
	}
	for i := range c.Header {
		if got.Header[i] != c.Header[i] {
			t.Fatalf("header[%d]: got 0x%X, want 0x%X", i, got.Header[i], c.Header[i])
		}
	}
	if got.NumDeclaredChildren() != 6 {
		t.Fatalf("NumDeclaredChildren() = %d, want 6", got.NumDeclaredChildren())
	}
}

func TestContainerExtByteHeaderRoundTrip(t *testing.T) {
	// A header field above 0xFE exercises the extended-byte escape (§4.1).
	c := &ContainerRecord{kind: KindAction05, Header: []uint32{0x02, 0x1234}}
	ctx := NewContext(V1)

	body, err := c.writeBody(ctx)
	if err != nil {
		t.Fatalf("writeBody: %s", err)
	}
	if !bytes.Contains(body, []byte{0xFF}) {
		t.Fatalf("expected the 0x1234 header field to escape via 0xFF, got % X", body)
	}

	got, err := readContainer(KindAction05, wire.NewReader(body))
	if err != nil {
		t.Fatalf("readContainer: %s", err)
	}
	if got.Header[1] != 0x1234 {
		t.Fatalf("header[1] = 0x%X, want 0x1234", got.Header[1])
	}
}
