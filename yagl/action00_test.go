package yagl

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
	"github.com/newgrf/yagl/yagl/properties"
)

func TestAction00BinaryRoundTrip(t *testing.T) {
	ctx := NewContext(V1)
	rec := &Action00Record{
		Feature:     properties.FeatureHouses,
		FirstID:     0x10,
		PropertyIDs: []byte{0x08, 0x0F},
		Instances: [][]properties.Value{
			{{Int: 0x42}, {Bool: true, Int: 0x3E}},
			{{Int: 0x7F}, {Bool: false, Int: 0x01}},
		},
	}

	body, err := rec.writeBody(ctx)
	if err != nil {
		t.Fatalf("writeBody: %s", err)
	}

	got, err := readAction00(wire.NewReader(body), ctx)
	if err != nil {
		t.Fatalf("readAction00: %s", err)
	}

	if got.Feature != rec.Feature || got.FirstID != rec.FirstID {
		t.Fatalf("header mismatch: got %+v, want %+v", got, rec)
	}
	if !bytes.Equal(got.PropertyIDs, rec.PropertyIDs) {
		t.Fatalf("property ids: got %v, want %v", got.PropertyIDs, rec.PropertyIDs)
	}
	for i := range rec.Instances {
		for j := range rec.Instances[i] {
			if !reflect.DeepEqual(got.Instances[i][j], rec.Instances[i][j]) {
				t.Fatalf("instance %d prop %d: got %+v, want %+v", i, j, got.Instances[i][j], rec.Instances[i][j])
			}
		}
	}
}

func TestAction00TextRoundTrip(t *testing.T) {
	ctx := NewContext(V1)
	rec := &Action00Record{
		Feature:     properties.FeatureHouses,
		FirstID:     0x01,
		PropertyIDs: []byte{0x08, 0x0F},
		Instances: [][]properties.Value{
			{{Int: 0x10}, {Bool: true, Int: 0x20}},
		},
	}

	var buf bytes.Buffer
	sink := text.NewSink(&buf)
	if err := rec.print(sink, 0, ctx); err != nil {
		t.Fatalf("print: %s", err)
	}

	s := text.NewStream(buf.Bytes())
	got, err := parseAction00(s, ctx)
	if err != nil {
		t.Fatalf("parseAction00: %s\ninput:\n%s", err, buf.String())
	}

	if got.Feature != rec.Feature || got.FirstID != rec.FirstID {
		t.Fatalf("header mismatch: got %+v, want %+v", got, rec)
	}
	if !bytes.Equal(got.PropertyIDs, rec.PropertyIDs) {
		t.Fatalf("property ids: got %v, want %v", got.PropertyIDs, rec.PropertyIDs)
	}
	if got.Instances[0][0].Int != 0x10 {
		t.Fatalf("instance 0 prop 0: got %+v", got.Instances[0][0])
	}
	if !got.Instances[0][1].Bool || got.Instances[0][1].Int != 0x20 {
		t.Fatalf("instance 0 prop 1: got %+v", got.Instances[0][1])
	}
}

func TestAction00UnknownFeature(t *testing.T) {
	ctx := NewContext(V1)
	rec := &Action00Record{Feature: 0xEE}
	if _, err := rec.writeBody(ctx); err == nil {
		t.Fatal("expected an error for an unregistered feature")
	}
}

func TestAction00OriginalStringsUnsupported(t *testing.T) {
	ctx := NewContext(V1)
	rec := &Action00Record{
		Feature:     properties.FeatureOriginalStrings,
		PropertyIDs: []byte{0x00},
		Instances:   [][]properties.Value{{{Int: 0}}},
	}

	_, err := rec.writeBody(ctx)
	if err == nil {
		t.Fatal("expected an UnsupportedError")
	}
	var target *UnsupportedError
	if !errors.As(err, &target) {
		t.Fatalf("writeBody error = %v (%T), want an *UnsupportedError in its chain", err, err)
	}
}
