package yagl

import (
	"fmt"
	"image/color"
	"io"
)

// Format distinguishes the two on-disk container dialects.
type Format int

const (
	V1 Format = iota
	V2
)

func (f Format) String() string {
	if f == V2 {
		return "v2"
	}
	return "v1"
}

// Context is threaded explicitly through every record's read/write/
// print/parse call. It replaces the source's process-wide debug
// singleton (§9): no package-level mutable state lives in the core.
type Context struct {
	// Format is the container dialect currently being decoded/encoded.
	Format Format

	// GRFVersion is the declared format version recorded by the
	// Action08 identity record, propagated so version-sensitive
	// property encodings (16-bit vs 32-bit fields) can branch on it.
	GRFVersion byte

	// Debug, when non-nil, receives a diagnostic line (record index
	// and partial contents) immediately before a fatal error is
	// surfaced, per the "debug mode" described in the error handling
	// design.
	Debug io.Writer

	// recordIndex is the 0-based index of the record that failed to
	// decode; decodeBytes sets it just before printing the debug
	// diagnostic. v1 inline real-sprite ids come from decodeBytes' own
	// running index, not from this field.
	recordIndex int

	// SpriteConsumer, SpriteProvider and Palette are the PNG-packing
	// collaborator hooks (§6): when set, RealSprite.print/parseRealSprite
	// use them to round-trip pixel payloads through an external sprite
	// sheet rather than carrying raw pixels in the text form. Nil means
	// "no collaborator wired"; pixel data is then simply not printed/read.
	SpriteConsumer SpriteSheetConsumer
	SpriteProvider SpriteSheetProvider
	Palette        color.Palette
}

// NewContext returns a Context for the given container format with
// diagnostics disabled.
func NewContext(format Format) *Context {
	return &Context{Format: format}
}

func (c *Context) debugf(format string, args ...interface{}) {
	if c == nil || c.Debug == nil {
		return
	}
	fmt.Fprintf(c.Debug, format, args...)
}
