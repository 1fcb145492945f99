package text

import (
	"fmt"
	"io"
	"strings"
)

// Sink accumulates the indented, brace-nested text a record or
// property prints itself into. Callers own their own indent
// bookkeeping by passing the current depth to each call.
type Sink struct {
	W io.Writer
}

func NewSink(w io.Writer) *Sink {
	return &Sink{W: w}
}

func (s *Sink) Indentf(depth int, format string, args ...interface{}) {
	io.WriteString(s.W, strings.Repeat("\t", depth))
	fmt.Fprintf(s.W, format, args...)
}

func (s *Sink) Printf(format string, args ...interface{}) {
	fmt.Fprintf(s.W, format, args...)
}

// HexByte formats a byte as the "0x" form property descriptors use.
func HexByte(b byte) string {
	return fmt.Sprintf("0x%02X", b)
}

func HexU32(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}
