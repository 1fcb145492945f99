package yagl

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/newgrf/yagl/yagl/internal/text"
)

// FormatError reports a framing or record-classification fault: wrong
// magic, unexpected action byte, or truncated input. Fatal for the
// whole decode, per the error handling design.
type FormatError struct {
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("yagl: format error at offset %d: %s", e.Offset, e.Msg)
}

func newFormatError(offset int, format string, args ...interface{}) error {
	return errors.WithStack(&FormatError{Offset: offset, Msg: fmt.Sprintf(format, args...)})
}

// PropertyUnknownError reports a property id with no descriptor in the
// feature's table.
type PropertyUnknownError struct {
	Feature    byte
	PropertyID byte
}

func (e *PropertyUnknownError) Error() string {
	return fmt.Sprintf("yagl: unknown property 0x%02X for feature 0x%02X", e.PropertyID, e.Feature)
}

func newPropertyUnknownError(feature, propertyID byte) error {
	return errors.WithStack(&PropertyUnknownError{Feature: feature, PropertyID: propertyID})
}

// LengthMismatchError reports that a record's declared length did not
// match the bytes its variant actually consumed.
type LengthMismatchError struct {
	Declared int
	Consumed int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("yagl: length mismatch: declared %d, consumed %d", e.Declared, e.Consumed)
}

func newLengthMismatchError(declared, consumed int) error {
	return errors.WithStack(&LengthMismatchError{Declared: declared, Consumed: consumed})
}

// Position locates a token in the YAGL text source. It is an alias of
// the lexer's own position type so callers never need to convert.
type Position = text.Position

// LexError reports a malformed token: an invalid character or an
// unterminated string literal. It is an alias of the lexer's own
// error type, which already carries line/column per §7.
type LexError = text.LexError

// ParseError reports a token of the wrong kind encountered while
// parsing the text form. It is an alias of the lexer's own error
// type, which already carries the offending token's position.
type ParseError = text.ParseError

// UnsupportedError marks an explicit placeholder feature/record whose
// operations are recognised but never implemented (e.g. original
// strings, per the source's own admission).
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("yagl: unsupported: %s", e.Feature)
}

func newUnsupportedError(feature string) error {
	return errors.WithStack(&UnsupportedError{Feature: feature})
}
