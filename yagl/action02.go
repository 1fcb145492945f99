package yagl

import (
	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
)

// Action02Record covers action byte 0x02's five sub-kinds (§4.3):
// random, variable, sprite-layout, industry, and basic sprite-group
// records share one action byte and are told apart only by peeking
// into the body. The sub-kind decides nothing about framing or
// grouping (none of them own children per §4.4's container list), so
// one type carries the resolved label for diagnostics and otherwise
// round-trips its body opaquely, same as OpaqueRecord.
type Action02Record struct {
	SubKind string
	Body    []byte
}

func (a *Action02Record) Kind() Kind { return KindAction02 }

// classifyAction02 resolves the sub-kind from the body bytes per
// §4.3's table. The random/variable switch reads body[2]
// (original_source/records/NewGRFData.cpp:311's data[2], where data
// is everything after the action byte, the same indexing body uses
// here).
func classifyAction02(body []byte) string {
	if len(body) > 2 {
		switch body[2] {
		case 0x80, 0x83, 0x84:
			return "random"
		case 0x81, 0x82, 0x85, 0x86, 0x89, 0x8A:
			return "variable"
		}
	}
	if len(body) > 0 {
		switch body[0] {
		case 0x07, 0x09, 0x0F, 0x11:
			return "sprite_layout"
		case 0x0A:
			return "industry"
		}
	}
	return "basic"
}

func readAction02(r *wire.Reader) (*Action02Record, error) {
	body, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	return &Action02Record{SubKind: classifyAction02(body), Body: append([]byte(nil), body...)}, nil
}

func (a *Action02Record) writeBody(ctx *Context) ([]byte, error) {
	return append([]byte(nil), a.Body...), nil
}

func (a *Action02Record) print(sink *text.Sink, depth int, ctx *Context) error {
	sink.Indentf(depth, "action02 {\n")
	sink.Indentf(depth+1, "sub_kind: %s;\n", a.SubKind)
	sink.Indentf(depth+1, "bytes: [")
	for i, b := range a.Body {
		if i > 0 {
			sink.Printf(", ")
		}
		sink.Printf("0x%02X", b)
	}
	sink.Printf("];\n")
	sink.Indentf(depth, "}\n")
	return nil
}

func parseAction02(s *text.Stream) (*Action02Record, error) {
	if _, err := s.ExpectIdent("action02"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return nil, err
	}
	if _, err := s.ExpectIdent("sub_kind"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Colon); err != nil {
		return nil, err
	}
	subKindTok, err := s.Expect(text.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}

	if _, err := s.ExpectIdent("bytes"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Colon); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBracket); err != nil {
		return nil, err
	}
	var body []byte
	for {
		tok, err := s.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == text.RBracket {
			s.Next()
			break
		}
		v, err := s.Expect(text.Int)
		if err != nil {
			return nil, err
		}
		n, err := text.ParseInt(v.Text)
		if err != nil {
			return nil, err
		}
		body = append(body, byte(n))
		next, err := s.Peek()
		if err != nil {
			return nil, err
		}
		if next.Kind == text.Comma {
			s.Next()
		}
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.RBrace); err != nil {
		return nil, err
	}
	return &Action02Record{SubKind: subKindTok.Text, Body: body}, nil
}
