package yagl

import (
	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
)

// OpaqueRecord preserves an action kind's body bit-exactly without
// claiming to understand its internal layout (§1's scope note: only
// the "load-bearing" schemas of §4.4 get a detailed variant). Every
// action kind not given its own type — 03, 04, 06, 07, 09, 0B-10,
// 13, 14, FE, FF — round-trips through this one, the same way the
// dispatcher table in §4.3 defers to "corresponding Action variant,
// see source table" for the long tail.
type OpaqueRecord struct {
	kind Kind
	Body []byte
}

func (o *OpaqueRecord) Kind() Kind { return o.kind }

func readOpaque(kind Kind, r *wire.Reader) (*OpaqueRecord, error) {
	body, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	return &OpaqueRecord{kind: kind, Body: append([]byte(nil), body...)}, nil
}

func (o *OpaqueRecord) writeBody(ctx *Context) ([]byte, error) {
	return append([]byte(nil), o.Body...), nil
}

func (o *OpaqueRecord) print(sink *text.Sink, depth int, ctx *Context) error {
	sink.Indentf(depth, "%s {\n", o.kind.String())
	sink.Indentf(depth+1, "bytes: [")
	for i, b := range o.Body {
		if i > 0 {
			sink.Printf(", ")
		}
		sink.Printf("0x%02X", b)
	}
	sink.Printf("];\n")
	sink.Indentf(depth, "}\n")
	return nil
}

func parseOpaque(kind Kind, s *text.Stream) (*OpaqueRecord, error) {
	if _, err := s.ExpectIdent(kind.String()); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
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
	return &OpaqueRecord{kind: kind, Body: body}, nil
}
