package yagl

import (
	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
)

// Action08Record is the identity record (§4.4): it declares the
// format version the rest of the package's property encodings branch
// on (propagated via Context.GRFVersion, not a global, per §9). Its
// body carries two C-strings back to back, name then description.
type Action08Record struct {
	GRFVersion  byte
	GRFID       uint32
	Name        string
	Description string
}

func (a *Action08Record) Kind() Kind { return KindAction08 }

func readAction08(r *wire.Reader) (*Action08Record, error) {
	version, err := r.U8()
	if err != nil {
		return nil, err
	}
	grfID, err := r.U32()
	if err != nil {
		return nil, err
	}
	name, err := readCString(r)
	if err != nil {
		return nil, err
	}
	description, err := readCString(r)
	if err != nil {
		return nil, err
	}
	return &Action08Record{GRFVersion: version, GRFID: grfID, Name: name, Description: description}, nil
}

// readCString reads bytes up to and including the next NUL, returning
// everything before it.
func readCString(r *wire.Reader) (string, error) {
	var b []byte
	for {
		c, err := r.U8()
		if err != nil {
			return "", err
		}
		if c == 0 {
			return string(b), nil
		}
		b = append(b, c)
	}
}

func (a *Action08Record) writeBody(ctx *Context) ([]byte, error) {
	w := wire.NewWriter()
	w.U8(a.GRFVersion)
	w.U32(a.GRFID)
	w.Write([]byte(a.Name))
	w.U8(0)
	w.Write([]byte(a.Description))
	w.U8(0)
	return w.Bytes(), nil
}

func (a *Action08Record) print(sink *text.Sink, depth int, ctx *Context) error {
	sink.Indentf(depth, "action08 {\n")
	sink.Indentf(depth+1, "grf_version: %d;\n", a.GRFVersion)
	sink.Indentf(depth+1, "grf_id: 0x%08X;\n", a.GRFID)
	sink.Indentf(depth+1, "name: %q;\n", a.Name)
	sink.Indentf(depth+1, "description: %q;\n", a.Description)
	sink.Indentf(depth, "}\n")
	return nil
}

func parseAction08(s *text.Stream) (*Action08Record, error) {
	if _, err := s.ExpectIdent("action08"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return nil, err
	}

	if err := expectField(s, "grf_version"); err != nil {
		return nil, err
	}
	versionTok, err := s.Expect(text.Int)
	if err != nil {
		return nil, err
	}
	version, err := text.ParseInt(versionTok.Text)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}

	if err := expectField(s, "grf_id"); err != nil {
		return nil, err
	}
	idTok, err := s.Expect(text.Int)
	if err != nil {
		return nil, err
	}
	grfID, err := text.ParseInt(idTok.Text)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}

	if err := expectField(s, "name"); err != nil {
		return nil, err
	}
	nameTok, err := s.Expect(text.String)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}

	if err := expectField(s, "description"); err != nil {
		return nil, err
	}
	descTok, err := s.Expect(text.String)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.RBrace); err != nil {
		return nil, err
	}

	return &Action08Record{GRFVersion: byte(version), GRFID: uint32(grfID), Name: nameTok.Text, Description: descTok.Text}, nil
}
