package yagl

import (
	"github.com/newgrf/yagl/yagl/internal/text"
	"github.com/newgrf/yagl/yagl/internal/wire"
	"github.com/newgrf/yagl/yagl/properties"
)

// Action00Record is a feature property table (§3, §4.4): a
// property-major array of per-instance values sharing one ordered,
// duplicate-allowing list of property ids across every instance.
type Action00Record struct {
	Feature     byte
	FirstID     uint32
	PropertyIDs []byte
	// Instances[i][j] is the value of PropertyIDs[j] for instance i;
	// every instance has exactly len(PropertyIDs) entries (§3's
	// "property-major" invariant).
	Instances [][]properties.Value
}

func (r *Action00Record) Kind() Kind { return KindAction00 }

func (r *Action00Record) table() (*properties.FeatureTable, error) {
	t, ok := properties.Features[r.Feature]
	if !ok {
		return nil, newFormatError(0, "action00: unknown feature 0x%02X", r.Feature)
	}
	return t, nil
}

// checkUnsupported turns a feature table's placeholder descriptor
// (original-strings, §9) into the package's own UnsupportedError
// instead of letting the properties package's generic error leak
// through, since properties cannot import yagl's error kinds itself.
func checkUnsupported(table *properties.FeatureTable, desc properties.Descriptor) error {
	if _, ok := desc.(*properties.UnsupportedDescriptor); ok {
		return newUnsupportedError(table.Name)
	}
	return nil
}

func readAction00(r *wire.Reader, ctx *Context) (*Action00Record, error) {
	feature, err := r.U8()
	if err != nil {
		return nil, err
	}
	propCount, err := r.U8()
	if err != nil {
		return nil, err
	}
	instCount, err := r.U8()
	if err != nil {
		return nil, err
	}
	firstID, err := r.ExtByte()
	if err != nil {
		return nil, err
	}

	rec := &Action00Record{Feature: feature, FirstID: firstID, PropertyIDs: make([]byte, propCount)}
	for j := range rec.PropertyIDs {
		id, err := r.U8()
		if err != nil {
			return nil, err
		}
		rec.PropertyIDs[j] = id
	}

	table, err := rec.table()
	if err != nil {
		return nil, err
	}

	rec.Instances = make([][]properties.Value, instCount)
	for i := range rec.Instances {
		rec.Instances[i] = make([]properties.Value, propCount)
	}
	for j, id := range rec.PropertyIDs {
		desc, err := table.DescriptorByID(id)
		if err != nil {
			return nil, newPropertyUnknownError(feature, id)
		}
		if err := checkUnsupported(table, desc); err != nil {
			return nil, err
		}
		for i := 0; i < int(instCount); i++ {
			v, err := desc.Read(r, ctx.GRFVersion)
			if err != nil {
				return nil, err
			}
			rec.Instances[i][j] = v
		}
	}
	return rec, nil
}

func (r *Action00Record) writeBody(ctx *Context) ([]byte, error) {
	table, err := r.table()
	if err != nil {
		return nil, err
	}

	w := wire.NewWriter()
	w.U8(r.Feature)
	w.U8(byte(len(r.PropertyIDs)))
	w.U8(byte(len(r.Instances)))
	w.ExtByte(r.FirstID)
	for _, id := range r.PropertyIDs {
		w.U8(id)
	}
	for j, id := range r.PropertyIDs {
		desc, err := table.DescriptorByID(id)
		if err != nil {
			return nil, newPropertyUnknownError(r.Feature, id)
		}
		if err := checkUnsupported(table, desc); err != nil {
			return nil, err
		}
		for i := range r.Instances {
			if err := desc.Write(w, r.Instances[i][j], ctx.GRFVersion); err != nil {
				return nil, err
			}
		}
	}
	return w.Bytes(), nil
}

func (r *Action00Record) print(sink *text.Sink, depth int, ctx *Context) error {
	table, err := r.table()
	if err != nil {
		return err
	}

	sink.Indentf(depth, "action00 {\n")
	sink.Indentf(depth+1, "feature: 0x%02X;\n", r.Feature)
	sink.Indentf(depth+1, "first_id: 0x%04X;\n", r.FirstID)
	for i, inst := range r.Instances {
		sink.Indentf(depth+1, "instance 0x%02X {\n", uint32(i)+r.FirstID)
		for j, id := range r.PropertyIDs {
			desc, err := table.DescriptorByID(id)
			if err != nil {
				return newPropertyUnknownError(r.Feature, id)
			}
			if err := checkUnsupported(table, desc); err != nil {
				return err
			}
			if err := desc.Print(sink, depth+2, inst[j]); err != nil {
				return err
			}
		}
		sink.Indentf(depth+1, "}\n")
	}
	sink.Indentf(depth, "}\n")
	return nil
}

func parseAction00(s *text.Stream, ctx *Context) (*Action00Record, error) {
	if _, err := s.ExpectIdent("action00"); err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.LBrace); err != nil {
		return nil, err
	}

	if err := expectField(s, "feature"); err != nil {
		return nil, err
	}
	featureTok, err := s.Expect(text.Int)
	if err != nil {
		return nil, err
	}
	featureVal, err := text.ParseInt(featureTok.Text)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}

	if err := expectField(s, "first_id"); err != nil {
		return nil, err
	}
	firstIDTok, err := s.Expect(text.Int)
	if err != nil {
		return nil, err
	}
	firstID, err := text.ParseInt(firstIDTok.Text)
	if err != nil {
		return nil, err
	}
	if _, err := s.Expect(text.Semicolon); err != nil {
		return nil, err
	}

	rec := &Action00Record{Feature: byte(featureVal), FirstID: uint32(firstID)}
	table, err := rec.table()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := s.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == text.RBrace {
			s.Next()
			break
		}
		if _, err := s.ExpectIdent("instance"); err != nil {
			return nil, err
		}
		if _, err := s.Expect(text.Int); err != nil {
			return nil, err
		}
		if _, err := s.Expect(text.LBrace); err != nil {
			return nil, err
		}

		var ids []byte
		var vals []properties.Value
		for {
			itok, err := s.Peek()
			if err != nil {
				return nil, err
			}
			if itok.Kind == text.RBrace {
				s.Next()
				break
			}
			id, desc, err := table.DescriptorByName(itok.Text)
			if err != nil {
				return nil, err
			}
			if err := checkUnsupported(table, desc); err != nil {
				return nil, err
			}
			v, err := desc.Parse(s)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
			vals = append(vals, v)
		}
		if rec.PropertyIDs == nil {
			rec.PropertyIDs = ids
		}
		rec.Instances = append(rec.Instances, vals)
	}
	return rec, nil
}

// expectField consumes a "name :" prefix that is not itself a full
// property statement (the Action00 header fields feature/first_id
// have no descriptor of their own).
func expectField(s *text.Stream, name string) error {
	if _, err := s.ExpectIdent(name); err != nil {
		return err
	}
	_, err := s.Expect(text.Colon)
	return err
}
