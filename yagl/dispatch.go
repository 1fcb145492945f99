package yagl

import "github.com/newgrf/yagl/yagl/internal/wire"

// classifyPseudoSprite implements §4.3's action-byte classification
// table. r is positioned just after the action byte, scoped to this
// record's declared length; the caller checks afterward that r was
// read to exhaustion. topLevel is false while the grouping engine
// (§4.7) still has remaining_children > 0, which is what lets action
// byte 0x00 disambiguate between Action00, FakeSprite, and
// RecolourTable.
func classifyPseudoSprite(actionByte byte, r *wire.Reader, ctx *Context, topLevel bool) (Record, error) {
	switch actionByte {
	case 0x00:
		if !topLevel {
			switch r.Remaining() {
			case 0:
				return &FakeSprite{}, nil
			case 256:
				return readRecolourTable(r)
			}
		}
		return readAction00(r, ctx)
	case 0x01:
		return readContainer(KindAction01, r)
	case 0x02:
		return readAction02(r)
	case 0x03:
		return readOpaque(KindAction03, r)
	case 0x04:
		return readOpaque(KindAction04, r)
	case 0x05:
		return readContainer(KindAction05, r)
	case 0x06:
		return readOpaque(KindAction06, r)
	case 0x07:
		return readOpaque(KindAction07, r)
	case 0x08:
		return readAction08(r)
	case 0x09:
		return readOpaque(KindAction09, r)
	case 0x0A:
		return readContainer(KindAction0A, r)
	case 0x0B:
		return readOpaque(KindAction0B, r)
	case 0x0C:
		return readOpaque(KindAction0C, r)
	case 0x0D:
		return readOpaque(KindAction0D, r)
	case 0x0E:
		return readOpaque(KindAction0E, r)
	case 0x0F:
		return readOpaque(KindAction0F, r)
	case 0x10:
		return readOpaque(KindAction10, r)
	case 0x11:
		return readContainer(KindAction11, r)
	case 0x12:
		return readContainer(KindAction12, r)
	case 0x13:
		return readOpaque(KindAction13, r)
	case 0x14:
		return readOpaque(KindAction14, r)
	case 0xFE:
		return readOpaque(KindActionFE, r)
	case 0xFF:
		return readOpaque(KindActionFF, r)
	default:
		return nil, newFormatError(0, "unrecognised action byte 0x%02X", actionByte)
	}
}
