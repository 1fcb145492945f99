package yagl

import "github.com/newgrf/yagl/yagl/internal/text"

// Kind is the discriminant of the record tagged union (§3). It alone
// determines every other structural property of a record: whether it
// may own children, which binary schema applies, which keyword its
// text form uses.
type Kind int

const (
	KindAction00 Kind = iota
	KindAction01
	KindAction02
	KindAction03
	KindAction04
	KindAction05
	KindAction06
	KindAction07
	KindAction08
	KindAction09
	KindAction0A
	KindAction0B
	KindAction0C
	KindAction0D
	KindAction0E
	KindAction0F
	KindAction10
	KindAction11
	KindAction12
	KindAction13
	KindAction14
	KindActionFE
	KindActionFF
	KindRecolourTable
	KindSpriteIndex
	KindRealSprite
	KindFakeSprite
)

var kindNames = map[Kind]string{
	KindAction00:      "action00",
	KindAction01:      "action01",
	KindAction02:      "action02",
	KindAction03:      "action03",
	KindAction04:      "action04",
	KindAction05:      "action05",
	KindAction06:      "action06",
	KindAction07:      "action07",
	KindAction08:      "action08",
	KindAction09:      "action09",
	KindAction0A:      "action0a",
	KindAction0B:      "action0b",
	KindAction0C:      "action0c",
	KindAction0D:      "action0d",
	KindAction0E:      "action0e",
	KindAction0F:      "action0f",
	KindAction10:      "action10",
	KindAction11:      "action11",
	KindAction12:      "action12",
	KindAction13:      "action13",
	KindAction14:      "action14",
	KindActionFE:      "actionfe",
	KindActionFF:      "actionff",
	KindRecolourTable: "recolour_table",
	KindSpriteIndex:   "sprite_index",
	KindRealSprite:    "real_sprite",
	KindFakeSprite:    "fake_sprite",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// actionByteOf returns the one-byte action code a pseudo-sprite of
// this kind is tagged with on the wire, for the kinds that carry one.
func (k Kind) actionByteOf() (byte, bool) {
	switch k {
	case KindAction00, KindFakeSprite, KindRecolourTable:
		// FakeSprite/RecolourTable share action byte 0x00 with Action00
		// and are told apart only by child body size (§4.3).
		return 0x00, true
	case KindAction01:
		return 0x01, true
	case KindAction02:
		return 0x02, true
	case KindAction03:
		return 0x03, true
	case KindAction04:
		return 0x04, true
	case KindAction05:
		return 0x05, true
	case KindAction06:
		return 0x06, true
	case KindAction07:
		return 0x07, true
	case KindAction08:
		return 0x08, true
	case KindAction09:
		return 0x09, true
	case KindAction0A:
		return 0x0A, true
	case KindAction0B:
		return 0x0B, true
	case KindAction0C:
		return 0x0C, true
	case KindAction0D:
		return 0x0D, true
	case KindAction0E:
		return 0x0E, true
	case KindAction0F:
		return 0x0F, true
	case KindAction10:
		return 0x10, true
	case KindAction11:
		return 0x11, true
	case KindAction12:
		return 0x12, true
	case KindAction13:
		return 0x13, true
	case KindAction14:
		return 0x14, true
	case KindActionFE:
		return 0xFE, true
	case KindActionFF:
		return 0xFF, true
	}
	return 0, false
}

// Record is the capability set every tagged-union variant satisfies:
// binary read/write plus text print/parse, the interface-abstraction
// substitute for the source's class inheritance (§9).
type Record interface {
	Kind() Kind

	// writeBody serialises the record's body (everything after the
	// pseudo-sprite action byte / info byte, which the framer writes)
	// into a fresh buffer.
	writeBody(ctx *Context) ([]byte, error)

	// print renders the record as "<kind> { ... }" at the given
	// brace-nesting depth.
	print(sink *text.Sink, depth int, ctx *Context) error
}

// ChildOwner is satisfied by the container record kinds (§4.4): they
// declare how many immediately-following records belong to them, and
// own that many child Records in insertion order.
type ChildOwner interface {
	Record
	NumDeclaredChildren() int
	Children() []Record
	AppendChild(Record)
}
