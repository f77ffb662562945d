package types

import "fmt"

// Kind enumerates NBT tag kinds. The numeric values are the raw type IDs
// used on the wire and must never change.
type Kind byte

const (
	// TagEnd terminates compound payloads on the wire. It is a structural
	// marker only: no user-constructible tag ever carries this kind.
	TagEnd Kind = 0

	TagByte      Kind = 1
	TagShort     Kind = 2
	TagInt       Kind = 3
	TagLong      Kind = 4
	TagFloat     Kind = 5
	TagDouble    Kind = 6
	TagByteArray Kind = 7
	TagString    Kind = 8
	TagList      Kind = 9
	TagCompound  Kind = 10
	TagIntArray  Kind = 11
)

// kindNames holds the canonical TAG_* spellings, indexed by raw ID.
var kindNames = [...]string{
	TagEnd:       "TAG_End",
	TagByte:      "TAG_Byte",
	TagShort:     "TAG_Short",
	TagInt:       "TAG_Int",
	TagLong:      "TAG_Long",
	TagFloat:     "TAG_Float",
	TagDouble:    "TAG_Double",
	TagByteArray: "TAG_Byte_Array",
	TagString:    "TAG_String",
	TagList:      "TAG_List",
	TagCompound:  "TAG_Compound",
	TagIntArray:  "TAG_Int_Array",
}

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TAG_Unknown_%d", byte(k))
}

// Valid reports whether k is one of the twelve defined kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// Composite reports whether k holds child tags (list or compound) rather
// than a scalar or array payload.
func (k Kind) Composite() bool {
	return k == TagList || k == TagCompound
}

// KindFromID maps a raw wire ID to its Kind. Unrecognized IDs fail with
// ErrInvalidKind.
func KindFromID(id byte) (Kind, error) {
	k := Kind(id)
	if !k.Valid() {
		return 0, fmt.Errorf("raw tag id %d: %w", id, ErrInvalidKind)
	}
	return k, nil
}

// KindOf maps a Go value to the kind that stores it. The mapping is the
// authoritative value-type table of the format:
//
//	int8 -> TAG_Byte        int16  -> TAG_Short      int32  -> TAG_Int
//	int64 -> TAG_Long       float32 -> TAG_Float     float64 -> TAG_Double
//	[]byte -> TAG_Byte_Array  string -> TAG_String   []int32 -> TAG_Int_Array
//	[]Tag -> TAG_List       map[string]Tag -> TAG_Compound
//
// TAG_End is never returned. Any other type fails with ErrUnsupportedType.
// The lookup is a pure type switch; it holds no mutable state.
func KindOf(v any) (Kind, error) {
	switch v.(type) {
	case int8:
		return TagByte, nil
	case int16:
		return TagShort, nil
	case int32:
		return TagInt, nil
	case int64:
		return TagLong, nil
	case float32:
		return TagFloat, nil
	case float64:
		return TagDouble, nil
	case []byte:
		return TagByteArray, nil
	case string:
		return TagString, nil
	case []int32:
		return TagIntArray, nil
	case []Tag:
		return TagList, nil
	case map[string]Tag:
		return TagCompound, nil
	default:
		return 0, fmt.Errorf("value type %T: %w", v, ErrUnsupportedType)
	}
}
