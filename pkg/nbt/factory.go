package nbt

import (
	"fmt"

	"github.com/YukonAppleGeek/nbtkit/internal/tag"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// OfKind mints a default-initialized detached tag: zero scalars, empty
// strings and arrays, an empty list or compound for the container kinds.
// Constructing TagEnd or an unrecognized kind fails with ErrInvalidKind.
//
// Example:
//
//	t, err := nbt.OfKind(nbt.TagInt, "id")
func OfKind(kind Kind, name string) (Tag, error) {
	return tag.New(kind, name)
}

// Of mints a detached tag whose kind is inferred from v's type (see
// KindOf). Values with no corresponding kind fail with ErrUnsupportedType.
//
// Example:
//
//	t, err := nbt.Of("id", int32(42))
func Of(name string, v any) (Tag, error) {
	return tag.FromValue(name, v)
}

// NewCompound allocates an empty detached compound.
func NewCompound(name string) Compound {
	return tag.NewCompound(name)
}

// NewList allocates an empty detached list. Its element kind is established
// by the first insertion.
func NewList(name string) List {
	return tag.NewList(name)
}

// NewListOf allocates an empty detached list with a declared element kind.
func NewListOf(name string, elem Kind) (List, error) {
	l, err := tag.NewListOf(name, elem)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Typed constructors. The value always matches the kind, so these cannot
// fail.

func OfByte(name string, v int8) Tag        { return mustScalar(types.TagByte, name, v) }
func OfShort(name string, v int16) Tag      { return mustScalar(types.TagShort, name, v) }
func OfInt(name string, v int32) Tag        { return mustScalar(types.TagInt, name, v) }
func OfLong(name string, v int64) Tag       { return mustScalar(types.TagLong, name, v) }
func OfFloat(name string, v float32) Tag    { return mustScalar(types.TagFloat, name, v) }
func OfDouble(name string, v float64) Tag   { return mustScalar(types.TagDouble, name, v) }
func OfString(name string, v string) Tag    { return mustScalar(types.TagString, name, v) }
func OfByteArray(name string, v []byte) Tag { return mustScalar(types.TagByteArray, name, v) }
func OfIntArray(name string, v []int32) Tag { return mustScalar(types.TagIntArray, name, v) }

func mustScalar(kind Kind, name string, v any) Tag {
	e, err := tag.NewElement(kind, name)
	if err != nil {
		panic("nbt: scalar constructor failed: " + err.Error())
	}
	if err := e.SetValue(v); err != nil {
		panic("nbt: scalar constructor failed: " + err.Error())
	}
	return e
}

// OfList builds a detached list from plain Go values. The element kind is
// inferred from the first value; every value must share it or the call
// fails with ErrElementKindMismatch. An empty call yields an empty list
// with no established kind.
//
// Example:
//
//	enchants, err := nbt.OfList("enchants", int32(1), int32(5))
func OfList(name string, values ...any) (List, error) {
	l := tag.NewList(name)
	for _, v := range values {
		e, err := tag.FromValue("", v)
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", name, err)
		}
		if err := l.Add(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// OfTagList builds a detached list from prebuilt tags, for elements that
// are themselves containers.
//
// Example:
//
//	items, err := nbt.OfTagList("items", sword, shield)
func OfTagList(name string, elems ...Tag) (List, error) {
	l := tag.NewList(name)
	for _, e := range elems {
		if err := l.Add(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// OfCompound builds a detached compound from prebuilt tags, keyed by their
// own names. Later tags with the same name win, matching Put.
//
// Example:
//
//	item, err := nbt.OfCompound("item", nbt.OfInt("id", 42), nbt.OfString("name", "sword"))
func OfCompound(name string, children ...Tag) (Compound, error) {
	c, err := tag.NewCompoundOf(name, children...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// AsCompound casts t down to its compound interface. Fails with
// ErrUnsupportedCast when t's kind is anything else, ErrNilTag on nil.
func AsCompound(t Tag) (Compound, error) {
	return tag.AsCompound(t)
}

// AsList casts t down to its list interface. Fails with ErrUnsupportedCast
// when t's kind is anything else, ErrNilTag on nil.
func AsList(t Tag) (List, error) {
	return tag.AsList(t)
}

// Bind wraps a live foreign cell into a bound tag: a List for a list cell,
// a Compound for a compound cell, a leaf tag otherwise. Every read and
// write on the result goes through h. Fails with ErrNilTag on nil and
// ErrInvalidKind if the handle reports TagEnd or an unknown kind.
func Bind(h Handle) (Tag, error) {
	return tag.Bind(h)
}

// Normalize deep-copies t into canonical detached form: compounds key by
// key, lists element by element, scalars by value with array storage
// duplicated. The result shares nothing with the input. Normalizing an
// already-detached tree returns an independent copy, never an aliasing
// passthrough. Nesting beyond DefaultMaxDepth fails with ErrDepthExceeded.
func Normalize(t Tag) (Tag, error) {
	return tag.Normalize(t)
}

// Equal reports deep structural equality: kind, name, and value, with
// container contents compared recursively. Binding status is ignored, list
// element names are ignored, compound order is ignored, and floats compare
// by bit pattern so NaN payloads and zero signs are significant.
func Equal(a, b Tag) bool {
	return tag.Equal(a, b)
}
