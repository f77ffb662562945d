package tag

import (
	"fmt"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// New allocates a default-initialized detached tag of the given kind:
// a List for TAG_List, a Compound for TAG_Compound, a leaf Element
// otherwise. TAG_End and unrecognized kinds fail with ErrInvalidKind.
func New(kind types.Kind, name string) (types.Tag, error) {
	switch kind {
	case types.TagList:
		return NewList(name), nil
	case types.TagCompound:
		return NewCompound(name), nil
	default:
		e, err := NewElement(kind, name)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

// FromValue builds a detached tag holding v, inferring the kind from v's
// dynamic type. []types.Tag builds a list, map[string]types.Tag a
// compound.
func FromValue(name string, v any) (types.Tag, error) {
	kind, err := types.KindOf(v)
	if err != nil {
		return nil, err
	}
	t, err := New(kind, name)
	if err != nil {
		return nil, err
	}
	if err := t.SetValue(v); err != nil {
		return nil, err
	}
	return t, nil
}

// AsList casts t down to its list interface. The cast carries the
// offending kind when it fails: ErrUnsupportedCast for non-list tags,
// ErrNilTag for nil.
func AsList(t types.Tag) (types.List, error) {
	if t == nil {
		return nil, nilTagErr("cast to list")
	}
	l, ok := t.(types.List)
	if !ok || t.Kind() != types.TagList {
		return nil, &types.Error{
			Kind: types.ErrKindCast,
			Msg:  fmt.Sprintf("tag %q is %v, not a list", t.Name(), t.Kind()),
			Err:  types.ErrUnsupportedCast,
		}
	}
	return l, nil
}

// AsCompound casts t down to its compound interface, failing the same way
// AsList does.
func AsCompound(t types.Tag) (types.Compound, error) {
	if t == nil {
		return nil, nilTagErr("cast to compound")
	}
	c, ok := t.(types.Compound)
	if !ok || t.Kind() != types.TagCompound {
		return nil, &types.Error{
			Kind: types.ErrKindCast,
			Msg:  fmt.Sprintf("tag %q is %v, not a compound", t.Name(), t.Kind()),
			Err:  types.ErrUnsupportedCast,
		}
	}
	return c, nil
}

// Bind wraps a live foreign cell into a bound tag matching the cell's
// kind. The returned tag reads and writes through the handle from then on.
// A nil handle fails with ErrNilTag; a handle reporting TAG_End or an
// unrecognized kind fails with ErrInvalidKind.
func Bind(h types.Handle) (types.Tag, error) {
	if h == nil {
		return nil, nilTagErr("bind")
	}
	kind := h.Kind()
	switch {
	case kind == types.TagList:
		return &BoundList{h: h}, nil
	case kind == types.TagCompound:
		return &BoundCompound{h: h}, nil
	case kind.Valid() && kind != types.TagEnd:
		return &BoundElement{h: h}, nil
	default:
		return nil, fmt.Errorf("bind %q: kind %v: %w", h.Name(), kind, types.ErrInvalidKind)
	}
}
