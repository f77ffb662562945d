package tag

import (
	"fmt"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// List is a detached list tag: an ordered sequence of elements sharing one
// kind. The element kind is pinned by the first insertion (or up front via
// NewListOf) and survives the list becoming empty again. Elements are
// positionally keyed; their names are cleared on insertion.
type List struct {
	name  string
	elem  types.Kind
	elems []types.Tag
}

var _ types.List = (*List)(nil)

// NewList allocates an empty detached list with no established element
// kind.
func NewList(name string) *List {
	return &List{name: name}
}

// NewListOf allocates an empty detached list with the element kind pinned
// up front. TAG_End and unrecognized kinds fail with ErrInvalidKind.
func NewListOf(name string, elem types.Kind) (*List, error) {
	if !elem.Valid() || elem == types.TagEnd {
		return nil, fmt.Errorf("list %q: element kind %v: %w", name, elem, types.ErrInvalidKind)
	}
	return &List{name: name, elem: elem}, nil
}

func (l *List) Kind() types.Kind { return types.TagList }

func (l *List) Name() string { return l.name }

func (l *List) SetName(name string) error {
	l.name = name
	return nil
}

// Value returns a snapshot slice of the elements. The slice is the
// caller's; the tags inside it are live.
func (l *List) Value() (any, error) {
	out := make([]types.Tag, len(l.elems))
	copy(out, l.elems)
	return out, nil
}

// SetValue replaces all elements. The input must be a homogeneous
// []types.Tag; on any validation failure the list is left unchanged.
func (l *List) SetValue(v any) error {
	elems, ok := v.([]types.Tag)
	if !ok {
		return checkValue(types.TagList, l.name, v)
	}
	kind := l.elem
	for _, t := range elems {
		if t == nil {
			return nilTagErr("set list value")
		}
		k := t.Kind()
		if !k.Valid() || k == types.TagEnd {
			return fmt.Errorf("list %q element: kind %v: %w", l.name, k, types.ErrInvalidKind)
		}
		if kind == types.TagEnd {
			kind = k
		} else if k != kind {
			return elementKindErr(l.name, kind, k)
		}
	}
	next := make([]types.Tag, 0, len(elems))
	for _, t := range elems {
		if err := t.SetName(""); err != nil {
			return err
		}
		next = append(next, t)
	}
	l.elem, l.elems = kind, next
	return nil
}

// ElementKind returns the established element kind, or TAG_End while the
// list has never held an element.
func (l *List) ElementKind() types.Kind { return l.elem }

func (l *List) Len() (int, error) { return len(l.elems), nil }

func (l *List) Get(i int) (types.Tag, error) {
	if i < 0 || i >= len(l.elems) {
		return nil, indexErr(l.name, i, len(l.elems))
	}
	return l.elems[i], nil
}

func (l *List) Set(i int, t types.Tag) error {
	if t == nil {
		return nilTagErr("set list element")
	}
	if i < 0 || i >= len(l.elems) {
		return indexErr(l.name, i, len(l.elems))
	}
	if err := l.admit(t); err != nil {
		return err
	}
	l.elems[i] = t
	return nil
}

func (l *List) Add(t types.Tag) error {
	if t == nil {
		return nilTagErr("add list element")
	}
	if err := l.admit(t); err != nil {
		return err
	}
	l.elems = append(l.elems, t)
	return nil
}

func (l *List) Remove(i int) (types.Tag, error) {
	if i < 0 || i >= len(l.elems) {
		return nil, indexErr(l.name, i, len(l.elems))
	}
	t := l.elems[i]
	l.elems = append(l.elems[:i], l.elems[i+1:]...)
	return t, nil
}

// admit validates t against the established element kind, establishes the
// kind on first insertion, and clears t's name.
func (l *List) admit(t types.Tag) error {
	k := t.Kind()
	if !k.Valid() || k == types.TagEnd {
		return fmt.Errorf("list %q element: kind %v: %w", l.name, k, types.ErrInvalidKind)
	}
	if l.elem != types.TagEnd && k != l.elem {
		return elementKindErr(l.name, l.elem, k)
	}
	if err := t.SetName(""); err != nil {
		return err
	}
	if l.elem == types.TagEnd {
		l.elem = k
	}
	return nil
}
