package tag

import (
	"fmt"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Element is a detached leaf tag: a named cell holding one scalar or array
// value. The kind is fixed at construction; SetValue enforces it.
type Element struct {
	kind types.Kind
	name string
	val  any
}

var _ types.Tag = (*Element)(nil)

// NewElement allocates a default-initialized detached leaf. TAG_End,
// composite kinds and unrecognized kinds fail with ErrInvalidKind. Failure
// to produce a backing value for a recognized leaf kind surfaces as
// ErrConstruction carrying the kind and name; no other code path mints
// that error.
func NewElement(kind types.Kind, name string) (*Element, error) {
	if !kind.Valid() || kind == types.TagEnd {
		return nil, fmt.Errorf("tag %q: kind %v: %w", name, kind, types.ErrInvalidKind)
	}
	if kind.Composite() {
		return nil, fmt.Errorf("tag %q: %v is not a leaf kind: %w", name, kind, types.ErrInvalidKind)
	}
	v, ok := defaultValue(kind)
	if !ok {
		return nil, &types.Error{
			Kind: types.ErrKindConstruction,
			Msg:  fmt.Sprintf("no backing value for %v tag %q", kind, name),
			Err:  types.ErrConstruction,
		}
	}
	return &Element{kind: kind, name: name, val: v}, nil
}

func (e *Element) Kind() types.Kind { return e.kind }

func (e *Element) Name() string { return e.name }

func (e *Element) SetName(name string) error {
	e.name = name
	return nil
}

// Value returns the current value. Array-backed kinds return the live
// backing slice; use Normalize for an independently owned copy.
func (e *Element) Value() (any, error) { return e.val, nil }

func (e *Element) SetValue(v any) error {
	if err := checkValue(e.kind, e.name, v); err != nil {
		return err
	}
	e.val = v
	return nil
}
