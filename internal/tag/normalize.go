package tag

import (
	"fmt"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Normalize deep-copies t into canonical detached form: compounds key by
// key, lists element by element, scalars by value with array storage
// duplicated. The result shares nothing with the input, so normalizing an
// already-detached tree still returns an independent copy rather than an
// aliasing passthrough, and normalizing a bound tree snapshots the foreign
// graph. Nesting beyond types.DefaultMaxDepth fails with ErrDepthExceeded,
// which also breaks cycles in misbehaving foreign graphs.
func Normalize(t types.Tag) (types.Tag, error) {
	return normalize(t, types.DefaultMaxDepth)
}

func normalize(t types.Tag, budget int) (types.Tag, error) {
	if t == nil {
		return nil, nilTagErr("normalize")
	}
	if budget <= 0 {
		return nil, fmt.Errorf("normalize %q: %w", t.Name(), types.ErrDepthExceeded)
	}
	switch t.Kind() {
	case types.TagCompound:
		src, err := AsCompound(t)
		if err != nil {
			return nil, err
		}
		out := NewCompound(t.Name())
		keys, err := src.Keys()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			child, err := src.Get(k)
			if err != nil {
				return nil, err
			}
			cp, err := normalize(child, budget-1)
			if err != nil {
				return nil, err
			}
			if err := out.Put(k, cp); err != nil {
				return nil, err
			}
		}
		return out, nil

	case types.TagList:
		src, err := AsList(t)
		if err != nil {
			return nil, err
		}
		out := NewList(t.Name())
		if ek := src.ElementKind(); ek.Valid() && ek != types.TagEnd {
			out, err = NewListOf(t.Name(), ek)
			if err != nil {
				return nil, err
			}
		}
		n, err := src.Len()
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			child, err := src.Get(i)
			if err != nil {
				return nil, err
			}
			cp, err := normalize(child, budget-1)
			if err != nil {
				return nil, err
			}
			if err := out.Add(cp); err != nil {
				return nil, err
			}
		}
		return out, nil

	default:
		v, err := t.Value()
		if err != nil {
			return nil, err
		}
		e, err := NewElement(t.Kind(), t.Name())
		if err != nil {
			return nil, err
		}
		if err := e.SetValue(copyValue(v)); err != nil {
			return nil, err
		}
		return e, nil
	}
}
