package tag

import (
	"fmt"
	"sort"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Bound tags read and write through a types.Handle instead of owning
// storage. Every access round-trips to the foreign cell, so external
// mutation is visible immediately and mutations here land in the host
// graph. Apart from that liveness, callers cannot tell a bound tag from a
// detached one.

// HandleOf returns the foreign cell behind a bound tag, and false for
// detached tags. Hosts use it to recognize their own cells coming back
// through Store instead of re-materializing them.
func HandleOf(t types.Tag) (types.Handle, bool) {
	switch b := t.(type) {
	case *BoundElement:
		return b.h, true
	case *BoundList:
		return b.h, true
	case *BoundCompound:
		return b.h, true
	}
	return nil, false
}

// BoundElement is a leaf tag backed by a foreign cell.
type BoundElement struct {
	h types.Handle
}

var _ types.Tag = (*BoundElement)(nil)

func (b *BoundElement) Kind() types.Kind { return b.h.Kind() }

func (b *BoundElement) Name() string { return b.h.Name() }

func (b *BoundElement) SetName(name string) error { return b.h.Rename(name) }

func (b *BoundElement) Value() (any, error) {
	v, err := b.h.Load()
	if err != nil {
		return nil, err
	}
	if err := checkValue(b.h.Kind(), b.h.Name(), v); err != nil {
		return nil, err
	}
	return v, nil
}

func (b *BoundElement) SetValue(v any) error {
	if err := checkValue(b.h.Kind(), b.h.Name(), v); err != nil {
		return err
	}
	return b.h.Store(v)
}

// BoundList is a list tag backed by a foreign cell. The cell loads and
// stores its elements as a whole []types.Tag; element mutations load the
// current slice, adjust it, and store it back.
type BoundList struct {
	h types.Handle
}

var _ types.List = (*BoundList)(nil)

func (b *BoundList) Kind() types.Kind { return types.TagList }

func (b *BoundList) Name() string { return b.h.Name() }

func (b *BoundList) SetName(name string) error { return b.h.Rename(name) }

func (b *BoundList) load() ([]types.Tag, error) {
	v, err := b.h.Load()
	if err != nil {
		return nil, err
	}
	elems, ok := v.([]types.Tag)
	if !ok {
		return nil, &types.Error{
			Kind: types.ErrKindType,
			Msg:  fmt.Sprintf("bound list %q loaded unexpected %T", b.h.Name(), v),
			Err:  types.ErrTypeMismatch,
		}
	}
	return elems, nil
}

func (b *BoundList) Value() (any, error) {
	elems, err := b.load()
	if err != nil {
		return nil, err
	}
	return elems, nil
}

func (b *BoundList) SetValue(v any) error {
	elems, ok := v.([]types.Tag)
	if !ok {
		return checkValue(types.TagList, b.h.Name(), v)
	}
	kind := types.TagEnd
	for _, t := range elems {
		if t == nil {
			return nilTagErr("set list value")
		}
		k := t.Kind()
		if !k.Valid() || k == types.TagEnd {
			return fmt.Errorf("list %q element: kind %v: %w", b.h.Name(), k, types.ErrInvalidKind)
		}
		if kind == types.TagEnd {
			kind = k
		} else if k != kind {
			return elementKindErr(b.h.Name(), kind, k)
		}
	}
	for _, t := range elems {
		if err := t.SetName(""); err != nil {
			return err
		}
	}
	return b.h.Store(elems)
}

// ElementKind reports the kind of the current first element, or TAG_End
// while the cell is empty or unreadable.
func (b *BoundList) ElementKind() types.Kind {
	elems, err := b.load()
	if err != nil || len(elems) == 0 {
		return types.TagEnd
	}
	return elems[0].Kind()
}

func (b *BoundList) Len() (int, error) {
	elems, err := b.load()
	if err != nil {
		return 0, err
	}
	return len(elems), nil
}

func (b *BoundList) Get(i int) (types.Tag, error) {
	elems, err := b.load()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(elems) {
		return nil, indexErr(b.h.Name(), i, len(elems))
	}
	return elems[i], nil
}

func (b *BoundList) Set(i int, t types.Tag) error {
	if t == nil {
		return nilTagErr("set list element")
	}
	elems, err := b.load()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(elems) {
		return indexErr(b.h.Name(), i, len(elems))
	}
	if err := b.admit(elems, t); err != nil {
		return err
	}
	elems[i] = t
	return b.h.Store(elems)
}

func (b *BoundList) Add(t types.Tag) error {
	if t == nil {
		return nilTagErr("add list element")
	}
	elems, err := b.load()
	if err != nil {
		return err
	}
	if err := b.admit(elems, t); err != nil {
		return err
	}
	return b.h.Store(append(elems, t))
}

func (b *BoundList) Remove(i int) (types.Tag, error) {
	elems, err := b.load()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(elems) {
		return nil, indexErr(b.h.Name(), i, len(elems))
	}
	t := elems[i]
	if err := b.h.Store(append(elems[:i], elems[i+1:]...)); err != nil {
		return nil, err
	}
	return t, nil
}

func (b *BoundList) admit(elems []types.Tag, t types.Tag) error {
	k := t.Kind()
	if !k.Valid() || k == types.TagEnd {
		return fmt.Errorf("list %q element: kind %v: %w", b.h.Name(), k, types.ErrInvalidKind)
	}
	if len(elems) > 0 {
		if want := elems[0].Kind(); k != want {
			return elementKindErr(b.h.Name(), want, k)
		}
	}
	return t.SetName("")
}

// BoundCompound is a compound tag backed by a foreign cell. The cell loads
// and stores its entries as a whole map[string]types.Tag; iteration order
// is whatever the binding exposes, surfaced here as sorted keys so repeated
// walks are stable.
type BoundCompound struct {
	h types.Handle
}

var _ types.Compound = (*BoundCompound)(nil)

func (b *BoundCompound) Kind() types.Kind { return types.TagCompound }

func (b *BoundCompound) Name() string { return b.h.Name() }

func (b *BoundCompound) SetName(name string) error { return b.h.Rename(name) }

func (b *BoundCompound) load() (map[string]types.Tag, error) {
	v, err := b.h.Load()
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]types.Tag)
	if !ok {
		return nil, &types.Error{
			Kind: types.ErrKindType,
			Msg:  fmt.Sprintf("bound compound %q loaded unexpected %T", b.h.Name(), v),
			Err:  types.ErrTypeMismatch,
		}
	}
	return m, nil
}

func (b *BoundCompound) Value() (any, error) {
	m, err := b.load()
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (b *BoundCompound) SetValue(v any) error {
	m, ok := v.(map[string]types.Tag)
	if !ok {
		return checkValue(types.TagCompound, b.h.Name(), v)
	}
	for k, t := range m {
		if t == nil {
			return nilTagErr("set compound value")
		}
		if err := t.SetName(k); err != nil {
			return err
		}
	}
	return b.h.Store(m)
}

func (b *BoundCompound) Len() (int, error) {
	m, err := b.load()
	if err != nil {
		return 0, err
	}
	return len(m), nil
}

func (b *BoundCompound) Keys() ([]string, error) {
	m, err := b.load()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (b *BoundCompound) Contains(key string) (bool, error) {
	m, err := b.load()
	if err != nil {
		return false, err
	}
	_, ok := m[key]
	return ok, nil
}

func (b *BoundCompound) Get(key string) (types.Tag, error) {
	m, err := b.load()
	if err != nil {
		return nil, err
	}
	t, ok := m[key]
	if !ok {
		return nil, notFoundErr(b.h.Name(), key)
	}
	return t, nil
}

func (b *BoundCompound) Put(key string, t types.Tag) error {
	if t == nil {
		return nilTagErr("put compound entry")
	}
	if err := t.SetName(key); err != nil {
		return err
	}
	m, err := b.load()
	if err != nil {
		return err
	}
	m[key] = t
	return b.h.Store(m)
}

func (b *BoundCompound) Remove(key string) (types.Tag, error) {
	m, err := b.load()
	if err != nil {
		return nil, err
	}
	t, ok := m[key]
	if !ok {
		return nil, notFoundErr(b.h.Name(), key)
	}
	delete(m, key)
	if err := b.h.Store(m); err != nil {
		return nil, err
	}
	return t, nil
}

func (b *BoundCompound) GetByte(key string) (int8, error)        { return getByte(b, key) }
func (b *BoundCompound) GetShort(key string) (int16, error)      { return getShort(b, key) }
func (b *BoundCompound) GetInt(key string) (int32, error)        { return getInt(b, key) }
func (b *BoundCompound) GetLong(key string) (int64, error)       { return getLong(b, key) }
func (b *BoundCompound) GetFloat(key string) (float32, error)    { return getFloat(b, key) }
func (b *BoundCompound) GetDouble(key string) (float64, error)   { return getDouble(b, key) }
func (b *BoundCompound) GetString(key string) (string, error)    { return getString(b, key) }
func (b *BoundCompound) GetByteArray(key string) ([]byte, error) { return getByteArray(b, key) }
func (b *BoundCompound) GetIntArray(key string) ([]int32, error) { return getIntArray(b, key) }
func (b *BoundCompound) GetList(key string) (types.List, error)  { return getList(b, key) }
func (b *BoundCompound) GetCompound(key string) (types.Compound, error) {
	return getCompound(b, key)
}

func (b *BoundCompound) PutByte(key string, v int8) error   { return putScalar(b, key, types.TagByte, v) }
func (b *BoundCompound) PutShort(key string, v int16) error { return putScalar(b, key, types.TagShort, v) }
func (b *BoundCompound) PutInt(key string, v int32) error   { return putScalar(b, key, types.TagInt, v) }
func (b *BoundCompound) PutLong(key string, v int64) error  { return putScalar(b, key, types.TagLong, v) }
func (b *BoundCompound) PutFloat(key string, v float32) error {
	return putScalar(b, key, types.TagFloat, v)
}
func (b *BoundCompound) PutDouble(key string, v float64) error {
	return putScalar(b, key, types.TagDouble, v)
}
func (b *BoundCompound) PutString(key string, v string) error {
	return putScalar(b, key, types.TagString, v)
}
func (b *BoundCompound) PutByteArray(key string, v []byte) error {
	return putScalar(b, key, types.TagByteArray, v)
}
func (b *BoundCompound) PutIntArray(key string, v []int32) error {
	return putScalar(b, key, types.TagIntArray, v)
}
