package tag

import (
	"sort"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Compound is a detached compound tag: a name-keyed collection of child
// tags that iterates in insertion order. Each entry's structural name is
// its key; Put renames the child to the key on the way in.
//
// Entries live in a slice with linear name lookup. Compounds in practice
// hold tens of children, not thousands, and the slice keeps insertion
// order without a parallel index to maintain.
type Compound struct {
	name    string
	entries []types.Tag
}

var _ types.Compound = (*Compound)(nil)

// NewCompound allocates an empty detached compound.
func NewCompound(name string) *Compound {
	return &Compound{name: name}
}

// NewCompoundOf allocates a detached compound and bulk-inserts the given
// tags under their own names, in order. Later tags with the same name win,
// matching Put.
func NewCompoundOf(name string, entries ...types.Tag) (*Compound, error) {
	c := NewCompound(name)
	for _, t := range entries {
		if t == nil {
			return nil, nilTagErr("build compound")
		}
		if err := c.Put(t.Name(), t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Compound) Kind() types.Kind { return types.TagCompound }

func (c *Compound) Name() string { return c.name }

func (c *Compound) SetName(name string) error {
	c.name = name
	return nil
}

// Value returns the entries as a fresh name-to-tag map. The map is the
// caller's; the tags inside it are live.
func (c *Compound) Value() (any, error) {
	out := make(map[string]types.Tag, len(c.entries))
	for _, t := range c.entries {
		out[t.Name()] = t
	}
	return out, nil
}

// SetValue replaces all entries. The input must be a map[string]types.Tag;
// entries are inserted in sorted key order since the map carries none. On
// any validation failure the compound is left unchanged.
func (c *Compound) SetValue(v any) error {
	m, ok := v.(map[string]types.Tag)
	if !ok {
		return checkValue(types.TagCompound, c.name, v)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		if m[k] == nil {
			return nilTagErr("set compound value")
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	next := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		t := m[k]
		if err := t.SetName(k); err != nil {
			return err
		}
		next = append(next, t)
	}
	c.entries = next
	return nil
}

func (c *Compound) Len() (int, error) { return len(c.entries), nil }

// Keys returns the entry names in insertion order.
func (c *Compound) Keys() ([]string, error) {
	out := make([]string, len(c.entries))
	for i, t := range c.entries {
		out[i] = t.Name()
	}
	return out, nil
}

func (c *Compound) Contains(key string) (bool, error) {
	return c.index(key) >= 0, nil
}

func (c *Compound) Get(key string) (types.Tag, error) {
	if i := c.index(key); i >= 0 {
		return c.entries[i], nil
	}
	return nil, notFoundErr(c.name, key)
}

// Put associates t with key, replacing any prior entry in place. The tag
// is renamed to key; structural name and map key always agree.
func (c *Compound) Put(key string, t types.Tag) error {
	if t == nil {
		return nilTagErr("put compound entry")
	}
	if err := t.SetName(key); err != nil {
		return err
	}
	if i := c.index(key); i >= 0 {
		c.entries[i] = t
		return nil
	}
	c.entries = append(c.entries, t)
	return nil
}

func (c *Compound) Remove(key string) (types.Tag, error) {
	i := c.index(key)
	if i < 0 {
		return nil, notFoundErr(c.name, key)
	}
	t := c.entries[i]
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return t, nil
}

func (c *Compound) index(key string) int {
	for i, t := range c.entries {
		if t.Name() == key {
			return i
		}
	}
	return -1
}

func (c *Compound) GetByte(key string) (int8, error)        { return getByte(c, key) }
func (c *Compound) GetShort(key string) (int16, error)      { return getShort(c, key) }
func (c *Compound) GetInt(key string) (int32, error)        { return getInt(c, key) }
func (c *Compound) GetLong(key string) (int64, error)       { return getLong(c, key) }
func (c *Compound) GetFloat(key string) (float32, error)    { return getFloat(c, key) }
func (c *Compound) GetDouble(key string) (float64, error)   { return getDouble(c, key) }
func (c *Compound) GetString(key string) (string, error)    { return getString(c, key) }
func (c *Compound) GetByteArray(key string) ([]byte, error) { return getByteArray(c, key) }
func (c *Compound) GetIntArray(key string) ([]int32, error) { return getIntArray(c, key) }
func (c *Compound) GetList(key string) (types.List, error)  { return getList(c, key) }
func (c *Compound) GetCompound(key string) (types.Compound, error) {
	return getCompound(c, key)
}

func (c *Compound) PutByte(key string, v int8) error      { return putScalar(c, key, types.TagByte, v) }
func (c *Compound) PutShort(key string, v int16) error    { return putScalar(c, key, types.TagShort, v) }
func (c *Compound) PutInt(key string, v int32) error      { return putScalar(c, key, types.TagInt, v) }
func (c *Compound) PutLong(key string, v int64) error     { return putScalar(c, key, types.TagLong, v) }
func (c *Compound) PutFloat(key string, v float32) error  { return putScalar(c, key, types.TagFloat, v) }
func (c *Compound) PutDouble(key string, v float64) error { return putScalar(c, key, types.TagDouble, v) }
func (c *Compound) PutString(key string, v string) error  { return putScalar(c, key, types.TagString, v) }
func (c *Compound) PutByteArray(key string, v []byte) error {
	return putScalar(c, key, types.TagByteArray, v)
}
func (c *Compound) PutIntArray(key string, v []int32) error {
	return putScalar(c, key, types.TagIntArray, v)
}
