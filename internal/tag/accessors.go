package tag

import (
	"fmt"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Kind-checked entry accessors shared by the compound implementations.
// Each fails with ErrNotFound for an absent key and ErrTypeMismatch when
// the stored kind disagrees with the requested type; absent keys are never
// papered over with defaults.

func entryTypeErr(key string, got, want types.Kind) error {
	return &types.Error{
		Kind: types.ErrKindType,
		Msg:  fmt.Sprintf("entry %q is %v, not %v", key, got, want),
		Err:  types.ErrTypeMismatch,
	}
}

func entryValueErr(key string, v any) error {
	return &types.Error{
		Kind: types.ErrKindType,
		Msg:  fmt.Sprintf("entry %q loaded unexpected %T", key, v),
		Err:  types.ErrTypeMismatch,
	}
}

func getScalar(c types.Compound, key string, want types.Kind) (any, error) {
	t, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	if t.Kind() != want {
		return nil, entryTypeErr(key, t.Kind(), want)
	}
	return t.Value()
}

func getByte(c types.Compound, key string) (int8, error) {
	v, err := getScalar(c, key, types.TagByte)
	if err != nil {
		return 0, err
	}
	x, ok := v.(int8)
	if !ok {
		return 0, entryValueErr(key, v)
	}
	return x, nil
}

func getShort(c types.Compound, key string) (int16, error) {
	v, err := getScalar(c, key, types.TagShort)
	if err != nil {
		return 0, err
	}
	x, ok := v.(int16)
	if !ok {
		return 0, entryValueErr(key, v)
	}
	return x, nil
}

func getInt(c types.Compound, key string) (int32, error) {
	v, err := getScalar(c, key, types.TagInt)
	if err != nil {
		return 0, err
	}
	x, ok := v.(int32)
	if !ok {
		return 0, entryValueErr(key, v)
	}
	return x, nil
}

func getLong(c types.Compound, key string) (int64, error) {
	v, err := getScalar(c, key, types.TagLong)
	if err != nil {
		return 0, err
	}
	x, ok := v.(int64)
	if !ok {
		return 0, entryValueErr(key, v)
	}
	return x, nil
}

func getFloat(c types.Compound, key string) (float32, error) {
	v, err := getScalar(c, key, types.TagFloat)
	if err != nil {
		return 0, err
	}
	x, ok := v.(float32)
	if !ok {
		return 0, entryValueErr(key, v)
	}
	return x, nil
}

func getDouble(c types.Compound, key string) (float64, error) {
	v, err := getScalar(c, key, types.TagDouble)
	if err != nil {
		return 0, err
	}
	x, ok := v.(float64)
	if !ok {
		return 0, entryValueErr(key, v)
	}
	return x, nil
}

func getString(c types.Compound, key string) (string, error) {
	v, err := getScalar(c, key, types.TagString)
	if err != nil {
		return "", err
	}
	x, ok := v.(string)
	if !ok {
		return "", entryValueErr(key, v)
	}
	return x, nil
}

func getByteArray(c types.Compound, key string) ([]byte, error) {
	v, err := getScalar(c, key, types.TagByteArray)
	if err != nil {
		return nil, err
	}
	x, ok := v.([]byte)
	if !ok {
		return nil, entryValueErr(key, v)
	}
	return x, nil
}

func getIntArray(c types.Compound, key string) ([]int32, error) {
	v, err := getScalar(c, key, types.TagIntArray)
	if err != nil {
		return nil, err
	}
	x, ok := v.([]int32)
	if !ok {
		return nil, entryValueErr(key, v)
	}
	return x, nil
}

func getList(c types.Compound, key string) (types.List, error) {
	t, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	if t.Kind() != types.TagList {
		return nil, entryTypeErr(key, t.Kind(), types.TagList)
	}
	return AsList(t)
}

func getCompound(c types.Compound, key string) (types.Compound, error) {
	t, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	if t.Kind() != types.TagCompound {
		return nil, entryTypeErr(key, t.Kind(), types.TagCompound)
	}
	return AsCompound(t)
}

// putScalar wraps v in a fresh detached leaf named key and stores it.
func putScalar(c types.Compound, key string, kind types.Kind, v any) error {
	e, err := NewElement(kind, key)
	if err != nil {
		return err
	}
	if err := e.SetValue(v); err != nil {
		return err
	}
	return c.Put(key, e)
}
