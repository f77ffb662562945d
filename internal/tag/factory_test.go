package tag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

func TestNew_AllKinds(t *testing.T) {
	for kind := types.TagByte; kind <= types.TagIntArray; kind++ {
		got, err := New(kind, "x")
		require.NoError(t, err, "kind %v", kind)
		require.Equal(t, kind, got.Kind())
		require.Equal(t, "x", got.Name())
	}

	l, err := New(types.TagList, "xs")
	require.NoError(t, err)
	_, err = AsList(l)
	require.NoError(t, err)

	c, err := New(types.TagCompound, "item")
	require.NoError(t, err)
	_, err = AsCompound(c)
	require.NoError(t, err)

	_, err = New(types.TagEnd, "never")
	require.ErrorIs(t, err, types.ErrInvalidKind)
	_, err = New(types.Kind(42), "never")
	require.ErrorIs(t, err, types.ErrInvalidKind)
}

func TestFromValue(t *testing.T) {
	tests := []struct {
		name string
		val  any
		kind types.Kind
	}{
		{name: "byte", val: int8(1), kind: types.TagByte},
		{name: "short", val: int16(2), kind: types.TagShort},
		{name: "int", val: int32(3), kind: types.TagInt},
		{name: "long", val: int64(4), kind: types.TagLong},
		{name: "float", val: float32(1.5), kind: types.TagFloat},
		{name: "double", val: 2.5, kind: types.TagDouble},
		{name: "string", val: "sword", kind: types.TagString},
		{name: "byte array", val: []byte{1}, kind: types.TagByteArray},
		{name: "int array", val: []int32{1}, kind: types.TagIntArray},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromValue("v", tc.val)
			require.NoError(t, err)
			require.Equal(t, tc.kind, got.Kind())

			v, err := got.Value()
			require.NoError(t, err)
			require.Equal(t, tc.val, v)
		})
	}
}

func TestFromValue_Containers(t *testing.T) {
	lt, err := FromValue("xs", []types.Tag{intTag(t, "", 1), intTag(t, "", 2)})
	require.NoError(t, err)
	l, err := AsList(lt)
	require.NoError(t, err)
	n, err := l.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	ct, err := FromValue("item", map[string]types.Tag{"id": intTag(t, "", 42)})
	require.NoError(t, err)
	c, err := AsCompound(ct)
	require.NoError(t, err)
	id, err := c.GetInt("id")
	require.NoError(t, err)
	require.Equal(t, int32(42), id)
}

func TestFromValue_Unsupported(t *testing.T) {
	_, err := FromValue("v", int(1))
	require.ErrorIs(t, err, types.ErrUnsupportedType)
	_, err = FromValue("v", nil)
	require.ErrorIs(t, err, types.ErrUnsupportedType)
}

func TestCasts(t *testing.T) {
	e, err := NewElement(types.TagInt, "id")
	require.NoError(t, err)

	_, err = AsList(e)
	require.ErrorIs(t, err, types.ErrUnsupportedCast)
	_, err = AsCompound(e)
	require.ErrorIs(t, err, types.ErrUnsupportedCast)

	_, err = AsList(nil)
	require.ErrorIs(t, err, types.ErrNilTag)
	_, err = AsCompound(nil)
	require.ErrorIs(t, err, types.ErrNilTag)

	l := NewList("xs")
	_, err = AsCompound(l)
	require.ErrorIs(t, err, types.ErrUnsupportedCast)

	c := NewCompound("item")
	_, err = AsList(c)
	require.ErrorIs(t, err, types.ErrUnsupportedCast)

	gotL, err := AsList(l)
	require.NoError(t, err)
	require.Equal(t, types.TagList, gotL.Kind())

	gotC, err := AsCompound(c)
	require.NoError(t, err)
	require.Equal(t, types.TagCompound, gotC.Kind())
}

// Cast failures name the actual kind so callers can tell what they held.
func TestCasts_ErrorDetail(t *testing.T) {
	e, err := NewElement(types.TagString, "name")
	require.NoError(t, err)

	_, err = AsList(e)
	require.ErrorContains(t, err, "TAG_String")
	require.ErrorContains(t, err, "name")
}
