package tag_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YukonAppleGeek/nbtkit/internal/tag"
	"github.com/YukonAppleGeek/nbtkit/internal/testutil"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

func fromValue(t *testing.T, name string, v any) types.Tag {
	t.Helper()
	out, err := tag.FromValue(name, v)
	require.NoError(t, err)
	return out
}

func TestEqual_Scalars(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"byte equal", int8(1), int8(1), true},
		{"byte differs", int8(1), int8(2), false},
		{"long equal", int64(-9e15), int64(-9e15), true},
		{"string equal", "sword", "sword", true},
		{"string differs", "sword", "shield", false},
		{"byte array equal", []byte{1, 2}, []byte{1, 2}, true},
		{"byte array differs", []byte{1, 2}, []byte{2, 1}, false},
		{"int array equal", []int32{3, 4}, []int32{3, 4}, true},
		{"int array differs", []int32{3, 4}, []int32{3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fromValue(t, "x", tt.a)
			b := fromValue(t, "x", tt.b)
			require.Equal(t, tt.want, tag.Equal(a, b))
		})
	}
}

func TestEqual_NameAndKind(t *testing.T) {
	require.False(t, tag.Equal(fromValue(t, "a", int32(1)), fromValue(t, "b", int32(1))))
	// Same numeric value, different width.
	require.False(t, tag.Equal(fromValue(t, "x", int32(1)), fromValue(t, "x", int64(1))))
}

func TestEqual_EmptyArraysMatchNil(t *testing.T) {
	require.True(t, tag.Equal(fromValue(t, "x", []byte{}), fromValue(t, "x", []byte(nil))))
	require.True(t, tag.Equal(fromValue(t, "x", []int32{}), fromValue(t, "x", []int32(nil))))
}

// Floats compare by bit pattern: NaN equals itself and the zero signs
// stay distinct, matching what the wire encoding preserves.
func TestEqual_FloatBits(t *testing.T) {
	nan := fromValue(t, "x", math.NaN())
	require.True(t, tag.Equal(nan, fromValue(t, "x", math.NaN())))

	negZero := fromValue(t, "x", math.Copysign(0, -1))
	posZero := fromValue(t, "x", float64(0))
	require.False(t, tag.Equal(negZero, posZero))

	f32nan := fromValue(t, "x", float32(math.NaN()))
	require.True(t, tag.Equal(f32nan, fromValue(t, "x", float32(math.NaN()))))
}

func TestEqual_Lists(t *testing.T) {
	build := func(vals ...any) types.List {
		l := tag.NewList("xs")
		for _, v := range vals {
			require.NoError(t, l.Add(fromValue(t, "", v)))
		}
		return l
	}

	require.True(t, tag.Equal(build(int32(1), int32(5)), build(int32(1), int32(5))))
	require.False(t, tag.Equal(build(int32(1), int32(5)), build(int32(5), int32(1))))
	require.False(t, tag.Equal(build(int32(1)), build(int32(1), int32(5))))
	require.False(t, tag.Equal(build(int32(1)), build("one")))
}

func TestEqual_EmptyListsIgnoreElementKind(t *testing.T) {
	ints, err := tag.NewListOf("xs", types.TagInt)
	require.NoError(t, err)
	strs, err := tag.NewListOf("xs", types.TagString)
	require.NoError(t, err)
	require.True(t, tag.Equal(ints, strs))
}

// Element names are positional noise inside lists: a host that names its
// list children still compares equal to the detached form.
func TestEqual_ListElementNamesIgnored(t *testing.T) {
	cell := testutil.NewListCell("xs",
		testutil.NewCell(types.TagInt, "first", int32(1)),
		testutil.NewCell(types.TagInt, "second", int32(5)),
	)
	bound, err := tag.Bind(cell)
	require.NoError(t, err)

	detached := tag.NewList("xs")
	require.NoError(t, detached.Add(fromValue(t, "", int32(1))))
	require.NoError(t, detached.Add(fromValue(t, "", int32(5))))

	require.True(t, tag.Equal(bound, detached))
}

func TestEqual_Compounds(t *testing.T) {
	ab := tag.NewCompound("item")
	require.NoError(t, ab.PutInt("a", 1))
	require.NoError(t, ab.PutString("b", "x"))

	ba := tag.NewCompound("item")
	require.NoError(t, ba.PutString("b", "x"))
	require.NoError(t, ba.PutInt("a", 1))

	// Insertion order does not matter.
	require.True(t, tag.Equal(ab, ba))

	require.NoError(t, ba.PutInt("c", 3))
	require.False(t, tag.Equal(ab, ba))

	_, err := ba.Remove("c")
	require.NoError(t, err)
	require.NoError(t, ba.PutInt("a", 2))
	require.False(t, tag.Equal(ab, ba))
}

func TestEqual_BoundVsDetached(t *testing.T) {
	cell := testutil.NewCompoundCell("item",
		testutil.NewCell(types.TagInt, "id", int32(42)),
		testutil.NewCell(types.TagString, "name", "sword"),
		testutil.NewListCell("enchants",
			testutil.NewCell(types.TagInt, "", int32(1)),
			testutil.NewCell(types.TagInt, "", int32(5)),
		),
	)
	bound, err := tag.Bind(cell)
	require.NoError(t, err)

	detached := tag.NewCompound("item")
	require.NoError(t, detached.PutInt("id", 42))
	require.NoError(t, detached.PutString("name", "sword"))
	enchants := tag.NewList("enchants")
	require.NoError(t, enchants.Add(fromValue(t, "", int32(1))))
	require.NoError(t, enchants.Add(fromValue(t, "", int32(5))))
	require.NoError(t, detached.Put("enchants", enchants))

	require.True(t, tag.Equal(bound, detached))
	require.True(t, tag.Equal(detached, bound))

	cell.Child("id").SetValue(int32(7))
	require.False(t, tag.Equal(bound, detached))
}

func TestEqual_Nil(t *testing.T) {
	require.True(t, tag.Equal(nil, nil))
	require.False(t, tag.Equal(fromValue(t, "x", int8(1)), nil))
	require.False(t, tag.Equal(nil, fromValue(t, "x", int8(1))))
}
