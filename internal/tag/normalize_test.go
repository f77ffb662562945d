package tag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YukonAppleGeek/nbtkit/internal/tag"
	"github.com/YukonAppleGeek/nbtkit/internal/testutil"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

func TestNormalize_IndependentCopy(t *testing.T) {
	orig := tag.NewCompound("item")
	require.NoError(t, orig.PutInt("id", 42))
	require.NoError(t, orig.PutByteArray("icon", []byte{1, 2, 3}))

	cp, err := tag.Normalize(orig)
	require.NoError(t, err)
	require.True(t, tag.Equal(orig, cp))

	cc, err := tag.AsCompound(cp)
	require.NoError(t, err)

	// Structural changes to the copy leave the original alone.
	require.NoError(t, cc.PutString("extra", "x"))
	n, err := orig.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Array storage is duplicated, not aliased.
	arr, err := cc.GetByteArray("icon")
	require.NoError(t, err)
	arr[0] = 99
	origArr, err := orig.GetByteArray("icon")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, origArr)
}

func TestNormalize_BoundSnapshot(t *testing.T) {
	root := testutil.NewCompoundCell("item",
		testutil.NewCell(types.TagInt, "id", int32(42)),
		testutil.NewListCell("enchants",
			testutil.NewCell(types.TagInt, "", int32(1)),
			testutil.NewCell(types.TagInt, "", int32(5)),
		),
	)
	b, err := tag.Bind(root)
	require.NoError(t, err)

	cp, err := tag.Normalize(b)
	require.NoError(t, err)
	require.True(t, tag.Equal(b, cp))

	// The copy is detached and frozen at snapshot time.
	_, bound := tag.HandleOf(cp)
	require.False(t, bound)

	root.Child("id").SetValue(int32(7))
	require.False(t, tag.Equal(b, cp))

	cc, err := tag.AsCompound(cp)
	require.NoError(t, err)
	id, err := cc.GetInt("id")
	require.NoError(t, err)
	require.Equal(t, int32(42), id)
}

func TestNormalize_Idempotent(t *testing.T) {
	orig := tag.NewCompound("root")
	require.NoError(t, orig.PutDouble("x", 1.5))

	once, err := tag.Normalize(orig)
	require.NoError(t, err)
	twice, err := tag.Normalize(once)
	require.NoError(t, err)

	require.True(t, tag.Equal(once, twice))
	require.NotSame(t, once, twice)
}

func TestNormalize_EmptyListKeepsElementKind(t *testing.T) {
	l, err := tag.NewListOf("xs", types.TagInt)
	require.NoError(t, err)

	cp, err := tag.Normalize(l)
	require.NoError(t, err)
	cl, err := tag.AsList(cp)
	require.NoError(t, err)
	require.Equal(t, types.TagInt, cl.ElementKind())
}

func TestNormalize_Nil(t *testing.T) {
	_, err := tag.Normalize(nil)
	require.ErrorIs(t, err, types.ErrNilTag)
}

func TestNormalize_DepthExceeded(t *testing.T) {
	root := tag.NewCompound("d")
	cur := root
	for i := 0; i < types.DefaultMaxDepth+10; i++ {
		next := tag.NewCompound("")
		require.NoError(t, cur.Put("c", next))
		cur = next
	}

	_, err := tag.Normalize(root)
	require.ErrorIs(t, err, types.ErrDepthExceeded)
}
