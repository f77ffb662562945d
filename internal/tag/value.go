// Package tag implements the tag tree: detached nodes that own their
// storage, and bound nodes that read and write through a live foreign cell.
// Both satisfy the contracts in pkg/types and are indistinguishable to
// callers apart from liveness.
package tag

import (
	"fmt"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// checkValue verifies that v has the native value type for kind.
func checkValue(kind types.Kind, name string, v any) error {
	got, err := types.KindOf(v)
	if err != nil {
		return &types.Error{
			Kind: types.ErrKindType,
			Msg:  fmt.Sprintf("tag %q (%v) cannot hold %T", name, kind, v),
			Err:  types.ErrTypeMismatch,
		}
	}
	if got != kind {
		return &types.Error{
			Kind: types.ErrKindType,
			Msg:  fmt.Sprintf("tag %q is %v, value is %v", name, kind, got),
			Err:  types.ErrTypeMismatch,
		}
	}
	return nil
}

// defaultValue returns the zero value backing a fresh leaf of the given
// kind. Composite kinds have no scalar backing and report false.
func defaultValue(kind types.Kind) (any, bool) {
	switch kind {
	case types.TagByte:
		return int8(0), true
	case types.TagShort:
		return int16(0), true
	case types.TagInt:
		return int32(0), true
	case types.TagLong:
		return int64(0), true
	case types.TagFloat:
		return float32(0), true
	case types.TagDouble:
		return float64(0), true
	case types.TagByteArray:
		return []byte{}, true
	case types.TagString:
		return "", true
	case types.TagIntArray:
		return []int32{}, true
	default:
		return nil, false
	}
}

// copyValue returns v with array storage duplicated so the result shares
// nothing with the input. Immutable scalars pass through.
func copyValue(v any) any {
	switch x := v.(type) {
	case []byte:
		out := make([]byte, len(x))
		copy(out, x)
		return out
	case []int32:
		out := make([]int32, len(x))
		copy(out, x)
		return out
	default:
		return v
	}
}

func nilTagErr(op string) error {
	return fmt.Errorf("%s: %w", op, types.ErrNilTag)
}

func indexErr(name string, i, n int) error {
	return &types.Error{
		Kind: types.ErrKindRange,
		Msg:  fmt.Sprintf("index %d outside list %q of length %d", i, name, n),
		Err:  types.ErrIndexOutOfRange,
	}
}

func notFoundErr(name, key string) error {
	return &types.Error{
		Kind: types.ErrKindNotFound,
		Msg:  fmt.Sprintf("compound %q has no entry %q", name, key),
		Err:  types.ErrNotFound,
	}
}

func elementKindErr(name string, want, got types.Kind) error {
	return &types.Error{
		Kind: types.ErrKindType,
		Msg:  fmt.Sprintf("list %q holds %v, element is %v", name, want, got),
		Err:  types.ErrElementKindMismatch,
	}
}
