package tag

import (
	"bytes"
	"math"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Equal reports deep structural equality of two tags: same kind, same
// name, same value. Compounds compare as key sets regardless of iteration
// order; list elements compare pairwise by position, their names being
// structurally meaningless. Floats compare by bit pattern, so NaN payloads
// survive and negative zero differs from zero, matching what the wire
// format preserves. Binding status is not part of equality: a bound tree
// equals its detached copy.
func Equal(a, b types.Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Name() != b.Name() {
		return false
	}
	return equalValue(a, b)
}

// equalValue compares kind and payload, ignoring the tags' own names.
func equalValue(a, b types.Tag) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case types.TagCompound:
		return equalCompound(a, b)
	case types.TagList:
		return equalList(a, b)
	default:
		va, err := a.Value()
		if err != nil {
			return false
		}
		vb, err := b.Value()
		if err != nil {
			return false
		}
		return equalScalar(a.Kind(), va, vb)
	}
}

func equalCompound(a, b types.Tag) bool {
	ca, err := AsCompound(a)
	if err != nil {
		return false
	}
	cb, err := AsCompound(b)
	if err != nil {
		return false
	}
	keys, err := ca.Keys()
	if err != nil {
		return false
	}
	nb, err := cb.Len()
	if err != nil || len(keys) != nb {
		return false
	}
	for _, k := range keys {
		ta, err := ca.Get(k)
		if err != nil {
			return false
		}
		tb, err := cb.Get(k)
		if err != nil {
			return false
		}
		if !equalValue(ta, tb) {
			return false
		}
	}
	return true
}

func equalList(a, b types.Tag) bool {
	la, err := AsList(a)
	if err != nil {
		return false
	}
	lb, err := AsList(b)
	if err != nil {
		return false
	}
	na, err := la.Len()
	if err != nil {
		return false
	}
	nb, err := lb.Len()
	if err != nil || na != nb {
		return false
	}
	for i := 0; i < na; i++ {
		ta, err := la.Get(i)
		if err != nil {
			return false
		}
		tb, err := lb.Get(i)
		if err != nil {
			return false
		}
		if !equalValue(ta, tb) {
			return false
		}
	}
	return true
}

func equalScalar(kind types.Kind, va, vb any) bool {
	switch kind {
	case types.TagFloat:
		xa, ok := va.(float32)
		if !ok {
			return false
		}
		xb, ok := vb.(float32)
		if !ok {
			return false
		}
		return math.Float32bits(xa) == math.Float32bits(xb)
	case types.TagDouble:
		xa, ok := va.(float64)
		if !ok {
			return false
		}
		xb, ok := vb.(float64)
		if !ok {
			return false
		}
		return math.Float64bits(xa) == math.Float64bits(xb)
	case types.TagByteArray:
		xa, ok := va.([]byte)
		if !ok {
			return false
		}
		xb, ok := vb.([]byte)
		if !ok {
			return false
		}
		return bytes.Equal(xa, xb)
	case types.TagIntArray:
		xa, ok := va.([]int32)
		if !ok {
			return false
		}
		xb, ok := vb.([]int32)
		if !ok {
			return false
		}
		if len(xa) != len(xb) {
			return false
		}
		for i := range xa {
			if xa[i] != xb[i] {
				return false
			}
		}
		return true
	default:
		return va == vb
	}
}
