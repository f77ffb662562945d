package codec

import (
	"fmt"
	"io"
	"math"

	"github.com/YukonAppleGeek/nbtkit/internal/format"
	"github.com/YukonAppleGeek/nbtkit/internal/tag"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Write encodes t to w as one complete tag. Bound and detached trees
// serialize identically; the encoder only reads through the Tag interface,
// so a bound tree is streamed straight out of its host graph without being
// normalized first.
//
// The root may be any kind except TAG_End. A tree that lies about itself
// (a nonempty list with no coherent element kind, a value whose dynamic
// type disagrees with its kind) fails rather than emitting a corrupt
// stream, though bytes written before the failure are not unwound.
func Write(w io.Writer, t types.Tag) error {
	if t == nil {
		return &types.Error{
			Kind: types.ErrKindCast,
			Msg:  "write tag stream",
			Err:  types.ErrNilTag,
		}
	}
	e := &encoder{w: format.NewWriter(w)}
	return e.tag(t, 0)
}

type encoder struct {
	w *format.Writer
}

func (e *encoder) malformed(msg string) error {
	return &types.Error{
		Kind: types.ErrKindFormat,
		Msg:  fmt.Sprintf("%s at offset %d", msg, e.w.Offset()),
		Err:  types.ErrMalformed,
	}
}

// tag writes a complete envelope: kind id, name, payload.
func (e *encoder) tag(t types.Tag, depth int) error {
	kind := t.Kind()
	if !kind.Valid() || kind == types.TagEnd {
		return e.malformed(fmt.Sprintf("tag %q has unwritable kind %v", t.Name(), kind))
	}
	if err := e.w.U8(byte(kind)); err != nil {
		return err
	}
	if err := e.w.String(t.Name()); err != nil {
		return err
	}
	return e.payload(t, depth)
}

func (e *encoder) payload(t types.Tag, depth int) error {
	switch t.Kind() {
	case types.TagList:
		return e.list(t, depth)
	case types.TagCompound:
		return e.compound(t, depth)
	default:
		return e.scalar(t)
	}
}

func (e *encoder) scalar(t types.Tag) error {
	v, err := t.Value()
	if err != nil {
		return err
	}
	switch t.Kind() {
	case types.TagByte:
		b, ok := v.(int8)
		if !ok {
			return e.badValue(t, v)
		}
		return e.w.U8(byte(b))
	case types.TagShort:
		s, ok := v.(int16)
		if !ok {
			return e.badValue(t, v)
		}
		return e.w.I16(s)
	case types.TagInt:
		i, ok := v.(int32)
		if !ok {
			return e.badValue(t, v)
		}
		return e.w.I32(i)
	case types.TagLong:
		l, ok := v.(int64)
		if !ok {
			return e.badValue(t, v)
		}
		return e.w.I64(l)
	case types.TagFloat:
		f, ok := v.(float32)
		if !ok {
			return e.badValue(t, v)
		}
		return e.w.F32(f)
	case types.TagDouble:
		f, ok := v.(float64)
		if !ok {
			return e.badValue(t, v)
		}
		return e.w.F64(f)
	case types.TagString:
		s, ok := v.(string)
		if !ok {
			return e.badValue(t, v)
		}
		return e.w.String(s)
	case types.TagByteArray:
		b, ok := v.([]byte)
		if !ok {
			return e.badValue(t, v)
		}
		if len(b) > math.MaxInt32 {
			return e.malformed(fmt.Sprintf("byte array %q of %d elements exceeds length prefix", t.Name(), len(b)))
		}
		if err := e.w.I32(int32(len(b))); err != nil {
			return err
		}
		return e.w.Bytes(b)
	case types.TagIntArray:
		a, ok := v.([]int32)
		if !ok {
			return e.badValue(t, v)
		}
		if len(a) > math.MaxInt32 {
			return e.malformed(fmt.Sprintf("int array %q of %d elements exceeds length prefix", t.Name(), len(a)))
		}
		if err := e.w.I32(int32(len(a))); err != nil {
			return err
		}
		for _, i := range a {
			if err := e.w.I32(i); err != nil {
				return err
			}
		}
		return nil
	default:
		return e.malformed(fmt.Sprintf("tag %q has unwritable kind %v", t.Name(), t.Kind()))
	}
}

func (e *encoder) badValue(t types.Tag, v any) error {
	return &types.Error{
		Kind: types.ErrKindType,
		Msg:  fmt.Sprintf("%v tag %q loaded %T", t.Kind(), t.Name(), v),
		Err:  types.ErrTypeMismatch,
	}
}

func (e *encoder) list(t types.Tag, depth int) error {
	if depth+1 > types.DefaultMaxDepth {
		return e.depthErr(t.Name())
	}
	l, err := tag.AsList(t)
	if err != nil {
		return err
	}
	n, err := l.Len()
	if err != nil {
		return err
	}
	if n == 0 {
		// Empty lists carry no element kind on the wire, whatever kind the
		// in-memory list has established.
		if err := e.w.U8(byte(types.TagEnd)); err != nil {
			return err
		}
		return e.w.I32(0)
	}
	if n > math.MaxInt32 {
		return e.malformed(fmt.Sprintf("list %q of %d elements exceeds count prefix", t.Name(), n))
	}
	elem := l.ElementKind()
	if !elem.Valid() || elem == types.TagEnd {
		return e.malformed(fmt.Sprintf("nonempty list %q has element kind %v", t.Name(), elem))
	}
	if err := e.w.U8(byte(elem)); err != nil {
		return err
	}
	if err := e.w.I32(int32(n)); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		c, err := l.Get(i)
		if err != nil {
			return err
		}
		// A host graph can hold mixed kinds behind a list cell; refuse them
		// here since the wire has already committed to one element kind.
		if c.Kind() != elem {
			return e.malformed(fmt.Sprintf("list %q element %d is %v, not %v", t.Name(), i, c.Kind(), elem))
		}
		if err := e.payload(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) compound(t types.Tag, depth int) error {
	if depth+1 > types.DefaultMaxDepth {
		return e.depthErr(t.Name())
	}
	c, err := tag.AsCompound(t)
	if err != nil {
		return err
	}
	keys, err := c.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		child, err := c.Get(k)
		if err != nil {
			return err
		}
		if err := e.tag(child, depth+1); err != nil {
			return err
		}
	}
	return e.w.U8(byte(types.TagEnd))
}

// depthErr also breaks recursion over cyclic foreign graphs, which would
// otherwise stream forever.
func (e *encoder) depthErr(name string) error {
	return fmt.Errorf("tag %q nests deeper than %d: %w", name, types.DefaultMaxDepth, types.ErrDepthExceeded)
}
