// Package codec translates tag trees to and from the binary tag stream.
//
// On the wire a tag is a one-byte kind id, a length-prefixed name, and a
// kind-specific payload. Compound payloads are a sequence of complete tags
// terminated by a TAG_End byte. List payloads carry the element kind id
// once, then an int32 count, then each element's bare payload with no id or
// name. Arrays carry an int32 length then raw elements. All integers are
// big-endian (see internal/format).
package codec

import (
	"fmt"
	"io"

	"github.com/YukonAppleGeek/nbtkit/internal/format"
	"github.com/YukonAppleGeek/nbtkit/internal/tag"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Read decodes one complete tag from r. The result is always a detached
// tree, whatever produced the stream. Reading stops after the root tag's
// payload; trailing bytes are left unconsumed.
//
// Structural garbage fails with ErrMalformed, a stream that ends mid-tag
// with ErrTruncated, and nesting past opts.MaxDepth with ErrDepthExceeded.
func Read(r io.Reader, opts types.ReadOptions) (types.Tag, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = types.DefaultMaxDepth
	}
	d := &decoder{r: format.NewReader(r), maxDepth: maxDepth}

	kind, name, err := d.envelope()
	if err != nil {
		return nil, err
	}
	if kind == types.TagEnd {
		return nil, d.malformed("TAG_End as stream root")
	}
	return d.value(kind, name, 0)
}

type decoder struct {
	r        *format.Reader
	maxDepth int
}

func (d *decoder) malformed(msg string) error {
	return &types.Error{
		Kind: types.ErrKindFormat,
		Msg:  fmt.Sprintf("%s at offset %d", msg, d.r.Offset()),
		Err:  types.ErrMalformed,
	}
}

// envelope reads a tag's kind id and, unless it is TAG_End, its name.
func (d *decoder) envelope() (types.Kind, string, error) {
	id, err := d.r.U8()
	if err != nil {
		return 0, "", err
	}
	kind, err := types.KindFromID(id)
	if err != nil {
		return 0, "", d.malformed(fmt.Sprintf("unknown kind id 0x%02x", id))
	}
	if kind == types.TagEnd {
		return kind, "", nil
	}
	name, err := d.r.String()
	if err != nil {
		return 0, "", err
	}
	return kind, name, nil
}

func (d *decoder) value(kind types.Kind, name string, depth int) (types.Tag, error) {
	switch kind {
	case types.TagList:
		return d.list(name, depth)
	case types.TagCompound:
		return d.compound(name, depth)
	default:
		return d.scalar(kind, name)
	}
}

func (d *decoder) scalar(kind types.Kind, name string) (types.Tag, error) {
	v, err := d.payload(kind)
	if err != nil {
		return nil, err
	}
	e, err := tag.NewElement(kind, name)
	if err != nil {
		return nil, err
	}
	if err := e.SetValue(v); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *decoder) payload(kind types.Kind) (any, error) {
	switch kind {
	case types.TagByte:
		v, err := d.r.U8()
		return int8(v), err
	case types.TagShort:
		return d.r.I16()
	case types.TagInt:
		return d.r.I32()
	case types.TagLong:
		return d.r.I64()
	case types.TagFloat:
		return d.r.F32()
	case types.TagDouble:
		return d.r.F64()
	case types.TagString:
		return d.r.String()
	case types.TagByteArray:
		n, err := d.count("byte array length")
		if err != nil {
			return nil, err
		}
		return d.r.Bytes(n)
	case types.TagIntArray:
		return d.intArray()
	default:
		return nil, d.malformed(fmt.Sprintf("kind %v has no scalar payload", kind))
	}
}

// count reads an int32 length prefix and rejects negatives.
func (d *decoder) count(what string) (int, error) {
	n, err := d.r.I32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, d.malformed(fmt.Sprintf("negative %s %d", what, n))
	}
	return int(n), nil
}

func (d *decoder) intArray() ([]int32, error) {
	n, err := d.count("int array length")
	if err != nil {
		return nil, err
	}
	// The claimed length is untrusted; let the slice grow as elements
	// actually arrive instead of allocating n up front.
	out := make([]int32, 0, min(n, 16<<10))
	for i := 0; i < n; i++ {
		v, err := d.r.I32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d *decoder) list(name string, depth int) (types.Tag, error) {
	if depth+1 > d.maxDepth {
		return nil, d.depthErr(name)
	}
	id, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	elem, err := types.KindFromID(id)
	if err != nil {
		return nil, d.malformed(fmt.Sprintf("list %q: unknown element kind id 0x%02x", name, id))
	}
	n, err := d.count("list count")
	if err != nil {
		return nil, err
	}
	if elem == types.TagEnd {
		if n > 0 {
			return nil, d.malformed(fmt.Sprintf("list %q declares TAG_End elements but count %d", name, n))
		}
		return tag.NewList(name), nil
	}
	out, err := tag.NewListOf(name, elem)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		child, err := d.value(elem, "", depth+1)
		if err != nil {
			return nil, err
		}
		if err := out.Add(child); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (d *decoder) compound(name string, depth int) (types.Tag, error) {
	if depth+1 > d.maxDepth {
		return nil, d.depthErr(name)
	}
	out := tag.NewCompound(name)
	for {
		kind, childName, err := d.envelope()
		if err != nil {
			return nil, err
		}
		if kind == types.TagEnd {
			return out, nil
		}
		child, err := d.value(kind, childName, depth+1)
		if err != nil {
			return nil, err
		}
		if err := out.Put(childName, child); err != nil {
			return nil, err
		}
	}
}

func (d *decoder) depthErr(name string) error {
	return fmt.Errorf("tag %q nests deeper than %d: %w", name, d.maxDepth, types.ErrDepthExceeded)
}
