package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/YukonAppleGeek/nbtkit/internal/tag"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Scalar payloads carry a one-letter type suffix so the text form stays
// unambiguous: 1b, 2s, 3L, 1.5f, 2.5d. Ints have none. Arrays render as
// [B; ...] and [I; ...].

// palette maps token classes to sprint functions. The plain palette is
// fmt.Sprint, so disabled color costs nothing per token.
type palette struct {
	key func(...any) string
	str func(...any) string
	num func(...any) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{key: fmt.Sprint, str: fmt.Sprint, num: fmt.Sprint}
	}
	return palette{
		key: color.New(color.FgCyan).SprintFunc(),
		str: color.New(color.FgGreen).SprintFunc(),
		num: color.New(color.FgYellow).SprintFunc(),
	}
}

type snbtRenderer struct {
	sb   strings.Builder
	opts Options
	pal  palette
}

func (p *Printer) printSNBT(t types.Tag) error {
	r := &snbtRenderer{opts: p.opts, pal: newPalette(p.opts.Color)}
	if err := r.value(t, 0); err != nil {
		return err
	}
	r.sb.WriteByte('\n')
	_, err := io.WriteString(p.w, r.sb.String())
	return err
}

func (r *snbtRenderer) value(t types.Tag, depth int) error {
	// Hard bound independent of the display limit; a cyclic host graph
	// must fail instead of rendering forever.
	if depth > types.DefaultMaxDepth {
		return fmt.Errorf("tag %q nests deeper than %d: %w", t.Name(), types.DefaultMaxDepth, types.ErrDepthExceeded)
	}
	switch t.Kind() {
	case types.TagCompound:
		return r.compound(t, depth)
	case types.TagList:
		return r.list(t, depth)
	default:
		return r.scalar(t)
	}
}

// elided reports whether containers at this depth render as {...}/[...].
func (r *snbtRenderer) elided(depth int) bool {
	return r.opts.MaxDepth > 0 && depth >= r.opts.MaxDepth
}

func (r *snbtRenderer) compound(t types.Tag, depth int) error {
	if r.elided(depth) {
		r.sb.WriteString("{...}")
		return nil
	}
	c, err := tag.AsCompound(t)
	if err != nil {
		return err
	}
	keys, err := c.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		r.sb.WriteString("{}")
		return nil
	}
	r.sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			r.sb.WriteByte(',')
			if r.opts.Indent == "" {
				r.sb.WriteByte(' ')
			}
		}
		r.newline(depth + 1)
		r.sb.WriteString(r.pal.key(renderKey(k)))
		r.sb.WriteString(": ")
		child, err := c.Get(k)
		if err != nil {
			return err
		}
		if err := r.value(child, depth+1); err != nil {
			return err
		}
	}
	r.newline(depth)
	r.sb.WriteByte('}')
	return nil
}

func (r *snbtRenderer) list(t types.Tag, depth int) error {
	if r.elided(depth) {
		r.sb.WriteString("[...]")
		return nil
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
		r.sb.WriteString("[]")
		return nil
	}
	r.sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			r.sb.WriteByte(',')
			if r.opts.Indent == "" {
				r.sb.WriteByte(' ')
			}
		}
		r.newline(depth + 1)
		child, err := l.Get(i)
		if err != nil {
			return err
		}
		if err := r.value(child, depth+1); err != nil {
			return err
		}
	}
	r.newline(depth)
	r.sb.WriteByte(']')
	return nil
}

func (r *snbtRenderer) scalar(t types.Tag) error {
	v, err := t.Value()
	if err != nil {
		return err
	}
	switch t.Kind() {
	case types.TagByte:
		b, ok := v.(int8)
		if !ok {
			return r.badValue(t, v)
		}
		r.sb.WriteString(r.pal.num(strconv.FormatInt(int64(b), 10) + "b"))
	case types.TagShort:
		s, ok := v.(int16)
		if !ok {
			return r.badValue(t, v)
		}
		r.sb.WriteString(r.pal.num(strconv.FormatInt(int64(s), 10) + "s"))
	case types.TagInt:
		i, ok := v.(int32)
		if !ok {
			return r.badValue(t, v)
		}
		r.sb.WriteString(r.pal.num(strconv.FormatInt(int64(i), 10)))
	case types.TagLong:
		l, ok := v.(int64)
		if !ok {
			return r.badValue(t, v)
		}
		r.sb.WriteString(r.pal.num(strconv.FormatInt(l, 10) + "L"))
	case types.TagFloat:
		f, ok := v.(float32)
		if !ok {
			return r.badValue(t, v)
		}
		r.sb.WriteString(r.pal.num(strconv.FormatFloat(float64(f), 'g', -1, 32) + "f"))
	case types.TagDouble:
		f, ok := v.(float64)
		if !ok {
			return r.badValue(t, v)
		}
		r.sb.WriteString(r.pal.num(strconv.FormatFloat(f, 'g', -1, 64) + "d"))
	case types.TagString:
		s, ok := v.(string)
		if !ok {
			return r.badValue(t, v)
		}
		r.sb.WriteString(r.pal.str(quote(s)))
	case types.TagByteArray:
		b, ok := v.([]byte)
		if !ok {
			return r.badValue(t, v)
		}
		r.sb.WriteString("[B;")
		for i, e := range b {
			if i > 0 {
				r.sb.WriteByte(',')
			}
			r.sb.WriteByte(' ')
			r.sb.WriteString(r.pal.num(strconv.FormatInt(int64(int8(e)), 10) + "b"))
		}
		r.sb.WriteByte(']')
	case types.TagIntArray:
		a, ok := v.([]int32)
		if !ok {
			return r.badValue(t, v)
		}
		r.sb.WriteString("[I;")
		for i, e := range a {
			if i > 0 {
				r.sb.WriteByte(',')
			}
			r.sb.WriteByte(' ')
			r.sb.WriteString(r.pal.num(strconv.FormatInt(int64(e), 10)))
		}
		r.sb.WriteByte(']')
	default:
		return &types.Error{
			Kind: types.ErrKindInvalid,
			Msg:  fmt.Sprintf("cannot render %v tag %q", t.Kind(), t.Name()),
			Err:  types.ErrInvalidKind,
		}
	}
	return nil
}

func (r *snbtRenderer) badValue(t types.Tag, v any) error {
	return &types.Error{
		Kind: types.ErrKindType,
		Msg:  fmt.Sprintf("%v tag %q loaded %T", t.Kind(), t.Name(), v),
		Err:  types.ErrTypeMismatch,
	}
}

// newline breaks the line and indents, or does nothing in compact mode.
func (r *snbtRenderer) newline(depth int) {
	if r.opts.Indent == "" {
		return
	}
	r.sb.WriteByte('\n')
	for i := 0; i < depth; i++ {
		r.sb.WriteString(r.opts.Indent)
	}
}

// renderKey leaves simple keys bare and quotes the rest.
func renderKey(k string) string {
	if bareKey(k) {
		return k
	}
	return quote(k)
}

func bareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '.' || c == '+':
		default:
			return false
		}
	}
	return true
}

// quote double-quotes s, escaping quotes and backslashes. Everything else
// passes through raw, including multi-byte runes.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
