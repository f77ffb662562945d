package printer

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/YukonAppleGeek/nbtkit/internal/tag"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Native converts a tag tree to plain Go values: compounds become
// map[string]any, lists []any, scalars their native type. Names survive
// only as compound keys; the root's own name is dropped. The result is
// independent of the tree, so converting a bound tree snapshots it.
func Native(t types.Tag) (any, error) {
	if t == nil {
		return nil, &types.Error{Kind: types.ErrKindCast, Msg: "convert tag", Err: types.ErrNilTag}
	}
	return native(t, types.DefaultMaxDepth)
}

func native(t types.Tag, budget int) (any, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("tag %q nests deeper than %d: %w", t.Name(), types.DefaultMaxDepth, types.ErrDepthExceeded)
	}
	switch t.Kind() {
	case types.TagCompound:
		c, err := tag.AsCompound(t)
		if err != nil {
			return nil, err
		}
		keys, err := c.Keys()
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(keys))
		for _, k := range keys {
			child, err := c.Get(k)
			if err != nil {
				return nil, err
			}
			v, err := native(child, budget-1)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case types.TagList:
		l, err := tag.AsList(t)
		if err != nil {
			return nil, err
		}
		n, err := l.Len()
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, n)
		for i := 0; i < n; i++ {
			child, err := l.Get(i)
			if err != nil {
				return nil, err
			}
			v, err := native(child, budget-1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		v, err := t.Value()
		if err != nil {
			return nil, err
		}
		// Arrays alias the tag's storage; hand out copies.
		switch a := v.(type) {
		case []byte:
			out := make([]byte, len(a))
			copy(out, a)
			return out, nil
		case []int32:
			out := make([]int32, len(a))
			copy(out, a)
			return out, nil
		}
		return v, nil
	}
}

func (p *Printer) printJSON(t types.Tag) error {
	v, err := Native(t)
	if err != nil {
		return err
	}
	var b []byte
	if p.opts.Indent != "" {
		b, err = json.MarshalIndent(v, "", p.opts.Indent)
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = p.w.Write(b)
	return err
}

func (p *Printer) printYAML(t types.Tag) error {
	v, err := Native(t)
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = p.w.Write(b)
	return err
}
