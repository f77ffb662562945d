package nbt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/YukonAppleGeek/nbtkit/internal/tag"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// SkipChildren can be returned from a WalkFunc to prune the subtree below
// the current tag without stopping the walk.
var SkipChildren = errors.New("skip children")

// WalkFunc visits one tag. path addresses it from the walk root: dotted
// compound keys with [i] list indices, "" for the root itself.
type WalkFunc func(path string, t Tag) error

// Walk traverses t in pre-order, parents before children, calling fn for
// every tag. Compound children are visited in iteration order, list
// elements by ascending index. Returning SkipChildren from fn prunes the
// current subtree; any other error aborts the walk and is returned as is.
// Nesting beyond DefaultMaxDepth fails with ErrDepthExceeded, which also
// breaks cycles in misbehaving foreign graphs.
//
// Example:
//
//	err := nbt.Walk(root, func(path string, t nbt.Tag) error {
//		fmt.Println(path, t.Kind())
//		return nil
//	})
func Walk(t Tag, fn WalkFunc) error {
	if t == nil {
		return &types.Error{Kind: types.ErrKindCast, Msg: "walk tag", Err: types.ErrNilTag}
	}
	if fn == nil {
		return errors.New("nbt: nil walk callback")
	}
	return walk(t, "", fn, types.DefaultMaxDepth)
}

func walk(t Tag, path string, fn WalkFunc, budget int) error {
	if budget <= 0 {
		return fmt.Errorf("walk %q: %w", path, types.ErrDepthExceeded)
	}
	switch err := fn(path, t); {
	case errors.Is(err, SkipChildren):
		return nil
	case err != nil:
		return err
	}
	switch t.Kind() {
	case types.TagCompound:
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
			if err := walk(child, childPath(path, k), fn, budget-1); err != nil {
				return err
			}
		}
	case types.TagList:
		l, err := tag.AsList(t)
		if err != nil {
			return err
		}
		n, err := l.Len()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			child, err := l.Get(i)
			if err != nil {
				return err
			}
			p := fmt.Sprintf("%s[%d]", path, i)
			if err := walk(child, p, fn, budget-1); err != nil {
				return err
			}
		}
	}
	return nil
}

func childPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

// Resolve follows a dotted path from t and returns the tag it lands on.
// Each dot-separated segment names a compound key, optionally followed by
// one or more [i] index steps into lists, so "stats.enchants[1]" is the
// second element of the enchants list and "[0]" indexes a root list.
// The empty path resolves to t itself. Missing keys fail with ErrNotFound,
// bad indices with ErrIndexOutOfRange, and descending into a non-container
// with ErrUnsupportedCast. Keys containing '.' or '[' cannot be addressed.
//
// Example:
//
//	level, err := nbt.Resolve(root, "stats.enchants[1]")
func Resolve(t Tag, path string) (Tag, error) {
	if t == nil {
		return nil, &types.Error{Kind: types.ErrKindCast, Msg: "resolve path", Err: types.ErrNilTag}
	}
	cur := t
	for _, seg := range strings.Split(path, ".") {
		name, idxs, err := parseSegment(seg)
		if err != nil {
			return nil, err
		}
		if name == "" && len(idxs) == 0 {
			continue
		}
		if name != "" {
			c, err := tag.AsCompound(cur)
			if err != nil {
				return nil, fmt.Errorf("resolve %q: %w", path, err)
			}
			cur, err = c.Get(name)
			if err != nil {
				return nil, fmt.Errorf("resolve %q: %w", path, err)
			}
		}
		for _, i := range idxs {
			l, err := tag.AsList(cur)
			if err != nil {
				return nil, fmt.Errorf("resolve %q: %w", path, err)
			}
			cur, err = l.Get(i)
			if err != nil {
				return nil, fmt.Errorf("resolve %q: %w", path, err)
			}
		}
	}
	return cur, nil
}

func parseSegment(seg string) (string, []int, error) {
	br := strings.IndexByte(seg, '[')
	if br < 0 {
		return seg, nil, nil
	}
	name, rest := seg[:br], seg[br:]
	var idxs []int
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("nbt: bad path segment %q", seg)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, fmt.Errorf("nbt: bad path segment %q", seg)
		}
		i, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, fmt.Errorf("nbt: bad path segment %q", seg)
		}
		idxs = append(idxs, i)
		rest = rest[end+1:]
	}
	return name, idxs, nil
}
