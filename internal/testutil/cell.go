// Package testutil provides an in-memory foreign object graph implementing
// types.Handle, so bound-tag semantics can be exercised without a real
// host. A Cell stands in for one externally-owned value; container cells
// own live child cells, and Load wraps children through the factory's Bind
// so everything reachable from a bound root stays bound.
package testutil

import (
	"fmt"

	"github.com/YukonAppleGeek/nbtkit/internal/tag"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Cell is one live cell of the fake host graph.
//
// Constructors perform no validation: tests build deliberately broken
// cells (wrong value types, End kinds) to exercise the error paths of the
// bound layer.
type Cell struct {
	kind types.Kind
	name string

	val      any              // leaf kinds
	children []*Cell          // list kind
	entries  map[string]*Cell // compound kind
}

var _ types.Handle = (*Cell)(nil)

// NewCell returns a leaf cell holding v.
func NewCell(kind types.Kind, name string, v any) *Cell {
	return &Cell{kind: kind, name: name, val: v}
}

// NewListCell returns a list cell owning the given child cells.
func NewListCell(name string, children ...*Cell) *Cell {
	return &Cell{kind: types.TagList, name: name, children: children}
}

// NewCompoundCell returns a compound cell owning the given child cells,
// keyed by their names. Later duplicates win.
func NewCompoundCell(name string, children ...*Cell) *Cell {
	entries := make(map[string]*Cell, len(children))
	for _, c := range children {
		entries[c.name] = c
	}
	return &Cell{kind: types.TagCompound, name: name, entries: entries}
}

func (c *Cell) Kind() types.Kind { return c.kind }

func (c *Cell) Name() string { return c.name }

func (c *Cell) Rename(name string) error {
	c.name = name
	return nil
}

// Load returns the cell's current value in the kind's native shape.
// Container loads wrap each child cell into a bound tag.
func (c *Cell) Load() (any, error) {
	switch c.kind {
	case types.TagList:
		out := make([]types.Tag, len(c.children))
		for i, child := range c.children {
			t, err := tag.Bind(child)
			if err != nil {
				return nil, err
			}
			out[i] = t
		}
		return out, nil
	case types.TagCompound:
		out := make(map[string]types.Tag, len(c.entries))
		for k, child := range c.entries {
			t, err := tag.Bind(child)
			if err != nil {
				return nil, err
			}
			out[k] = t
		}
		return out, nil
	default:
		return c.val, nil
	}
}

// Store replaces the cell's value. Tags already bound to cells of this
// graph are relinked as the same cell; detached tags are materialized into
// fresh cells. The cell stored into keeps its identity, so wrappers bound
// to it stay live.
func (c *Cell) Store(v any) error {
	switch c.kind {
	case types.TagList:
		elems, ok := v.([]types.Tag)
		if !ok {
			return fmt.Errorf("host list cell %q refuses %T", c.name, v)
		}
		next := make([]*Cell, len(elems))
		for i, t := range elems {
			cc, err := cellFromTag(t)
			if err != nil {
				return err
			}
			next[i] = cc
		}
		c.children = next
		return nil
	case types.TagCompound:
		m, ok := v.(map[string]types.Tag)
		if !ok {
			return fmt.Errorf("host compound cell %q refuses %T", c.name, v)
		}
		next := make(map[string]*Cell, len(m))
		for k, t := range m {
			cc, err := cellFromTag(t)
			if err != nil {
				return err
			}
			next[k] = cc
		}
		c.entries = next
		return nil
	default:
		c.val = v
		return nil
	}
}

// cellFromTag converts a stored tag back into a cell: bound tags over this
// graph keep their cell, anything else is deep-copied into new cells.
func cellFromTag(t types.Tag) (*Cell, error) {
	if h, ok := tag.HandleOf(t); ok {
		if c, ok := h.(*Cell); ok {
			return c, nil
		}
	}
	switch t.Kind() {
	case types.TagCompound:
		src, err := tag.AsCompound(t)
		if err != nil {
			return nil, err
		}
		keys, err := src.Keys()
		if err != nil {
			return nil, err
		}
		entries := make(map[string]*Cell, len(keys))
		for _, k := range keys {
			child, err := src.Get(k)
			if err != nil {
				return nil, err
			}
			cc, err := cellFromTag(child)
			if err != nil {
				return nil, err
			}
			entries[k] = cc
		}
		return &Cell{kind: types.TagCompound, name: t.Name(), entries: entries}, nil
	case types.TagList:
		src, err := tag.AsList(t)
		if err != nil {
			return nil, err
		}
		n, err := src.Len()
		if err != nil {
			return nil, err
		}
		children := make([]*Cell, n)
		for i := 0; i < n; i++ {
			child, err := src.Get(i)
			if err != nil {
				return nil, err
			}
			cc, err := cellFromTag(child)
			if err != nil {
				return nil, err
			}
			children[i] = cc
		}
		return &Cell{kind: types.TagList, name: t.Name(), children: children}, nil
	default:
		v, err := t.Value()
		if err != nil {
			return nil, err
		}
		return &Cell{kind: t.Kind(), name: t.Name(), val: v}, nil
	}
}

// Test-side accessors. These mutate or inspect the graph directly, the way
// host code would behind the binding's back.

// SetValue overwrites a leaf cell's value without any checks.
func (c *Cell) SetValue(v any) { c.val = v }

// Child returns the named entry of a compound cell, or nil.
func (c *Cell) Child(name string) *Cell { return c.entries[name] }

// At returns the i'th element of a list cell, or nil when out of range.
func (c *Cell) At(i int) *Cell {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// Len returns the direct child count of a container cell.
func (c *Cell) Len() int {
	if c.kind == types.TagCompound {
		return len(c.entries)
	}
	return len(c.children)
}

// Append adds an element cell to a list cell.
func (c *Cell) Append(child *Cell) { c.children = append(c.children, child) }

// PutChild inserts an entry cell into a compound cell under its own name.
func (c *Cell) PutChild(child *Cell) {
	if c.entries == nil {
		c.entries = make(map[string]*Cell)
	}
	c.entries[child.name] = child
}

// RemoveChild drops a compound entry behind the binding's back.
func (c *Cell) RemoveChild(name string) { delete(c.entries, name) }
