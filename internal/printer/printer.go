// Package printer renders tag trees for humans: a stringified tag form
// with type suffixes ({id: 42, name: "sword"}), or JSON/YAML built from
// plain Go values.
package printer

import (
	"io"

	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

const (
	DefaultIndent   = "  "
	DefaultMaxDepth = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatSNBT outputs the stringified tag text form.
	FormatSNBT Format = "snbt"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format (snbt, json, yaml).
	// Default: FormatSNBT
	Format Format

	// Indent is the per-level indent string for multi-line output. Empty
	// selects compact single-line output. YAML ignores it and always
	// renders multi-line.
	// Default: "" (compact)
	Indent string

	// Color enables ANSI coloring of SNBT output. JSON and YAML are never
	// colored.
	// Default: false
	Color bool

	// MaxDepth elides containers nested deeper than this many levels,
	// rendering them as {...} or [...] (0 = unlimited). SNBT only.
	// Default: 0 (unlimited)
	MaxDepth int
}

// DefaultOptions returns sensible defaults: compact colorless SNBT.
func DefaultOptions() Options {
	return Options{
		Format:   FormatSNBT,
		Indent:   "",
		Color:    false,
		MaxDepth: DefaultMaxDepth,
	}
}

// Printer renders tag trees to one writer with fixed options.
type Printer struct {
	w    io.Writer
	opts Options
}

// New creates a new Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

// Print renders one tag tree, bound or detached, followed by a newline.
func (p *Printer) Print(t types.Tag) error {
	if t == nil {
		return &types.Error{Kind: types.ErrKindCast, Msg: "print tag", Err: types.ErrNilTag}
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(t)
	case FormatYAML:
		return p.printYAML(t)
	default:
		return p.printSNBT(t)
	}
}

// Print renders one tag tree to w. Shorthand for New(w, opts).Print(t).
func Print(w io.Writer, t types.Tag, opts Options) error {
	return New(w, opts).Print(t)
}
