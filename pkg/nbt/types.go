package nbt

import "github.com/YukonAppleGeek/nbtkit/pkg/types"

// Re-export the core contracts from pkg/types so users only need to import
// pkg/nbt.

// Core contracts.
type (
	Tag      = types.Tag
	List     = types.List
	Compound = types.Compound
	Handle   = types.Handle
	Kind     = types.Kind
)

// ReadOptions controls safety limits when decoding a tag stream.
type ReadOptions = types.ReadOptions

// Tag kinds, fixed to their wire IDs.
const (
	TagEnd       = types.TagEnd
	TagByte      = types.TagByte
	TagShort     = types.TagShort
	TagInt       = types.TagInt
	TagLong      = types.TagLong
	TagFloat     = types.TagFloat
	TagDouble    = types.TagDouble
	TagByteArray = types.TagByteArray
	TagString    = types.TagString
	TagList      = types.TagList
	TagCompound  = types.TagCompound
	TagIntArray  = types.TagIntArray
)

// DefaultMaxDepth is the nesting bound applied when ReadOptions.MaxDepth is
// zero, and the bound used by Normalize and Walk.
const DefaultMaxDepth = types.DefaultMaxDepth

// Kind lookups.
var (
	KindFromID = types.KindFromID
	KindOf     = types.KindOf
)

// Sentinel errors. Failures wrap one of these; match with errors.Is.
var (
	ErrInvalidKind         = types.ErrInvalidKind
	ErrUnsupportedType     = types.ErrUnsupportedType
	ErrTypeMismatch        = types.ErrTypeMismatch
	ErrElementKindMismatch = types.ErrElementKindMismatch
	ErrUnsupportedCast     = types.ErrUnsupportedCast
	ErrNilTag              = types.ErrNilTag
	ErrNotFound            = types.ErrNotFound
	ErrConstruction        = types.ErrConstruction
	ErrTruncated           = types.ErrTruncated
	ErrMalformed           = types.ErrMalformed
	ErrIndexOutOfRange     = types.ErrIndexOutOfRange
	ErrDepthExceeded       = types.ErrDepthExceeded
)
