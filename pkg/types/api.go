package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalid      ErrKind = iota // invalid or unconstructible tag kind
	ErrKindType                        // value/kind disagreement
	ErrKindCast                        // wrong container shape, or no tag at all
	ErrKindNotFound                    // missing compound key
	ErrKindConstruction                // backing representation could not be made
	ErrKindFormat                      // malformed or truncated tag stream
	ErrKindRange                       // list index out of range
	ErrKindLimit                       // depth or size guard tripped
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned by the library. All failures wrap one of these, with
// the offending kind and name carried in the wrapping message.
var (
	// ErrInvalidKind indicates a raw ID outside the registry, or an attempt
	// to construct TAG_End.
	ErrInvalidKind = &Error{Kind: ErrKindInvalid, Msg: "invalid tag kind"}
	// ErrUnsupportedType indicates a Go value with no corresponding kind.
	ErrUnsupportedType = &Error{Kind: ErrKindInvalid, Msg: "unsupported value type"}
	// ErrTypeMismatch indicates a value whose runtime type disagrees with the
	// tag's kind, on read or write.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "tag value has different kind"}
	// ErrElementKindMismatch indicates a heterogeneous list insertion.
	ErrElementKindMismatch = &Error{Kind: ErrKindType, Msg: "list element has different kind"}
	// ErrUnsupportedCast indicates a container cast against the wrong dynamic kind.
	ErrUnsupportedCast = &Error{Kind: ErrKindCast, Msg: "tag cannot be cast to requested shape"}
	// ErrNilTag indicates a nil tag or handle where one was required.
	ErrNilTag = &Error{Kind: ErrKindCast, Msg: "tag is nil"}
	// ErrNotFound indicates a missing compound key.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrConstruction indicates the backing representation for a requested
	// kind could not be created.
	ErrConstruction = &Error{Kind: ErrKindConstruction, Msg: "cannot construct tag"}
	// ErrTruncated indicates the stream ended inside a tag.
	ErrTruncated = &Error{Kind: ErrKindFormat, Msg: "truncated tag stream"}
	// ErrMalformed indicates structurally invalid stream contents.
	ErrMalformed = &Error{Kind: ErrKindFormat, Msg: "malformed tag stream"}
	// ErrIndexOutOfRange indicates a list access past either end.
	ErrIndexOutOfRange = &Error{Kind: ErrKindRange, Msg: "list index out of range"}
	// ErrDepthExceeded indicates nesting beyond the configured depth guard.
	ErrDepthExceeded = &Error{Kind: ErrKindLimit, Msg: "tag nesting too deep"}
)

// -----------------------------------------------------------------------------
// Node contracts
// -----------------------------------------------------------------------------

// Tag is the contract shared by every node in a tag tree, leaf or container,
// detached or bound. A tag's kind never changes after construction; its name
// is meaningful only while the tag is a direct child of a compound.
//
// Value and SetValue trade in the kind's native Go type (see KindOf). For a
// detached tag they touch local storage and the read path cannot fail; for a
// bound tag they proxy through the live external cell, so reads and writes
// observe and mutate the external object immediately.
type Tag interface {
	// Kind returns the fixed kind discriminator of this tag.
	Kind() Kind

	// Name returns the tag's name ("" for list elements and stream roots).
	Name() string

	// SetName renames the tag. Containers call this on insertion: compounds
	// normalize a child's name to its key, lists clear it.
	SetName(name string) error

	// Value returns the current value in the kind's native Go shape.
	// Array values alias the tag's storage for detached tags; treat them as
	// owned by the tag unless normalized.
	Value() (any, error)

	// SetValue replaces the value. The runtime type must match the kind's
	// native type exactly or the call fails with ErrTypeMismatch.
	SetValue(v any) error
}

// List is an ordered, homogeneously-kinded sequence of tags. Elements are
// identified by position; their own names are cleared on insertion.
//
// The element kind is established by the first insertion (or declared at
// construction) and stays fixed afterwards, even if the list empties.
type List interface {
	Tag

	// ElementKind returns the established element kind, or TagEnd while the
	// list is empty and undeclared.
	ElementKind() Kind

	// Len returns the number of elements.
	Len() (int, error)

	// Get returns the element at index i, or ErrIndexOutOfRange.
	Get(i int) (Tag, error)

	// Set replaces the element at index i. Fails with ErrElementKindMismatch
	// if t's kind disagrees with the element kind, ErrIndexOutOfRange if i
	// is past either end, ErrNilTag on nil.
	Set(i int, t Tag) error

	// Add appends t, clearing its name. Fails with ErrElementKindMismatch
	// if t's kind disagrees with the established element kind.
	Add(t Tag) error

	// Remove deletes and returns the element at index i.
	Remove(i int) (Tag, error)
}

// Compound maps unique names to child tags. Put replaces any previous child
// under the same key and renames the inserted tag to the key, so structural
// name and map key always agree.
//
// Iteration order (Keys, serialization) is insertion order for detached
// compounds. For bound compounds it is sorted by key; the external binding's
// own order is not preserved and must not be relied upon.
type Compound interface {
	Tag

	// Len returns the number of entries.
	Len() (int, error)

	// Keys returns the child names in iteration order.
	Keys() ([]string, error)

	// Contains reports whether a child exists under key.
	Contains(key string) (bool, error)

	// Get returns the child under key, or ErrNotFound.
	Get(key string) (Tag, error)

	// Put associates t with key, replacing any prior entry and renaming t
	// to key. Fails with ErrNilTag on nil.
	Put(key string, t Tag) error

	// Remove deletes the child under key and returns it, or ErrNotFound.
	Remove(key string) (Tag, error)

	// Typed accessors. Each fails with ErrNotFound if the key is absent and
	// ErrTypeMismatch if the stored kind disagrees with the requested type.
	// Callers needing defaults must branch on ErrNotFound explicitly; this
	// layer never substitutes one.
	GetByte(key string) (int8, error)
	GetShort(key string) (int16, error)
	GetInt(key string) (int32, error)
	GetLong(key string) (int64, error)
	GetFloat(key string) (float32, error)
	GetDouble(key string) (float64, error)
	GetString(key string) (string, error)
	GetByteArray(key string) ([]byte, error)
	GetIntArray(key string) ([]int32, error)
	GetList(key string) (List, error)
	GetCompound(key string) (Compound, error)

	// Typed setters. Each mints a detached element of the matching kind and
	// Puts it under key.
	PutByte(key string, v int8) error
	PutShort(key string, v int16) error
	PutInt(key string, v int32) error
	PutLong(key string, v int64) error
	PutFloat(key string, v float32) error
	PutDouble(key string, v float64) error
	PutString(key string, v string) error
	PutByteArray(key string, v []byte) error
	PutIntArray(key string, v []int32) error
}

// -----------------------------------------------------------------------------
// Host-binding seam
// -----------------------------------------------------------------------------

// Handle is the live value cell a host binding supplies when projecting tag
// data onto an externally-owned object graph. nbtkit wraps a Handle into a
// bound Tag (see the factory's Bind); every read and write on that tag goes
// through the handle, so the external object is observed and mutated in
// place, with no copying.
//
// Load and Store trade in the kind's native Go type. For container kinds the
// loaded children are themselves Tags, typically bound ones, so the whole
// reachable graph stays live. The container value returned by Load (the
// slice or map itself) is the caller's to modify; changes take effect in
// the external object only through Store.
//
// The wrapper performs no lifetime management of the external object: a
// bound tag must not be used after the external graph is destroyed, and
// concurrent external mutation while the wrapper is in use is a data race
// the caller must avoid.
type Handle interface {
	// Kind returns the fixed kind of the external cell.
	Kind() Kind

	// Name returns the cell's current name.
	Name() string

	// Rename changes the cell's name in the external object.
	Rename(name string) error

	// Load reads the current value from the external object.
	Load() (any, error)

	// Store writes a value through to the external object.
	Store(v any) error
}

// -----------------------------------------------------------------------------
// Codec options
// -----------------------------------------------------------------------------

// DefaultMaxDepth is the nesting bound applied when ReadOptions.MaxDepth is
// zero, and the bound used by normalization. It guards against hostile
// streams and cyclic foreign graphs.
const DefaultMaxDepth = 512

// ReadOptions controls safety limits when decoding a tag stream.
type ReadOptions struct {
	// MaxDepth bounds container nesting while reading. Zero selects
	// DefaultMaxDepth. Exceeding it fails with ErrDepthExceeded.
	MaxDepth int
}
