// Package types defines the contracts of the nbtkit tag tree: the closed
// set of tag kinds, the typed error taxonomy, and the Tag/List/Compound
// interfaces shared by detached (in-memory) and bound (host-backed) nodes.
//
// This package only exposes interfaces and core types. The concrete node
// implementations, the stream codec, and the factory live in internal
// packages and are reached through pkg/nbt.
//
// Design goals:
//   - One authoritative kind registry; a node's kind is immutable after
//     construction.
//   - Identical read/write/iteration semantics regardless of node origin.
//   - Typed errors with stable categories (invalid/type/cast/format/...).
//   - Never panic on malformed input; every failure carries context.
//
// This package has no dependencies beyond the standard library.
package types
