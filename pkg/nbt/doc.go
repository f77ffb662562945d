/*
Package nbt builds, edits, and serializes named binary tag trees.

# Quick Start

Build a tree, write it, read it back:

	item := nbt.NewCompound("item")
	item.PutInt("id", 42)
	item.PutString("name", "sword")
	enchants, _ := nbt.OfList("enchants", int32(1), int32(5))
	item.Put("enchants", enchants)

	var buf bytes.Buffer
	if err := nbt.Write(&buf, item); err != nil {
	    log.Fatal(err)
	}
	back, err := nbt.Read(&buf, nbt.ReadOptions{})
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(nbt.Equal(item, back)) // true

# Tags

A tree is made of tags. Every tag has a fixed kind (one of twelve: eight
scalar kinds plus two arrays, lists, and compounds), a name, and a value in
the kind's native Go shape. Compounds key children by name; lists hold a
homogeneous sequence and clear element names on insertion.

Tags come in two origins sharing one contract. A detached tag owns its
storage. A bound tag is a live view over an externally-owned value cell
(see Handle): reads observe the external object as it is now, writes land
in it immediately, and no copying happens in between. Normalize deep-copies
any tag, bound or detached, into an independent detached tree.

# Binding

Hosts project their own object graphs through the Handle interface and wrap
cells with Bind. Everything reachable from a bound container stays bound,
so a whole foreign tree can be edited in place through the tag API.

# Serialization

Write serializes any tag; Read always produces detached trees, so binding
status does not survive a round trip but structure and values do. The wire
format is the big-endian name-prefixed tag stream; strings travel as
modified UTF-8 (NUL as 0xC0 0x80, supplementary characters as surrogate
pairs). ReadOptions.MaxDepth bounds nesting while decoding.

# Concurrency

Trees are not internally synchronized. Concurrent reads of one tree are
safe only while nothing mutates it; a bound tag additionally aliases the
external object, so external mutation while the wrapper is in use is a data
race the caller must avoid.
*/
package nbt
