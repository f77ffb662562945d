package nbt_test

import (
	"bytes"
	"fmt"

	"github.com/YukonAppleGeek/nbtkit/pkg/nbt"
)

// Example builds a small tree, round-trips it through the binary stream
// form, and reads a field back out of the decoded copy.
func Example() {
	enchants, _ := nbt.OfList("enchants", int32(1), int32(5))
	item, _ := nbt.OfCompound("item",
		nbt.OfInt("id", 42),
		nbt.OfString("name", "sword"),
		enchants,
	)

	var buf bytes.Buffer
	if err := nbt.Write(&buf, item); err != nil {
		fmt.Printf("write failed: %v\n", err)
		return
	}

	back, err := nbt.Read(&buf, nbt.ReadOptions{})
	if err != nil {
		fmt.Printf("read failed: %v\n", err)
		return
	}

	c, _ := nbt.AsCompound(back)
	name, _ := c.GetString("name")
	fmt.Println(name)
	fmt.Println(nbt.Equal(item, back))
	// Output:
	// sword
	// true
}

// ExampleWalk prints every tag with its path from the root.
func ExampleWalk() {
	enchants, _ := nbt.OfList("enchants", int32(1), int32(5))
	item, _ := nbt.OfCompound("item", nbt.OfInt("id", 42), enchants)

	_ = nbt.Walk(item, func(path string, t nbt.Tag) error {
		if path == "" {
			path = "(root)"
		}
		fmt.Println(path, t.Kind())
		return nil
	})
	// Output:
	// (root) TAG_Compound
	// id TAG_Int
	// enchants TAG_List
	// enchants[0] TAG_Int
	// enchants[1] TAG_Int
}

// ExampleResolve fetches one leaf by its dotted path.
func ExampleResolve() {
	enchants, _ := nbt.OfList("enchants", int32(1), int32(5))
	stats, _ := nbt.OfCompound("stats", enchants)
	player, _ := nbt.OfCompound("player", stats)

	leaf, _ := nbt.Resolve(player, "stats.enchants[1]")
	v, _ := leaf.Value()
	fmt.Println(v)
	// Output:
	// 5
}

// ExampleOfCompound shows bulk construction keyed by child names.
func ExampleOfCompound() {
	item, _ := nbt.OfCompound("item", nbt.OfInt("id", 42), nbt.OfString("name", "sword"))

	id, _ := item.GetInt("id")
	name, _ := item.GetString("name")
	fmt.Println(id, name)
	// Output:
	// 42 sword
}
