package nbt_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/YukonAppleGeek/nbtkit/internal/testutil"
	"github.com/YukonAppleGeek/nbtkit/pkg/nbt"
)

func walkFixture(t *testing.T) nbt.Compound {
	t.Helper()
	enchants, err := nbt.OfList("enchants", int32(1), int32(5))
	if err != nil {
		t.Fatalf("OfList failed: %v", err)
	}
	stats, err := nbt.OfCompound("stats", nbt.OfDouble("health", 20), enchants)
	if err != nil {
		t.Fatalf("OfCompound failed: %v", err)
	}
	root, err := nbt.OfCompound("item", nbt.OfInt("id", 42), stats, nbt.OfString("zzz", "last"))
	if err != nil {
		t.Fatalf("OfCompound failed: %v", err)
	}
	return root
}

// TestWalk_Order checks pre-order traversal and path construction.
func TestWalk_Order(t *testing.T) {
	root := walkFixture(t)

	var paths []string
	err := nbt.Walk(root, func(path string, tag nbt.Tag) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{
		"",
		"id",
		"stats",
		"stats.health",
		"stats.enchants",
		"stats.enchants[0]",
		"stats.enchants[1]",
		"zzz",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

// TestWalk_SkipChildren prunes one subtree without stopping the walk.
func TestWalk_SkipChildren(t *testing.T) {
	root := walkFixture(t)

	var paths []string
	err := nbt.Walk(root, func(path string, tag nbt.Tag) error {
		paths = append(paths, path)
		if path == "stats" {
			return nbt.SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{"", "id", "stats", "zzz"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

// TestWalk_Abort stops on the first non-skip error and returns it as is.
func TestWalk_Abort(t *testing.T) {
	root := walkFixture(t)
	boom := errors.New("boom")

	var seen int
	err := nbt.Walk(root, func(path string, tag nbt.Tag) error {
		seen++
		if path == "stats.health" {
			return boom
		}
		return nil
	})
	if err != boom {
		t.Fatalf("Walk = %v, want the callback error unchanged", err)
	}
	if seen != 4 {
		t.Errorf("visited %d tags before aborting, want 4", seen)
	}
}

// TestWalk_RootList indexes from the root when the root is a list.
func TestWalk_RootList(t *testing.T) {
	l, err := nbt.OfList("xs", int32(7), int32(8))
	if err != nil {
		t.Fatalf("OfList failed: %v", err)
	}

	var paths []string
	err = nbt.Walk(l, func(path string, tag nbt.Tag) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if want := []string{"", "[0]", "[1]"}; !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

// TestWalk_Misuse rejects nil roots and nil callbacks.
func TestWalk_Misuse(t *testing.T) {
	if err := nbt.Walk(nil, func(string, nbt.Tag) error { return nil }); !errors.Is(err, nbt.ErrNilTag) {
		t.Errorf("Walk(nil root) = %v, want ErrNilTag", err)
	}
	root := walkFixture(t)
	if err := nbt.Walk(root, nil); err == nil {
		t.Error("Walk(nil callback) succeeded, want error")
	}
}

// TestWalk_CyclicGraph terminates on a self-referencing bound graph.
func TestWalk_CyclicGraph(t *testing.T) {
	cell := testutil.NewCompoundCell("root")
	cell.PutChild(cell)

	b, err := nbt.Bind(cell)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	err = nbt.Walk(b, func(string, nbt.Tag) error { return nil })
	if !errors.Is(err, nbt.ErrDepthExceeded) {
		t.Errorf("Walk over a cycle = %v, want ErrDepthExceeded", err)
	}
}

// TestResolve follows dotted paths with list indices.
func TestResolve(t *testing.T) {
	root := walkFixture(t)

	got, err := nbt.Resolve(root, "")
	if err != nil {
		t.Fatalf("Resolve(\"\") failed: %v", err)
	}
	if got != nbt.Tag(root) {
		t.Error("empty path did not resolve to the root")
	}

	leaf, err := nbt.Resolve(root, "stats.enchants[1]")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	v, err := leaf.Value()
	if err != nil || v != int32(5) {
		t.Errorf("stats.enchants[1] = %v, %v, want 5", v, err)
	}

	if _, err := nbt.Resolve(root, "stats.mana"); !errors.Is(err, nbt.ErrNotFound) {
		t.Errorf("missing key = %v, want ErrNotFound", err)
	}
	if _, err := nbt.Resolve(root, "stats.enchants[9]"); !errors.Is(err, nbt.ErrIndexOutOfRange) {
		t.Errorf("bad index = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := nbt.Resolve(root, "id.inner"); !errors.Is(err, nbt.ErrUnsupportedCast) {
		t.Errorf("descent into scalar = %v, want ErrUnsupportedCast", err)
	}
	if _, err := nbt.Resolve(root, "stats.enchants[x]"); err == nil {
		t.Error("bad index syntax succeeded, want error")
	}
	if _, err := nbt.Resolve(nil, "id"); !errors.Is(err, nbt.ErrNilTag) {
		t.Errorf("nil root = %v, want ErrNilTag", err)
	}
}

// TestResolve_RootList indexes directly into a root list.
func TestResolve_RootList(t *testing.T) {
	l, err := nbt.OfList("xs", int32(7), int32(8))
	if err != nil {
		t.Fatalf("OfList failed: %v", err)
	}
	got, err := nbt.Resolve(l, "[1]")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	v, err := got.Value()
	if err != nil || v != int32(8) {
		t.Errorf("[1] = %v, %v, want 8", v, err)
	}
}
