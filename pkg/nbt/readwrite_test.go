package nbt_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/YukonAppleGeek/nbtkit/pkg/nbt"
)

func exampleItem(t *testing.T) nbt.Compound {
	t.Helper()
	enchants, err := nbt.OfList("enchants", int32(1), int32(5))
	if err != nil {
		t.Fatalf("OfList failed: %v", err)
	}
	item, err := nbt.OfCompound("item",
		nbt.OfInt("id", 42),
		nbt.OfString("name", "sword"),
		enchants,
	)
	if err != nil {
		t.Fatalf("OfCompound failed: %v", err)
	}
	return item
}

// TestWriteRead_Buffer round-trips a tree through an in-memory stream.
func TestWriteRead_Buffer(t *testing.T) {
	item := exampleItem(t)

	var buf bytes.Buffer
	if err := nbt.Write(&buf, item); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	back, err := nbt.Read(&buf, nbt.ReadOptions{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !nbt.Equal(item, back) {
		t.Error("decoded tree differs from the original")
	}
}

// TestFileRoundTrip round-trips a tree through WriteFile/ReadFile.
func TestFileRoundTrip(t *testing.T) {
	item := exampleItem(t)
	path := filepath.Join(t.TempDir(), "item.nbt")

	if err := nbt.WriteFile(path, item); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back the file failed: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("WriteFile produced an empty file")
	}

	back, err := nbt.ReadFile(path, nbt.ReadOptions{})
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !nbt.Equal(item, back) {
		t.Error("file round trip changed the tree")
	}
}

// TestReadFile_Missing surfaces the OS error for an absent file.
func TestReadFile_Missing(t *testing.T) {
	_, err := nbt.ReadFile(filepath.Join(t.TempDir(), "absent.nbt"), nbt.ReadOptions{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile(absent) = %v, want ErrNotExist", err)
	}
}

// TestWriteFile_EncodeFailure leaves no file behind when encoding fails.
func TestWriteFile_EncodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.nbt")
	if err := nbt.WriteFile(path, nil); !errors.Is(err, nbt.ErrNilTag) {
		t.Fatalf("WriteFile(nil) = %v, want ErrNilTag", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file exists after failed encode (stat: %v)", err)
	}
}

// TestRead_DepthOption threads MaxDepth through to the decoder.
func TestRead_DepthOption(t *testing.T) {
	inner, err := nbt.OfCompound("inner")
	if err != nil {
		t.Fatalf("OfCompound failed: %v", err)
	}
	root, err := nbt.OfCompound("root", inner)
	if err != nil {
		t.Fatalf("OfCompound failed: %v", err)
	}

	var buf bytes.Buffer
	if err := nbt.Write(&buf, root); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data := buf.Bytes()

	if _, err := nbt.Read(bytes.NewReader(data), nbt.ReadOptions{MaxDepth: 2}); err != nil {
		t.Fatalf("Read with sufficient depth failed: %v", err)
	}
	if _, err := nbt.Read(bytes.NewReader(data), nbt.ReadOptions{MaxDepth: 1}); !errors.Is(err, nbt.ErrDepthExceeded) {
		t.Errorf("Read with depth 1 = %v, want ErrDepthExceeded", err)
	}
}
