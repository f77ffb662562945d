package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YukonAppleGeek/nbtkit/pkg/nbt"
)

// writeTestStream encodes a small item tree into a temp file and returns
// its path.
func writeTestStream(t *testing.T) string {
	t.Helper()
	enchants, err := nbt.OfList("enchants", int32(1), int32(5))
	if err != nil {
		t.Fatalf("failed to build list: %v", err)
	}
	item, err := nbt.OfCompound("item",
		nbt.OfInt("id", 42),
		nbt.OfString("name", "sword"),
		enchants,
	)
	if err != nil {
		t.Fatalf("failed to build compound: %v", err)
	}
	path := filepath.Join(t.TempDir(), "item.nbt")
	if err := nbt.WriteFile(path, item); err != nil {
		t.Fatalf("failed to write test stream: %v", err)
	}
	return path
}

// resetFlags restores the global and per-command flag variables between
// table cases.
func resetFlags() {
	verbose = false
	quiet = false
	noColor = true

	dumpFormat = "snbt"
	dumpDepth = 0
	dumpPath = ""
	dumpCompact = false
	infoJSON = false
	setOut = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
