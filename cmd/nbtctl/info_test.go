package main

import (
	"strings"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	stream := writeTestStream(t)

	resetFlags()
	output, err := captureOutput(t, func() error {
		return runInfo([]string{stream})
	})
	if err != nil {
		t.Fatalf("runInfo failed: %v", err)
	}

	// item{id, name, enchants[1, 5]}: six tags, three levels.
	assertContains(t, output, []string{
		"Root: item (TAG_Compound)",
		"Tags: 6",
		"Max depth: 3",
		"TAG_Int",
		"TAG_String",
		"TAG_List",
	})
}

func TestInfoCommand_JSON(t *testing.T) {
	stream := writeTestStream(t)

	resetFlags()
	infoJSON = true
	output, err := captureOutput(t, func() error {
		return runInfo([]string{stream})
	})
	if err != nil {
		t.Fatalf("runInfo failed: %v", err)
	}

	assertJSON(t, output)
	assertContains(t, output, []string{
		`"rootKind": "TAG_Compound"`,
		`"rootName": "item"`,
		`"tags": 6`,
		`"maxDepth": 3`,
	})
}

func TestInfoCommand_Quiet(t *testing.T) {
	stream := writeTestStream(t)

	resetFlags()
	quiet = true
	output, err := captureOutput(t, func() error {
		return runInfo([]string{stream})
	})
	if err != nil {
		t.Fatalf("runInfo failed: %v", err)
	}
	if strings.TrimSpace(output) != "" {
		t.Errorf("quiet run produced output: %q", output)
	}
}
