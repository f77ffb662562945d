package main

import (
	"fmt"
	"strings"

	"github.com/YukonAppleGeek/nbtkit/internal/printer"
	"github.com/YukonAppleGeek/nbtkit/pkg/nbt"
	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two tag streams",
		Long: `The diff command renders both streams as indented SNBT and prints a
line diff: added lines are marked +, removed lines -.

Example:
  nbtctl diff before.nbt after.nbt
  nbtctl diff before.nbt after.nbt --no-color`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	aPath := args[0]
	bPath := args[1]

	printVerbose("Comparing %s and %s...\n", aPath, bPath)

	aText, err := renderCanonical(aPath)
	if err != nil {
		return err
	}
	bText, err := renderCanonical(bPath)
	if err != nil {
		return err
	}

	if aText == bText {
		printInfo("No differences.\n")
		return nil
	}

	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(aText, bText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed).SprintFunc()
	if noColor {
		ins = fmt.Sprint
		del = fmt.Sprint
	}

	printInfo("--- %s\n", aPath)
	printInfo("+++ %s\n", bPath)
	for _, d := range diffs {
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			switch d.Type {
			case diffpatch.DiffInsert:
				printInfo("%s\n", ins("+"+line))
			case diffpatch.DiffDelete:
				printInfo("%s\n", del("-"+line))
			case diffpatch.DiffEqual:
				printInfo(" %s\n", line)
			}
		}
	}
	return nil
}

// renderCanonical reads one stream and renders it as indented colorless
// SNBT, the shape both sides are diffed in.
func renderCanonical(path string) (string, error) {
	root, err := nbt.ReadFile(path, nbt.ReadOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	opts := printer.DefaultOptions()
	opts.Indent = printer.DefaultIndent
	var sb strings.Builder
	if err := printer.Print(&sb, root, opts); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", path, err)
	}
	return sb.String(), nil
}
