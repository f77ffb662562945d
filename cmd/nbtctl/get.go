package main

import (
	"fmt"
	"os"

	"github.com/YukonAppleGeek/nbtkit/internal/printer"
	"github.com/YukonAppleGeek/nbtkit/pkg/nbt"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print one tag by its dotted path",
		Long: `The get command resolves a dotted path (compound keys separated by
dots, list elements as [i]) and prints the tag it lands on as SNBT.

Example:
  nbtctl get level.nbt "name"
  nbtctl get level.nbt "stats.enchants[1]"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	filePath := args[0]
	tagPath := args[1]

	printVerbose("Reading tag stream: %s\n", filePath)

	root, err := nbt.ReadFile(filePath, nbt.ReadOptions{})
	if err != nil {
		return fmt.Errorf("failed to read tag stream: %w", err)
	}

	target, err := nbt.Resolve(root, tagPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if quiet {
		return nil
	}
	opts := printer.DefaultOptions()
	opts.Color = !noColor
	return printer.Print(os.Stdout, target, opts)
}
