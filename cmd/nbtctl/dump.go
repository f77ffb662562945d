package main

import (
	"fmt"
	"os"

	"github.com/YukonAppleGeek/nbtkit/internal/printer"
	"github.com/YukonAppleGeek/nbtkit/pkg/nbt"
	"github.com/spf13/cobra"
)

var (
	dumpFormat  string
	dumpDepth   int
	dumpPath    string
	dumpCompact bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpFormat, "format", "snbt", "Output format (snbt, json, yaml)")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Elide containers nested deeper than this (0 = unlimited)")
	cmd.Flags().StringVar(&dumpPath, "path", "", "Dump only the subtree at this dotted path")
	cmd.Flags().BoolVar(&dumpCompact, "compact", false, "Single-line output")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of a tag stream",
		Long: `The dump command reads a tag stream and renders it as SNBT text,
JSON, or YAML. SNBT output is colored on terminals unless --no-color.

Example:
  nbtctl dump level.nbt
  nbtctl dump level.nbt --format yaml
  nbtctl dump level.nbt --path "stats.enchants"
  nbtctl dump level.nbt --depth 2 --compact`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	filePath := args[0]

	printVerbose("Reading tag stream: %s\n", filePath)

	target, err := nbt.ReadFile(filePath, nbt.ReadOptions{})
	if err != nil {
		return fmt.Errorf("failed to read tag stream: %w", err)
	}

	if dumpPath != "" {
		target, err = nbt.Resolve(target, dumpPath)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = dumpDepth
	if !dumpCompact {
		opts.Indent = printer.DefaultIndent
	}
	switch dumpFormat {
	case "snbt":
		opts.Format = printer.FormatSNBT
		opts.Color = !noColor
	case "json":
		opts.Format = printer.FormatJSON
	case "yaml":
		opts.Format = printer.FormatYAML
	default:
		return fmt.Errorf("unknown format %q (want snbt, json, or yaml)", dumpFormat)
	}

	if quiet {
		return nil
	}
	return printer.Print(os.Stdout, target, opts)
}
