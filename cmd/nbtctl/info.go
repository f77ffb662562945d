package main

import (
	"fmt"
	"os"

	"github.com/YukonAppleGeek/nbtkit/pkg/nbt"
	"github.com/spf13/cobra"
)

var infoJSON bool

func init() {
	cmd := newInfoCmd()
	cmd.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a tag stream",
		Long: `The info command reads a tag stream and reports the root tag, the
number of tags by kind, and the maximum nesting depth.

Example:
  nbtctl info level.nbt
  nbtctl info level.nbt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// streamStats accumulates per-kind tag counts over one tree.
type streamStats struct {
	counts   map[nbt.Kind]int
	total    int
	maxDepth int
}

func (s *streamStats) collect(t nbt.Tag, depth int) error {
	s.counts[t.Kind()]++
	s.total++
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
	switch t.Kind() {
	case nbt.TagCompound:
		c, err := nbt.AsCompound(t)
		if err != nil {
			return err
		}
		keys, err := c.Keys()
		if err != nil {
			return err
		}
		for _, k := range keys {
			child, err := c.Get(k)
			if err != nil {
				return err
			}
			if err := s.collect(child, depth+1); err != nil {
				return err
			}
		}
	case nbt.TagList:
		l, err := nbt.AsList(t)
		if err != nil {
			return err
		}
		n, err := l.Len()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			child, err := l.Get(i)
			if err != nil {
				return err
			}
			if err := s.collect(child, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func runInfo(args []string) error {
	filePath := args[0]

	printVerbose("Reading tag stream: %s\n", filePath)

	root, err := nbt.ReadFile(filePath, nbt.ReadOptions{})
	if err != nil {
		return fmt.Errorf("failed to read tag stream: %w", err)
	}

	stats := &streamStats{counts: make(map[nbt.Kind]int)}
	if err := stats.collect(root, 1); err != nil {
		return fmt.Errorf("failed to traverse tree: %w", err)
	}

	if infoJSON {
		byKind := make(map[string]int, len(stats.counts))
		for k, n := range stats.counts {
			byKind[k.String()] = n
		}
		return printJSON(map[string]interface{}{
			"file":     filePath,
			"rootName": root.Name(),
			"rootKind": root.Kind().String(),
			"tags":     stats.total,
			"maxDepth": stats.maxDepth,
			"byKind":   byKind,
		})
	}

	printInfo("\nTag Stream: %s\n", filePath)
	if stat, err := os.Stat(filePath); err == nil {
		printInfo("  Size: %d bytes\n", stat.Size())
	}
	rootName := root.Name()
	if rootName == "" {
		rootName = `""`
	}
	printInfo("  Root: %s (%s)\n", rootName, root.Kind())
	printInfo("  Tags: %d\n", stats.total)
	printInfo("  Max depth: %d\n", stats.maxDepth)

	printInfo("\nTags by kind:\n")
	for k := nbt.TagByte; k <= nbt.TagIntArray; k++ {
		if n := stats.counts[k]; n > 0 {
			printInfo("  %-15s %d\n", k, n)
		}
	}

	return nil
}
