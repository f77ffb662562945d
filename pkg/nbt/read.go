package nbt

import (
	"bufio"
	"io"
	"os"

	"github.com/YukonAppleGeek/nbtkit/internal/codec"
)

// Read decodes one named tag from r and returns it as a detached tree.
// Bytes after the root tag are left unread. Structural violations fail
// with ErrMalformed, short input with ErrTruncated, and nesting past
// opts.MaxDepth (DefaultMaxDepth when zero) with ErrDepthExceeded.
//
// Example:
//
//	t, err := nbt.Read(f, nbt.ReadOptions{})
func Read(r io.Reader, opts ReadOptions) (Tag, error) {
	return codec.Read(r, opts)
}

// ReadFile decodes the root tag of the file at path.
//
// Example:
//
//	t, err := nbt.ReadFile("level.nbt", nbt.ReadOptions{})
func ReadFile(path string, opts ReadOptions) (Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return codec.Read(bufio.NewReader(f), opts)
}
