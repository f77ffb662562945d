package nbt

import (
	"bytes"
	"io"
	"os"

	"github.com/YukonAppleGeek/nbtkit/internal/codec"
)

// Write encodes t to w in binary form, big-endian with MUTF-8 strings.
// Bound tags are read through their handles, so the bytes reflect the
// host graph at call time. Writing nil fails with ErrNilTag; host values
// that contradict their declared kind fail with ErrTypeMismatch.
//
// Example:
//
//	err := nbt.Write(f, t)
func Write(w io.Writer, t Tag) error {
	return codec.Write(w, t)
}

// WriteFile encodes t and writes it to the file at path, creating or
// truncating it. The tag is encoded in memory first so an encoding
// failure never leaves a half-written file behind.
//
// Example:
//
//	err := nbt.WriteFile("level.nbt", t)
func WriteFile(path string, t Tag) error {
	var buf bytes.Buffer
	if err := codec.Write(&buf, t); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
