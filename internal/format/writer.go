package format

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/YukonAppleGeek/nbtkit/internal/mutf8"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Writer encodes wire primitives to an io.Writer.
type Writer struct {
	w   io.Writer
	n   int64
	buf [8]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 { return w.n }

func (w *Writer) write(b []byte) error {
	got, err := w.w.Write(b)
	w.n += int64(got)
	return err
}

func (w *Writer) U8(v byte) error {
	w.buf[0] = v
	return w.write(w.buf[:1])
}

func (w *Writer) U16(v uint16) error {
	binary.BigEndian.PutUint16(w.buf[:2], v)
	return w.write(w.buf[:2])
}

func (w *Writer) I16(v int16) error {
	return w.U16(uint16(v))
}

func (w *Writer) I32(v int32) error {
	binary.BigEndian.PutUint32(w.buf[:4], uint32(v))
	return w.write(w.buf[:4])
}

func (w *Writer) I64(v int64) error {
	binary.BigEndian.PutUint64(w.buf[:8], uint64(v))
	return w.write(w.buf[:8])
}

func (w *Writer) F32(v float32) error {
	binary.BigEndian.PutUint32(w.buf[:4], math.Float32bits(v))
	return w.write(w.buf[:4])
}

func (w *Writer) F64(v float64) error {
	binary.BigEndian.PutUint64(w.buf[:8], math.Float64bits(v))
	return w.write(w.buf[:8])
}

func (w *Writer) Bytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return w.write(b)
}

// String writes a length-prefixed modified UTF-8 string. Strings whose
// encoded form exceeds the 2-byte length prefix fail with
// types.ErrMalformed; nothing is emitted in that case.
func (w *Writer) String(s string) error {
	// Fast path: ASCII without NUL encodes to itself.
	if isEncodedASCII(s) {
		if len(s) > math.MaxUint16 {
			return fmt.Errorf("string of %d bytes exceeds length prefix: %w", len(s), types.ErrMalformed)
		}
		if err := w.U16(uint16(len(s))); err != nil {
			return err
		}
		return w.write([]byte(s))
	}
	// Check the encoded size before paying for the encode; invalid UTF-8
	// reports -1 here and gets its proper error from Encode below.
	if n := mutf8.EncodedLen(s); n > math.MaxUint16 {
		return fmt.Errorf("string of %d bytes exceeds length prefix: %w", n, types.ErrMalformed)
	}
	b, err := mutf8.Encode(s)
	if err != nil {
		return &types.Error{
			Kind: types.ErrKindFormat,
			Msg:  fmt.Sprintf("encode string: %v", err),
			Err:  types.ErrMalformed,
		}
	}
	if err := w.U16(uint16(len(b))); err != nil {
		return err
	}
	return w.write(b)
}

// isEncodedASCII reports whether s is its own modified UTF-8 encoding:
// pure ASCII with no NUL (NUL encodes as two bytes).
func isEncodedASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 || s[i] >= 0x80 {
			return false
		}
	}
	return true
}
