package format

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/YukonAppleGeek/nbtkit/internal/mutf8"
	"github.com/YukonAppleGeek/nbtkit/pkg/types"
)

// Binary stream primitives for the tag wire format.
//
// All multi-byte integers are big-endian. Strings are a 2-byte unsigned
// length prefix followed by that many bytes of modified UTF-8 (see the
// mutf8 package). A read that hits end-of-stream mid-value always surfaces
// types.ErrTruncated; io.EOF never leaks out of this package.

// readChunk bounds a single allocation while filling untrusted lengths, so
// a hostile length prefix runs out of stream before it runs us out of
// memory.
const readChunk = 64 << 10

// Reader decodes wire primitives from an io.Reader and tracks the absolute
// stream offset for error context.
type Reader struct {
	r   io.Reader
	n   int64
	buf [8]byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.n }

func (r *Reader) read(n int) ([]byte, error) {
	b := r.buf[:n]
	got, err := io.ReadFull(r.r, b)
	r.n += int64(got)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("need %d bytes at offset %d: %w", n, r.n, types.ErrTruncated)
		}
		return nil, err
	}
	return b, nil
}

func (r *Reader) U8() (byte, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) U16() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

func (r *Reader) I32() (int32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *Reader) I64() (int64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (r *Reader) F32() (float32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

func (r *Reader) F64() (float64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// Bytes reads exactly n bytes. The length is treated as untrusted: the
// buffer grows chunk by chunk as data actually arrives, so a stream
// claiming more than it carries fails with types.ErrTruncated instead of a
// giant allocation.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if n <= readChunk {
		b := make([]byte, n)
		got, err := io.ReadFull(r.r, b)
		r.n += int64(got)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("need %d bytes at offset %d: %w", n, r.n, types.ErrTruncated)
			}
			return nil, err
		}
		return b, nil
	}
	out := make([]byte, 0, readChunk)
	for len(out) < n {
		step := n - len(out)
		if step > readChunk {
			step = readChunk
		}
		chunk, err := r.Bytes(step)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// String reads a length-prefixed modified UTF-8 string.
func (r *Reader) String() (string, error) {
	n, err := r.U16()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return "", err
	}
	// Fast path: ASCII is identical in both encodings.
	if isASCII(b) {
		return string(b), nil
	}
	s, err := mutf8.Decode(b)
	if err != nil {
		return "", &types.Error{
			Kind: types.ErrKindFormat,
			Msg:  fmt.Sprintf("string at offset %d: %v", r.n-int64(n), err),
			Err:  types.ErrMalformed,
		}
	}
	return s, nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
