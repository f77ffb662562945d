// Package mutf8 implements Java's modified UTF-8 as a
// golang.org/x/text/encoding.Encoding.
//
// Modified UTF-8 is the string serialization of DataOutput.writeUTF: U+0000
// is written as the two-byte sequence 0xC0 0x80 rather than a raw NUL, and
// supplementary characters are written as a CESU-8 surrogate pair (two
// three-byte units) rather than a four-byte sequence. For BMP text without
// NUL the output is byte-identical to standard UTF-8.
//
// Decoding follows DataInput.readUTF: one-, two- and three-byte units only
// (four-byte UTF-8 is rejected), surrogate pairs are recombined into the
// supplementary rune, and a dangling surrogate or truncated unit is an
// error rather than a replacement character.
package mutf8

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrMalformed reports input bytes that readUTF would reject.
var ErrMalformed = errors.New("mutf8: malformed modified UTF-8")

// ModifiedUTF8 is the modified UTF-8 encoding.
var ModifiedUTF8 encoding.Encoding = modifiedUTF8{}

type modifiedUTF8 struct{}

func (modifiedUTF8) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &mutf8Decoder{}}
}

func (modifiedUTF8) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: mutf8Encoder{}}
}

// Encode converts a UTF-8 string to modified UTF-8 bytes. Invalid UTF-8 in
// the input fails with encoding.ErrInvalidUTF8.
func Encode(s string) ([]byte, error) {
	return ModifiedUTF8.NewEncoder().Bytes([]byte(s))
}

// Decode converts modified UTF-8 bytes to a UTF-8 string. Malformed input
// fails with ErrMalformed carrying the offending byte offset.
func Decode(b []byte) (string, error) {
	out, err := ModifiedUTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodedLen returns the number of modified UTF-8 bytes needed for s
// without encoding it. Invalid UTF-8 counts as unencodable and returns -1.
func EncodedLen(s string) int {
	n := 0
	for i, r := range s {
		if r == utf8.RuneError {
			// Range loops fold invalid bytes into U+FFFD; re-decode to tell a
			// literal replacement character from a broken sequence.
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return -1
			}
		}
		n += runeLen(r)
	}
	return n
}

func runeLen(r rune) int {
	switch {
	case r == 0:
		return 2
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 6
	}
}

// putRune writes the modified UTF-8 form of r into dst, which must have at
// least runeLen(r) bytes free, and returns the number of bytes written.
func putRune(dst []byte, r rune) int {
	switch {
	case r == 0:
		dst[0], dst[1] = 0xC0, 0x80
		return 2
	case r < 0x80:
		dst[0] = byte(r)
		return 1
	case r < 0x800:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r)&0x3F
		return 2
	case r < 0x10000:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte(r>>6)&0x3F
		dst[2] = 0x80 | byte(r)&0x3F
		return 3
	default:
		// CESU-8: encode each UTF-16 surrogate half as its own 3-byte unit.
		r -= 0x10000
		putRune(dst, 0xD800+(r>>10))
		putRune(dst[3:], 0xDC00+(r&0x3FF))
		return 6
	}
}

type mutf8Encoder struct{ transform.NopResetter }

func (mutf8Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if r == utf8.RuneError && size == 1 {
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, encoding.ErrInvalidUTF8
			}
		}
		if nDst+runeLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += putRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// mutf8Decoder tracks the absolute input offset across Transform calls so
// errors can point at the offending byte, the way readUTF reports
// "malformed input around byte N".
type mutf8Decoder struct {
	off int
}

func (d *mutf8Decoder) Reset() { d.off = 0 }

func (d *mutf8Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	defer func() { d.off += nSrc }()
	for nSrc < len(src) {
		r, size, uerr := decodeUnit(src[nSrc:], atEOF)
		if uerr != nil {
			if uerr == transform.ErrShortSrc {
				return nDst, nSrc, uerr
			}
			return nDst, nSrc, fmt.Errorf("around byte %d: %w", d.off+nSrc, uerr)
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// decodeUnit decodes one character from the head of src, consuming two
// three-byte units when they form a surrogate pair. A unit cut off by the
// end of src yields transform.ErrShortSrc when more input may follow.
func decodeUnit(src []byte, atEOF bool) (rune, int, error) {
	b0 := src[0]
	switch {
	case b0 < 0x80:
		// Raw NUL is accepted on read; only the writer owes the 0xC0 0x80 form.
		return rune(b0), 1, nil

	case b0&0xE0 == 0xC0:
		if len(src) < 2 {
			return 0, 0, shortOrMalformed(atEOF)
		}
		if src[1]&0xC0 != 0x80 {
			return 0, 0, ErrMalformed
		}
		// No overlong check: readUTF decodes by bit arithmetic alone, and the
		// NUL form 0xC0 0x80 is itself overlong.
		return rune(b0&0x1F)<<6 | rune(src[1]&0x3F), 2, nil

	case b0&0xF0 == 0xE0:
		if len(src) < 3 {
			return 0, 0, shortOrMalformed(atEOF)
		}
		if src[1]&0xC0 != 0x80 || src[2]&0xC0 != 0x80 {
			return 0, 0, ErrMalformed
		}
		r := rune(b0&0x0F)<<12 | rune(src[1]&0x3F)<<6 | rune(src[2]&0x3F)
		if r < 0xD800 || r > 0xDFFF {
			return r, 3, nil
		}
		if r > 0xDBFF {
			// Low surrogate with no preceding high half.
			return 0, 0, ErrMalformed
		}
		// High surrogate: the next unit must complete the pair.
		if len(src) < 6 {
			if !atEOF {
				return 0, 0, transform.ErrShortSrc
			}
			return 0, 0, ErrMalformed
		}
		if src[3]&0xF0 != 0xE0 || src[4]&0xC0 != 0x80 || src[5]&0xC0 != 0x80 {
			return 0, 0, ErrMalformed
		}
		r2 := rune(src[3]&0x0F)<<12 | rune(src[4]&0x3F)<<6 | rune(src[5]&0x3F)
		if r2 < 0xDC00 || r2 > 0xDFFF {
			return 0, 0, ErrMalformed
		}
		return 0x10000 + ((r-0xD800)<<10 | (r2 - 0xDC00)), 6, nil

	default:
		// Continuation byte in lead position, or a four-byte lead (0xF0+):
		// readUTF rejects both.
		return 0, 0, ErrMalformed
	}
}

func shortOrMalformed(atEOF bool) error {
	if atEOF {
		return ErrMalformed
	}
	return transform.ErrShortSrc
}
