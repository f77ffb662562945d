package mutf8

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/text/encoding"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []byte
	}{
		{name: "empty", in: "", expected: []byte{}},
		{name: "ascii", in: "hello", expected: []byte("hello")},
		{name: "nul", in: "a\x00b", expected: []byte{'a', 0xC0, 0x80, 'b'}},
		{name: "two byte", in: "é", expected: []byte{0xC3, 0xA9}},
		{name: "three byte", in: "中", expected: []byte{0xE4, 0xB8, 0xAD}},
		{name: "supplementary", in: "\U0001F600", expected: []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.in)
			if err != nil {
				t.Fatalf("Encode(%q): %v", tc.in, err)
			}
			if !bytes.Equal(got, tc.expected) {
				t.Errorf("Encode(%q) = % x, want % x", tc.in, got, tc.expected)
			}
			if n := EncodedLen(tc.in); n != len(tc.expected) {
				t.Errorf("EncodedLen(%q) = %d, want %d", tc.in, n, len(tc.expected))
			}
		})
	}
}

func TestEncode_InvalidUTF8(t *testing.T) {
	if _, err := Encode("a\xffb"); err != encoding.ErrInvalidUTF8 {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	if n := EncodedLen("a\xffb"); n != -1 {
		t.Errorf("EncodedLen on invalid input = %d, want -1", n)
	}
	// A literal replacement character is valid input, not an error.
	if n := EncodedLen("�"); n != 3 {
		t.Errorf("EncodedLen(U+FFFD) = %d, want 3", n)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		expected string
	}{
		{name: "empty", in: []byte{}, expected: ""},
		{name: "ascii", in: []byte("hello"), expected: "hello"},
		{name: "encoded nul", in: []byte{'a', 0xC0, 0x80, 'b'}, expected: "a\x00b"},
		// readUTF accepts a raw NUL even though writeUTF never emits one.
		{name: "raw nul", in: []byte{'a', 0x00, 'b'}, expected: "a\x00b"},
		// Likewise overlong two-byte forms decode by bit arithmetic.
		{name: "overlong", in: []byte{0xC1, 0xBF}, expected: "\x7f"},
		{name: "two byte", in: []byte{0xC3, 0xA9}, expected: "é"},
		{name: "three byte", in: []byte{0xE4, 0xB8, 0xAD}, expected: "中"},
		{name: "surrogate pair", in: []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}, expected: "\U0001F600"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.in)
			if err != nil {
				t.Fatalf("Decode(% x): %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("Decode(% x) = %q, want %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{name: "continuation lead", in: []byte{0x80}},
		{name: "four byte lead", in: []byte{0xF0, 0x9F, 0x98, 0x80}},
		{name: "truncated two byte", in: []byte{0xC3}},
		{name: "truncated three byte", in: []byte{0xE4, 0xB8}},
		{name: "bad continuation", in: []byte{0xC3, 0x41}},
		{name: "lone high surrogate", in: []byte{0xED, 0xA0, 0xBD}},
		{name: "lone low surrogate", in: []byte{0xED, 0xB8, 0x80}},
		{name: "high surrogate then ascii", in: []byte{0xED, 0xA0, 0xBD, 0x41, 0x42, 0x43}},
		{name: "high surrogate then high", in: []byte{0xED, 0xA0, 0xBD, 0xED, 0xA0, 0xBD}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.in); !errors.Is(err, ErrMalformed) {
				t.Errorf("Decode(% x): expected ErrMalformed, got %v", tc.in, err)
			}
		})
	}
}

func TestDecode_ErrorOffset(t *testing.T) {
	_, err := Decode([]byte{'a', 'b', 0x80})
	if err == nil || !strings.Contains(err.Error(), "around byte 2") {
		t.Errorf("expected offset 2 in error, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"nul\x00inside",
		"héllo wörld",
		"中文字符",
		"mixed a\x00é中\U0001F600 end",
	}
	for _, in := range inputs {
		enc, err := Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q): %v", in, err)
		}
		out, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(Encode(%q)): %v", in, err)
		}
		if out != in {
			t.Errorf("round trip changed %q to %q", in, out)
		}
	}
}

// Surrogate pairs and multibyte units must survive being split across
// arbitrarily small reads.
func TestDecode_Streaming(t *testing.T) {
	in := "123 héllo 中 \U0001F600 \x00 tail"
	enc, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	r := ModifiedUTF8.NewDecoder().Reader(iotest.OneByteReader(bytes.NewReader(enc)))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("streaming decode: %v", err)
	}
	if string(out) != in {
		t.Errorf("streaming decode = %q, want %q", out, in)
	}
}
