package sixbit

import (
	"fmt"
	"strings"
)

// textTable is the canonical six-bit ASCII table used for name, callsign,
// and destination fields, index == six-bit code point.
const textTable = "@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^- !\"#$%&'()*+,-./0123456789:;<=>?"

// textReverse maps an ASCII byte back to its six-bit code, built once at
// init from textTable rather than hand-duplicated.
var textReverse [128]int8

func init() {
	for i := range textReverse {
		textReverse[i] = -1
	}
	for code, ch := range []byte(textTable) {
		textReverse[ch] = int8(code)
	}
}

// DecodeText turns n six-bit codes (each 0..63, e.g. read via
// bitbuf.Buf.Ubits in 6-bit strides) into the field's text value: each
// code maps through textTable, the result is truncated at the first '@'
// padding code if present, and trailing spaces are trimmed, matching how
// ship names and destinations are carried in ITU-R M.1371 payloads.
func DecodeText(codes []uint8) (string, error) {
	var b strings.Builder
	for i, c := range codes {
		if c > 63 {
			return "", fmt.Errorf("sixbit: text code %d at position %d out of range", c, i)
		}
		if textTable[c] == '@' {
			return strings.TrimRight(b.String(), " "), nil
		}
		b.WriteByte(textTable[c])
	}
	return strings.TrimRight(b.String(), " "), nil
}

// EncodeText converts s into n six-bit codes suitable for Buf.Putbits,
// padding with the space code (32) if s is shorter than n and truncating
// if longer. Characters outside the six-bit alphabet are rejected.
func EncodeText(s string, n int) ([]uint8, error) {
	if len(s) > n {
		s = s[:n]
	}
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		if i >= len(s) {
			out[i] = 32 // ' '
			continue
		}
		ch := s[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if int(ch) >= len(textReverse) || textReverse[ch] < 0 {
			return nil, fmt.Errorf("sixbit: character %q not representable in six-bit text", s[i])
		}
		out[i] = uint8(textReverse[ch])
	}
	return out, nil
}
