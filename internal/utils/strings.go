// Package utils holds small string helpers shared by the reference
// command-line tools.
package utils

import "strings"

// FormatSpaces escapes control characters in a raw sentence so a
// rejected line can be logged safely even if it arrived truncated or
// carries an embedded CR that framing stripped before rejection.
func FormatSpaces(s []byte) string {
	buf := strings.Builder{}
	for _, c := range s {
		switch c {
		case '\t':
			buf.WriteString(`\t`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\v':
			buf.WriteString(`\v`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String()
}
