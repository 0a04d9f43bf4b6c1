package location

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// Decode percent-decodes a path the way decodeURI does.
//
// Consecutive escapes are decoded together so multi-byte UTF-8
// characters split across triplets come back whole. Escapes that
// decode to a reserved delimiter (including "/") are kept as-is, and
// malformed or non UTF-8 sequences pass through untouched. Decode
// never fails.
func Decode(path string) string {
	if strings.IndexByte(path, '%') < 0 {
		return path
	}

	var b strings.Builder
	b.Grow(len(path))

	for i := 0; i < len(path); {
		if path[i] != '%' {
			b.WriteByte(path[i])
			i++
			continue
		}

		start := i
		var raw []byte
		for i+2 < len(path) && path[i] == '%' && ishex(path[i+1]) && ishex(path[i+2]) {
			raw = append(raw, unhex(path[i+1])<<4|unhex(path[i+2]))
			i += 3
		}

		if len(raw) == 0 {
			b.WriteByte('%')
			i++
			continue
		}

		writeDecoded(&b, raw, path[start:i])
	}

	return b.String()
}

// writeDecoded writes the decoded bytes of a run of escapes. original
// holds the three-character escape for every byte in raw.
func writeDecoded(b *strings.Builder, raw []byte, original string) {
	for j := 0; j < len(raw); {
		r, size := utf8.DecodeRune(raw[j:])
		switch {
		case r == utf8.RuneError && size <= 1:
			b.WriteString(original[j*3 : j*3+3])
			j++
		case size == 1 && isReserved(raw[j]):
			b.WriteString(original[j*3 : j*3+3])
			j++
		default:
			b.Write(raw[j : j+size])
			j += size
		}
	}
}

// Encode percent-encodes a path the way encodeURI does. Reserved
// delimiters, unreserved characters and existing valid escapes are
// preserved, so Encode is idempotent.
func Encode(path string) string {
	n := 0
	for i := 0; i < len(path); i++ {
		if shouldEscape(path, i) {
			n++
		}
	}
	if n == 0 {
		return path
	}

	var b strings.Builder
	b.Grow(len(path) + 2*n)
	for i := 0; i < len(path); i++ {
		c := path[i]
		if shouldEscape(path, i) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func shouldEscape(s string, i int) bool {
	c := s[i]
	if c == '%' {
		return !(i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]))
	}
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return !isReserved(c)
}

func isReserved(c byte) bool {
	switch c {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '#':
		return true
	}
	return false
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
