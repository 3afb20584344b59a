package query

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseInt reads an integer the way JavaScript's parseInt does without a
// radix. Leading whitespace and an optional sign come first, and a 0x or 0X
// prefix switches to hexadecimal. Parsing stops at the first character that
// is not a digit. ok is false when no digits were found.
func ParseInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, isJSSpace)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(sign+s[:end], base, 0)
	if err != nil {
		return 0, false // Out of int range
	}
	return int(v), true
}

// isJSSpace matches the characters JavaScript treats as white space or
// line terminators. U+0085 is not one of them, U+FEFF is.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isDecimal(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
