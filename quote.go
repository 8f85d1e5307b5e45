package tcl

import (
	"strings"
	"unicode/utf8"
)

// quoting is the per-element quoting decision. Exactly one decision applies
// to a given string; it is a pure function of the string's content.
type quoting int

const (
	quoteNone quoting = iota
	quoteBrace
	quoteBackslash
)

const hexDigits = "0123456789abcdef"

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// QuoteElement returns s quoted so that, scanned as one element of a larger
// list, it yields back exactly s. Brace quoting is preferred over backslash
// quoting whenever it is valid: it leaves the content verbatim and adds a
// bounded two characters, while backslash escaping can grow the string up to
// 4x per application when quoting is stacked across nesting levels.
func QuoteElement(s string) string {
	if s == "" {
		// an empty bare element would vanish during scanning
		return "{}"
	}

	switch classify(s) {
	case quoteBackslash:
		return backslashEscape(s)
	case quoteBrace:
		return "{" + s + "}"
	default:
		return s
	}
}

// quoteListElement quotes the encoding of a nested list. Unlike QuoteElement
// it never returns the string bare: a list-derived element is always quoted
// so that it stays a single element of its parent.
func quoteListElement(s string) string {
	if classify(s) == quoteBackslash {
		return backslashEscape(s)
	}
	return "{" + s + "}"
}

// classify scans s once, left to right over code points, and decides the
// minimal quoting that still round-trips. Brace quoting is viable only when
// every '{' and '}' pairs up under backslash look-ahead and the string does
// not end in an unpaired backslash; any control character, or an unmatched
// '}' at depth zero, forces backslash escaping outright.
func classify(s string) (q quoting) {
	rs := []rune(s)
	braceDepth := 0

	for i := 0; i < len(rs); i++ {
		r := rs[i]

		if isControl(r) {
			return quoteBackslash
		}

		switch r {
		case ' ', '"':
			q = quoteBrace
		case '\\':
			if i == len(rs)-1 {
				// a trailing backslash would escape the closing brace
				return quoteBackslash
			}
			q = quoteBrace
			i++ // the next code point is protected by the backslash
		case '{':
			q = quoteBrace
			braceDepth++
		case '}':
			if braceDepth == 0 {
				return quoteBackslash
			}
			q = quoteBrace
			braceDepth--
		}
	}

	if braceDepth != 0 {
		return quoteBackslash
	}
	return q
}

// backslashEscape emits s with every unsafe character escaped individually.
// No wrapping braces are added. Bytes that do not form valid UTF-8 are
// carried through verbatim.
func backslashEscape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/2)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch r {
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\v':
			sb.WriteString(`\v`)
		case ' ', '"', '\\', '{', '}':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			if isControl(r) {
				sb.WriteByte('\\')
				sb.WriteByte('x')
				sb.WriteByte(hexDigits[r>>4])
				sb.WriteByte(hexDigits[r&0xf])
			} else {
				sb.WriteString(s[i : i+size])
			}
		}

		i += size
	}

	return sb.String()
}
