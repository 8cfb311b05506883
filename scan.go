package jot

import (
	"bytes"
	"fmt"
	"strings"
)

// splitItems cuts str on commas found at bracket depth 0 outside of
// quoted strings. Commas nested in {}/[] or between quotes never
// split. A single empty trailing item is dropped so a trailing comma
// behaves like the missing one.
func splitItems(str string) ([]string, error) {
	var (
		items  []string
		buf    bytes.Buffer
		quoted bool
		depth  int
		last   rune
	)
	for _, char := range str {
		if isQuote(char) && !isEscaped(last) {
			quoted = !quoted
		}
		if !quoted {
			switch char {
			case lcurly, lsquare:
				depth++
			case rcurly, rsquare:
				depth--
				if depth < 0 {
					return nil, fmt.Errorf("unbalanced brackets")
				}
			case comma:
				if depth == 0 {
					items = append(items, buf.String())
					buf.Reset()
					last = char
					continue
				}
			}
		}
		buf.WriteRune(char)
		last = char
	}
	if quoted {
		return nil, fmt.Errorf("unterminated string")
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets")
	}
	if rest := buf.String(); strings.TrimSpace(rest) != "" {
		items = append(items, rest)
	}
	return items, nil
}

// unescape decodes the canonical escape set. \uXXXX is out of scope
// and an unrecognized escape is kept verbatim.
func unescape(str string) string {
	if !strings.ContainsRune(str, backslash) {
		return str
	}
	var (
		buf     bytes.Buffer
		escaped bool
	)
	for _, char := range str {
		if !escaped {
			if char == backslash {
				escaped = true
				continue
			}
			buf.WriteRune(char)
			continue
		}
		switch char {
		case 'n':
			char = '\n'
		case 't':
			char = '\t'
		case 'r':
			char = '\r'
		case 'b':
			char = '\b'
		case 'f':
			char = '\f'
		case '"', '\\', '/':
		default:
			buf.WriteRune(backslash)
		}
		buf.WriteRune(char)
		escaped = false
	}
	if escaped {
		buf.WriteRune(backslash)
	}
	return buf.String()
}

// escape encodes the same set unescape decodes.
func escape(str string) string {
	var buf bytes.Buffer
	for _, char := range str {
		switch char {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\r':
			buf.WriteString(`\r`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			buf.WriteRune(char)
		}
	}
	return buf.String()
}

const (
	lcurly    = '{'
	rcurly    = '}'
	lsquare   = '['
	rsquare   = ']'
	comma     = ','
	colon     = ':'
	backslash = '\\'
)

func isQuote(c rune) bool {
	return c == '"'
}

func isEscaped(last rune) bool {
	return last == backslash
}
