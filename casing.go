package jot

import (
	"strings"
	"unicode"
)

type CaseType int8

const (
	DefaultCase CaseType = iota
	SnakeCase
	KebabCase
	CamelCase
)

// RenameKeys rewrites every object key of the document to the given
// case family, recursing through nested objects and arrays.
func RenameKeys(str string, to CaseType) (string, error) {
	obj, err := ParseObject(str)
	if err != nil {
		return "", err
	}
	return Format(RecaseKeys(obj, to)), nil
}

// RecaseKeys is the tree level form of RenameKeys.
func RecaseKeys(value Value, to CaseType) Value {
	switch v := value.(type) {
	case *Object:
		res := NewObject()
		for k, item := range v.All() {
			res.Set(recase(to, k), RecaseKeys(item, to))
		}
		return res
	case *Array:
		res := NewArray()
		for item := range v.All() {
			res.Append(RecaseKeys(item, to))
		}
		return res
	default:
		return value
	}
}

func recase(to CaseType, str string) string {
	words := splitWords(str)
	if len(words) == 0 {
		return str
	}
	switch to {
	case SnakeCase:
		return strings.Join(words, "_")
	case KebabCase:
		return strings.Join(words, "-")
	case CamelCase:
		var buf strings.Builder
		buf.WriteString(words[0])
		for _, w := range words[1:] {
			chars := []rune(w)
			chars[0] = unicode.ToUpper(chars[0])
			buf.WriteString(string(chars))
		}
		return buf.String()
	default:
		return str
	}
}

// splitWords cuts an identifier on separators and on lower to upper
// transitions, lowercasing every word.
func splitWords(str string) []string {
	var (
		words []string
		buf   []rune
		last  rune
	)
	flush := func() {
		if len(buf) > 0 {
			words = append(words, string(buf))
			buf = buf[:0]
		}
	}
	for _, r := range str {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			if last != 0 && !unicode.IsUpper(last) {
				flush()
			}
			buf = append(buf, unicode.ToLower(r))
		default:
			buf = append(buf, r)
		}
		last = r
	}
	flush()
	return words
}
