package jot

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInput  = errors.New("invalid input")
	ErrObject = errors.New("invalid object")
	ErrArray  = errors.New("invalid array")
	ErrValue  = errors.New("invalid value")
)

var (
	reString = regexp.MustCompile(`^"(?:[^"\\]|\\.)*"$`)
	reNumber = regexp.MustCompile(`^[-+]?[0-9]+(\.[0-9]+)?$`)
)

// Parse turns a document into a value tree. The trimmed text must
// start with '{' or '[', anything else is rejected.
func Parse(str string) (Value, error) {
	str = strings.TrimSpace(str)
	switch {
	case strings.HasPrefix(str, "{"):
		obj, err := ParseObject(str)
		if err != nil {
			return nil, err
		}
		return obj, nil
	case strings.HasPrefix(str, "["):
		arr, err := ParseArray(str)
		if err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInput, str)
	}
}

// ParseObject scans the braced interior once, character by character,
// tracking quoting and bracket depth. A ':' at depth 0 switches from
// key to value, a ',' at depth 0 commits the pair; non empty buffers
// left at the end of the scan commit the final pair. Unterminated
// quotes, unbalanced brackets, a pair without value or a key that is
// not a quoted string fail instead of producing a partial object.
func ParseObject(str string) (*Object, error) {
	str = strings.TrimSpace(str)
	if !strings.HasPrefix(str, "{") || !strings.HasSuffix(str, "}") {
		return nil, fmt.Errorf("%w: %s", ErrObject, str)
	}
	var (
		obj    = NewObject()
		key    bytes.Buffer
		val    bytes.Buffer
		inKey  = true
		quoted bool
		depth  int
		last   rune
	)
	commit := func() error {
		var (
			k = strings.TrimSpace(key.String())
			v = strings.TrimSpace(val.String())
		)
		if k == "" && v == "" {
			return nil
		}
		if inKey || v == "" {
			return fmt.Errorf("%w: missing value for %s", ErrObject, k)
		}
		if !reString.MatchString(k) {
			return fmt.Errorf("%w: bad key %s", ErrObject, k)
		}
		item, err := parseValue(v)
		if err != nil {
			return err
		}
		obj.Set(unescape(k[1:len(k)-1]), item)
		return nil
	}
	for _, char := range str[1 : len(str)-1] {
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
					return nil, fmt.Errorf("%w: %s", ErrObject, str)
				}
			case colon:
				if depth == 0 && inKey {
					inKey = false
					last = char
					continue
				}
			case comma:
				if depth == 0 {
					if err := commit(); err != nil {
						return nil, err
					}
					key.Reset()
					val.Reset()
					inKey = true
					last = char
					continue
				}
			}
		}
		if inKey {
			key.WriteRune(char)
		} else {
			val.WriteRune(char)
		}
		last = char
	}
	if quoted || depth != 0 {
		return nil, fmt.Errorf("%w: %s", ErrObject, str)
	}
	if err := commit(); err != nil {
		return nil, err
	}
	return obj, nil
}

// ParseArray splits the bracketed interior into top level items with
// the same quote and depth aware rule and parses each of them. Any
// failing item aborts the whole call, no partial results.
func ParseArray(str string) (*Array, error) {
	str = strings.TrimSpace(str)
	if !strings.HasPrefix(str, "[") || !strings.HasSuffix(str, "]") {
		return nil, fmt.Errorf("%w: %s", ErrArray, str)
	}
	items, err := splitItems(str[1 : len(str)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrArray, str)
	}
	arr := NewArray()
	for i := range items {
		item := strings.TrimSpace(items[i])
		v, err := parseValue(item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %s", ErrArray, item)
		}
		arr.Append(v)
	}
	return arr, nil
}

func parseValue(str string) (Value, error) {
	switch {
	case strings.HasPrefix(str, "{"):
		obj, err := ParseObject(str)
		if err != nil {
			return nil, err
		}
		return obj, nil
	case strings.HasPrefix(str, "["):
		arr, err := ParseArray(str)
		if err != nil {
			return nil, err
		}
		return arr, nil
	case reString.MatchString(str):
		return String(unescape(str[1 : len(str)-1])), nil
	case reNumber.MatchString(str):
		return parseNumber(str)
	case str == "true":
		return Bool(true), nil
	case str == "false":
		return Bool(false), nil
	case str == "null":
		return Null{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrValue, str)
	}
}

// parseNumber keeps the decimal point heuristic: a dot selects the
// float variant, its absence the integer one.
func parseNumber(str string) (Value, error) {
	if strings.ContainsRune(str, '.') {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValue, str)
		}
		return Float(f), nil
	}
	n, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValue, str)
	}
	return Int(n), nil
}
