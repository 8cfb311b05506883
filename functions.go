package jot

import (
	"strings"
)

// MergeObjects overlays the entries of the second document onto the
// first one. On key collision the second document wins.
func MergeObjects(fst, snd string) (string, error) {
	left, err := ParseObject(fst)
	if err != nil {
		return "", err
	}
	right, err := ParseObject(snd)
	if err != nil {
		return "", err
	}
	return Format(left.Merge(right)), nil
}

// FilterPrefix keeps the entries whose key starts with prefix. The
// comparison is literal and case sensitive.
func FilterPrefix(str, prefix string) (string, error) {
	obj, err := ParseObject(str)
	if err != nil {
		return "", err
	}
	res := NewObject()
	for k, v := range obj.All() {
		if strings.HasPrefix(k, prefix) {
			res.Set(k, v)
		}
	}
	return Format(res), nil
}

func CountKeys(str string) (int, error) {
	obj, err := ParseObject(str)
	if err != nil {
		return 0, err
	}
	return obj.Len(), nil
}

func Keys(str string) ([]string, error) {
	obj, err := ParseObject(str)
	if err != nil {
		return nil, err
	}
	return obj.Keys(), nil
}

func ReverseArray(str string) (string, error) {
	arr, err := ParseArray(str)
	if err != nil {
		return "", err
	}
	return Format(arr.Reverse()), nil
}

func IsValidObject(str string) bool {
	_, err := ParseObject(str)
	return err == nil
}

func IsValidArray(str string) bool {
	_, err := ParseArray(str)
	return err == nil
}
