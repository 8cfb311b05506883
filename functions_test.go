package jot_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/midbel/jot"
)

func TestMergeObjects(t *testing.T) {
	data := []struct {
		Fst  string
		Snd  string
		Want string
	}{
		{
			Fst:  `{"a":1,"b":2}`,
			Snd:  `{"b":3,"c":4}`,
			Want: `{"a":1,"b":3,"c":4}`,
		},
		{
			Fst:  `{}`,
			Snd:  `{"a":1}`,
			Want: `{"a":1}`,
		},
		{
			Fst:  `{"a":1}`,
			Snd:  `{}`,
			Want: `{"a":1}`,
		},
		{
			Fst:  `{"a":{"x":1}}`,
			Snd:  `{"a":{"y":2}}`,
			Want: `{"a":{"y":2}}`,
		},
	}
	for _, d := range data {
		got, err := jot.MergeObjects(d.Fst, d.Snd)
		if err != nil {
			t.Errorf("unexpected error: %s", err)
			continue
		}
		if got != d.Want {
			t.Errorf("result mismatched! want %s, got %s", d.Want, got)
		}
	}

	if _, err := jot.MergeObjects(`{"a":1}`, `[1]`); !errors.Is(err, jot.ErrObject) {
		t.Errorf("error mismatched! want %s, got %v", jot.ErrObject, err)
	}
}

func TestFilterPrefix(t *testing.T) {
	data := []struct {
		Input  string
		Prefix string
		Want   string
	}{
		{
			Input:  `{"proj":"X","name":"Y"}`,
			Prefix: "pro",
			Want:   `{"proj":"X"}`,
		},
		{
			Input:  `{"proj":"X","name":"Y"}`,
			Prefix: "",
			Want:   `{"proj":"X","name":"Y"}`,
		},
		{
			Input:  `{"proj":"X","name":"Y"}`,
			Prefix: "PRO",
			Want:   `{}`,
		},
	}
	for _, d := range data {
		got, err := jot.FilterPrefix(d.Input, d.Prefix)
		if err != nil {
			t.Errorf("unexpected error: %s", err)
			continue
		}
		if got != d.Want {
			t.Errorf("result mismatched! want %s, got %s", d.Want, got)
		}
	}
}

func TestCountAndKeys(t *testing.T) {
	const str = `{"a":"1","b":"2","c":"3"}`

	count, err := jot.CountKeys(str)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if count != 3 {
		t.Errorf("count mismatched! want 3, got %d", count)
	}
	keys, err := jot.Keys(str)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(keys, want) {
		t.Errorf("keys mismatched! want %v, got %v", want, keys)
	}

	if _, err := jot.CountKeys(`[1,2]`); !errors.Is(err, jot.ErrObject) {
		t.Errorf("error mismatched! want %s, got %v", jot.ErrObject, err)
	}
}

func TestReverseArray(t *testing.T) {
	got, err := jot.ReverseArray(`[1,2,3]`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != `[3,2,1]` {
		t.Errorf("result mismatched! want [3,2,1], got %s", got)
	}

	again, err := jot.ReverseArray(got)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if again != `[1,2,3]` {
		t.Errorf("result mismatched! want [1,2,3], got %s", again)
	}

	if _, err := jot.ReverseArray(`{"a":1}`); !errors.Is(err, jot.ErrArray) {
		t.Errorf("error mismatched! want %s, got %v", jot.ErrArray, err)
	}
}

func TestIsValid(t *testing.T) {
	data := []struct {
		Input  string
		Object bool
		Array  bool
	}{
		{
			Input:  `{"a":1}`,
			Object: true,
		},
		{
			Input: `["x"]`,
			Array: true,
		},
		{
			Input: `{"a":1`,
		},
		{
			Input: `[1,`,
		},
		{
			Input: `plain text`,
		},
	}
	for _, d := range data {
		if got := jot.IsValidObject(d.Input); got != d.Object {
			t.Errorf("%s: object mismatched! want %t, got %t", d.Input, d.Object, got)
		}
		if got := jot.IsValidArray(d.Input); got != d.Array {
			t.Errorf("%s: array mismatched! want %t, got %t", d.Input, d.Array, got)
		}
	}
}
