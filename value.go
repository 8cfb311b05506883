package jot

import (
	"iter"
	"slices"
)

type Kind int8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindObject
	KindArray
)

// Value is a node of a parsed document. Concrete types are Null,
// Bool, Int, Float, String, *Object and *Array. A tree is never
// modified once built: transformations return new containers.
type Value interface {
	Kind() Kind
}

type Null struct{}

func (Null) Kind() Kind {
	return KindNull
}

type Bool bool

func (Bool) Kind() Kind {
	return KindBool
}

type Int int64

func (Int) Kind() Kind {
	return KindInt
}

type Float float64

func (Float) Kind() Kind {
	return KindFloat
}

type String string

func (String) Kind() Kind {
	return KindString
}

// Object maps unique string keys to values and remembers insertion
// order. Setting an existing key replaces its value but keeps the
// position of the first insertion.
type Object struct {
	keys   []string
	values map[string]Value
}

func NewObject() *Object {
	obj := Object{
		values: make(map[string]Value),
	}
	return &obj
}

func (o *Object) Kind() Kind {
	return KindObject
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Set(key string, value Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

func (o *Object) All() iter.Seq2[string, Value] {
	fn := func(yield func(string, Value) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				break
			}
		}
	}
	return fn
}

// Merge overlays other onto o into a fresh object. On collision the
// entry of other wins.
func (o *Object) Merge(other *Object) *Object {
	res := NewObject()
	for k, v := range o.All() {
		res.Set(k, v)
	}
	for k, v := range other.All() {
		res.Set(k, v)
	}
	return res
}

// Array is an ordered sequence of values.
type Array struct {
	values []Value
}

func NewArray() *Array {
	var arr Array
	return &arr
}

func (a *Array) Kind() Kind {
	return KindArray
}

func (a *Array) Len() int {
	return len(a.values)
}

func (a *Array) At(i int) Value {
	return a.values[i]
}

func (a *Array) Append(value Value) {
	a.values = append(a.values, value)
}

func (a *Array) All() iter.Seq[Value] {
	return slices.Values(a.values)
}

// Reverse returns a fresh array with the elements in opposite order.
func (a *Array) Reverse() *Array {
	res := Array{
		values: slices.Clone(a.values),
	}
	slices.Reverse(res.values)
	return &res
}
