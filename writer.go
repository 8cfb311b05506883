package jot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Writer struct {
	ws *bufio.Writer

	Indent  string
	Compact bool

	level int
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		ws:     bufio.NewWriter(w),
		Indent: "  ",
	}
	return &ws
}

func (w *Writer) Write(value Value) error {
	defer func() {
		w.reset()
		w.ws.Flush()
	}()
	return w.writeValue(value)
}

func (w *Writer) writeValue(value Value) error {
	switch v := value.(type) {
	case *Object:
		return w.writeObject(v)
	case *Array:
		return w.writeArray(v)
	default:
		return w.writeLiteral(value)
	}
}

func (w *Writer) writeObject(value *Object) error {
	if value.Len() == 0 {
		w.ws.WriteString("{}")
		return nil
	}
	w.enter()

	w.ws.WriteRune('{')
	w.writeNL()
	var i int
	for k, v := range value.All() {
		if i > 0 {
			w.ws.WriteRune(',')
			w.writeNL()
		}
		w.writePrefix()
		w.writeKey(k)
		if err := w.writeValue(v); err != nil {
			return err
		}
		i++
	}
	w.leave()
	w.writeNL()
	w.writePrefix()
	w.ws.WriteRune('}')
	return nil
}

func (w *Writer) writeArray(value *Array) error {
	if value.Len() == 0 {
		w.ws.WriteString("[]")
		return nil
	}
	w.enter()

	w.ws.WriteRune('[')
	w.writeNL()
	var i int
	for v := range value.All() {
		if i > 0 {
			w.ws.WriteRune(',')
			w.writeNL()
		}
		w.writePrefix()
		if err := w.writeValue(v); err != nil {
			return err
		}
		i++
	}
	w.leave()
	w.writeNL()
	w.writePrefix()
	w.ws.WriteRune(']')
	return nil
}

func (w *Writer) writeLiteral(value Value) error {
	switch v := value.(type) {
	case nil, Null:
		w.ws.WriteString("null")
	case Bool:
		if v {
			w.ws.WriteString("true")
		} else {
			w.ws.WriteString("false")
		}
	case Int:
		w.ws.WriteString(strconv.FormatInt(int64(v), 10))
	case Float:
		str := strconv.FormatFloat(float64(v), 'f', -1, 64)
		if !strings.ContainsRune(str, '.') {
			str += ".0"
		}
		w.ws.WriteString(str)
	case String:
		w.writeString(string(v))
	default:
		return fmt.Errorf("unsupported value type")
	}
	return nil
}

func (w *Writer) writeKey(key string) {
	w.writeString(key)
	w.ws.WriteRune(':')
	if !w.Compact {
		w.ws.WriteRune(' ')
	}
}

func (w *Writer) writeString(value string) {
	w.ws.WriteRune('"')
	w.ws.WriteString(escape(value))
	w.ws.WriteRune('"')
}

func (w *Writer) writePrefix() {
	if w.Compact || w.level == 0 {
		return
	}
	space := strings.Repeat(w.Indent, w.level)
	w.ws.WriteString(space)
}

func (w *Writer) writeNL() {
	if w.Compact {
		return
	}
	w.ws.WriteRune('\n')
}

func (w *Writer) enter() {
	w.level++
}

func (w *Writer) leave() {
	w.level--
}

func (w *Writer) reset() {
	w.level = 0
}

// Format renders the compact one line form of a value.
func Format(value Value) string {
	var (
		buf strings.Builder
		ws  = NewWriter(&buf)
	)
	ws.Compact = true
	ws.Write(value)
	return buf.String()
}
