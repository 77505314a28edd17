package tl

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Value is one node of a decoded Record Tree: a primitive leaf, an Object,
// or a Vector.
type Value interface {
	write(w io.Writer, indent int)
}

// Int32 is a signed 32-bit leaf.
type Int32 int32

// Int64 is a signed 64-bit leaf.
type Int64 int64

// Double is an IEEE 754 leaf.
type Double float64

// Bool is a boolean leaf.
type Bool bool

// Bytes is a length-prefixed byte-string leaf. Rendering shows it as text
// when it is printable UTF-8 and as hex otherwise.
type Bytes []byte

// Field is one named child of an Object, in recipe order.
type Field struct {
	Name  string
	Value Value
}

// Object is a decoded constructor: its tag, the recipe's name, and the
// fields in recipe order.
type Object struct {
	Tag    uint32
	Name   string
	Fields []Field
}

// Vector is a homogeneous sequence of decoded elements.
type Vector struct {
	Items []Value
}

// Get returns the named direct field, or nil.
func (o *Object) Get(name string) Value {
	for i := range o.Fields {
		if o.Fields[i].Name == name {
			return o.Fields[i].Value
		}
	}
	return nil
}

// GetObject returns the named field when it is an Object, or nil.
func (o *Object) GetObject(name string) *Object {
	child, _ := o.Get(name).(*Object)
	return child
}

// GetInt returns the named field as an int64 when it is an integer leaf.
func (o *Object) GetInt(name string) (int64, bool) {
	switch v := o.Get(name).(type) {
	case Int32:
		return int64(v), true
	case Int64:
		return int64(v), true
	}
	return 0, false
}

// GetString returns the named field as a string when it is a byte-string leaf.
func (o *Object) GetString(name string) (string, bool) {
	if v, ok := o.Get(name).(Bytes); ok {
		return string(v), true
	}
	return "", false
}

// Lookup walks a dotted path of field names through nested objects and
// returns the value at the end, or nil when any step is missing.
func (o *Object) Lookup(path string) Value {
	cur := o
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v := cur.Get(part)
		if v == nil {
			return nil
		}
		if i == len(parts)-1 {
			return v
		}
		next, ok := v.(*Object)
		if !ok {
			return nil
		}
		cur = next
	}
	return nil
}

// LookupInt is Lookup for integer leaves.
func (o *Object) LookupInt(path string) (int64, bool) {
	switch v := o.Lookup(path).(type) {
	case Int32:
		return int64(v), true
	case Int64:
		return int64(v), true
	}
	return 0, false
}

// String renders the tree as an indented name/value listing.
func (o *Object) String() string {
	var sb strings.Builder
	o.write(&sb, 0)
	return sb.String()
}

func pad(w io.Writer, indent int) {
	io.WriteString(w, strings.Repeat("    ", indent))
}

func (v Int32) write(w io.Writer, _ int)  { fmt.Fprintf(w, "%d", int32(v)) }
func (v Int64) write(w io.Writer, _ int)  { fmt.Fprintf(w, "%d", int64(v)) }
func (v Double) write(w io.Writer, _ int) { fmt.Fprintf(w, "%g", float64(v)) }
func (v Bool) write(w io.Writer, _ int)   { fmt.Fprintf(w, "%t", bool(v)) }

func (v Bytes) write(w io.Writer, _ int) {
	if len(v) == 0 {
		io.WriteString(w, `""`)
		return
	}
	if printable(v) {
		fmt.Fprintf(w, "%s", string(v))
		return
	}
	fmt.Fprintf(w, "0x%x", []byte(v))
}

func (o *Object) write(w io.Writer, indent int) {
	if o.Tag == 0 {
		// Bare objects carry no wire tag of their own.
		io.WriteString(w, o.Name)
	} else {
		fmt.Fprintf(w, "%s (0x%08x)", o.Name, o.Tag)
	}
	for _, f := range o.Fields {
		io.WriteString(w, "\n")
		pad(w, indent+1)
		fmt.Fprintf(w, "%s: ", f.Name)
		f.Value.write(w, indent+1)
	}
}

func (v *Vector) write(w io.Writer, indent int) {
	fmt.Fprintf(w, "vector[%d]", len(v.Items))
	for i, item := range v.Items {
		io.WriteString(w, "\n")
		pad(w, indent+1)
		fmt.Fprintf(w, "%d: ", i)
		item.write(w, indent+1)
	}
}

func printable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if r < 0x20 && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}
