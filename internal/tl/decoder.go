package tl

import "errors"

// maxDepth bounds recursion on nested objects. Real cache blobs nest a
// handful of levels; anything deeper is malformed input.
const maxDepth = 64

// Decoder materializes Record Trees from blob bytes under one fixed
// protocol-version context. A Decoder is immutable and safe for concurrent
// use; decoding touches only the cursor it is given.
type Decoder struct {
	registry *Registry
	version  string
}

// NewDecoder returns a decoder bound to version. An unregistered version is
// rejected here, before any blob is looked at.
func NewDecoder(registry *Registry, version string) (*Decoder, error) {
	if !registry.HasVersion(version) {
		return nil, &UnknownConstructorError{Version: version}
	}
	return &Decoder{registry: registry, version: version}, nil
}

// Version returns the bound protocol-version selector.
func (d *Decoder) Version() string { return d.version }

// DecodeBlob decodes one whole blob column value. Any bytes left after the
// root object's recipe is consumed mean the assumed recipe family was wrong
// and the decode is rejected.
func (d *Decoder) DecodeBlob(buf []byte) (*Object, error) {
	cur := NewCursor(buf)
	obj, err := d.DecodeObject(cur)
	if err != nil {
		return nil, err
	}
	if cur.Remaining() > 0 {
		return nil, &TrailingBytesError{Offset: cur.Offset(), Remaining: cur.Remaining()}
	}
	return obj, nil
}

// DecodeObject reads one tag-dispatched object from cur. Unlike DecodeBlob
// it leaves any following bytes alone, so it is usable for nested decodes
// and for cursors shared with other reads.
func (d *Decoder) DecodeObject(cur *Cursor) (*Object, error) {
	return d.decodeObject(cur, 0)
}

func (d *Decoder) decodeObject(cur *Cursor, depth int) (*Object, error) {
	if depth > maxDepth {
		return nil, &InvalidLengthError{Offset: cur.Offset(), Length: depth, Reason: "nesting depth exceeds limit"}
	}
	off := cur.Offset()
	tag, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	recipe, err := d.registry.Resolve(d.version, tag)
	if err != nil {
		var unknown *UnknownConstructorError
		if errors.As(err, &unknown) {
			unknown.Offset = off
		}
		return nil, err
	}
	return d.decodeFields(cur, tag, recipe, depth)
}

// decodeFields reads a recipe's fields in order. Used both for tagged
// objects (tag just read) and bare ones (tag fixed by the parent, zero).
func (d *Decoder) decodeFields(cur *Cursor, tag uint32, recipe *Recipe, depth int) (*Object, error) {
	obj := &Object{Tag: tag, Name: recipe.Name, Fields: make([]Field, 0, len(recipe.Fields))}
	for _, f := range recipe.Fields {
		v, err := d.decodeField(cur, f, depth)
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, Field{Name: f.Name, Value: v})
	}
	return obj, nil
}

func (d *Decoder) decodeField(cur *Cursor, f FieldDef, depth int) (Value, error) {
	switch f.Kind {
	case KindInt32:
		v, err := cur.ReadInt32()
		if err != nil {
			return nil, err
		}
		return Int32(v), nil
	case KindInt64:
		v, err := cur.ReadInt64()
		if err != nil {
			return nil, err
		}
		return Int64(v), nil
	case KindDouble:
		v, err := cur.ReadDouble()
		if err != nil {
			return nil, err
		}
		return Double(v), nil
	case KindBool:
		off := cur.Offset()
		v, tag, err := cur.ReadBool()
		if err != nil {
			if errors.Is(err, errNotABool) {
				return nil, &UnknownConstructorError{Version: d.version, Tag: tag, TagKnown: true, Offset: off}
			}
			return nil, err
		}
		return Bool(v), nil
	case KindBytes:
		b, err := cur.ReadString()
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil
	case KindObject:
		return d.decodeObject(cur, depth+1)
	case KindBare:
		if depth+1 > maxDepth {
			return nil, &InvalidLengthError{Offset: cur.Offset(), Length: depth + 1, Reason: "nesting depth exceeds limit"}
		}
		return d.decodeFields(cur, 0, f.Bare, depth+1)
	case KindVector:
		return d.decodeVector(cur, f, depth)
	}
	return nil, &InvalidLengthError{Offset: cur.Offset(), Length: int(f.Kind), Reason: "recipe declares an unknown field kind"}
}

func (d *Decoder) decodeVector(cur *Cursor, f FieldDef, depth int) (Value, error) {
	off := cur.Offset()
	marker, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	if marker != TagVector {
		return nil, &UnknownConstructorError{Version: d.version, Tag: marker, TagKnown: true, Offset: off}
	}
	n, err := cur.ReadInt32()
	if err != nil {
		return nil, err
	}
	count := int(n)
	if count < 0 {
		return nil, &InvalidLengthError{Offset: off, Length: count, Reason: "negative vector count"}
	}
	// Reject impossible counts up front instead of failing partway through.
	if min := count * minElemWidth(f); min > cur.Remaining() {
		return nil, &InvalidLengthError{Offset: off, Length: count, Reason: "vector count exceeds remaining buffer"}
	}
	vec := &Vector{Items: make([]Value, 0, count)}
	elem := FieldDef{Kind: f.Elem, Bare: f.Bare}
	for i := 0; i < count; i++ {
		v, err := d.decodeField(cur, elem, depth+1)
		if err != nil {
			return nil, err
		}
		vec.Items = append(vec.Items, v)
	}
	return vec, nil
}

// minElemWidth is the smallest possible wire size of one vector element,
// used only for the up-front count sanity check.
func minElemWidth(f FieldDef) int {
	switch f.Elem {
	case KindInt64, KindDouble:
		return 8
	case KindBare:
		total := 0
		for _, bf := range f.Bare.Fields {
			switch bf.Kind {
			case KindInt64, KindDouble:
				total += 8
			default:
				total += 4
			}
		}
		return total
	default:
		// Tags, int32s, bools and string length prefixes are 4 bytes each.
		return 4
	}
}
