// Package testutil provides TL wire encoding and fixture cache databases
// for tests. The encoder mirrors the byte layout the decoder consumes:
// little-endian fixed-width integers, length-prefixed strings padded to a
// 4-byte boundary, tagged vectors and booleans.
package testutil

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/RealityNet/teleparser/internal/tl"
)

// BlobBuilder accumulates TL-encoded bytes for test fixtures.
type BlobBuilder struct {
	buf bytes.Buffer
}

// NewBlob returns an empty builder.
func NewBlob() *BlobBuilder {
	return &BlobBuilder{}
}

// Tag appends a 32-bit constructor tag.
func (b *BlobBuilder) Tag(tag uint32) *BlobBuilder {
	binary.Write(&b.buf, binary.LittleEndian, tag)
	return b
}

// Int32 appends a signed 32-bit integer.
func (b *BlobBuilder) Int32(v int32) *BlobBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

// Int64 appends a signed 64-bit integer.
func (b *BlobBuilder) Int64(v int64) *BlobBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

// Double appends an IEEE 754 double.
func (b *BlobBuilder) Double(v float64) *BlobBuilder {
	binary.Write(&b.buf, binary.LittleEndian, math.Float64bits(v))
	return b
}

// Bool appends one of the two reserved boolean tags.
func (b *BlobBuilder) Bool(v bool) *BlobBuilder {
	if v {
		return b.Tag(tl.TagBoolTrue)
	}
	return b.Tag(tl.TagBoolFalse)
}

// String appends a length-prefixed byte string padded to a 4-byte boundary.
func (b *BlobBuilder) String(s string) *BlobBuilder {
	b.Int32(int32(len(s)))
	b.buf.WriteString(s)
	for i := len(s); i%4 != 0; i++ {
		b.buf.WriteByte(0)
	}
	return b
}

// VectorHeader appends the vector marker tag and element count; the caller
// appends the elements.
func (b *BlobBuilder) VectorHeader(count int) *BlobBuilder {
	return b.Tag(tl.TagVector).Int32(int32(count))
}

// Raw appends bytes verbatim.
func (b *BlobBuilder) Raw(p []byte) *BlobBuilder {
	b.buf.Write(p)
	return b
}

// Bytes returns a copy of the encoded blob.
func (b *BlobBuilder) Bytes() []byte {
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())
	return out
}
