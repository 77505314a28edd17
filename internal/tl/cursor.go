// Package tl decodes the TL serialization used inside Telegram's cache4.db
// blob columns. Decoding is driven by version-specific constructor tables
// (see Registry) and fails loudly on anything those tables do not describe.
package tl

import (
	"encoding/binary"
	"math"
)

// Cursor is a forward-only bounds-checked reader over one blob. Every read
// either advances the offset by exactly the bytes consumed or returns an
// error leaving the offset untouched.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a cursor over buf. The cursor does not copy buf; callers
// must not mutate it while decoding.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

func (c *Cursor) need(n int) error {
	if c.Remaining() < n {
		return &EndOfBufferError{Offset: c.off, Need: n, Have: c.Remaining()}
	}
	return nil
}

// ReadInt32 reads a little-endian signed 32-bit integer.
func (c *Cursor) ReadInt32() (int32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := int32(binary.LittleEndian.Uint32(c.buf[c.off:]))
	c.off += 4
	return v, nil
}

// ReadUint32 reads a little-endian unsigned 32-bit integer (constructor tags,
// vector markers).
func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.buf[c.off:])
	c.off += 4
	return v, nil
}

// ReadInt64 reads a little-endian signed 64-bit integer.
func (c *Cursor) ReadInt64() (int64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := int64(binary.LittleEndian.Uint64(c.buf[c.off:]))
	c.off += 8
	return v, nil
}

// ReadDouble reads a little-endian IEEE 754 double.
func (c *Cursor) ReadDouble() (float64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(c.buf[c.off:]))
	c.off += 8
	return v, nil
}

// ReadBool reads a boolean encoded as one of the two reserved tag values.
// On any other tag the offset is restored and the tag is returned so the
// decoder can report it with version context.
func (c *Cursor) ReadBool() (bool, uint32, error) {
	tag, err := c.ReadUint32()
	if err != nil {
		return false, 0, err
	}
	switch tag {
	case TagBoolTrue:
		return true, tag, nil
	case TagBoolFalse:
		return false, tag, nil
	}
	c.off -= 4
	return false, tag, errNotABool
}

// ReadBytes reads exactly n raw bytes, no padding.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, &InvalidLengthError{Offset: c.off, Length: n, Reason: "negative byte count"}
	}
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// ReadString reads a length-prefixed byte string: a 32-bit length, the
// payload, then padding up to the next 4-byte boundary. The declared length
// is checked against the remaining bytes before anything is consumed.
func (c *Cursor) ReadString() ([]byte, error) {
	start := c.off
	n, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	length := int(n)
	if length < 0 || length > c.Remaining() {
		c.off = start
		return nil, &InvalidLengthError{Offset: start, Length: length, Reason: "string length exceeds remaining buffer"}
	}
	padded := length
	if rem := length % 4; rem != 0 {
		padded += 4 - rem
	}
	if c.Remaining() < padded {
		c.off = start
		return nil, &EndOfBufferError{Offset: c.off + length, Need: padded - length, Have: c.Remaining() - length}
	}
	b := c.buf[c.off : c.off+length]
	c.off += padded
	return b, nil
}

// Subrange returns a child cursor bounded to exactly n of the remaining
// bytes and advances this cursor past them.
func (c *Cursor) Subrange(n int) (*Cursor, error) {
	if n < 0 || n > c.Remaining() {
		return nil, &InvalidLengthError{Offset: c.off, Length: n, Reason: "subrange exceeds remaining buffer"}
	}
	sub := &Cursor{buf: c.buf[c.off : c.off+n]}
	c.off += n
	return sub, nil
}
