package tl

import (
	"errors"
	"fmt"
)

// errNotABool marks a bool read that found some other tag; the decoder
// rewraps it with version context as an UnknownConstructorError.
var errNotABool = errors.New("tl: tag is not a boolean constructor")

// EndOfBufferError reports a read that would run past the end of a blob.
type EndOfBufferError struct {
	Offset int
	Need   int
	Have   int
}

func (e *EndOfBufferError) Error() string {
	return fmt.Sprintf("unexpected end of buffer at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

// UnknownConstructorError reports a constructor tag with no recipe under the
// active version, or a version with no registered schema at all (Tag is zero
// and TagKnown false in that case).
type UnknownConstructorError struct {
	Version  string
	Tag      uint32
	TagKnown bool
	Offset   int
}

func (e *UnknownConstructorError) Error() string {
	if !e.TagKnown {
		return fmt.Sprintf("unknown version %q: no schema registered", e.Version)
	}
	return fmt.Sprintf("unknown constructor 0x%08x under version %q at offset %d", e.Tag, e.Version, e.Offset)
}

// InvalidLengthError reports a declared length inconsistent with the bytes
// actually available, or a nesting depth past the decoder's limit.
type InvalidLengthError struct {
	Offset int
	Length int
	Reason string
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length %d at offset %d: %s", e.Length, e.Offset, e.Reason)
}

// TrailingBytesError reports unconsumed bytes after a root decode completed.
// The usual cause is a wrong recipe family assumed for a blob column.
type TrailingBytesError struct {
	Offset    int
	Remaining int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("%d trailing bytes after decode ended at offset %d", e.Remaining, e.Offset)
}

// NullBlobError reports an absent or empty blob in a column that requires one.
type NullBlobError struct {
	Column string
}

func (e *NullBlobError) Error() string {
	return fmt.Sprintf("column %q: blob is null or empty", e.Column)
}
