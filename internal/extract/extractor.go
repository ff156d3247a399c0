// Package extract provides a sequential reader of fixed-width little-endian
// unsigned integers over an in-memory byte buffer.
package extract

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a read would run past the end of the buffer.
var ErrOutOfBounds = errors.New("tga: read out of bounds")

// Extractor reads fixed-width values from a byte buffer, advancing a cursor
// after each read. The cursor only moves forward; there is no seek or reset.
//
// An Extractor is not safe for concurrent use. Independent Extractors over
// the same buffer are.
type Extractor struct {
	data   []byte
	cursor int
}

// New returns an Extractor positioned at the start of data.
// The buffer is not copied and must not be modified while in use.
func New(data []byte) *Extractor {
	return &Extractor{data: data}
}

// Next reads width bytes at the cursor as a little-endian unsigned integer
// and advances the cursor by width. Supported widths are 1, 2, 4 and 8.
//
// Next returns ErrOutOfBounds, and leaves the cursor unchanged, if fewer
// than width bytes remain.
func (e *Extractor) Next(width int) (uint64, error) {
	if width != 1 && width != 2 && width != 4 && width != 8 {
		return 0, fmt.Errorf("tga: unsupported field width %d", width)
	}
	if e.Remaining() < width {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrOutOfBounds, width, e.cursor, e.Remaining())
	}

	b := e.data[e.cursor : e.cursor+width]
	e.cursor += width

	switch width {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), nil
	default:
		return binary.LittleEndian.Uint64(b), nil
	}
}

// Uint8 reads a single byte.
func (e *Extractor) Uint8() (uint8, error) {
	v, err := e.Next(1)
	return uint8(v), err //nolint:gosec // width 1 fits uint8
}

// Uint16 reads a 2-byte little-endian value.
func (e *Extractor) Uint16() (uint16, error) {
	v, err := e.Next(2)
	return uint16(v), err //nolint:gosec // width 2 fits uint16
}

// Offset returns the current cursor position.
func (e *Extractor) Offset() int {
	return e.cursor
}

// Remaining returns the number of unread bytes.
func (e *Extractor) Remaining() int {
	return len(e.data) - e.cursor
}
