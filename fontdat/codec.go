package fontdat

import (
	"encoding/binary"
	"math"
)

// Reader decodes fixed-width fields from a byte slice.
// It does not bounds check; callers validate the total length first.
type Reader struct {
	buf   []byte
	off   int
	order binary.ByteOrder
}

// NewReader returns a Reader over buf using the given byte order.
// A nil order means little-endian.
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Reader{buf: buf, order: order}
}

// ReadInt32 reads a 4-byte signed integer and advances the cursor.
func (r *Reader) ReadInt32() int32 {
	v := int32(r.order.Uint32(r.buf[r.off:]))
	r.off += 4
	return v
}

// ReadFloat32 reads a 4-byte IEEE 754 float and advances the cursor.
func (r *Reader) ReadFloat32() float32 {
	v := math.Float32frombits(r.order.Uint32(r.buf[r.off:]))
	r.off += 4
	return v
}

// ReadString reads an n-byte NUL-padded field.
func (r *Reader) ReadString(n int) string {
	field := r.buf[r.off : r.off+n]
	r.off += n
	for i, c := range field {
		if c == 0 {
			return string(field[:i])
		}
	}
	return string(field)
}

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int { return r.off }

// Writer encodes fixed-width fields into a growing buffer.
type Writer struct {
	buf   []byte
	order binary.AppendByteOrder
}

// NewWriter returns a Writer with capacity hint size.
// A nil order means little-endian.
func NewWriter(size int, order binary.AppendByteOrder) *Writer {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Writer{buf: make([]byte, 0, size), order: order}
}

// WriteInt32 appends a 4-byte signed integer.
func (w *Writer) WriteInt32(v int32) {
	w.buf = w.order.AppendUint32(w.buf, uint32(v))
}

// WriteFloat32 appends a 4-byte IEEE 754 float.
func (w *Writer) WriteFloat32(v float32) {
	w.buf = w.order.AppendUint32(w.buf, math.Float32bits(v))
}

// WriteString appends s as an n-byte field. Strings longer than n-1 bytes
// are truncated so the field stays NUL terminated.
func (w *Writer) WriteString(s string, n int) {
	if len(s) > n-1 {
		s = s[:n-1]
	}
	start := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	copy(w.buf[start:], s)
}

// Bytes returns the encoded data.
func (w *Writer) Bytes() []byte { return w.buf }
