package buffer

import (
	"encoding/binary"
	"math"
)

// Writer is a sequential encoding cursor over a Buffer. Writes never fail:
// the buffer grows as needed, doubling its capacity or growing to exactly
// fit when doubling is insufficient, so each written byte costs amortized
// O(1).
//
// A writer either owns a private Buffer (NewWriter, NewWriterCapacity) or
// borrows a caller-supplied one (NewWriterBuffer); the choice is fixed at
// construction. The buffer's reported size tracks the high-water mark of
// the cursor: writing past the end extends it, while writing before the end
// after a backward Seek overwrites in place without shrinking it.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf   *Buffer
	owned bool
	pos   int
}

// NewWriter returns a writer over a fresh, empty buffer it owns.
func NewWriter() *Writer {
	return &Writer{buf: New(), owned: true}
}

// NewWriterCapacity returns a writer over a fresh owned buffer with at
// least n bytes of capacity.
func NewWriterCapacity(n int) *Writer {
	return &Writer{buf: NewCapacity(n), owned: true}
}

// NewWriterBuffer returns a writer that appends to the caller's buffer. The
// cursor starts at the buffer's current end; the caller keeps ownership.
// Panics if b is nil.
func NewWriterBuffer(b *Buffer) *Writer {
	if b == nil {
		panic("buffer: writer requires a non-nil buffer")
	}
	return &Writer{buf: b, pos: b.Len()}
}

// Position returns the current cursor offset.
func (w *Writer) Position() int {
	return w.pos
}

// Size returns the buffer's current size.
func (w *Writer) Size() int {
	return w.buf.Len()
}

// Bytes returns the accumulated bytes as a view into the underlying buffer.
// The view is invalidated by any write that grows the buffer.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Seek moves the cursor. Seeking past the current end is allowed; the gap
// is materialized (zero-filled) by the next write or Skip. Panics on a
// negative position.
func (w *Writer) Seek(pos int) {
	if pos < 0 {
		panic("buffer: negative write position")
	}
	w.pos = pos
}

// Skip advances the cursor by n, extending the buffer with zeros when the
// cursor passes its end. Panics on a negative count.
func (w *Writer) Skip(n int) {
	if n < 0 {
		panic("buffer: negative skip count")
	}
	w.pos += n
	if w.pos > w.buf.Len() {
		w.buf.Resize(w.pos)
	}
}

// Rewind moves the cursor to the start.
func (w *Writer) Rewind() {
	w.pos = 0
}

// grow extends the buffer so [pos, end) is addressable, zero-filling any
// gap between the old size and pos.
func (w *Writer) grow(end int) {
	if end > w.buf.Len() {
		w.buf.Resize(end)
	}
}

// Write copies p at the cursor and advances.
func (w *Writer) Write(p []byte) {
	end := w.pos + len(p)
	w.grow(end)
	copy(w.buf.Bytes()[w.pos:end], p)
	w.pos = end
}

// WriteUint8 writes one byte.
func (w *Writer) WriteUint8(v uint8) {
	end := w.pos + 1
	w.grow(end)
	w.buf.Bytes()[w.pos] = v
	w.pos = end
}

// WriteInt8 writes one byte as a signed value.
func (w *Writer) WriteInt8(v int8) {
	w.WriteUint8(uint8(v))
}

// WriteUint16 writes a little-endian uint16.
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.Write(b[:])
}

// WriteUint16BE writes a big-endian uint16.
func (w *Writer) WriteUint16BE(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.Write(b[:])
}

// WriteInt16 writes a little-endian int16.
func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

// WriteInt16BE writes a big-endian int16.
func (w *Writer) WriteInt16BE(v int16) {
	w.WriteUint16BE(uint16(v))
}

// WriteUint32 writes a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.Write(b[:])
}

// WriteUint32BE writes a big-endian uint32.
func (w *Writer) WriteUint32BE(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.Write(b[:])
}

// WriteInt32 writes a little-endian int32.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteInt32BE writes a big-endian int32.
func (w *Writer) WriteInt32BE(v int32) {
	w.WriteUint32BE(uint32(v))
}

// WriteUint64 writes a little-endian uint64.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.Write(b[:])
}

// WriteUint64BE writes a big-endian uint64.
func (w *Writer) WriteUint64BE(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.Write(b[:])
}

// WriteInt64 writes a little-endian int64.
func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

// WriteInt64BE writes a big-endian int64.
func (w *Writer) WriteInt64BE(v int64) {
	w.WriteUint64BE(uint64(v))
}

// WriteFloat32 writes a little-endian IEEE 754 single.
func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes a little-endian IEEE 754 double.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteString writes the raw bytes of s with no terminator or prefix.
func (w *Writer) WriteString(s string) {
	end := w.pos + len(s)
	w.grow(end)
	copy(w.buf.Bytes()[w.pos:end], s)
	w.pos = end
}

// WriteCString writes s followed by a NUL terminator.
func (w *Writer) WriteCString(s string) {
	w.WriteString(s)
	w.WriteUint8(0)
}

// WriteLengthPrefixedString writes a 4-byte unsigned little-endian byte
// count (excluding the prefix itself), then the raw bytes of s.
func (w *Writer) WriteLengthPrefixedString(s string) {
	w.WriteUint32(uint32(len(s)))
	w.WriteString(s)
}

// WriteUTF16String encodes s as UTF-16LE and writes the encoded bytes, no
// terminator. Invalid runes are replaced; UTF-16 encoding itself cannot
// fail.
func (w *Writer) WriteUTF16String(s string) {
	encoded, _ := utf16LE.NewEncoder().Bytes([]byte(s))
	w.Write(encoded)
}

// WritePadding writes n filler bytes of v at the cursor.
func (w *Writer) WritePadding(n int, v byte) {
	if n < 0 {
		panic("buffer: negative padding count")
	}
	end := w.pos + n
	w.grow(end)
	span := w.buf.Bytes()[w.pos:end]
	for i := range span {
		span[i] = v
	}
	w.pos = end
}

// Align writes filler bytes of v until Position() is a multiple of
// alignment. Panics if alignment is not positive.
func (w *Writer) Align(alignment int, v byte) {
	if alignment <= 0 {
		panic("buffer: alignment must be positive")
	}
	rem := w.pos % alignment
	if rem != 0 {
		w.WritePadding(alignment-rem, v)
	}
}

// ToBuffer yields the accumulated bytes. An owned buffer is moved out and
// the writer starts over on a fresh one; a borrowed buffer stays with its
// owner and a copy of its contents is returned.
func (w *Writer) ToBuffer() *Buffer {
	if w.owned {
		b := w.buf
		w.buf = New()
		w.pos = 0
		return b
	}
	return From(w.buf.Bytes())
}
