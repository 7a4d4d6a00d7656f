package buffer

// Buffer owns a contiguous, growable byte sequence. The zero value is an
// empty buffer ready for use. Growth follows the standard amortized
// discipline: capacity doubles, or grows to exactly fit when doubling is
// insufficient.
//
// Buffer always manages its own storage; it does not take a custom
// allocator. Views handed out by Bytes and Sub alias the storage and are
// invalidated by any operation that grows it.
type Buffer struct {
	data []byte
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewCapacity returns an empty buffer with at least n bytes of capacity.
func NewCapacity(n int) *Buffer {
	if n < 0 {
		n = 0
	}
	return &Buffer{data: make([]byte, 0, n)}
}

// From returns a buffer holding a copy of p.
func From(p []byte) *Buffer {
	d := make([]byte, len(p))
	copy(d, p)
	return &Buffer{data: d}
}

// Bytes returns the buffer's contents as a mutable view. The view is
// invalidated by any growing operation.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the current size in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the current capacity in bytes.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Empty reports whether the buffer holds no bytes.
func (b *Buffer) Empty() bool {
	return len(b.data) == 0
}

// Resize sets the size to n, zero-filling any newly exposed tail.
func (b *Buffer) Resize(n int) {
	b.ResizeRepeat(n, 0)
}

// ResizeRepeat sets the size to n, filling any newly exposed tail with v.
func (b *Buffer) ResizeRepeat(n int, v byte) {
	if n < 0 {
		panic("buffer: negative size")
	}
	if n <= len(b.data) {
		b.data = b.data[:n]
		return
	}
	b.Reserve(n)
	tail := b.data[len(b.data):n]
	for i := range tail {
		tail[i] = v
	}
	b.data = b.data[:n]
}

// Reserve ensures capacity for at least n bytes without changing the size.
func (b *Buffer) Reserve(n int) {
	if n <= cap(b.data) {
		return
	}
	newCap := cap(b.data) * 2
	if newCap < n {
		newCap = n
	}
	d := make([]byte, len(b.data), newCap)
	copy(d, b.data)
	b.data = d
}

// ShrinkToFit reallocates so capacity matches size.
func (b *Buffer) ShrinkToFit() {
	if cap(b.data) == len(b.data) {
		return
	}
	d := make([]byte, len(b.data))
	copy(d, b.data)
	b.data = d
}

// Clear sets the size to zero, keeping capacity.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// Assign replaces the contents with a copy of p.
func (b *Buffer) Assign(p []byte) {
	b.Reserve(len(p))
	b.data = append(b.data[:0], p...)
}

// Append appends a copy of p.
func (b *Buffer) Append(p []byte) {
	b.Reserve(len(b.data) + len(p))
	b.data = append(b.data, p...)
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(v byte) {
	b.Reserve(len(b.data) + 1)
	b.data = append(b.data, v)
}

// AppendRepeat appends n copies of v.
func (b *Buffer) AppendRepeat(v byte, n int) {
	if n <= 0 {
		return
	}
	b.Reserve(len(b.data) + n)
	for i := 0; i < n; i++ {
		b.data = append(b.data, v)
	}
}

// Insert inserts a copy of p at offset off, shifting the tail right.
// Panics if off is outside [0, Len()].
func (b *Buffer) Insert(off int, p []byte) {
	if off < 0 || off > len(b.data) {
		panic("buffer: insert offset out of range")
	}
	if len(p) == 0 {
		return
	}
	b.Reserve(len(b.data) + len(p))
	b.data = b.data[:len(b.data)+len(p)]
	copy(b.data[off+len(p):], b.data[off:])
	copy(b.data[off:], p)
}

// Erase removes up to n bytes starting at off, shifting the tail left. The
// count is clamped to the bytes available. Panics if off is outside
// [0, Len()] or n is negative.
func (b *Buffer) Erase(off, n int) {
	if off < 0 || off > len(b.data) {
		panic("buffer: erase offset out of range")
	}
	if n < 0 {
		panic("buffer: negative erase count")
	}
	end := off + n
	if end > len(b.data) {
		end = len(b.data)
	}
	b.data = append(b.data[:off], b.data[end:]...)
}

// Fill sets every byte to v.
func (b *Buffer) Fill(v byte) {
	for i := range b.data {
		b.data[i] = v
	}
}

// FillRange sets up to n bytes starting at off to v, clamping the count to
// the bytes available. Panics if off is outside [0, Len()].
func (b *Buffer) FillRange(v byte, off, n int) {
	span := b.Sub(off, n)
	for i := range span {
		span[i] = v
	}
}

// Zero sets every byte to zero.
func (b *Buffer) Zero() {
	b.Fill(0)
}

// Sub returns a mutable view of up to n bytes starting at off. A request
// extending past the end is silently clamped to the bytes available, and a
// negative n means "through the end". Only an offset beyond the buffer
// panics.
func (b *Buffer) Sub(off, n int) []byte {
	if off < 0 || off > len(b.data) {
		panic("buffer: offset out of range")
	}
	if n < 0 || n > len(b.data)-off {
		n = len(b.data) - off
	}
	return b.data[off : off+n]
}
