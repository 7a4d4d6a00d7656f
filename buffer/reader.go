package buffer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/daktlib/memkit/internal/bounds"
)

// utf16LE decodes and encodes UTF-16LE without a byte-order mark, the usual
// convention for binary formats that carry wide strings.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Reader is a sequential decoding cursor over a borrowed byte view. It never
// owns or copies the data; callers must keep the underlying storage alive
// for the reader's lifetime.
//
// Every read is bounds-checked against the bytes remaining and fails without
// moving the cursor when they don't suffice. The cursor invariant
// 0 <= Position() <= Size() holds at all times.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a reader over data, positioned at the start.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current cursor offset.
func (r *Reader) Position() int {
	return r.pos
}

// Size returns the total length of the underlying view.
func (r *Reader) Size() int {
	return len(r.data)
}

// Remaining returns the bytes left between the cursor and the end.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// EOF reports whether the cursor has reached the end of the data.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.data)
}

// Seek moves the cursor to pos, clamped to [0, Size()].
func (r *Reader) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(r.data) {
		pos = len(r.data)
	}
	r.pos = pos
}

// Skip advances the cursor by n, clamped to [0, Size()]. A negative n moves
// backward.
func (r *Reader) Skip(n int) {
	r.Seek(r.pos + n)
}

// Rewind moves the cursor to the start.
func (r *Reader) Rewind() {
	r.pos = 0
}

// Rest returns a borrowed view of everything from the cursor to the end
// without advancing.
func (r *Reader) Rest() []byte {
	return r.data[r.pos:]
}

// take returns the next n bytes as a borrowed view and advances, or fails
// without moving the cursor.
func (r *Reader) take(n int) ([]byte, error) {
	b, ok := bounds.Slice(r.data, r.pos, n)
	if !ok {
		return nil, ErrShortRead
	}
	r.pos += n
	return b, nil
}

// Read copies exactly len(dst) bytes into dst, all or nothing.
func (r *Reader) Read(dst []byte) error {
	b, err := r.take(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// ReadBytes returns a borrowed view of the next n bytes. The view aliases
// the reader's data.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.take(n)
}

// ReadBuffer returns an owned copy of the next n bytes.
func (r *Reader) ReadBuffer(n int) (*Buffer, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	return From(b), nil
}

// ReadUint8 reads one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.pos >= len(r.data) {
		return 0, ErrShortRead
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadInt8 reads one byte as a signed value.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a little-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint16BE reads a big-endian uint16.
func (r *Reader) ReadUint16BE() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadInt16 reads a little-endian int16.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadInt16BE reads a big-endian int16.
func (r *Reader) ReadInt16BE() (int16, error) {
	v, err := r.ReadUint16BE()
	return int16(v), err
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint32BE reads a big-endian uint32.
func (r *Reader) ReadUint32BE() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadInt32 reads a little-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt32BE reads a big-endian int32.
func (r *Reader) ReadInt32BE() (int32, error) {
	v, err := r.ReadUint32BE()
	return int32(v), err
}

// ReadUint64 reads a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadUint64BE reads a big-endian uint64.
func (r *Reader) ReadUint64BE() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadInt64 reads a little-endian int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadInt64BE reads a big-endian int64.
func (r *Reader) ReadInt64BE() (int64, error) {
	v, err := r.ReadUint64BE()
	return int64(v), err
}

// ReadFloat32 reads a little-endian IEEE 754 single.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a little-endian IEEE 754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// PeekByte returns the byte at the cursor without advancing.
func (r *Reader) PeekByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrShortRead
	}
	return r.data[r.pos], nil
}

// PeekUint16 decodes a little-endian uint16 without advancing.
func (r *Reader) PeekUint16() (uint16, error) {
	b, ok := bounds.Slice(r.data, r.pos, 2)
	if !ok {
		return 0, ErrShortRead
	}
	return binary.LittleEndian.Uint16(b), nil
}

// PeekUint32 decodes a little-endian uint32 without advancing.
func (r *Reader) PeekUint32() (uint32, error) {
	b, ok := bounds.Slice(r.data, r.pos, 4)
	if !ok {
		return 0, ErrShortRead
	}
	return binary.LittleEndian.Uint32(b), nil
}

// PeekUint64 decodes a little-endian uint64 without advancing.
func (r *Reader) PeekUint64() (uint64, error) {
	b, ok := bounds.Slice(r.data, r.pos, 8)
	if !ok {
		return 0, ErrShortRead
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadString reads exactly n bytes as a string. The bytes are taken as-is;
// invalid UTF-8 passes through silently.
func (r *Reader) ReadString(n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadCString reads up to the next NUL byte, consuming but excluding the
// terminator. When no terminator exists before the end of data, it fails
// with ErrNoTerminator and the cursor is restored exactly - no partial
// consumption on failure.
func (r *Reader) ReadCString() (string, error) {
	i := bytes.IndexByte(r.data[r.pos:], 0)
	if i < 0 {
		return "", ErrNoTerminator
	}
	s := string(r.data[r.pos : r.pos+i])
	r.pos += i + 1
	return s, nil
}

// ReadCStringMax reads up to the next NUL byte, scanning at most max bytes.
// Unlike ReadCString it is lenient: when no terminator appears within the
// window it returns everything scanned and leaves the cursor after the
// window. A terminator at the cursor after the scan is consumed even when
// it sits just past the window.
func (r *Reader) ReadCStringMax(max int) string {
	if max < 0 {
		max = 0
	}
	limit := len(r.data)
	if end, ok := bounds.Add(r.pos, max); ok && end < limit {
		limit = end
	}
	start := r.pos
	for r.pos < limit && r.data[r.pos] != 0 {
		r.pos++
	}
	s := string(r.data[start:r.pos])
	if r.pos < len(r.data) && r.data[r.pos] == 0 {
		r.pos++
	}
	return s
}

// ReadLengthPrefixedString reads a 4-byte unsigned little-endian count, then
// exactly that many bytes as a string. Fails when either step lacks data;
// a failure on the second step leaves the prefix consumed.
func (r *Reader) ReadLengthPrefixedString() (string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	return r.ReadString(int(n))
}

// ReadUTF16String reads byteLen bytes of UTF-16LE data and decodes it to a
// Go string. Invalid code units are replaced, not rejected.
func (r *Reader) ReadUTF16String(byteLen int) (string, error) {
	b, err := r.take(byteLen)
	if err != nil {
		return "", err
	}
	decoded, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("buffer: utf-16 decode: %w", err)
	}
	return string(decoded), nil
}

// ReadLatin1String reads n bytes of ISO 8859-1 data and decodes it to a Go
// string.
func (r *Reader) ReadLatin1String(n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("buffer: latin-1 decode: %w", err)
	}
	return string(decoded), nil
}
