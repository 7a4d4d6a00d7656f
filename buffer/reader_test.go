package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReader_TypedReads decodes a hand-built little-endian sequence.
func TestReader_TypedReads(t *testing.T) {
	r := NewReader([]byte{
		0x2A,                   // u8 42
		0xEF, 0xBE, 0xAD, 0xDE, // u32 0xDEADBEEF
		0x34, 0x12, // u16 0x1234
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F, // u64
	})

	v8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(42), v8)

	v32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v32)

	v16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)

	v64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7FFFFFFFFFFFFFFF), v64)

	assert.True(t, r.EOF())
}

// TestReader_BigEndian verifies the byte-swapped variants.
func TestReader_BigEndian(t *testing.T) {
	r := NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x12, 0x34})

	v32, err := r.ReadUint32BE()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v32)

	v16, err := r.ReadUint16BE()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)
}

// TestReader_ShortRead verifies a failed read does not move the cursor.
func TestReader_ShortRead(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})

	_, err := r.ReadUint32()
	require.ErrorIs(t, err, ErrShortRead)
	assert.Zero(t, r.Position(), "failed read must not consume")

	v16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), v16)

	_, err = r.ReadUint16()
	assert.ErrorIs(t, err, ErrShortRead)
	assert.Equal(t, 2, r.Position())
}

// TestReader_SeekSkip verifies cursor movement clamps to [0, Size()].
func TestReader_SeekSkip(t *testing.T) {
	r := NewReader(make([]byte, 10))

	r.Seek(100)
	assert.Equal(t, 10, r.Position())
	assert.True(t, r.EOF())

	r.Seek(-5)
	assert.Zero(t, r.Position())

	r.Skip(4)
	assert.Equal(t, 4, r.Position())
	assert.Equal(t, 6, r.Remaining())

	r.Skip(-100)
	assert.Zero(t, r.Position())

	r.Skip(3)
	r.Rewind()
	assert.Zero(t, r.Position())
}

// TestReader_Peek verifies peeks decode without advancing.
func TestReader_Peek(t *testing.T) {
	r := NewReader([]byte{0xEF, 0xBE, 0xAD, 0xDE})

	b, err := r.PeekByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xEF), b)

	v, err := r.PeekUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v)
	assert.Zero(t, r.Position())

	_, err = r.PeekUint64()
	assert.ErrorIs(t, err, ErrShortRead)
}

// TestReader_BytesAndBuffer verifies borrowed views versus owned copies.
func TestReader_BytesAndBuffer(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	r := NewReader(data)

	view, err := r.ReadBytes(3)
	require.NoError(t, err)
	view[0] = 99
	assert.Equal(t, byte(99), data[0], "ReadBytes borrows the underlying data")

	owned, err := r.ReadBuffer(3)
	require.NoError(t, err)
	owned.Bytes()[0] = 77
	assert.Equal(t, byte(4), data[3], "ReadBuffer copies")

	_, err = r.ReadBytes(1)
	assert.ErrorIs(t, err, ErrShortRead)
}

// TestReader_ReadString verifies exact-length string reads pass bytes
// through unvalidated.
func TestReader_ReadString(t *testing.T) {
	r := NewReader([]byte("hello\xffworld"))

	s, err := r.ReadString(5)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	// Invalid UTF-8 passes through silently.
	s, err = r.ReadString(6)
	require.NoError(t, err)
	assert.Equal(t, "\xffworld", s)

	_, err = r.ReadString(1)
	assert.ErrorIs(t, err, ErrShortRead)
}

// TestReader_ReadCString verifies the strict variant: terminator required,
// cursor restored exactly on failure.
func TestReader_ReadCString(t *testing.T) {
	r := NewReader([]byte("abc\x00def"))

	s, err := r.ReadCString()
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
	assert.Equal(t, 4, r.Position(), "terminator is consumed but excluded")

	// No terminator before the end: fail and restore the cursor.
	_, err = r.ReadCString()
	require.ErrorIs(t, err, ErrNoTerminator)
	assert.Equal(t, 4, r.Position(), "idempotent failure")
}

// TestReader_ReadCStringMax verifies the lenient bounded variant returns the
// scanned window even without a terminator.
func TestReader_ReadCStringMax(t *testing.T) {
	// 10 bytes, no NUL anywhere.
	r := NewReader([]byte("0123456789"))

	s := r.ReadCStringMax(5)
	assert.Equal(t, "01234", s)
	assert.Equal(t, 5, r.Position())

	// With a terminator inside the window it behaves like the strict read.
	r = NewReader([]byte("ab\x00cd"))
	s = r.ReadCStringMax(10)
	assert.Equal(t, "ab", s)
	assert.Equal(t, 3, r.Position())

	// A terminator sitting immediately after the window is still consumed.
	r = NewReader([]byte("abcd\x00ef"))
	s = r.ReadCStringMax(4)
	assert.Equal(t, "abcd", s)
	assert.Equal(t, 5, r.Position())
}

// TestReader_ReadLengthPrefixedString verifies the u32-count convention and
// its failure modes.
func TestReader_ReadLengthPrefixedString(t *testing.T) {
	r := NewReader([]byte{5, 0, 0, 0, 'h', 'e', 'l', 'l', 'o'})

	s, err := r.ReadLengthPrefixedString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.True(t, r.EOF())

	// Prefix promises more than remains.
	r = NewReader([]byte{9, 0, 0, 0, 'h', 'i'})
	_, err = r.ReadLengthPrefixedString()
	assert.ErrorIs(t, err, ErrShortRead)

	// Not even a whole prefix.
	r = NewReader([]byte{1, 0})
	_, err = r.ReadLengthPrefixedString()
	assert.ErrorIs(t, err, ErrShortRead)
	assert.Zero(t, r.Position())
}

// TestReader_Rest verifies the remaining-view accessor.
func TestReader_Rest(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	r.Skip(1)
	assert.Equal(t, []byte{2, 3, 4}, r.Rest())
	assert.Equal(t, 1, r.Position(), "Rest does not advance")
}

// TestReader_ReadInto verifies the all-or-nothing copy read.
func TestReader_ReadInto(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})

	dst := make([]byte, 2)
	require.NoError(t, r.Read(dst))
	assert.Equal(t, []byte{1, 2}, dst)

	err := r.Read(make([]byte, 2))
	require.ErrorIs(t, err, ErrShortRead)
	assert.Equal(t, 2, r.Position())
}

// TestReader_UTF16 verifies UTF-16LE decoding, including a non-BMP rune
// encoded as a surrogate pair.
func TestReader_UTF16(t *testing.T) {
	// "hi" in UTF-16LE.
	r := NewReader([]byte{'h', 0, 'i', 0})
	s, err := r.ReadUTF16String(4)
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	// U+1F600 as the surrogate pair D83D DE00.
	r = NewReader([]byte{0x3D, 0xD8, 0x00, 0xDE})
	s, err = r.ReadUTF16String(4)
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", s)

	_, err = r.ReadUTF16String(2)
	assert.ErrorIs(t, err, ErrShortRead)
}

// TestReader_Latin1 verifies ISO 8859-1 bytes map to their code points.
func TestReader_Latin1(t *testing.T) {
	// "café" with é as the single Latin-1 byte 0xE9.
	r := NewReader([]byte{'c', 'a', 'f', 0xE9})
	s, err := r.ReadLatin1String(4)
	require.NoError(t, err)
	assert.Equal(t, "café", s)
}
