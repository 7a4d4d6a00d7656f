package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuffer_From verifies the copying constructor round-trips and detaches
// from the source slice.
func TestBuffer_From(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	b := From(src)

	assert.Equal(t, src, b.Bytes())
	src[0] = 99
	assert.Equal(t, byte(1), b.Bytes()[0], "From must copy, not alias")
}

// TestBuffer_AppendSub verifies append followed by a sub-view reproduces the
// appended bytes exactly.
func TestBuffer_AppendSub(t *testing.T) {
	b := New()
	payload := []byte{0xCA, 0xFE, 0xBA, 0xBE}
	b.Append(payload)

	assert.Equal(t, payload, b.Sub(0, len(payload)))
	assert.Equal(t, len(payload), b.Len())
}

// TestBuffer_SubClamping verifies short requests clamp silently and only an
// offset beyond the buffer panics.
func TestBuffer_SubClamping(t *testing.T) {
	b := From([]byte{1, 2, 3})

	assert.Equal(t, []byte{2, 3}, b.Sub(1, 100), "count clamps to available bytes")
	assert.Empty(t, b.Sub(3, 10), "offset at end is valid and yields nothing")
	assert.Equal(t, []byte{2, 3}, b.Sub(1, -1), "negative count means through the end")
	assert.Panics(t, func() { b.Sub(4, 1) }, "offset beyond the buffer")
}

// TestBuffer_Resize verifies growth zero-fills and shrink truncates.
func TestBuffer_Resize(t *testing.T) {
	b := From([]byte{1, 2, 3})

	b.Resize(6)
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0}, b.Bytes())

	b.Resize(2)
	assert.Equal(t, []byte{1, 2}, b.Bytes())

	// Regrowing over previously used storage still zero-fills.
	b.Resize(4)
	assert.Equal(t, []byte{1, 2, 0, 0}, b.Bytes())

	b.ResizeRepeat(6, 0xAA)
	assert.Equal(t, []byte{1, 2, 0, 0, 0xAA, 0xAA}, b.Bytes())
}

// TestBuffer_ReserveGrowth verifies reserve is capacity-only and the
// doubling policy kicks in for small requests.
func TestBuffer_ReserveGrowth(t *testing.T) {
	b := NewCapacity(16)
	require.Equal(t, 0, b.Len())
	require.GreaterOrEqual(t, b.Cap(), 16)

	b.Append(make([]byte, 16))
	before := b.Cap()
	b.AppendByte(1)
	assert.GreaterOrEqual(t, b.Cap(), before*2, "growth should at least double capacity")

	// A jump beyond double grows to exactly fit.
	c := NewCapacity(8)
	c.Reserve(1000)
	assert.GreaterOrEqual(t, c.Cap(), 1000)
}

// TestBuffer_ShrinkToFit verifies capacity drops to size.
func TestBuffer_ShrinkToFit(t *testing.T) {
	b := NewCapacity(128)
	b.Append([]byte{1, 2, 3})
	b.ShrinkToFit()
	assert.Equal(t, 3, b.Cap())
	assert.Equal(t, []byte{1, 2, 3}, b.Bytes())
}

// TestBuffer_InsertErase exercises mid-buffer editing.
func TestBuffer_InsertErase(t *testing.T) {
	b := From([]byte("helloworld"))

	b.Insert(5, []byte(", "))
	assert.Equal(t, "hello, world", string(b.Bytes()))

	b.Erase(5, 2)
	assert.Equal(t, "helloworld", string(b.Bytes()))

	// Erase count clamps to the bytes available.
	b.Erase(5, 100)
	assert.Equal(t, "hello", string(b.Bytes()))

	assert.Panics(t, func() { b.Insert(6, []byte("x")) })
	assert.Panics(t, func() { b.Erase(6, 1) })
}

// TestBuffer_FillZero exercises fill and zeroing.
func TestBuffer_FillZero(t *testing.T) {
	b := From(make([]byte, 4))

	b.Fill(0xFF)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, b.Bytes())

	b.FillRange(0x11, 1, 2)
	assert.Equal(t, []byte{0xFF, 0x11, 0x11, 0xFF}, b.Bytes())

	b.Zero()
	assert.Equal(t, []byte{0, 0, 0, 0}, b.Bytes())
}

// TestBuffer_AssignClear exercises content replacement.
func TestBuffer_AssignClear(t *testing.T) {
	b := From([]byte{1, 2, 3})

	b.Assign([]byte{9, 8})
	assert.Equal(t, []byte{9, 8}, b.Bytes())

	b.Clear()
	assert.True(t, b.Empty())
	assert.Zero(t, b.Len())
}

// TestBuffer_AppendRepeat verifies repeated-byte append.
func TestBuffer_AppendRepeat(t *testing.T) {
	b := New()
	b.AppendByte(1)
	b.AppendRepeat(7, 3)
	assert.Equal(t, []byte{1, 7, 7, 7}, b.Bytes())

	b.AppendRepeat(9, 0)
	assert.Equal(t, 4, b.Len())
}
