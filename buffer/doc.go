// Package buffer provides a growable byte buffer and the sequential cursor
// pair that layers typed, endianness-aware encoding on top of it.
//
// # Overview
//
// Buffer owns contiguous, resizable byte storage. Reader decodes typed
// values from a borrowed byte view, advancing a bounds-checked cursor.
// Writer encodes typed values into a Buffer, growing it as needed. Together
// they are the encoding primitive other packages use to define their own
// binary formats; no file format is defined here.
//
// # Wire Conventions
//
// Multi-byte integers are little-endian by default; every integer read and
// write has an explicit big-endian variant. Strings are raw UTF-8 bytes with
// no validation - invalid UTF-8 passes through silently. Length-prefixed
// strings use a 4-byte unsigned little-endian count followed immediately by
// that many bytes, no terminator.
//
// # Failure Model
//
// Reader operations fail with ErrShortRead (or ErrNoTerminator) without
// moving the cursor when insufficient data remains. Writer operations never
// fail: the buffer grows by amortized doubling, and growth that the runtime
// cannot satisfy is fatal at the runtime level, not an error the caller can
// observe.
//
// # Usage Example
//
//	w := buffer.NewWriter()
//	w.WriteUint32(42)
//	w.WriteLengthPrefixedString("ok")
//
//	r := buffer.NewReader(w.Bytes())
//	v, _ := r.ReadUint32()            // 42
//	s, _ := r.ReadLengthPrefixedString() // "ok"
//
// # Thread Safety
//
// Independent instances are safe to use from different goroutines. Sharing
// one Buffer, Reader, or Writer across goroutines without external locking
// is a data race: cursor advancement is an unsynchronized mutation.
package buffer
