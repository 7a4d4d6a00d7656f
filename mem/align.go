package mem

// Alignment utilities. All alignment arguments throughout the package must
// be powers of two; the helpers here enforce that precondition.

// DefaultAlignment is a safe alignment for any primitive value.
const DefaultAlignment = 16

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AlignUp returns v rounded up to the next multiple of alignment.
// alignment must be a power of two.
//
// Example:
//
//	AlignUp(1, 8)  = 8
//	AlignUp(8, 8)  = 8
//	AlignUp(9, 8)  = 16
func AlignUp(v, alignment int) int {
	checkAlignment(alignment)
	return (v + alignment - 1) &^ (alignment - 1)
}

// AlignDown returns v rounded down to the previous multiple of alignment.
// alignment must be a power of two.
func AlignDown(v, alignment int) int {
	checkAlignment(alignment)
	return v &^ (alignment - 1)
}

// IsAligned reports whether v is a multiple of alignment.
// alignment must be a power of two.
func IsAligned(v, alignment int) bool {
	checkAlignment(alignment)
	return v&(alignment-1) == 0
}

func checkAlignment(alignment int) {
	if !IsPowerOfTwo(alignment) {
		panic("mem: alignment must be a power of two")
	}
}
