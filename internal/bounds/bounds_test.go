package bounds

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	if sum, ok := Add(10, 5); !ok || sum != 15 {
		t.Fatalf("Add(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := Add(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := Add(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMul(t *testing.T) {
	if prod, ok := Mul(8, 64); !ok || prod != 512 {
		t.Fatalf("Mul(8,64)=%d,%v want 512,true", prod, ok)
	}
	if prod, ok := Mul(0, math.MaxInt); !ok || prod != 0 {
		t.Fatalf("Mul(0,MaxInt)=%d,%v want 0,true", prod, ok)
	}
	if _, ok := Mul(math.MaxInt/2, 3); ok {
		t.Fatalf("expected overflow for MaxInt/2 * 3")
	}
	if _, ok := Mul(math.MaxInt, -2); ok {
		t.Fatalf("expected overflow for MaxInt * -2")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}

	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}
