package math

import (
	"fmt"
	"math/bits"
)

// Add returns a + b, or ErrOverflow if the sum does not fit in a uint64.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return sum, nil
}

// Multiply returns a * b, or ErrOverflow if the product does not fit in a
// uint64.
func Multiply(a, b uint64) (uint64, error) {
	product, ok := multiply(a, b)
	if !ok {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return product, nil
}

// multiply is the unwrapped form of Multiply used in the loops of
// advanced.go, where the caller builds its own error message.
func multiply(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
