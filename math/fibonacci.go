package math

import "fmt"

// MaxFibonacciIndex is the largest n whose term fits in a uint64.
// Term 95 is greater than math.MaxUint64.
const MaxFibonacciIndex = 94

// NthFibonacci returns the nth term of the sequence 0, 1, 1, 2, 3, 5, ...
// (1-indexed, so NthFibonacci(1) == 0).
//
// Callers must pass 1 <= n <= MaxFibonacciIndex. Larger n wraps modulo 2^64
// and n <= 0 returns 1.
func NthFibonacci(n int) uint64 {
	if n == 1 {
		return 0
	}
	if n == 2 {
		return 1
	}
	var prev, curr uint64 = 0, 1
	for i := 2; i < n; i++ {
		curr += prev
		prev = curr - prev
	}
	return curr
}

// CheckedNthFibonacci is NthFibonacci with its index range enforced.
func CheckedNthFibonacci(n int) (uint64, error) {
	if n < 1 {
		return 0, fmt.Errorf("fib(%d): %w: n must be at least 1", n, ErrInvalidArgument)
	}
	if n > MaxFibonacciIndex {
		return 0, fmt.Errorf("fib(%d): %w", n, ErrOverflow)
	}
	return NthFibonacci(n), nil
}
