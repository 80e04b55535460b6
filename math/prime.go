package math

import "fmt"

// IsPrime reports whether n is prime using 6k±1 trial division.
//
// Callers must pass n >= 2. Smaller values are not rejected: 0 reports false
// and 1 reports true.
func IsPrime(n uint64) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// i <= n/i is i*i <= n without overflowing for n near 2^64.
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// CheckedIsPrime is IsPrime with the n >= 2 precondition enforced.
func CheckedIsPrime(n uint64) (bool, error) {
	if n < 2 {
		return false, fmt.Errorf("prime(%d): %w: n must be at least 2", n, ErrInvalidArgument)
	}
	return IsPrime(n), nil
}
