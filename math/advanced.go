package math

import "fmt"

// Divide returns a / b rounded towards zero.
func Divide(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%d / 0: %w: division by zero", a, ErrInvalidArgument)
	}
	return a / b, nil
}

// Power returns base raised to exp by repeated squaring. 0^0 is 1.
func Power(base, exp uint64) (uint64, error) {
	result := uint64(1)
	for {
		if exp&1 == 1 {
			r, ok := multiply(result, base)
			if !ok {
				return 0, fmt.Errorf("pow(%d, %d): %w", base, exp, ErrOverflow)
			}
			result = r
		}
		exp >>= 1
		if exp == 0 {
			return result, nil
		}
		b, ok := multiply(base, base)
		if !ok {
			return 0, fmt.Errorf("pow(%d, %d): %w", base, exp, ErrOverflow)
		}
		base = b
	}
}

// GCF returns the greatest common factor of a and b. GCF(a, 0) is a.
func GCF(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 when either is 0.
func LCM(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	m, ok := multiply(a/GCF(a, b), b)
	if !ok {
		return 0, fmt.Errorf("lcm(%d, %d): %w", a, b, ErrOverflow)
	}
	return m, nil
}

// Factorial returns n!. Anything above 20! overflows.
func Factorial(n uint64) (uint64, error) {
	result := uint64(1)
	for i := uint64(2); i <= n; i++ {
		r, ok := multiply(result, i)
		if !ok {
			return 0, fmt.Errorf("%d!: %w", n, ErrOverflow)
		}
		result = r
	}
	return result, nil
}

// Permutations returns P(n, k) = n! / (n-k)!, the number of ordered
// selections of k items out of n.
func Permutations(n, k uint64) (uint64, error) {
	if k > n {
		return 0, fmt.Errorf("P(%d, %d): %w: k must not exceed n", n, k, ErrInvalidArgument)
	}
	result := uint64(1)
	for j := uint64(0); j < k; j++ {
		r, ok := multiply(result, n-j)
		if !ok {
			return 0, fmt.Errorf("P(%d, %d): %w", n, k, ErrOverflow)
		}
		result = r
	}
	return result, nil
}

// Combinations returns C(n, k), the number of unordered selections of k
// items out of n.
//
// With m = min(k, n-k), the running value after step i is C(n-m+i, i), which
// never exceeds the final result, so ErrOverflow is only reported when C(n, k) itself does
// not fit.
func Combinations(n, k uint64) (uint64, error) {
	if k > n {
		return 0, fmt.Errorf("C(%d, %d): %w: k must not exceed n", n, k, ErrInvalidArgument)
	}
	m := k
	if m > n-k {
		m = n - k
	}
	result := uint64(1)
	for i := uint64(1); i <= m; i++ {
		// i divides result*num, so after removing their common factor
		// from result the rest of i divides num.
		num := n - m + i
		g := GCF(result, i)
		r, ok := multiply(result/g, num/(i/g))
		if !ok {
			return 0, fmt.Errorf("C(%d, %d): %w", n, k, ErrOverflow)
		}
		result = r
	}
	return result, nil
}
