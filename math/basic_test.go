package math

import (
	"errors"
	stdmath "math"
	"testing"
)

func TestAdd(t *testing.T) {
	if got, err := Add(5, 3); err != nil || got != 8 {
		t.Errorf("Add(5, 3) = %d, %v", got, err)
	}
	if got, err := Add(stdmath.MaxUint64-1, 1); err != nil || got != stdmath.MaxUint64 {
		t.Errorf("Add(MaxUint64-1, 1) = %d, %v", got, err)
	}
	if _, err := Add(stdmath.MaxUint64, 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("Add(MaxUint64, 1) error = %v, want ErrOverflow", err)
	}
}

func TestMultiply(t *testing.T) {
	if got, err := Multiply(6, 7); err != nil || got != 42 {
		t.Errorf("Multiply(6, 7) = %d, %v", got, err)
	}
	if got, err := Multiply(1<<32, 1<<31); err != nil || got != 1<<63 {
		t.Errorf("Multiply(2^32, 2^31) = %d, %v", got, err)
	}
	if _, err := Multiply(1<<32, 1<<32); !errors.Is(err, ErrOverflow) {
		t.Errorf("Multiply(2^32, 2^32) error = %v, want ErrOverflow", err)
	}
	if got, err := Multiply(0, stdmath.MaxUint64); err != nil || got != 0 {
		t.Errorf("Multiply(0, MaxUint64) = %d, %v", got, err)
	}
}
