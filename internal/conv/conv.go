// Package conv provides checked integer narrowing for offset-vector
// encoding.
//
// Offset vectors carry int32 byte offsets while Go slice arithmetic works
// in int. Narrowing panics on overflow since a subject longer than 2 GiB
// crossing this boundary indicates a programming error in an executor
// adapter, not a recoverable condition.
package conv

import "math"

// IntToInt32 safely converts an int to int32.
// Panics if n is outside the int32 range.
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("integer overflow: int value out of int32 range")
	}
	return int32(n)
}
