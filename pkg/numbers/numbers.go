package numbers

import (
	"github.com/dmitrymomot/whitebox/pkg/sanitizer"
)

// IsEven reports whether n is divisible by two. Negative numbers follow the
// same rule: -4 is even, -3 is not.
func IsEven(n int) bool {
	return n%2 == 0
}

// Divide returns a/b, or 0 when b is zero.
func Divide(a, b float64) float64 {
	return sanitizer.SafeDivide(a, b, 0)
}

// Sign classifies a number relative to zero.
type Sign string

const (
	Negative Sign = "Negative"
	Zero     Sign = "Zero"
	Positive Sign = "Positive"
)

// CheckNumberStatus reports whether n is negative, zero or positive.
func CheckNumberStatus(n float64) Sign {
	switch {
	case n < 0:
		return Negative
	case n == 0:
		return Zero
	default:
		return Positive
	}
}
