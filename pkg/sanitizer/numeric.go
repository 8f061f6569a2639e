package sanitizer

import (
	"math"
)

// Numeric represents numeric types that support basic arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// MoneyPlaces is the number of decimal places kept for monetary amounts.
const MoneyPlaces = 2

// SafeDivide performs division with protection against division by zero.
// Returns the result of numerator/denominator, or fallback if denominator is zero.
func SafeDivide[T Numeric](numerator T, denominator T, fallback T) T {
	if denominator == 0 {
		return fallback
	}
	return numerator / denominator
}

// RoundToDecimalPlaces rounds a floating-point number to the specified number of decimal places.
// Negative places are treated as zero.
func RoundToDecimalPlaces[T Float](value T, places int) T {
	if places < 0 {
		places = 0
	}

	multiplier := math.Pow(10, float64(places))
	return T(math.Round(float64(value)*multiplier) / multiplier)
}

// RoundMoney rounds an amount to MoneyPlaces, folding float noise such as
// 100.20000000000002 back onto the nearest cent.
func RoundMoney[T Float](value T) T {
	return RoundToDecimalPlaces(value, MoneyPlaces)
}

// ClampToNonNegative ensures the value is non-negative (>= 0). Returns 0 if value < 0.
func ClampToNonNegative[T Numeric](value T) T {
	if value < 0 {
		return 0
	}
	return value
}
