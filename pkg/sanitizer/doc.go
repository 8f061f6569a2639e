// Package sanitizer provides generic numeric helpers used to keep
// calculator results well-formed, plus a few string normalisers for input and
// log output.
//
// The helpers are stateless and depend only on the Go standard library:
//
//   - SafeDivide returns a caller-provided fallback instead of dividing by zero.
//   - RoundToDecimalPlaces and RoundMoney fold floating-point noise so that
//     monetary amounts compare equal to their literal values.
//   - ClampToNonNegative floors a value at zero.
//   - TrimToLower normalises enum-like input such as a shipping method.
//   - MaskEmail hides the local part of an address before it is logged.
//
// # Usage
//
//	import "github.com/dmitrymomot/whitebox/pkg/sanitizer"
//
//	ratio := sanitizer.SafeDivide(a, b, 0)
//	amount := sanitizer.RoundMoney(subtotal * 0.95)
package sanitizer
