// Package numbers holds small arithmetic predicates and classifiers: parity,
// zero-safe division, sign, letter grade and the triangle inequality.
//
// Every function is total. Results that are shown to users are typed string
// constants (Sign, Grade, TriangleResult) so callers can switch on them and
// print them as-is.
package numbers
