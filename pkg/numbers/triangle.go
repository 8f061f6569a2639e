package numbers

// TriangleResult is the verdict of IsTriangle.
type TriangleResult string

const (
	Triangle    TriangleResult = "Yes, it's a triangle!"
	NotTriangle TriangleResult = "No, it's not a triangle."
)

// IsTriangle applies the strict triangle inequality: each side must be
// shorter than the sum of the other two. Degenerate (flat) triangles and
// non-positive sides are rejected.
func IsTriangle(a, b, c float64) TriangleResult {
	if a+b > c && a+c > b && b+c > a {
		return Triangle
	}
	return NotTriangle
}

// Valid reports whether the verdict is Triangle.
func (r TriangleResult) Valid() bool {
	return r == Triangle
}
