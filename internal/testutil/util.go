// Package testutil holds small helpers shared by the package tests.
// The engine's output is floating point, so comparisons are tolerance
// based rather than byte-exact.
package testutil

import "math"

// ApproxEqual reports whether a and b differ by less than tol (absolute).
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// WithinRel reports whether got is within a relative fraction rel of want.
// A zero want falls back to an absolute comparison against rel.
func WithinRel(got, want, rel float64) bool {
	if want == 0 {
		return math.Abs(got) < rel
	}
	return math.Abs(got-want)/math.Abs(want) < rel
}
