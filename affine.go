package ifs

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the point (x, y) is sent to
//
//	(a·x + b·y + e, c·x + d·y + f)
//
// which corresponds to the augmented matrix
//
//	| a b e |
//	| c d f |
//	| 0 0 1 |
//
// This is the row convention used by IFS tables, where each map is written as
// "a b c d e f [p]". Note that it differs from the PostScript ordering. The idea
// is that (A * B) * v == A * (B * v).
type Affine struct {
	// We represent Affine as a struct instead of an array because Go applies fuck-all
	// optimizations to arrays, while structs benefit from SROA.

	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation by (x, y).
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation, and
// in Y-up (traditional for math), it is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, -sin, sin, cos, 0, 0}
}

// Coefficients returns the coefficients of the transform, in IFS row
// order.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.A, aff.B, aff.C, aff.D, aff.E, aff.F}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

// Apply returns the image of pt under aff.
//
// Non-finite coordinates or coefficients propagate according to the usual
// floating-point rules.
func (aff Affine) Apply(pt Point) Point {
	return Point{
		X: aff.A*pt.X + aff.B*pt.Y + aff.E,
		Y: aff.C*pt.X + aff.D*pt.Y + aff.F,
	}
}

// Mul returns the composition of aff and o, applying o first.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.A*o.A + aff.B*o.C,
		aff.A*o.B + aff.B*o.D,
		aff.C*o.A + aff.D*o.C,
		aff.C*o.B + aff.D*o.D,
		aff.A*o.E + aff.B*o.F + aff.E,
		aff.C*o.E + aff.D*o.F + aff.F,
	}
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.A*aff.D - aff.B*aff.C
}

func (aff Affine) IsInf() bool {
	return math.IsInf(aff.A, 0) ||
		math.IsInf(aff.B, 0) ||
		math.IsInf(aff.C, 0) ||
		math.IsInf(aff.D, 0) ||
		math.IsInf(aff.E, 0) ||
		math.IsInf(aff.F, 0)
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.A) ||
		math.IsNaN(aff.B) ||
		math.IsNaN(aff.C) ||
		math.IsNaN(aff.D) ||
		math.IsNaN(aff.E) ||
		math.IsNaN(aff.F)
}

// Lipschitz returns the Lipschitz constant of aff, which is the largest
// singular value of its linear part. The translation doesn't affect distances
// and is ignored.
//
// The map is a contraction if and only if the result is less than 1.
//
// For the 2x2 matrix M, the squared singular values are the eigenvalues of
// MᵀM, which are
//
//	(s ± √(s² − 4·det²)) / 2
//
// where s is the sum of the squares of the entries of M.
func (aff Affine) Lipschitz() float64 {
	s := aff.A*aff.A + aff.B*aff.B + aff.C*aff.C + aff.D*aff.D
	det := aff.Determinant()
	// Rounding can make the discriminant slightly negative for conformal maps.
	disc := max(0, s*s-4*det*det)
	return math.Sqrt(0.5 * (s + math.Sqrt(disc)))
}
