// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Q is a quaternion of float64.
// R is the scalar part and V holds the i, j and k
// components, in this order.
//
// Comparing two Qs with == is exact. Use Near when
// rounding must be tolerated.
type Q struct {
	V V3
	R float64
}

// New returns the quaternion s + xi + yj + zk.
func New(s, x, y, z float64) Q { return Q{V: V3{x, y, z}, R: s} }

// Identity returns the multiplicative identity.
func Identity() Q { return Q{R: 1} }

// S returns the scalar part of q.
func (q Q) S() float64 { return q.R }

// X returns the i component of q.
func (q Q) X() float64 { return q.V[0] }

// Y returns the j component of q.
func (q Q) Y() float64 { return q.V[1] }

// Z returns the k component of q.
func (q Q) Z() float64 { return q.V[2] }

// Add returns l + r.
func Add(l, r Q) Q { return Q{AddV3(l.V, r.V), l.R + r.R} }

// Sub returns l - r.
func Sub(l, r Q) Q { return Q{SubV3(l.V, r.V), l.R - r.R} }

// Neg returns -q.
func Neg(q Q) Q { return Q{ScaleV3(-1, q.V), -q.R} }

// Mul returns the Hamilton product l ⋅ r.
// It is not commutative.
func Mul(l, r Q) Q {
	s, x, y, z := l.R, l.V[0], l.V[1], l.V[2]
	t, u, v, w := r.R, r.V[0], r.V[1], r.V[2]
	return Q{
		V: V3{
			s*u + x*t + y*w - z*v,
			s*v + y*t + z*u - x*w,
			s*w + z*t + x*v - y*u,
		},
		R: s*t - x*u - y*v - z*w,
	}
}

// AddScalar returns q + s.
// Only the scalar part of q is affected.
func AddScalar(q Q, s float64) Q { return Q{q.V, q.R + s} }

// ScalarAdd returns s + q.
func ScalarAdd(s float64, q Q) Q { return Q{q.V, s + q.R} }

// SubScalar returns q - s.
func SubScalar(q Q, s float64) Q { return Q{q.V, q.R - s} }

// ScalarSub returns s - q.
// The imaginary part of the result is negated.
func ScalarSub(s float64, q Q) Q { return Q{ScaleV3(-1, q.V), s - q.R} }

// MulScalar returns q ⋅ s.
func MulScalar(q Q, s float64) Q { return Q{V3{q.V[0] * s, q.V[1] * s, q.V[2] * s}, q.R * s} }

// ScalarMul returns s ⋅ q.
func ScalarMul(s float64, q Q) Q { return Q{ScaleV3(s, q.V), s * q.R} }

// DivScalar returns q / s.
// There is no quaternion by quaternion division;
// use Mul(l, r.Inv()) instead.
func DivScalar(q Q, s float64) Q { return Q{V3{q.V[0] / s, q.V[1] / s, q.V[2] / s}, q.R / s} }

// Add sets q to contain q + p.
func (q *Q) Add(p Q) { *q = Add(*q, p) }

// AddScalar sets q to contain q + s.
func (q *Q) AddScalar(s float64) { *q = AddScalar(*q, s) }

// Sub sets q to contain q - p.
func (q *Q) Sub(p Q) { *q = Sub(*q, p) }

// SubScalar sets q to contain q - s.
func (q *Q) SubScalar(s float64) { *q = SubScalar(*q, s) }

// Mul sets q to contain q ⋅ p.
func (q *Q) Mul(p Q) { *q = Mul(*q, p) }

// MulScalar sets q to contain q ⋅ s.
func (q *Q) MulScalar(s float64) { *q = MulScalar(*q, s) }

// DivScalar sets q to contain q / s.
func (q *Q) DivScalar(s float64) { *q = DivScalar(*q, s) }

// Conj returns the conjugate of q.
func (q Q) Conj() Q { return Q{ScaleV3(-1, q.V), q.R} }

// NormSq returns the squared norm of q.
func (q Q) NormSq() float64 {
	return q.R*q.R + q.V[0]*q.V[0] + q.V[1]*q.V[1] + q.V[2]*q.V[2]
}

// Norm returns the norm of q.
func (q Q) Norm() float64 { return math.Sqrt(q.NormSq()) }

// Dot returns q ⋅ p, taking both as 4-vectors.
func (q Q) Dot(p Q) float64 {
	return q.R*p.R + q.V[0]*p.V[0] + q.V[1]*p.V[1] + q.V[2]*p.V[2]
}

// Inv returns the multiplicative inverse of q.
// If q has zero norm, the result contains Inf/NaN values.
func (q Q) Inv() Q {
	n := q.NormSq()
	return Q{V3{-q.V[0] / n, -q.V[1] / n, -q.V[2] / n}, q.R / n}
}

// Unit returns q scaled to unit norm.
// If q has zero norm, the result contains NaN values.
func (q Q) Unit() Q { return DivScalar(q, q.Norm()) }

// Near reports whether every component of p lies
// within tol of the matching component of q.
func Near(p, q Q, tol float64) bool {
	if !scalar.EqualWithinAbs(p.R, q.R, tol) {
		return false
	}
	for i := range p.V {
		if !scalar.EqualWithinAbs(p.V[i], q.V[i], tol) {
			return false
		}
	}
	return true
}
