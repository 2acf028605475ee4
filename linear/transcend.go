// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Epsilon is the difference between 1 and the next
// representable float64. Exp adds it to the length of
// the imaginary part so that sin(x)/x is never 0/0.
const Epsilon = 0x1p-52

// Exp returns the exponential of q.
//
// The imaginary part is scaled by sin(θ+ε)/(θ+ε), where θ
// is the length of q.V and ε is Epsilon. This is an
// approximation of sin(θ)/θ whose error is bounded by ε;
// for θ = 0 it evaluates to exactly 1.
func (q Q) Exp() Q {
	ph := LenV3(q.V)
	q0 := math.Exp(q.R)
	qs := q0 * math.Sin(ph+Epsilon) / (ph + Epsilon)
	return Q{ScaleV3(qs, q.V), q0 * math.Cos(ph)}
}

// Ln returns the principal natural logarithm of q.
// Ln of the zero quaternion has -Inf as scalar part.
func (q Q) Ln() Q {
	phsq := DotV3(q.V, q.V)
	q0 := math.Sqrt(q.R*q.R + phsq)
	if phsq <= 0 {
		return Q{R: math.Log(q0)}
	}
	// Rounding can push the cosine slightly outside [-1, 1].
	c := math.Max(-1, math.Min(1, q.R/q0))
	qs := math.Acos(c) / math.Sqrt(phsq)
	return Q{ScaleV3(qs, q.V), math.Log(q0)}
}

// Pow returns q raised to the real power e.
//
// When q.V is zero the result is (|q|^e, 0, 0, 0), so the
// power of a negative real is taken as that of its absolute
// value.
func (q Q) Pow(e float64) Q {
	phsq := DotV3(q.V, q.V)
	ph := math.Sqrt(phsq)
	qx := math.Pow(math.Sqrt(q.R*q.R+phsq), e)
	if phsq <= 0 {
		return Q{R: qx * math.Cos(e*ph)}
	}
	// The angle is the polar angle of q rather than the length
	// of q.V, so that q.Pow(1) is q.
	th := e * math.Atan2(ph, q.R)
	qs := qx * math.Sin(th) / ph
	return Q{ScaleV3(qs, q.V), qx * math.Cos(th)}
}

// Sqrt returns the principal square root of q.
// The root of a negative real is taken along i.
func (q Q) Sqrt() Q {
	if q.R < 0 && DotV3(q.V, q.V) <= 0 {
		return Q{V: V3{math.Sqrt(-q.R)}}
	}
	return q.Pow(0.5)
}

// AxisAngle returns the unit quaternion that rotates
// by angle radians around axis.
// axis need not be normalized, but must not be zero.
func AxisAngle(axis V3, angle float64) Q {
	return Q{V: ScaleV3(angle/2/LenV3(axis), axis)}.Exp()
}

// Rotate returns v rotated by q, that is, the
// imaginary part of q ⋅ v ⋅ q⁻¹.
// q need not have unit norm.
func (q Q) Rotate(v V3) V3 {
	t := ScaleV3(2/q.NormSq(), Cross(q.V, v))
	return AddV3(AddV3(v, ScaleV3(q.R, t)), Cross(q.V, t))
}

// Slerp interpolates between the rotations p and q.
// t = 0 yields p and t = 1 yields q (or -q, which
// represents the same rotation).
// The shortest arc is taken.
func Slerp(p, q Q, t float64) Q {
	if p.Dot(q) < 0 {
		q = Neg(q)
	}
	return Mul(p, Mul(p.Inv(), q).Pow(t))
}
