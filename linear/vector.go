// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements quaternion algebra over float64.
//
// The Q type is a plain value. Functions such as Add and Mul
// return new values, while the pointer methods of the same
// name replace the receiver with the result.
//
// No operation returns an error. Singular inputs (a zero norm
// in Inv, a zero quaternion in Ln) produce ±Inf or NaN as
// IEEE-754 arithmetic dictates.
package linear

import (
	"math"
)

// V3 is a 3-component vector of float64.
// It represents the imaginary part of a quaternion.
type V3 [3]float64

// AddV3 returns v + w.
func AddV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV3 returns v - w.
func SubV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float64, v V3) (u V3) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
func LenV3(v V3) float64 { return math.Sqrt(DotV3(v, v)) }

// NormV3 returns v normalized.
func NormV3(v V3) V3 { return ScaleV3(1/LenV3(v), v) }

// Cross returns v × w.
func Cross(v, w V3) (u V3) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// Add sets v to contain l + r.
func (v *V3) Add(l, r *V3) { *v = AddV3(*l, *r) }

// Sub sets v to contain l - r.
func (v *V3) Sub(l, r *V3) { *v = SubV3(*l, *r) }

// Scale sets v to contain s ⋅ w.
func (v *V3) Scale(s float64, w *V3) { *v = ScaleV3(s, *w) }

// Dot returns v ⋅ w.
func (v *V3) Dot(w *V3) float64 { return DotV3(*v, *w) }

// Len returns the length of v.
func (v *V3) Len() float64 { return LenV3(*v) }

// Norm sets v to contain w normalized.
func (v *V3) Norm(w *V3) { *v = NormV3(*w) }

// Cross sets v to contain l × r.
func (v *V3) Cross(l, r *V3) { *v = Cross(*l, *r) }
