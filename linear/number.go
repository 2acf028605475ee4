// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"gonum.org/v1/gonum/num/quat"
)

// Number returns q as a gonum quaternion.
func (q Q) Number() quat.Number {
	return quat.Number{Real: q.R, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// FromNumber returns the gonum quaternion n as a Q.
func FromNumber(n quat.Number) Q { return New(n.Real, n.Imag, n.Jmag, n.Kmag) }
