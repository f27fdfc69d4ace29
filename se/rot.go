package se

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Elementary rotation constructors. All angles are radians,
// counter-clockwise about the named axis.

// RotX returns the rotation matrix about the X axis.
func RotX(a float64) *mat.Dense {
	c, s := math.Cos(a), math.Sin(a)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// RotY returns the rotation matrix about the Y axis.
func RotY(a float64) *mat.Dense {
	c, s := math.Cos(a), math.Sin(a)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// RotZ returns the rotation matrix about the Z axis.
func RotZ(a float64) *mat.Dense {
	c, s := math.Cos(a), math.Sin(a)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// EulerXYZ returns the rotation RotZ(rz)*RotY(ry)*RotX(rx), the XYZ Euler
// convention: rotate about X first, then Y, then Z.
func EulerXYZ(rx, ry, rz float64) *mat.Dense {
	var m, out mat.Dense
	m.Mul(RotY(ry), RotX(rx))
	out.Mul(RotZ(rz), &m)
	return &out
}
