package se

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kwv/geokit/geo"
)

// rotationTol is the tolerance used when checking that a matrix is a proper
// rotation (orthonormal, determinant +1).
const rotationTol = 0.01

// Se3 is a rigid transform in 3D space: a 3x3 rotation matrix R followed by
// a translation T. Instances come from NewSe3, Identity3 or the fit
// package; the zero value has no rotation matrix and is not usable.
type Se3 struct {
	R *mat.Dense
	T geo.Vec3
}

// NewSe3 builds a 3D rigid transform, validating that r is an exact 3x3
// proper rotation. The matrix is used as supplied, not copied.
func NewSe3(r *mat.Dense, t geo.Vec3) (Se3, error) {
	if rows, cols := r.Dims(); rows != 3 || cols != 3 {
		return Se3{}, geo.ErrMatrixShape
	}
	if !isRotation(r) {
		return Se3{}, ErrNotRotation
	}
	return Se3{R: r, T: t}, nil
}

// Identity3 returns the identity SE(3) transform.
func Identity3() Se3 {
	return Se3{
		R: mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		}),
	}
}

// isRotation checks determinant +1 and orthonormality within rotationTol.
func isRotation(r *mat.Dense) bool {
	if math.Abs(mat.Det(r)-1) > rotationTol {
		return false
	}
	var rtr mat.Dense
	rtr.Mul(r.T(), r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(rtr.At(i, j)-want) > rotationTol {
				return false
			}
		}
	}
	return true
}

// Apply transforms a point: R*p + T.
func (s Se3) Apply(p geo.Point3) geo.Point3 {
	r := s.R
	return geo.Point3{
		X: r.At(0, 0)*p.X + r.At(0, 1)*p.Y + r.At(0, 2)*p.Z + s.T.X,
		Y: r.At(1, 0)*p.X + r.At(1, 1)*p.Y + r.At(1, 2)*p.Z + s.T.Y,
		Z: r.At(2, 0)*p.X + r.At(2, 1)*p.Y + r.At(2, 2)*p.Z + s.T.Z,
	}
}

// ApplyVec transforms a displacement. Vectors rotate but do not translate.
func (s Se3) ApplyVec(v geo.Vec3) geo.Vec3 {
	r := s.R
	return geo.Vec3{
		X: r.At(0, 0)*v.X + r.At(0, 1)*v.Y + r.At(0, 2)*v.Z,
		Y: r.At(1, 0)*v.X + r.At(1, 1)*v.Y + r.At(1, 2)*v.Z,
		Z: r.At(2, 0)*v.X + r.At(2, 1)*v.Y + r.At(2, 2)*v.Z,
	}
}

// Invert returns the inverse transform: R' = transpose(R), T' = -R'*T.
func (s Se3) Invert() Se3 {
	rt := mat.DenseCopyOf(s.R.T())
	inv := Se3{R: rt}
	inv.T = inv.ApplyVec(s.T).Neg()
	return inv
}

// Compose returns the transform that applies b first and then s. Rotations
// multiply, and the translation is R_s*T_b + T_s.
func (s Se3) Compose(b Se3) Se3 {
	var r mat.Dense
	r.Mul(s.R, b.R)
	return Se3{
		R: &r,
		T: s.ApplyVec(b.T).Add(s.T),
	}
}

// Matrix4 returns the transform as a row-major 4x4 homogeneous matrix,
// the layout pose-consuming pipelines expect.
func (s Se3) Matrix4() [16]float64 {
	r := s.R
	return [16]float64{
		r.At(0, 0), r.At(0, 1), r.At(0, 2), s.T.X,
		r.At(1, 0), r.At(1, 1), r.At(1, 2), s.T.Y,
		r.At(2, 0), r.At(2, 1), r.At(2, 2), s.T.Z,
		0, 0, 0, 1,
	}
}
