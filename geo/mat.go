package geo

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// The matrix side of the kernel is gonum's dense type. Every entry point
// checks for an exact 3x3 shape and fails with ErrMatrixShape otherwise;
// shapes are never coerced.

func check3x3(m mat.Matrix) error {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return fmt.Errorf("%w, got %dx%d", ErrMatrixShape, r, c)
	}
	return nil
}

// MultVec3 returns m*v for a 3x3 matrix m.
func MultVec3(m mat.Matrix, v Vec3) (Vec3, error) {
	if err := check3x3(m); err != nil {
		return Vec3{}, err
	}
	return Vec3{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}, nil
}

// MultVec3Trans returns transpose(m)*v for a 3x3 matrix m.
func MultVec3Trans(m mat.Matrix, v Vec3) (Vec3, error) {
	if err := check3x3(m); err != nil {
		return Vec3{}, err
	}
	return Vec3{
		X: m.At(0, 0)*v.X + m.At(1, 0)*v.Y + m.At(2, 0)*v.Z,
		Y: m.At(0, 1)*v.X + m.At(1, 1)*v.Y + m.At(2, 1)*v.Z,
		Z: m.At(0, 2)*v.X + m.At(1, 2)*v.Y + m.At(2, 2)*v.Z,
	}, nil
}

// AddMult returns p0 + m*p1 for a 3x3 matrix m.
func AddMult(p0 Point3, m mat.Matrix, p1 Point3) (Point3, error) {
	mv, err := MultVec3(m, p1.Vec())
	if err != nil {
		return Point3{}, err
	}
	return p0.AddVec(mv), nil
}

// MultHomog treats p as the homogeneous coordinate (x, y, 1), multiplies it
// by the 3x3 matrix m and divides the first two output components by the
// third. There is no guard against a vanishing third component: a
// perspective divide by zero propagates as NaN or Inf in the result, which
// callers can detect with IsNaN.
func MultHomog(m mat.Matrix, p Point2) (Point2, error) {
	if err := check3x3(m); err != nil {
		return Point2{}, err
	}
	z := m.At(2, 0)*p.X + m.At(2, 1)*p.Y + m.At(2, 2)
	return Point2{
		X: (m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2)) / z,
		Y: (m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2)) / z,
	}, nil
}

// MultHomogLift treats p as the homogeneous coordinate (x, y, 1) and returns
// the full three-component product m*(x, y, 1) without a perspective divide.
func MultHomogLift(m mat.Matrix, p Point2) (Point3, error) {
	if err := check3x3(m); err != nil {
		return Point3{}, err
	}
	return Point3{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2),
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2),
		Z: m.At(2, 0)*p.X + m.At(2, 1)*p.Y + m.At(2, 2),
	}, nil
}

// CrossMatrix writes the skew-symmetric cross-product matrix of v into dst,
// so that CrossMatrix(v)*w equals v.Cross(w). If dst is nil a new matrix is
// allocated; otherwise it is zeroed and reused, and must be 3x3.
func CrossMatrix(v Vec3, dst *mat.Dense) (*mat.Dense, error) {
	if dst == nil {
		dst = mat.NewDense(3, 3, nil)
	} else {
		if err := check3x3(dst); err != nil {
			return nil, err
		}
		dst.Zero()
	}
	dst.Set(0, 1, -v.Z)
	dst.Set(0, 2, v.Y)
	dst.Set(1, 0, v.Z)
	dst.Set(1, 2, -v.X)
	dst.Set(2, 0, -v.Y)
	dst.Set(2, 1, v.X)
	return dst, nil
}

// InnerProd3 returns the scalar transpose(a)*m*b for a 3x3 matrix m.
func InnerProd3(a Vec3, m mat.Matrix, b Vec3) (float64, error) {
	mb, err := MultVec3(m, b)
	if err != nil {
		return 0, err
	}
	return a.Dot(mb), nil
}

// InnerProdTrans3 returns the scalar transpose(a)*transpose(m)*b for a 3x3
// matrix m.
func InnerProdTrans3(a Vec3, m mat.Matrix, b Vec3) (float64, error) {
	mb, err := MultVec3Trans(m, b)
	if err != nil {
		return 0, err
	}
	return a.Dot(mb), nil
}

// InnerProdHomog returns transpose(a')*m*b' where a' and b' are a and b
// lifted to homogeneous coordinates (x, y, 1).
func InnerProdHomog(a Point2, m mat.Matrix, b Point2) (float64, error) {
	mb, err := MultHomogLift(m, b)
	if err != nil {
		return 0, err
	}
	return a.X*mb.X + a.Y*mb.Y + mb.Z, nil
}
