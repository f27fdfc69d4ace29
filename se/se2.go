package se

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kwv/geokit/geo"
)

// Se2 is a rigid transform in the plane: a counter-clockwise rotation by
// Yaw radians followed by a translation of (X, Y). The zero value is the
// identity transform.
type Se2 struct {
	X, Y float64
	Yaw  float64
}

// NewSe2 builds a planar rigid transform from a translation and a yaw angle
// in radians.
func NewSe2(x, y, yaw float64) Se2 {
	return Se2{X: x, Y: y, Yaw: yaw}
}

// Identity2 returns the identity SE(2) transform.
func Identity2() Se2 {
	return Se2{}
}

// Apply transforms a point: R*p + t.
func (t Se2) Apply(p geo.Point2) geo.Point2 {
	r := geo.Rotate2(t.Yaw, p)
	return geo.Point2{X: r.X + t.X, Y: r.Y + t.Y}
}

// ApplyVec transforms a displacement. Vectors rotate but do not translate.
func (t Se2) ApplyVec(v geo.Vec2) geo.Vec2 {
	return geo.Rotate2(t.Yaw, v.Point()).Vec()
}

// Translation returns the translation component as a vector.
func (t Se2) Translation() geo.Vec2 {
	return geo.Vec2{X: t.X, Y: t.Y}
}

// Invert returns the inverse transform, so that
// t.Invert().Apply(t.Apply(p)) == p.
func (t Se2) Invert() Se2 {
	c := math.Cos(t.Yaw)
	s := math.Sin(t.Yaw)
	// R' = R(-yaw), t' = -R'*t
	return Se2{
		X:   -(c*t.X + s*t.Y),
		Y:   -(-s*t.X + c*t.Y),
		Yaw: -t.Yaw,
	}
}

// Compose returns the transform that applies b first and then t. Rotations
// add, and the translation is R_t*t_b + t_t.
func (t Se2) Compose(b Se2) Se2 {
	rb := geo.Rotate2(t.Yaw, geo.Point2{X: b.X, Y: b.Y})
	return Se2{
		X:   rb.X + t.X,
		Y:   rb.Y + t.Y,
		Yaw: t.Yaw + b.Yaw,
	}
}

// Matrix returns the homogeneous 3x3 form of the transform, suitable for
// the geo package's homogeneous products.
func (t Se2) Matrix() *mat.Dense {
	c := math.Cos(t.Yaw)
	s := math.Sin(t.Yaw)
	return mat.NewDense(3, 3, []float64{
		c, -s, t.X,
		s, c, t.Y,
		0, 0, 1,
	})
}
