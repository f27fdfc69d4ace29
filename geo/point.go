package geo

import "math"

// Point2 is a location in the 2D plane.
type Point2 struct {
	X, Y float64
}

// Vec2 is a 2D displacement or direction.
type Vec2 struct {
	X, Y float64
}

// Point3 is a location in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// Vec3 is a 3D displacement or direction.
type Vec3 struct {
	X, Y, Z float64
}

// Component returns the component at index 0 (X) or 1 (Y).
func (p Point2) Component(i int) (float64, error) {
	switch i {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	}
	return 0, ErrIndexOutOfRange
}

// SetComponent sets the component at index 0 (X) or 1 (Y).
func (p *Point2) SetComponent(i int, v float64) error {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		return ErrIndexOutOfRange
	}
	return nil
}

// EqualsTol reports whether every component of p is within tol of o.
func (p Point2) EqualsTol(o Point2, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol && math.Abs(p.Y-o.Y) <= tol
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point2) DistanceTo(o Point2) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSqTo returns the squared Euclidean distance between two points.
func (p Point2) DistanceSqTo(o Point2) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	return dx*dx + dy*dy
}

// Sub returns the displacement from o to p.
func (p Point2) Sub(o Point2) Vec2 {
	return Vec2{X: p.X - o.X, Y: p.Y - o.Y}
}

// AddVec returns the point displaced by v.
func (p Point2) AddVec(v Vec2) Point2 {
	return Point2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vec returns p as a displacement from the origin.
func (p Point2) Vec() Vec2 {
	return Vec2(p)
}

// IsNaN reports whether any component is NaN.
func (p Point2) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Component returns the component at index 0 (X) or 1 (Y).
func (v Vec2) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, ErrIndexOutOfRange
}

// SetComponent sets the component at index 0 (X) or 1 (Y).
func (v *Vec2) SetComponent(i int, val float64) error {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		return ErrIndexOutOfRange
	}
	return nil
}

// EqualsTol reports whether every component of v is within tol of o.
func (v Vec2) EqualsTol(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}

// Dot returns the dot product v . o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with every component multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the vector with its sign flipped.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Norm returns the Euclidean length of the vector.
func (v Vec2) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// NormSq returns the squared Euclidean length of the vector.
func (v Vec2) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Point returns v interpreted as a location.
func (v Vec2) Point() Point2 {
	return Point2(v)
}

// IsNaN reports whether any component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Component returns the component at index 0 (X), 1 (Y) or 2 (Z).
func (p Point3) Component(i int) (float64, error) {
	switch i {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	case 2:
		return p.Z, nil
	}
	return 0, ErrIndexOutOfRange
}

// SetComponent sets the component at index 0 (X), 1 (Y) or 2 (Z).
func (p *Point3) SetComponent(i int, v float64) error {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	case 2:
		p.Z = v
	default:
		return ErrIndexOutOfRange
	}
	return nil
}

// EqualsTol reports whether every component of p is within tol of o.
func (p Point3) EqualsTol(o Point3, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol && math.Abs(p.Y-o.Y) <= tol && math.Abs(p.Z-o.Z) <= tol
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point3) DistanceTo(o Point3) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	dz := o.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DistanceSqTo returns the squared Euclidean distance between two points.
func (p Point3) DistanceSqTo(o Point3) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	dz := o.Z - p.Z
	return dx*dx + dy*dy + dz*dz
}

// Sub returns the displacement from o to p.
func (p Point3) Sub(o Point3) Vec3 {
	return Vec3{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// AddVec returns the point displaced by v.
func (p Point3) AddVec(v Vec3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Vec returns p as a displacement from the origin.
func (p Point3) Vec() Vec3 {
	return Vec3(p)
}

// IsNaN reports whether any component is NaN.
func (p Point3) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

// Component returns the component at index 0 (X), 1 (Y) or 2 (Z).
func (v Vec3) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, ErrIndexOutOfRange
}

// SetComponent sets the component at index 0 (X), 1 (Y) or 2 (Z).
func (v *Vec3) SetComponent(i int, val float64) error {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		return ErrIndexOutOfRange
	}
	return nil
}

// EqualsTol reports whether every component of v is within tol of o.
func (v Vec3) EqualsTol(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

// Dot returns the dot product v . o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the vector with its sign flipped.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Norm returns the Euclidean length of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// NormSq returns the squared Euclidean length of the vector.
func (v Vec3) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Point returns v interpreted as a location.
func (v Vec3) Point() Point3 {
	return Point3(v)
}

// IsNaN reports whether any component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Rotate2 rotates a 2D point counter-clockwise by theta radians around the
// origin.
func Rotate2(theta float64, p Point2) Point2 {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return Point2{
		X: c*p.X - s*p.Y,
		Y: s*p.X + c*p.Y,
	}
}

// Centroid2 returns the center of mass of a set of points. The zero point is
// returned for an empty set.
func Centroid2(points []Point2) Point2 {
	if len(points) == 0 {
		return Point2{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point2{X: sumX / n, Y: sumY / n}
}

// Centroid3 returns the center of mass of a set of points. The zero point is
// returned for an empty set.
func Centroid3(points []Point3) Point3 {
	if len(points) == 0 {
		return Point3{}
	}
	var sumX, sumY, sumZ float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumZ += p.Z
	}
	n := float64(len(points))
	return Point3{X: sumX / n, Y: sumY / n, Z: sumZ / n}
}
