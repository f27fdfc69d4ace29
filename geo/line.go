package geo

// Line2 is a parametric 2D line: every point on it is P + t*Slope for some
// real t. A zero Slope does not describe a line; metric queries reject it.
type Line2 struct {
	P     Point2
	Slope Vec2
}

// At evaluates the line at parameter t.
func (l Line2) At(t float64) Point2 {
	return Point2{
		X: l.P.X + t*l.Slope.X,
		Y: l.P.Y + t*l.Slope.Y,
	}
}

// Line3 is a parametric 3D line: every point on it is P + t*Slope for some
// real t.
type Line3 struct {
	P     Point3
	Slope Vec3
}

// At evaluates the line at parameter t.
func (l Line3) At(t float64) Point3 {
	return Point3{
		X: l.P.X + t*l.Slope.X,
		Y: l.P.Y + t*l.Slope.Y,
		Z: l.P.Z + t*l.Slope.Z,
	}
}

// Segment2 is the closed 2D segment between endpoints A and B, the t in
// [0,1] span of its parametric line.
type Segment2 struct {
	A, B Point2
}

// Line returns the parametric line through the segment, with A at t=0 and
// B at t=1.
func (s Segment2) Line() Line2 {
	return Line2{P: s.A, Slope: s.B.Sub(s.A)}
}

// Length returns the segment's length.
func (s Segment2) Length() float64 {
	return s.A.DistanceTo(s.B)
}
