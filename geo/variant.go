package geo

// Narrow storage variants. These exist for callers holding bulk point data
// in compact form (sensor buffers, packed clouds); all kernel arithmetic
// runs on the float64 types, reached through the To* conversions.

// Point2f is a 2D point stored in float32.
type Point2f struct {
	X, Y float32
}

// To64 widens the point to the float64 working type.
func (p Point2f) To64() Point2 {
	return Point2{X: float64(p.X), Y: float64(p.Y)}
}

// Point3f is a 3D point stored in float32.
type Point3f struct {
	X, Y, Z float32
}

// To64 widens the point to the float64 working type.
func (p Point3f) To64() Point3 {
	return Point3{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Point2i is a 2D point with integer coordinates, as produced by grid or
// pixel sources.
type Point2i struct {
	X, Y int32
}

// To64 widens the point to the float64 working type.
func (p Point2i) To64() Point2 {
	return Point2{X: float64(p.X), Y: float64(p.Y)}
}
