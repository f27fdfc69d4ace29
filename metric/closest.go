package metric

import "github.com/kwv/geokit/geo"

// ClosestPointParam2 returns the parameter t of the orthogonal projection of
// p onto the line, so that line.At(t) is the closest point on the infinite
// line. A zero-length direction has no projection and yields
// ErrDegenerateLine.
func ClosestPointParam2(line geo.Line2, p geo.Point2) (float64, error) {
	den := line.Slope.NormSq()
	if den == 0 {
		return 0, ErrDegenerateLine
	}
	return p.Sub(line.P).Dot(line.Slope) / den, nil
}

// ClosestPointParam3 returns the parameter t of the orthogonal projection of
// p onto the line, so that line.At(t) is the closest point on the infinite
// line.
func ClosestPointParam3(line geo.Line3, p geo.Point3) (float64, error) {
	den := line.Slope.NormSq()
	if den == 0 {
		return 0, ErrDegenerateLine
	}
	return p.Sub(line.P).Dot(line.Slope) / den, nil
}

// ClosestPointOnLine2 returns the point on the infinite line closest to p.
func ClosestPointOnLine2(line geo.Line2, p geo.Point2) (geo.Point2, error) {
	t, err := ClosestPointParam2(line, p)
	if err != nil {
		return geo.Point2{}, err
	}
	return line.At(t), nil
}

// ClosestPointOnLine3 returns the point on the infinite line closest to p.
func ClosestPointOnLine3(line geo.Line3, p geo.Point3) (geo.Point3, error) {
	t, err := ClosestPointParam3(line, p)
	if err != nil {
		return geo.Point3{}, err
	}
	return line.At(t), nil
}
