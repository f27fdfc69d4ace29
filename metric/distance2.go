package metric

import "github.com/kwv/geokit/geo"

// DistPointLine2 returns the Euclidean distance from p to the closest point
// on the infinite line.
func DistPointLine2(line geo.Line2, p geo.Point2) (float64, error) {
	t, err := ClosestPointParam2(line, p)
	if err != nil {
		return 0, err
	}
	return line.At(t).DistanceTo(p), nil
}

// DistPointSegment2 returns the Euclidean distance from p to the closest
// point on the segment. The projection parameter is clamped to [0,1]:
// beyond either end the distance to that endpoint is returned. A segment
// with coincident endpoints degenerates to the distance to that point.
func DistPointSegment2(seg geo.Segment2, p geo.Point2) float64 {
	slope := seg.B.Sub(seg.A)
	den := slope.NormSq()
	if den == 0 {
		return seg.A.DistanceTo(p)
	}

	t := p.Sub(seg.A).Dot(slope) / den
	if t < 0 {
		return seg.A.DistanceTo(p)
	}
	if t > 1 {
		return seg.B.DistanceTo(p)
	}
	return seg.A.AddVec(slope.Scale(t)).DistanceTo(p)
}
