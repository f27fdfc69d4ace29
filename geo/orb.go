package geo

import "github.com/paulmach/orb"

// Interop with paulmach/orb, for callers that carry planar point data in
// orb geometries (GeoJSON pipelines, map tooling).

// Orb returns the point as an orb.Point.
func (p Point2) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// FromOrb converts an orb.Point to a Point2.
func FromOrb(p orb.Point) Point2 {
	return Point2{X: p[0], Y: p[1]}
}

// ToOrbMultiPoint converts a point slice to an orb.MultiPoint.
func ToOrbMultiPoint(points []Point2) orb.MultiPoint {
	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = p.Orb()
	}
	return mp
}

// FromOrbMultiPoint converts an orb.MultiPoint to a point slice.
func FromOrbMultiPoint(mp orb.MultiPoint) []Point2 {
	points := make([]Point2, len(mp))
	for i, p := range mp {
		points[i] = FromOrb(p)
	}
	return points
}

// FromOrbLineString converts the vertices of an orb.LineString to a point
// slice.
func FromOrbLineString(ls orb.LineString) []Point2 {
	points := make([]Point2, len(ls))
	for i, p := range ls {
		points[i] = FromOrb(p)
	}
	return points
}
