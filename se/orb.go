package se

import (
	"github.com/paulmach/orb"

	"github.com/kwv/geokit/geo"
)

// SE(2) application to orb geometries, for pipelines that keep planar data
// in orb form. Results are fresh geometries; inputs are not modified.

// ApplyOrbPoint transforms a single orb point.
func (t Se2) ApplyOrbPoint(p orb.Point) orb.Point {
	return t.Apply(geo.FromOrb(p)).Orb()
}

// ApplyOrbMultiPoint transforms every point of an orb.MultiPoint.
func (t Se2) ApplyOrbMultiPoint(mp orb.MultiPoint) orb.MultiPoint {
	out := make(orb.MultiPoint, len(mp))
	for i, p := range mp {
		out[i] = t.ApplyOrbPoint(p)
	}
	return out
}

// ApplyOrbLineString transforms every vertex of an orb.LineString.
func (t Se2) ApplyOrbLineString(ls orb.LineString) orb.LineString {
	out := make(orb.LineString, len(ls))
	for i, p := range ls {
		out[i] = t.ApplyOrbPoint(p)
	}
	return out
}
