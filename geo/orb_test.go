package geo

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestOrbConversions(t *testing.T) {
	p := Point2{X: 1.5, Y: -2.5}
	if got := FromOrb(p.Orb()); got != p {
		t.Errorf("FromOrb(p.Orb()) = %+v, want %+v", got, p)
	}

	points := []Point2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: -3, Y: 4}}
	mp := ToOrbMultiPoint(points)
	if len(mp) != len(points) {
		t.Fatalf("ToOrbMultiPoint length = %d, want %d", len(mp), len(points))
	}
	back := FromOrbMultiPoint(mp)
	for i := range points {
		if back[i] != points[i] {
			t.Errorf("round trip [%d] = %+v, want %+v", i, back[i], points[i])
		}
	}

	ls := orb.LineString{{0, 0}, {5, 5}}
	got := FromOrbLineString(ls)
	if len(got) != 2 || got[1] != (Point2{X: 5, Y: 5}) {
		t.Errorf("FromOrbLineString = %+v", got)
	}
}
