package metric

import (
	"errors"
	"math"
	"testing"

	"github.com/kwv/geokit/geo"
)

const epsilon = 1e-10

// almostEqual checks if two floats are equal within epsilon tolerance
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestClosestPointParam2(t *testing.T) {
	tests := []struct {
		name  string
		line  geo.Line2
		point geo.Point2
		want  float64
	}{
		{
			name:  "projection onto x axis",
			line:  geo.Line2{P: geo.Point2{}, Slope: geo.Vec2{X: 1}},
			point: geo.Point2{X: 5, Y: 3},
			want:  5,
		},
		{
			name:  "non-unit slope rescales the parameter",
			line:  geo.Line2{P: geo.Point2{}, Slope: geo.Vec2{X: 2}},
			point: geo.Point2{X: 5, Y: 3},
			want:  2.5,
		},
		{
			name:  "anchored away from origin",
			line:  geo.Line2{P: geo.Point2{X: 1, Y: 1}, Slope: geo.Vec2{Y: 1}},
			point: geo.Point2{X: 4, Y: 3},
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClosestPointParam2(tt.line, tt.point)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("ClosestPointParam2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClosestPointDegenerateLine(t *testing.T) {
	_, err := ClosestPointParam2(geo.Line2{}, geo.Point2{X: 1})
	if !errors.Is(err, ErrDegenerateLine) {
		t.Errorf("zero slope error = %v, want ErrDegenerateLine", err)
	}

	_, err = ClosestPointParam3(geo.Line3{}, geo.Point3{X: 1})
	if !errors.Is(err, ErrDegenerateLine) {
		t.Errorf("zero slope 3D error = %v, want ErrDegenerateLine", err)
	}

	_, err = DistPointLine2(geo.Line2{}, geo.Point2{})
	if !errors.Is(err, ErrDegenerateLine) {
		t.Errorf("DistPointLine2 degenerate error = %v", err)
	}
}

func TestClosestPointOnLine(t *testing.T) {
	line := geo.Line2{P: geo.Point2{}, Slope: geo.Vec2{X: 1}}
	got, err := ClosestPointOnLine2(line, geo.Point2{X: 5, Y: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.EqualsTol(geo.Point2{X: 5, Y: 0}, epsilon) {
		t.Errorf("ClosestPointOnLine2 = %+v, want (5,0)", got)
	}

	line3 := geo.Line3{P: geo.Point3{Z: 1}, Slope: geo.Vec3{Y: 2}}
	got3, err := ClosestPointOnLine3(line3, geo.Point3{X: 4, Y: 6, Z: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got3.EqualsTol(geo.Point3{X: 0, Y: 6, Z: 1}, epsilon) {
		t.Errorf("ClosestPointOnLine3 = %+v, want (0,6,1)", got3)
	}
}

func TestDistPointLine2(t *testing.T) {
	line := geo.Line2{P: geo.Point2{}, Slope: geo.Vec2{X: 1}}
	got, err := DistPointLine2(line, geo.Point2{X: 5, Y: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 3) {
		t.Errorf("DistPointLine2 = %v, want 3", got)
	}
}

func TestDistPointLine3(t *testing.T) {
	tests := []struct {
		name  string
		line  geo.Line3
		point geo.Point3
		want  float64
	}{
		{
			name:  "point above x axis",
			line:  geo.Line3{P: geo.Point3{}, Slope: geo.Vec3{X: 1}},
			point: geo.Point3{X: 5, Y: 3, Z: 0},
			want:  3,
		},
		{
			name:  "point on the line",
			line:  geo.Line3{P: geo.Point3{}, Slope: geo.Vec3{X: 1, Y: 1, Z: 1}},
			point: geo.Point3{X: 2, Y: 2, Z: 2},
			want:  0,
		},
		{
			name:  "offset in two axes",
			line:  geo.Line3{P: geo.Point3{}, Slope: geo.Vec3{X: 1}},
			point: geo.Point3{X: -7, Y: 3, Z: 4},
			want:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistPointLine3(tt.line, tt.point)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("DistPointLine3() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistPointSegment2(t *testing.T) {
	seg := geo.Segment2{A: geo.Point2{X: 0, Y: 0}, B: geo.Point2{X: 10, Y: 0}}

	tests := []struct {
		name  string
		point geo.Point2
		want  float64
	}{
		{
			name:  "interior projection",
			point: geo.Point2{X: 5, Y: 2},
			want:  2,
		},
		{
			name:  "clamped below to endpoint A",
			point: geo.Point2{X: -3, Y: 4},
			want:  5,
		},
		{
			// the closest point must be the B endpoint itself, not any mix
			// of the two endpoints' coordinates
			name:  "clamped above to endpoint B",
			point: geo.Point2{X: 15, Y: 5},
			want:  math.Sqrt(50),
		},
		{
			name:  "on the segment",
			point: geo.Point2{X: 7, Y: 0},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistPointSegment2(seg, tt.point); !almostEqual(got, tt.want) {
				t.Errorf("DistPointSegment2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistPointSegment2Degenerate(t *testing.T) {
	seg := geo.Segment2{A: geo.Point2{X: 1, Y: 1}, B: geo.Point2{X: 1, Y: 1}}
	if got := DistPointSegment2(seg, geo.Point2{X: 4, Y: 5}); !almostEqual(got, 5) {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}

func TestDistLineLine3(t *testing.T) {
	tests := []struct {
		name   string
		l0, l1 geo.Line3
		want   float64
	}{
		{
			name: "perpendicular skew lines offset along z",
			l0:   geo.Line3{P: geo.Point3{}, Slope: geo.Vec3{X: 1}},
			l1:   geo.Line3{P: geo.Point3{Z: 1}, Slope: geo.Vec3{Y: 1}},
			want: 1,
		},
		{
			name: "intersecting lines",
			l0:   geo.Line3{P: geo.Point3{}, Slope: geo.Vec3{X: 1}},
			l1:   geo.Line3{P: geo.Point3{X: 2, Y: -1}, Slope: geo.Vec3{Y: 1}},
			want: 0,
		},
		{
			name: "skew with non-unit slopes",
			l0:   geo.Line3{P: geo.Point3{}, Slope: geo.Vec3{X: 3}},
			l1:   geo.Line3{P: geo.Point3{Z: 2}, Slope: geo.Vec3{Y: -5}},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistLineLine3(tt.l0, tt.l1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("DistLineLine3() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistLineLine3Parallel(t *testing.T) {
	l0 := geo.Line3{P: geo.Point3{}, Slope: geo.Vec3{X: 1, Y: 1}}
	l1 := geo.Line3{P: geo.Point3{Z: 3}, Slope: geo.Vec3{X: 2, Y: 2}}

	_, err := DistLineLine3(l0, l1)
	if !errors.Is(err, ErrParallelLines) {
		t.Errorf("parallel lines error = %v, want ErrParallelLines", err)
	}

	// identical direction, same line
	_, err = DistLineLine3(l0, l0)
	if !errors.Is(err, ErrParallelLines) {
		t.Errorf("coincident lines error = %v, want ErrParallelLines", err)
	}
}

func TestDistLineLine3DegenerateSlope(t *testing.T) {
	l0 := geo.Line3{P: geo.Point3{}, Slope: geo.Vec3{}}
	l1 := geo.Line3{P: geo.Point3{Z: 1}, Slope: geo.Vec3{Y: 1}}

	_, err := DistLineLine3(l0, l1)
	if !errors.Is(err, ErrDegenerateLine) {
		t.Errorf("zero slope error = %v, want ErrDegenerateLine", err)
	}
}
