package metric

import (
	"math"

	"github.com/kwv/geokit/geo"
)

// parallelTol is the relative threshold on the skew-line denominator below
// which two directions are treated as parallel.
const parallelTol = 1e-12

// DistPointLine3 returns the Euclidean distance from p to the closest point
// on the infinite line.
func DistPointLine3(line geo.Line3, p geo.Point3) (float64, error) {
	t, err := ClosestPointParam3(line, p)
	if err != nil {
		return 0, err
	}
	return line.At(t).DistanceTo(p), nil
}

// DistLineLine3 returns the shortest distance between two lines in 3D. The
// closest-approach parameters come from the 2x2 normal-equations solve over
// the lines' direction dot products. Parallel lines make the system
// singular and are reported as ErrParallelLines; either line having a
// zero-length direction is ErrDegenerateLine.
func DistLineLine3(l0, l1 geo.Line3) (float64, error) {
	d00 := l0.Slope.NormSq()
	d11 := l1.Slope.NormSq()
	if d00 == 0 || d11 == 0 {
		return 0, ErrDegenerateLine
	}

	w0 := l0.P.Sub(l1.P)
	d01 := w0.Dot(l1.Slope)
	d10 := l1.Slope.Dot(l0.Slope)
	dw0 := w0.Dot(l0.Slope)

	den := d00*d11 - d10*d10
	if math.Abs(den) <= parallelTol*d00*d11 {
		return 0, ErrParallelLines
	}

	t0 := (d01*d10 - dw0*d11) / den
	t1 := (d01 + t0*d10) / d11

	return l0.At(t0).DistanceTo(l1.At(t1)), nil
}
