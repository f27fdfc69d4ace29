package fit

import (
	"math"

	"github.com/kwv/geokit/geo"
	"github.com/kwv/geokit/se"
)

// Se2Motion computes the rigid transform T minimizing the sum of
// ||T(source[i]) - target[i]||^2 over all pairs. Both sets are centered on
// their centroids, the 2x2 cross-covariance is accumulated and the optimal
// rotation falls out in closed form as atan2(h12-h21, h11+h22); the
// translation is then target centroid minus the rotated source centroid.
//
// At least 3 pairs are required, and either set collapsing to a single
// point leaves the rotation undetermined and returns ErrDegenerate.
func Se2Motion(source, target []geo.Point2) (se.Se2, error) {
	if len(source) != len(target) {
		return se.Se2{}, ErrLengthMismatch
	}
	if len(source) < 3 {
		return se.Se2{}, ErrInsufficientPoints
	}

	srcCentroid := geo.Centroid2(source)
	tgtCentroid := geo.Centroid2(target)

	var h11, h12, h21, h22 float64
	var srcSpread, tgtSpread float64
	for i := range source {
		sx := source[i].X - srcCentroid.X
		sy := source[i].Y - srcCentroid.Y
		tx := target[i].X - tgtCentroid.X
		ty := target[i].Y - tgtCentroid.Y

		h11 += sx * tx
		h12 += sx * ty
		h21 += sy * tx
		h22 += sy * ty
		srcSpread += sx*sx + sy*sy
		tgtSpread += tx*tx + ty*ty
	}
	if srcSpread == 0 || tgtSpread == 0 {
		return se.Se2{}, ErrDegenerate
	}

	theta := math.Atan2(h12-h21, h11+h22)

	rc := geo.Rotate2(theta, srcCentroid)
	return se.NewSe2(tgtCentroid.X-rc.X, tgtCentroid.Y-rc.Y, theta), nil
}

// Se2MotionWeighted is Se2Motion with a per-pair weight: pairs with larger
// weights pull harder on the fit. The weights slice must match the point
// sets in length and sum to a positive total.
func Se2MotionWeighted(source, target []geo.Point2, weights []float64) (se.Se2, error) {
	if len(source) != len(target) || len(source) != len(weights) {
		return se.Se2{}, ErrLengthMismatch
	}
	if len(source) < 3 {
		return se.Se2{}, ErrInsufficientPoints
	}

	totalWeight := 0.0
	var srcSumX, srcSumY, tgtSumX, tgtSumY float64
	for i := range source {
		w := weights[i]
		totalWeight += w
		srcSumX += source[i].X * w
		srcSumY += source[i].Y * w
		tgtSumX += target[i].X * w
		tgtSumY += target[i].Y * w
	}
	if totalWeight <= 0 {
		return se.Se2{}, ErrDegenerate
	}

	srcCentroid := geo.Point2{X: srcSumX / totalWeight, Y: srcSumY / totalWeight}
	tgtCentroid := geo.Point2{X: tgtSumX / totalWeight, Y: tgtSumY / totalWeight}

	var h11, h12, h21, h22 float64
	var srcSpread, tgtSpread float64
	for i := range source {
		w := weights[i]
		sx := source[i].X - srcCentroid.X
		sy := source[i].Y - srcCentroid.Y
		tx := target[i].X - tgtCentroid.X
		ty := target[i].Y - tgtCentroid.Y

		h11 += w * sx * tx
		h12 += w * sx * ty
		h21 += w * sy * tx
		h22 += w * sy * ty
		srcSpread += w * (sx*sx + sy*sy)
		tgtSpread += w * (tx*tx + ty*ty)
	}
	if srcSpread == 0 || tgtSpread == 0 {
		return se.Se2{}, ErrDegenerate
	}

	theta := math.Atan2(h12-h21, h11+h22)

	rc := geo.Rotate2(theta, srcCentroid)
	return se.NewSe2(tgtCentroid.X-rc.X, tgtCentroid.Y-rc.Y, theta), nil
}
