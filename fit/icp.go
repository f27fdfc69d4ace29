package fit

import (
	"log"
	"math"

	"github.com/kwv/geokit/geo"
	"github.com/kwv/geokit/se"
)

// ICPConfig holds the knobs of the iterative closest point loop. Distance
// values are in the same units as the input clouds.
type ICPConfig struct {
	MaxIterations     int     // Maximum number of iterations
	ConvergenceThresh float64 // Stop when RMSE improvement is below this
	MaxCorrespondDist float64 // Maximum distance for point correspondence
}

// DefaultICPConfig returns sensible defaults for ICP.
func DefaultICPConfig() ICPConfig {
	return ICPConfig{
		MaxIterations:     50,
		ConvergenceThresh: 1e-9,
		MaxCorrespondDist: math.Inf(1),
	}
}

// ICPResult contains the result of ICP alignment.
type ICPResult struct {
	Transform  se.Se2  // The computed transformation
	RMSE       float64 // Root mean square correspondence distance
	Iterations int     // Number of iterations performed
	Converged  bool    // Whether the loop converged before MaxIterations
}

// AlignICP iteratively aligns the source cloud onto the target cloud
// starting from the given initial transform. Each round transforms the
// source, pairs every transformed point with its nearest target neighbor
// within MaxCorrespondDist, fits the incremental rigid motion over those
// pairs with Se2Motion and composes it onto the running estimate.
//
// There is no outlier rejection: every correspondence is weighted equally,
// so the initial transform must already be in the basin of the true
// alignment. The loop stops when the RMSE improvement drops below
// ConvergenceThresh, when the error diverges, or after MaxIterations.
func AlignICP(source, target []geo.Point2, initial se.Se2, config ICPConfig) (ICPResult, error) {
	if len(source) < 3 || len(target) < 3 {
		return ICPResult{}, ErrInsufficientPoints
	}

	result := ICPResult{Transform: initial, RMSE: math.Inf(1)}
	current := initial

	transformed := applyAll(current, source)
	srcCorr, tgtCorr := findCorrespondences(transformed, target, config.MaxCorrespondDist)
	if len(srcCorr) < 3 {
		return ICPResult{}, ErrDegenerate
	}
	prevRMSE := rmse(srcCorr, tgtCorr)
	result.RMSE = prevRMSE

	for iter := 0; iter < config.MaxIterations; iter++ {
		result.Iterations = iter + 1

		incremental, err := Se2Motion(srcCorr, tgtCorr)
		if err != nil {
			break
		}
		next := incremental.Compose(current)

		transformed = applyAll(next, source)
		srcCorr, tgtCorr = findCorrespondences(transformed, target, config.MaxCorrespondDist)
		if len(srcCorr) < 3 {
			break
		}
		newRMSE := rmse(srcCorr, tgtCorr)

		if newRMSE > prevRMSE*1.5 {
			// Diverging; keep the last good estimate.
			break
		}

		current = next
		result.Transform = next
		result.RMSE = newRMSE

		if prevRMSE-newRMSE < config.ConvergenceThresh {
			result.Converged = true
			break
		}
		prevRMSE = newRMSE
	}

	log.Printf("AlignICP: iters=%d rmse=%.6g converged=%v tx=%.3f ty=%.3f yaw=%.4f",
		result.Iterations, result.RMSE, result.Converged,
		result.Transform.X, result.Transform.Y, result.Transform.Yaw)

	return result, nil
}

func applyAll(t se.Se2, points []geo.Point2) []geo.Point2 {
	out := make([]geo.Point2, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}
	return out
}

// findCorrespondences pairs every source point with its nearest target
// neighbor within maxDist. Brute force; clouds are expected to be small.
func findCorrespondences(source, target []geo.Point2, maxDist float64) (srcCorr, tgtCorr []geo.Point2) {
	maxDistSq := maxDist * maxDist
	for _, sp := range source {
		minDistSq := math.Inf(1)
		var nearest geo.Point2
		for _, tp := range target {
			d := sp.DistanceSqTo(tp)
			if d < minDistSq {
				minDistSq = d
				nearest = tp
			}
		}
		if minDistSq <= maxDistSq {
			srcCorr = append(srcCorr, sp)
			tgtCorr = append(tgtCorr, nearest)
		}
	}
	return srcCorr, tgtCorr
}

func rmse(a, b []geo.Point2) float64 {
	if len(a) == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for i := range a {
		sum += a[i].DistanceSqTo(b[i])
	}
	return math.Sqrt(sum / float64(len(a)))
}
