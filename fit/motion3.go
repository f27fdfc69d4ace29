package fit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kwv/geokit/geo"
	"github.com/kwv/geokit/se"
)

// rankTol is the relative threshold on singular values of the
// cross-covariance matrix below which the configuration is treated as rank
// deficient (collinear or coincident points).
const rankTol = 1e-9

// Se3Motion computes the rigid transform T minimizing the sum of
// ||T(source[i]) - target[i]||^2 over all pairs, by singular value
// decomposition of the 3x3 cross-covariance matrix:
//
//	H = sum (p_i - c_p)(q_i - c_q)^T = U*S*V^T, R = V*U^T
//
// A reflection (det(R) < 0) is repaired by negating V's last singular
// vector, so the result is always a proper rotation. The translation is
// the target centroid minus the rotated source centroid.
//
// At least 3 non-collinear pairs are required: coincident or collinear
// points leave H rank deficient, the rotation non-unique, and the call
// returns ErrDegenerate rather than an arbitrary transform.
func Se3Motion(source, target []geo.Point3) (se.Se3, error) {
	if len(source) != len(target) {
		return se.Se3{}, ErrLengthMismatch
	}
	if len(source) < 3 {
		return se.Se3{}, ErrInsufficientPoints
	}

	srcCentroid := geo.Centroid3(source)
	tgtCentroid := geo.Centroid3(target)

	h := mat.NewDense(3, 3, nil)
	for i := range source {
		s := source[i].Sub(srcCentroid)
		t := target[i].Sub(tgtCentroid)
		h.Set(0, 0, h.At(0, 0)+s.X*t.X)
		h.Set(0, 1, h.At(0, 1)+s.X*t.Y)
		h.Set(0, 2, h.At(0, 2)+s.X*t.Z)
		h.Set(1, 0, h.At(1, 0)+s.Y*t.X)
		h.Set(1, 1, h.At(1, 1)+s.Y*t.Y)
		h.Set(1, 2, h.At(1, 2)+s.Y*t.Z)
		h.Set(2, 0, h.At(2, 0)+s.Z*t.X)
		h.Set(2, 1, h.At(2, 1)+s.Z*t.Y)
		h.Set(2, 2, h.At(2, 2)+s.Z*t.Z)
	}

	var svd mat.SVD
	if !svd.Factorize(h, mat.SVDFull) {
		return se.Se3{}, ErrDegenerate
	}
	sv := svd.Values(nil)
	// A unique rotation needs at least two well-separated directions in
	// the correspondence cloud.
	if sv[0] == 0 || sv[1] <= rankTol*sv[0] {
		return se.Se3{}, ErrDegenerate
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var r mat.Dense
	r.Mul(&v, u.T())
	if mat.Det(&r) < 0 {
		for i := 0; i < 3; i++ {
			v.Set(i, 2, -v.At(i, 2))
		}
		r.Mul(&v, u.T())
	}

	out := se.Se3{R: &r}
	out.T = tgtCentroid.Sub(out.ApplyVec(srcCentroid.Vec()).Point())
	return out, nil
}
