package se

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kwv/geokit/geo"
)

func TestNewSe3Validation(t *testing.T) {
	_, err := NewSe3(mat.NewDense(2, 2, nil), geo.Vec3{})
	assert.ErrorIs(t, err, geo.ErrMatrixShape)

	// scaled matrix is orthogonal in direction but not orthonormal
	scaled := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		0, 2, 0,
		0, 0, 2,
	})
	_, err = NewSe3(scaled, geo.Vec3{})
	assert.ErrorIs(t, err, ErrNotRotation)

	// reflection has determinant -1
	reflect := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, -1,
	})
	_, err = NewSe3(reflect, geo.Vec3{})
	assert.ErrorIs(t, err, ErrNotRotation)

	_, err = NewSe3(RotZ(0.4), geo.Vec3{X: 1})
	assert.NoError(t, err)
}

func TestSe3Apply(t *testing.T) {
	tr, err := NewSe3(RotZ(math.Pi/2), geo.Vec3{X: 10, Y: 0, Z: 5})
	require.NoError(t, err)

	got := tr.Apply(geo.Point3{X: 1, Y: 0, Z: 0})
	assert.True(t, got.EqualsTol(geo.Point3{X: 10, Y: 1, Z: 5}, 1e-12), "got %+v", got)

	gotVec := tr.ApplyVec(geo.Vec3{X: 1, Y: 0, Z: 0})
	assert.True(t, gotVec.EqualsTol(geo.Vec3{X: 0, Y: 1, Z: 0}, 1e-12), "got %+v", gotVec)
}

func TestSe3InvertRoundTrip(t *testing.T) {
	transforms := []Se3{
		Identity3(),
		{R: RotZ(0.7), T: geo.Vec3{X: 1, Y: 2, Z: 3}},
		{R: EulerXYZ(0.3, -0.6, 1.9), T: geo.Vec3{X: -4, Y: 0.5, Z: 2.5}},
	}
	points := []geo.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: -1, Z: 2},
		{X: -3.5, Y: 2.25, Z: -0.75},
	}

	for _, tr := range transforms {
		inv := tr.Invert()
		for _, p := range points {
			back := inv.Apply(tr.Apply(p))
			assert.True(t, back.EqualsTol(p, 1e-8),
				"invert round trip failed: p=%+v back=%+v", p, back)
		}
	}
}

func TestSe3ComposeMatchesSequentialApply(t *testing.T) {
	a := Se3{R: EulerXYZ(0.2, 0.4, -0.3), T: geo.Vec3{X: 1, Y: 2, Z: 3}}
	b := Se3{R: RotX(1.1), T: geo.Vec3{X: -2, Y: 0, Z: 4}}
	p := geo.Point3{X: 0.5, Y: -1.5, Z: 2}

	got := a.Compose(b).Apply(p)
	want := a.Apply(b.Apply(p))
	assert.True(t, got.EqualsTol(want, 1e-10), "got %+v want %+v", got, want)
}

func TestSe3ComposeKeepsReceiverTranslation(t *testing.T) {
	// composing with the identity must not lose the translation
	a := Se3{R: RotZ(0), T: geo.Vec3{X: 1, Y: 2, Z: 3}}

	got := a.Compose(Identity3()).Apply(geo.Point3{})
	assert.True(t, got.EqualsTol(geo.Point3{X: 1, Y: 2, Z: 3}, 1e-12), "got %+v", got)

	got = Identity3().Compose(a).Apply(geo.Point3{})
	assert.True(t, got.EqualsTol(geo.Point3{X: 1, Y: 2, Z: 3}, 1e-12), "got %+v", got)
}

func TestEulerXYZOrder(t *testing.T) {
	// EulerXYZ must equal RotZ*RotY*RotX applied in that order
	rx, ry, rz := 0.3, -0.8, 1.2
	e := EulerXYZ(rx, ry, rz)

	v := geo.Vec3{X: 1, Y: 2, Z: -1}
	step1, err := geo.MultVec3(RotX(rx), v)
	require.NoError(t, err)
	step2, err := geo.MultVec3(RotY(ry), step1)
	require.NoError(t, err)
	want, err := geo.MultVec3(RotZ(rz), step2)
	require.NoError(t, err)

	got, err := geo.MultVec3(e, v)
	require.NoError(t, err)
	assert.True(t, got.EqualsTol(want, 1e-12), "got %+v want %+v", got, want)
}

func TestSe3Matrix4(t *testing.T) {
	tr := Se3{R: RotZ(0.5), T: geo.Vec3{X: 7, Y: 8, Z: 9}}
	m := tr.Matrix4()

	// applying the row-major 4x4 by hand must match Apply
	p := geo.Point3{X: 1, Y: 2, Z: 3}
	got := geo.Point3{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
	assert.True(t, got.EqualsTol(tr.Apply(p), 1e-12), "got %+v", got)

	assert.Equal(t, [4]float64{0, 0, 0, 1}, [4]float64{m[12], m[13], m[14], m[15]})
}
