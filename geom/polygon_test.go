package geom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedDistanceParity(t *testing.T) {
	r := unitSquare(t)
	opt := DefaultOptions()

	inside := SignedDistance(orb.Point{0.5, 0.5}, r, opt)
	assert.InDelta(t, -0.5, inside, 1e-9, "centroid of the unit square")

	outside := SignedDistance(orb.Point{5, 0.5}, r, opt)
	assert.InDelta(t, 4, outside, 1e-6)
	assert.Greater(t, outside, 0.0)
}

func TestSignedDistanceConvexPolygonCentroid(t *testing.T) {
	r, err := NewRing(orb.Point{0, 0}, orb.Point{4, 0}, orb.Point{0, 3})
	require.NoError(t, err)
	opt := DefaultOptions()
	d := SignedDistance(orb.Point{4.0 / 3, 1}, r, opt)
	assert.Less(t, d, 0.0, "triangle centroid is inside")
}

// A query point placed exactly at a polygon vertex sits on the boundary:
// the distance magnitude must vanish; the sign is unspecified.
func TestSignedDistanceAtVertex(t *testing.T) {
	r := unitSquare(t)
	opt := DefaultOptions()
	for i := 0; i < r.NumVertices(); i++ {
		d := SignedDistance(r.Vertex(i), r, opt)
		assert.LessOrEqual(t, math.Abs(d), opt.Tol, "vertex %d: |distance| = %v", i, math.Abs(d))
	}
}

func TestSignedDistanceOnEdge(t *testing.T) {
	r := unitSquare(t)
	opt := DefaultOptions()
	d := SignedDistance(orb.Point{0.5, 0}, r, opt)
	assert.LessOrEqual(t, math.Abs(d), opt.Tol)
}

func TestSignedDistanceContinuousAcrossBoundary(t *testing.T) {
	r := unitSquare(t)
	opt := DefaultOptions()
	eps := 1e-7
	in := SignedDistance(orb.Point{0.5, eps}, r, opt)
	out := SignedDistance(orb.Point{0.5, -eps}, r, opt)
	assert.Less(t, in, 0.0)
	assert.Greater(t, out, 0.0)
	assert.InDelta(t, in, -out, 1e-6, "magnitudes match across the edge")
}

func TestSignedDistanceConcavePolygon(t *testing.T) {
	// L-shape: the notch corner exposes concave behavior.
	r, err := NewRingXY(
		[]float64{0, 4, 4, 2, 2, 0},
		[]float64{0, 0, 2, 2, 4, 4},
	)
	require.NoError(t, err)
	opt := DefaultOptions()

	assert.Less(t, SignedDistance(orb.Point{1, 1}, r, opt), 0.0, "inside the foot of the L")
	assert.Less(t, SignedDistance(orb.Point{1, 3}, r, opt), 0.0, "inside the leg of the L")
	assert.Greater(t, SignedDistance(orb.Point{3, 3}, r, opt), 0.0, "inside the notch is outside the L")
}

func fdSignedDistance(r Ring, opt Options, p orb.Point, h float64) orb.Point {
	var g orb.Point
	for k := 0; k < 2; k++ {
		hi, lo := p, p
		hi[k] += h
		lo[k] -= h
		g[k] = (SignedDistance(hi, r, opt) - SignedDistance(lo, r, opt)) / (2 * h)
	}
	return g
}

func TestSignedDistanceGradMatchesFiniteDifference(t *testing.T) {
	r := unitSquare(t)
	opt := DefaultOptions()
	pts := []orb.Point{
		{0.3, 0.4},  // inside, nearest to the left edge
		{0.7, 0.2},  // inside, nearest to the bottom edge
		{1.5, 0.7},  // outside, right of the square
		{0.2, -0.6}, // outside, below
		{1.4, 1.3},  // outside, nearest to the corner (1,1)
	}
	for _, p := range pts {
		val, grad := SignedDistanceGrad(p, r, opt)
		assert.InDelta(t, SignedDistance(p, r, opt), val, 1e-12)

		fd := fdSignedDistance(r, opt, p, 1e-6)
		assert.InDelta(t, fd[0], grad[0], 1e-5, "d/dx at %v", p)
		assert.InDelta(t, fd[1], grad[1], 1e-5, "d/dy at %v", p)
	}
}

func TestSignedDistanceGradUnitMagnitudeAway(t *testing.T) {
	// Far from the switching band, the gradient is a unit vector.
	r := unitSquare(t)
	opt := DefaultOptions()
	_, grad := SignedDistanceGrad(orb.Point{0.5, -3}, r, opt)
	assert.InDelta(t, 1, math.Hypot(grad[0], grad[1]), 1e-9)
	assert.InDelta(t, 0, grad[0], 1e-9)
	assert.InDelta(t, -1, grad[1], 1e-9, "moving down increases the outside distance")
}

func TestSignedDistanceSharpnessThreaded(t *testing.T) {
	// Near the diagonal two edges compete; a looser sharpness blends them
	// more, so the values must differ measurably.
	r := unitSquare(t)
	p := orb.Point{0.45, 0.45}
	loose := SignedDistance(p, r, Options{Sharpness: 5})
	tight := SignedDistance(p, r, Options{Sharpness: 5000})
	assert.Greater(t, math.Abs(loose-tight), 1e-6)
	assert.InDelta(t, -0.45, tight, 1e-3)
}
