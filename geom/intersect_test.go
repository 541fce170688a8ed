package geom

import (
	"math"
	"testing"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXLineLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, ok := XLineLine(planar.P(0, 0), planar.P(2, 2), false, planar.P(0, 2), planar.P(2, 0), false)
	assert.True(t, ok)
	diff(t, planar.P(1, 1), x, approx)
	// segments do not reach each other, infinite lines do
	a1, a2 := planar.P(0, 0), planar.P(1, 1)
	b1, b2 := planar.P(3, 0), planar.P(2, 1)
	_, ok = XLineLine(a1, a2, false, b1, b2, false)
	assert.False(t, ok)
	_, ok = XLineLine(a1, a2, true, b1, b2, false)
	assert.False(t, ok)
	x, ok = XLineLine(a1, a2, true, b1, b2, true)
	assert.True(t, ok)
	diff(t, planar.P(1.5, 1.5), x, approx)
	// parallel and coincident
	_, ok = XLineLine(a1, a2, true, planar.P(1, 0), planar.P(2, 1), true)
	assert.False(t, ok)
	_, ok = XLineLine(a1, a2, true, planar.P(2, 2), planar.P(3, 3), true)
	assert.False(t, ok)
	// touching at an end point
	x, ok = XLineLine(planar.P(0, 0), planar.P(1, 0), false, planar.P(1, -1), planar.P(1, 1), false)
	assert.True(t, ok)
	diff(t, planar.P(1, 0), x, approx)
}

func TestXEquationLineLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, ok := XEquationLineLine(1, 0, -1, 0, 1, -2) // x = 1, y = 2
	assert.True(t, ok)
	diff(t, planar.P(1, 2), x, approx)
	_, ok = XEquationLineLine(1, 0, -1, 2, 0, -3)
	assert.False(t, ok, "parallel")
	_, ok = XEquationLineLine(0, 0, 1, 1, 0, 0)
	assert.False(t, ok, "no line")
	_, ok = XEquationLineLine(1, 1e-10, 0, 1, 0, -1)
	assert.False(t, ok, "below tangent threshold")
}

func TestXLineCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, ok := XLineCircle(planar.P(-2, 0), planar.P(2, 0), false, planar.Origin, 1)
	assert.True(t, ok)
	diff(t, []planar.Pair{planar.P(1, 0), planar.P(-1, 0)}, pts, approx)
	pts, ok = XLineCircle(planar.P(0, 0), planar.P(2, 0), false, planar.Origin, 1)
	assert.True(t, ok)
	diff(t, []planar.Pair{planar.P(1, 0)}, pts, approx)
	pts, _ = XLineCircle(planar.P(0, 0), planar.P(2, 0), true, planar.Origin, 1)
	assert.Len(t, pts, 2, "infinite line keeps both roots")
	pts, ok = XLineCircle(planar.P(-2, 1), planar.P(2, 1), false, planar.Origin, 1)
	assert.True(t, ok)
	diff(t, []planar.Pair{planar.P(0, 1)}, pts, approx)
	_, ok = XLineCircle(planar.P(-2, 2), planar.P(2, 2), true, planar.Origin, 1)
	assert.False(t, ok)
	pts, ok = XLineCircle(planar.P(3, 0), planar.P(4, 0), false, planar.Origin, 1)
	assert.True(t, ok)
	assert.Empty(t, pts, "segment outside the circle")
}

func TestXLineCircleNearTangent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	y := 500 - 2.4e-3
	x := math.Sqrt(500*500 - y*y)
	pts, ok := XLineCircle(planar.P(-5000, y), planar.P(5000, y), false, planar.Origin, 500)
	assert.True(t, ok)
	require.Len(t, pts, 2, "a long secant close to the top still crosses twice")
	assert.InDelta(t, x, pts[0].X(), 1e-6)
	assert.InDelta(t, -x, pts[1].X(), 1e-6)
	assert.InDelta(t, y, pts[0].Y(), 1e-9)
	// far from the origin the same secant must not degrade
	off := planar.P(2e5, -3e5)
	pts, ok = XLineCircle(planar.P(-5000, y)+off, planar.P(5000, y)+off, false, off, 500)
	assert.True(t, ok)
	assert.Len(t, pts, 2)
	// a line touching within tolerance is a tangent
	pts, ok = XLineCircle(planar.P(-5000, 500), planar.P(5000, 500), false, planar.Origin, 500)
	assert.True(t, ok)
	diff(t, []planar.Pair{planar.P(0, 500)}, pts, approx)
	_, ok = XLineCircle(planar.P(-5000, 500.01), planar.P(5000, 500.01), true, planar.Origin, 500)
	assert.False(t, ok)
	// arcs inherit the crossings
	top := NewArc(planar.Origin, 500, 0, math.Pi)
	pts, _ = XLineArc(planar.P(-5000, y), planar.P(5000, y), false, top)
	assert.Len(t, pts, 2)
}

func TestXCircleCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, ok := XCircleCircle(planar.Origin, 1, planar.P(1, 0), 1)
	assert.True(t, ok)
	h := math.Sqrt(3) / 2
	diff(t, []planar.Pair{planar.P(0.5, h), planar.P(0.5, -h)}, pts, approx)
	pts, ok = XCircleCircle(planar.Origin, 1, planar.P(2, 0), 1)
	assert.True(t, ok)
	diff(t, []planar.Pair{planar.P(1, 0)}, pts, approx)
	_, ok = XCircleCircle(planar.Origin, 1, planar.P(3, 0), 1)
	assert.False(t, ok, "disjoint")
	_, ok = XCircleCircle(planar.Origin, 5, planar.P(1, 0), 1)
	assert.False(t, ok, "inside")
	_, ok = XCircleCircle(planar.Origin, 1, planar.Origin, 2)
	assert.False(t, ok, "concentric")
}

func TestXLineArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	upper := NewArc(planar.Origin, 1, 0, math.Pi)
	pts, ok := XLineArc(planar.P(-2, 0.5), planar.P(2, 0.5), false, upper)
	assert.True(t, ok)
	assert.Len(t, pts, 2)
	pts, ok = XLineArc(planar.P(-2, -0.5), planar.P(2, -0.5), false, upper)
	assert.True(t, ok)
	assert.Empty(t, pts)
	// arc ends are included
	pts, _ = XLineArc(planar.P(-2, 0), planar.P(2, 0), false, upper)
	assert.Len(t, pts, 2)
}

func TestXArcs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := NewArc(planar.Origin, 1, 0, math.Pi)
	b := NewArc(planar.P(1, 0), 1, math.Pi/2, math.Pi)
	pts, ok := XArcArc(a, b)
	assert.True(t, ok)
	diff(t, []planar.Pair{planar.P(0.5, math.Sqrt(3)/2)}, pts, approx)
	c := NewCircle(planar.P(1, 0), 1)
	pts, ok = XCircleArc(c, a)
	assert.True(t, ok)
	assert.Len(t, pts, 1)
	_, ok = XArcArc(a, NewArc(planar.P(5, 0), 1, 0, math.Pi))
	assert.False(t, ok)
}
