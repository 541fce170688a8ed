package geom

import (
	"fmt"
	"math"

	"github.com/npillmayer/planar"
)

// Circle is a circle around Center with a positive Radius.
type Circle struct {
	Center planar.Pair
	Radius float64
}

// NewCircle creates a circle around center with radius r.
func NewCircle(center planar.Pair, r float64) *Circle {
	return &Circle{Center: center, Radius: r}
}

// CircleFromRadius creates the circle around center passing through pt.
// Its radius is the distance of both points, which must not coincide.
func CircleFromRadius(center, pt planar.Pair) *Circle {
	r := center.Distance(pt)
	if r == 0 {
		return nil
	}
	return NewCircle(center, r)
}

// CircleFromDiameter creates the circle with diameter p1-p2.
func CircleFromDiameter(p1, p2 planar.Pair) *Circle {
	return NewCircle(p1.Mid(p2), p1.Distance(p2)/2)
}

// CircleFromP1P2Rad creates a circle with radius r through p1 and p2. Of the
// two candidates the one with its center to the left of p1→p2 is chosen if
// left is set. Points farther apart than 2r yield nil.
func CircleFromP1P2Rad(p1, p2 planar.Pair, r float64, left bool) *Circle {
	chord := NewLine(p1, p2)
	l := chord.Length()
	square := r*r - l*l/4
	if square < 0 || l == 0 {
		return nil
	}
	dist := math.Sqrt(square)
	if !left {
		dist = -dist
	}
	chord.Offset(dist)
	return NewCircle(chord.P1.Mid(chord.P2), r)
}

// CircumCircle creates the circle through p1, p2 and p3. Collinear points
// have no circumcircle and yield nil.
func CircumCircle(p1, p2, p3 planar.Pair) *Circle {
	if planar.Collinear(p1, p2, p3) {
		return nil
	}
	m1 := p1.Mid(p2)
	m2 := p2.Mid(p3)
	// perpendicular bisectors in equation form a·x + b·y + c = 0
	a1, b1 := p2.X()-p1.X(), p2.Y()-p1.Y()
	c1 := -(a1*m1.X() + b1*m1.Y())
	a2, b2 := p3.X()-p2.X(), p3.Y()-p2.Y()
	c2 := -(a2*m2.X() + b2*m2.Y())
	center, ok := XEquationLineLine(a1, b1, c1, a2, b2, c2)
	if !ok {
		return nil
	}
	return NewCircle(center, center.Distance(p1))
}

// CircleFrom3Points is an alias for CircumCircle.
func CircleFrom3Points(p1, p2, p3 planar.Pair) *Circle {
	return CircumCircle(p1, p2, p3)
}

// TangentCircle creates the circle tangent to the three lines p1-p2, p2-p3
// and p3-p1, i.e. the incircle of the triangle. Degenerate triangles yield nil.
func TangentCircle(p1, p2, p3 planar.Pair) *Circle {
	if planar.Collinear(p1, p2, p3) {
		return nil
	}
	b2, ok2 := angleBisector(p1, p2, p3)
	b1, ok1 := angleBisector(p3, p1, p2)
	if !ok1 || !ok2 {
		return nil
	}
	center, ok := XLineLine(b2.P1, b2.P2, true, b1.P1, b1.P2, true)
	if !ok {
		return nil
	}
	r, ok := NewLine(p2, p1).DistToLine(center)
	if !ok {
		return nil
	}
	return NewCircle(center, r)
}

// angleBisector returns a line from corner bisecting the angle between the
// legs to p and q.
func angleBisector(p, corner, q planar.Pair) (*Line, bool) {
	u1, ok1 := (p - corner).Normalized()
	u2, ok2 := (q - corner).Normalized()
	if !ok1 || !ok2 {
		return nil, false
	}
	return NewLine(corner, corner+u1.Mid(u2)), true
}

// CircleFrom2LinesRadius creates the circle with radius r touching both lines
// p1-corner and corner-p2, lying inside the angle they enclose. Collinear
// lines yield nil.
func CircleFrom2LinesRadius(p1, corner, p2 planar.Pair, r float64) *Circle {
	u1, ok1 := (p1 - corner).Normalized()
	u2, ok2 := (p2 - corner).Normalized()
	if !ok1 || !ok2 || planar.Collinear(corner, corner+u1, corner+u2) {
		return nil
	}
	cen := (corner + u1).Mid(corner + u2)
	bisector := NewLine(corner, cen)
	dist, ok := NewLine(corner, corner+u1).DistToLine(cen)
	if !ok || dist == 0 {
		return nil
	}
	bisector.StartFitTo(bisector.Length() * r / dist)
	return NewCircle(bisector.P2, r)
}

func (c *Circle) String() string {
	return fmt.Sprintf("circle(%v,r=%g)", c.Center, c.Radius)
}

// Clone returns a copy of c.
func (c *Circle) Clone() *Circle {
	return NewCircle(c.Center, c.Radius)
}

// Move translates c by (dx,dy).
func (c *Circle) Move(dx, dy float64) *Circle {
	c.Center += planar.P(dx, dy)
	return c
}

// RotateAround rotates c around p by angle (radians).
func (c *Circle) RotateAround(p planar.Pair, angle float64) *Circle {
	c.Center = planar.RotatePoint(p, c.Center, angle)
	return c
}

// MirrorX mirrors c at the vertical line through x.
func (c *Circle) MirrorX(x float64) *Circle {
	c.Center = planar.P(2*x-c.Center.X(), c.Center.Y())
	return c
}

// MirrorY mirrors c at the horizontal line through y.
func (c *Circle) MirrorY(y float64) *Circle {
	c.Center = planar.P(c.Center.X(), 2*y-c.Center.Y())
	return c
}

// Mirror mirrors c at the infinite line axis.
func (c *Circle) Mirror(axis *Line) *Circle {
	c.Center = MirrorPoint(c.Center, axis)
	return c
}

// Length returns the circumference.
func (c *Circle) Length() float64 {
	return 2 * math.Pi * c.Radius
}

// Area returns the area of the disk.
func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Point returns the point on c at angle (radians).
func (c *Circle) Point(angle float64) planar.Pair {
	sin, cos := math.Sincos(angle)
	return c.Center + planar.P(c.Radius*cos, c.Radius*sin)
}

// QuadrantPoint returns one of the four axis-extreme points of c:
// 0 is east, 1 north, 2 west and 3 south. Other indices report false.
func (c *Circle) QuadrantPoint(i int) (planar.Pair, bool) {
	switch i {
	case 0:
		return c.Center + planar.P(c.Radius, 0), true
	case 1:
		return c.Center + planar.P(0, c.Radius), true
	case 2:
		return c.Center - planar.P(c.Radius, 0), true
	case 3:
		return c.Center - planar.P(0, c.Radius), true
	}
	return planar.Origin, false
}

// NearestProjectOnCircle returns the point on c closest to pt.
// The center itself has no nearest point.
func (c *Circle) NearestProjectOnCircle(pt planar.Pair) (planar.Pair, bool) {
	u, ok := (pt - c.Center).Normalized()
	if !ok {
		return planar.Origin, false
	}
	return c.Center + planar.P(u.X()*c.Radius, u.Y()*c.Radius), true
}

// ProjectOnCircle returns both points where the line from the center through
// pt meets c, the nearer one first.
func (c *Circle) ProjectOnCircle(pt planar.Pair) ([2]planar.Pair, bool) {
	near, ok := c.NearestProjectOnCircle(pt)
	if !ok {
		return [2]planar.Pair{}, false
	}
	return [2]planar.Pair{near, 2*c.Center - near}, true
}

// Distance returns the distance of pt from the circle line. For the center
// this is the radius.
func (c *Circle) Distance(pt planar.Pair) float64 {
	p, ok := c.NearestProjectOnCircle(pt)
	if !ok {
		return c.Radius
	}
	return pt.Distance(p)
}
