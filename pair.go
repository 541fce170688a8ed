package planar

import (
	"fmt"
	"math"
	"math/cmplx"
)

// === Pair Data Type ========================================================

// Pair is the type for points and vectors in the plane.
// Pairs are values: every operation returns a new pair and leaves its
// receiver untouched.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// IsNaN reports whether at least one of x and y is NaN.
func (p Pair) IsNaN() bool {
	return math.IsNaN(p.X()) || math.IsNaN(p.Y())
}

// Equal compares two pairs with tolerance.
func (p Pair) Equal(p2 Pair) bool {
	return Equal(p.X(), p2.X()) && Equal(p.Y(), p2.Y())
}

// Magnitude returns the length of vector p.
func (p Pair) Magnitude() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Magnitude2 returns the squared length of vector p.
func (p Pair) Magnitude2() float64 {
	return p.X()*p.X() + p.Y()*p.Y()
}

// Distance returns the distance between points p and q.
func (p Pair) Distance(q Pair) float64 {
	return (q - p).Magnitude()
}

// Distance2 returns the squared distance between points p and q.
func (p Pair) Distance2(q Pair) float64 {
	return (q - p).Magnitude2()
}

// Normalized returns the unit vector in direction of p.
// The zero vector has no direction; ok will be false then.
func (p Pair) Normalized() (u Pair, ok bool) {
	l := p.Magnitude()
	if l == 0 {
		return Origin, false
	}
	return P(p.X()/l, p.Y()/l), true
}

// Dot returns the dot product of p and q.
// It is > 0 for vectors enclosing less than 90°, < 0 for more than 90°.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross returns the z-part of the cross product of p and q.
// It is positive if q lies counter-clockwise (to the left) of p.
func (p Pair) Cross(q Pair) float64 {
	return p.X()*q.Y() - q.X()*p.Y()
}

// Angle returns the angle between the x-axis and vector p, in (-π,π].
func (p Pair) Angle() float64 {
	return math.Atan2(p.Y(), p.X())
}

// Mid returns the point halfway between p and q.
func (p Pair) Mid(q Pair) Pair {
	return P((p.X()+q.X())/2.0, (p.Y()+q.Y())/2.0)
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// ScaledFrom returns p scaled by factor a with respect to base point b.
func (p Pair) ScaledFrom(b Pair, a float64) Pair {
	return P(b.X()+a*(p.X()-b.X()), b.Y()+a*(p.Y()-b.Y()))
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	T := Translation(v)
	return T.Transform(p)
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p)
}

// Rotatedaround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) Rotatedaround(v Pair, theta float64) Pair {
	return p.Shifted(-v).Rotated(theta).Shifted(v)
}

// RotatePoint rotates point p around center c by theta radians
// (counterclockwise).
func RotatePoint(c, p Pair, theta float64) Pair {
	return p.Rotatedaround(c, theta)
}

// Collinear is a predicate: do p1, p2 and p3 lie on a common line?
func Collinear(p1, p2, p3 Pair) bool {
	d1 := p2 - p1
	d2 := p3 - p1
	return Equal(d1.X()*d2.Y(), d2.X()*d1.Y())
}
