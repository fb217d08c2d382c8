package quadtree

import (
	"fmt"
	"math"
)

// PointF is a point in the plane, in whatever coordinate system the caller
// has chosen (y-up or y-down is immaterial to the tree; see DESIGN.md).
type PointF struct {
	X, Y float64
}

func (p PointF) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle expressed as an origin and extent. W and
// H are expected to be positive; a degenerate (zero-area) or non-finite Rect
// is accepted by the tree (it may simply end up living at the root, per
// spec.md §4.3 I4) rather than rejected.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.X, r.Y, r.W, r.H)
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns W*H, which may be negative or NaN for a malformed Rect;
// callers that need a subdivision guard should use degenerate below.
func (r Rect) Area() float64 { return r.W * r.H }

// ContainsPoint reports whether p lies within r, inclusive of all four edges.
func (r Rect) ContainsPoint(p PointF) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether r wholly contains other (r ⊇ other),
// inclusive of shared edges.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Left() <= other.Left() && r.Right() >= other.Right() &&
		r.Top() <= other.Top() && r.Bottom() >= other.Bottom()
}

// Intersects reports whether r and other overlap, treating shared edges as
// overlapping (closed intersection).
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() && r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() && r.Bottom() >= other.Top()
}

// Center returns the midpoint of r, used as the Morton representative point
// for rectangle items (spec.md §4.1).
func (r Rect) Center() PointF {
	return PointF{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// quarter returns the sub-rectangle of the given quadrant, split at (midX,
// midY). Quadrant indices follow the node.go convention: 0=TL, 1=TR, 2=BL,
// 3=BR.
func (r Rect) quarter(quadrant int, midX, midY float64) Rect {
	switch quadrant {
	case quadTL:
		return Rect{X: r.X, Y: r.Y, W: midX - r.X, H: midY - r.Y}
	case quadTR:
		return Rect{X: midX, Y: r.Y, W: r.Right() - midX, H: midY - r.Y}
	case quadBL:
		return Rect{X: r.X, Y: midY, W: midX - r.X, H: r.Bottom() - midY}
	default: // quadBR
		return Rect{X: midX, Y: midY, W: r.Right() - midX, H: r.Bottom() - midY}
	}
}

func (r Rect) midpoint() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// degenerate reports whether r is too small or malformed to subdivide, per
// spec.md §6 MinSubdivideArea and §4.3's Subdivide guard.
func degenerate(r Rect, minArea float64) bool {
	area := r.Area()
	return math.IsNaN(area) || math.IsInf(area, 0) || area < minArea
}
