package rtree

import "math"

// BBox is an axis-aligned bounding rectangle with closed intervals on both axes.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// emptyBBox is the sentinel "nothing here yet" rectangle: extending it with
// any real rectangle yields that rectangle unchanged.
var emptyBBox = BBox{
	MinX: math.Inf(1),
	MinY: math.Inf(1),
	MaxX: math.Inf(-1),
	MaxY: math.Inf(-1),
}

// Area returns the rectangle's area. Degenerate (zero-width or zero-height)
// rectangles report zero.
func (b BBox) Area() float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// Margin returns the rectangle's half-perimeter.
func (b BBox) Margin() float64 {
	return (b.MaxX - b.MinX) + (b.MaxY - b.MinY)
}

// Extend grows b in place to also cover other.
func (b *BBox) Extend(other BBox) {
	if other.MinX < b.MinX {
		b.MinX = other.MinX
	}
	if other.MinY < b.MinY {
		b.MinY = other.MinY
	}
	if other.MaxX > b.MaxX {
		b.MaxX = other.MaxX
	}
	if other.MaxY > b.MaxY {
		b.MaxY = other.MaxY
	}
}

// Union returns the smallest rectangle covering both a and b, without
// mutating either.
func Union(a, b BBox) BBox {
	a.Extend(b)
	return a
}

// Intersects reports whether the closed rectangles overlap, including
// edge-touching.
func (b BBox) Intersects(other BBox) bool {
	return other.MinX <= b.MaxX && other.MinY <= b.MaxY &&
		other.MaxX >= b.MinX && other.MaxY >= b.MinY
}

// Contains reports whether other lies entirely within b (closed intervals).
func (b BBox) Contains(other BBox) bool {
	return b.MinX <= other.MinX && b.MinY <= other.MinY &&
		other.MaxX <= b.MaxX && other.MaxY <= b.MaxY
}

// enlargedArea is the area of the union of a and b, without mutating either.
func enlargedArea(a, b BBox) float64 {
	width := math.Max(a.MaxX, b.MaxX) - math.Min(a.MinX, b.MinX)
	height := math.Max(a.MaxY, b.MaxY) - math.Min(a.MinY, b.MinY)
	return width * height
}

// intersectionArea is the area of overlap between a and b, clamped at zero.
func intersectionArea(a, b BBox) float64 {
	width := math.Max(0, math.Min(a.MaxX, b.MaxX)-math.Max(a.MinX, b.MinX))
	height := math.Max(0, math.Min(a.MaxY, b.MaxY)-math.Max(a.MinY, b.MinY))
	return width * height
}
