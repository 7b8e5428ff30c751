package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// BBox represents a bounding box in page space.
//
// Unlike raw PDF user space, the origin is the top-left corner of the page and
// Y grows downward, so Y is the distance of the top edge from the top of the page.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from its top-left corner and size
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromEdges creates a bounding box from its four edges
func NewBBoxFromEdges(left, top, right, bottom float64) BBox {
	return BBox{
		X:      math.Min(left, right),
		Y:      math.Min(top, bottom),
		Width:  math.Abs(right - left),
		Height: math.Abs(bottom - top),
	}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	left := math.Min(b.Left(), other.Left())
	top := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return NewBBoxFromEdges(left, top, right, bottom)
}

// HorizontalOverlap reports whether the X ranges of two boxes overlap.
// A box without width overlaps a range that contains its left edge.
func (b BBox) HorizontalOverlap(other BBox) bool {
	if b.Width <= 0 || other.Width <= 0 {
		return b.Left() <= other.Right() && other.Left() <= b.Right()
	}
	return b.Right() > other.Left() && other.Right() > b.Left()
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
