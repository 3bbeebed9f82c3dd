package model

import (
	"fmt"
	"image"
)

// Region represents the bounding box of one detected panel, in page pixel
// coordinates. Y increases downward, so Top is the smaller Y coordinate.
type Region struct {
	X      int // Left edge
	Y      int // Top edge
	Width  int
	Height int
}

// NewRegion creates a region from coordinates.
func NewRegion(x, y, width, height int) Region {
	return Region{X: x, Y: y, Width: width, Height: height}
}

// FromRect creates a region from an image.Rectangle.
func FromRect(r image.Rectangle) Region {
	r = r.Canon()
	return Region{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Bounds returns the region as an image.Rectangle.
func (r Region) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Left returns the left edge X coordinate.
func (r Region) Left() int {
	return r.X
}

// Right returns the right edge X coordinate.
func (r Region) Right() int {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate.
func (r Region) Top() int {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate.
func (r Region) Bottom() int {
	return r.Y + r.Height
}

// CenterX returns the horizontal center of the region.
func (r Region) CenterX() float64 {
	return float64(r.X) + float64(r.Width)/2
}

// CenterY returns the vertical center of the region.
func (r Region) CenterY() float64 {
	return float64(r.Y) + float64(r.Height)/2
}

// Area returns the area of the region in pixels.
func (r Region) Area() int {
	return r.Width * r.Height
}

// Intersects checks if two regions overlap.
func (r Region) Intersects(other Region) bool {
	return r.Left() < other.Right() && other.Left() < r.Right() &&
		r.Top() < other.Bottom() && other.Top() < r.Bottom()
}

// Union returns the smallest region covering both r and other.
func (r Region) Union(other Region) Region {
	left := min(r.Left(), other.Left())
	top := min(r.Top(), other.Top())
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return Region{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// VerticalOverlap returns the length in pixels of the overlap between the
// vertical extents of r and other, or 0 if they do not overlap vertically.
func (r Region) VerticalOverlap(other Region) int {
	overlap := min(r.Bottom(), other.Bottom()) - max(r.Top(), other.Top())
	if overlap < 0 {
		return 0
	}
	return overlap
}

// Validate reports whether the region has usable geometry.
// It returns a *InvalidRegionError if width or height is non-positive.
func (r Region) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return &InvalidRegionError{Index: -1, Region: r}
	}
	return nil
}

// ValidateRegions validates every region in a slice, returning a
// *InvalidRegionError identifying the first offending region by index.
func ValidateRegions(regions []Region) error {
	for i, r := range regions {
		if r.Width <= 0 || r.Height <= 0 {
			return &InvalidRegionError{Index: i, Region: r}
		}
	}
	return nil
}

// InvalidRegionError reports a region whose geometry cannot be processed:
// a bounding box with non-positive width or height. Index is the position
// of the region in the caller's input, or -1 when unknown.
type InvalidRegionError struct {
	Index  int
	Region Region
}

func (e *InvalidRegionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid region: non-positive dimensions %dx%d", e.Region.Width, e.Region.Height)
	}
	return fmt.Sprintf("invalid region at index %d: non-positive dimensions %dx%d", e.Index, e.Region.Width, e.Region.Height)
}
