package calc

import "fmt"

// Rect is a window or screen rectangle in screen coordinates.
// Origin is top-left, Y grows downward (X11 convention).
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MaxX returns the exclusive right edge.
func (r Rect) MaxX() int {
	return r.X + r.Width
}

// MaxY returns the exclusive bottom edge.
func (r Rect) MaxY() int {
	return r.Y + r.Height
}

// IsLandscape reports whether the rectangle is at least as wide as it is
// tall. Square rectangles count as landscape.
func (r Rect) IsLandscape() bool {
	return r.Width >= r.Height
}

// Intersect returns the overlapping region of two rectangles, or a zero
// Rect when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.MaxX(), other.MaxX())
	y2 := min(r.MaxY(), other.MaxY())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
