package calc

import "math"

// maximizeCalculation fills the visible frame.
type maximizeCalculation struct{}

func (maximizeCalculation) CalculateRect(p CalculationParams) RectResult {
	return RectResult{Rect: p.VisibleFrame}
}

// Edge names the screen edge a half placement is anchored to.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// halfCalculation anchors a fractional slice of the frame to one edge.
// Left/right slices divide width, top/bottom slices divide height.
type halfCalculation struct {
	edge Edge
}

func (h halfCalculation) CalculateFirstRect(p CalculationParams) RectResult {
	return h.CalculateFractionalRect(p, 0.5)
}

func (h halfCalculation) CalculateFractionalRect(p CalculationParams, fraction float64) RectResult {
	frame := p.VisibleFrame
	r := frame
	switch h.edge {
	case EdgeLeft:
		r.Width = fractionOf(frame.Width, fraction)
	case EdgeRight:
		r.Width = fractionOf(frame.Width, fraction)
		r.X = frame.MaxX() - r.Width
	case EdgeTop:
		r.Height = fractionOf(frame.Height, fraction)
	case EdgeBottom:
		r.Height = fractionOf(frame.Height, fraction)
		r.Y = frame.MaxY() - r.Height
	}
	return RectResult{Rect: r}
}

// fractionOf rounds to the nearest pixel so cycle sizes like two thirds
// land exactly on even divisions.
func fractionOf(dim int, fraction float64) int {
	return int(math.Round(float64(dim) * fraction))
}

// quarterCalculation places a window into one screen quarter.
type quarterCalculation struct {
	right  bool
	bottom bool
}

func (q quarterCalculation) CalculateRect(p CalculationParams) RectResult {
	frame := p.VisibleFrame
	r := Rect{X: frame.X, Y: frame.Y, Width: frame.Width / 2, Height: frame.Height / 2}
	if q.right {
		r.X = frame.MaxX() - r.Width
	}
	if q.bottom {
		r.Y = frame.MaxY() - r.Height
	}
	return RectResult{Rect: r}
}

type thirdPosition int

const (
	thirdFirst thirdPosition = iota
	thirdCenter
	thirdLast
)

// thirdCalculation slices the frame into thirds. Landscape slices divide
// width into columns, portrait slices divide height into rows. The
// occupied share is num/den of the divided dimension (1/3 or 2/3).
type thirdCalculation struct {
	pos thirdPosition
	num int
	den int
}

func (t thirdCalculation) LandscapeRect(frame Rect, _ CalculationParams) RectResult {
	r := frame
	r.Width = frame.Width * t.num / t.den
	switch t.pos {
	case thirdCenter:
		r.X = frame.X + (frame.Width-r.Width)/2
	case thirdLast:
		r.X = frame.MaxX() - r.Width
	}
	return RectResult{Rect: r}
}

func (t thirdCalculation) PortraitRect(frame Rect, _ CalculationParams) RectResult {
	r := frame
	r.Height = frame.Height * t.num / t.den
	switch t.pos {
	case thirdCenter:
		r.Y = frame.Y + (frame.Height-r.Height)/2
	case thirdLast:
		r.Y = frame.MaxY() - r.Height
	}
	return RectResult{Rect: r}
}
