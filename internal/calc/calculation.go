package calc

// Calculation computes a target rectangle for one window action. It is
// total: every well-formed CalculationParams yields a result. Actions the
// engine has no calculation for are rejected by Engine.Calculate before
// dispatch ever reaches an implementation.
type Calculation interface {
	CalculateRect(p CalculationParams) RectResult
}

// OrientationCalculation is implemented by calculations whose geometry
// differs between landscape and portrait frames. Landscape variants
// conventionally divide width, portrait variants divide height.
type OrientationCalculation interface {
	LandscapeRect(frame Rect, p CalculationParams) RectResult
	PortraitRect(frame Rect, p CalculationParams) RectResult
}

// OrientationSplit adapts an OrientationCalculation into a Calculation.
// Dispatch is purely on frame orientation, nothing else.
type OrientationSplit struct {
	Base OrientationCalculation
}

func (o OrientationSplit) CalculateRect(p CalculationParams) RectResult {
	if p.IsLandscape() {
		return o.Base.LandscapeRect(p.VisibleFrame, p)
	}
	return o.Base.PortraitRect(p.VisibleFrame, p)
}
