package calc

// WindowID is an opaque window identifier supplied by the host.
type WindowID string

// WindowInfo is an immutable snapshot of a window at calculation time.
type WindowInfo struct {
	ID   WindowID
	Rect Rect
}

// LastActionInfo describes the previous placement the caller performed.
// The engine only reads it to decide cycling; the caller is expected to
// fold each RectResult back into a fresh LastActionInfo.
type LastActionInfo struct {
	Action    WindowAction
	SubAction SubAction
	Rect      Rect
	// Count is the repeat counter for the action, starting at 1 for the
	// first execution.
	Count int
}

// EdgeGaps are per-edge pixel insets applied to the visible frame before
// any calculation runs.
type EdgeGaps struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Apply shrinks the frame by the configured edge gaps. Degenerate gaps
// that would invert the frame clamp to a 1x1 rectangle.
func (g EdgeGaps) Apply(frame Rect) Rect {
	frame.X += g.Left
	frame.Y += g.Top
	frame.Width -= g.Left + g.Right
	frame.Height -= g.Top + g.Bottom
	if frame.Width < 1 {
		frame.Width = 1
	}
	if frame.Height < 1 {
		frame.Height = 1
	}
	return frame
}

// CalculationSettings carries the user preferences the engine consults.
type CalculationSettings struct {
	CyclingEnabled bool
	CycleSizes     []CycleSize
	GapSize        int
	EdgeGaps       EdgeGaps
}

// CalculationParams is the single unit of work passed through the engine.
// It is treated as immutable by every calculation.
type CalculationParams struct {
	Window       WindowInfo
	VisibleFrame Rect
	Action       WindowAction
	LastAction   *LastActionInfo
	Settings     CalculationSettings
}

// IsRepeatedAction reports whether the requested action matches the last
// action performed.
func (p CalculationParams) IsRepeatedAction() bool {
	return p.LastAction != nil && p.LastAction.Action == p.Action
}

// IsLandscape reports the orientation of the visible frame. Ties resolve
// to landscape.
func (p CalculationParams) IsLandscape() bool {
	return p.VisibleFrame.IsLandscape()
}

// RectResult is the outcome of one placement calculation. Ownership
// passes to the caller; the engine retains nothing.
type RectResult struct {
	Rect Rect
	// ResultingAction is the action actually performed, which may differ
	// from the requested one when a calculation delegates.
	ResultingAction WindowAction
	SubAction       SubAction
	// NextAction, when set, hints what a subsequent identical shortcut
	// press should do instead of repeating the action.
	NextAction WindowAction
}
