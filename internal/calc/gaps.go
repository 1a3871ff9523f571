package calc

// applyGap insets every computed edge that is not flush with the frame by
// half the configured gap, so two adjacent placements end up a full gap
// apart. Flush edges stay flush; edge gaps were already applied to the
// frame itself.
func applyGap(r, frame Rect, gap int) Rect {
	if gap <= 0 {
		return r
	}
	half := gap / 2
	if r.X > frame.X {
		r.X += half
		r.Width -= half
	}
	if r.MaxX() < frame.MaxX() {
		r.Width -= half
	}
	if r.Y > frame.Y {
		r.Y += half
		r.Height -= half
	}
	if r.MaxY() < frame.MaxY() {
		r.Height -= half
	}
	if r.Width < 1 {
		r.Width = 1
	}
	if r.Height < 1 {
		r.Height = 1
	}
	return r
}
