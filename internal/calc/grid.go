package calc

// GridType is one of the fixed grids a window can be snapped into. Each
// grid carries orientation-dependent column/row counts and cell sizes.
type GridType string

const (
	GridNinths       GridType = "ninths"
	GridEighths      GridType = "eighths"
	GridCornerThirds GridType = "corner-thirds"
	GridSixths       GridType = "sixths"
)

// Columns returns the number of grid columns for the orientation.
func (g GridType) Columns(landscape bool) int {
	switch g {
	case GridNinths:
		return 3
	case GridEighths:
		if landscape {
			return 4
		}
		return 2
	case GridCornerThirds:
		return 2
	case GridSixths:
		if landscape {
			return 3
		}
		return 2
	}
	return 1
}

// Rows returns the number of grid rows for the orientation.
func (g GridType) Rows(landscape bool) int {
	switch g {
	case GridNinths:
		return 3
	case GridEighths:
		if landscape {
			return 2
		}
		return 4
	case GridCornerThirds:
		return 2
	case GridSixths:
		if landscape {
			return 2
		}
		return 3
	}
	return 1
}

// CellWidthFraction returns the fraction of the frame width one cell
// occupies. Corner thirds cells are oversized so adjacent corner cells
// overlap; every other grid tiles the frame exactly.
func (g GridType) CellWidthFraction(landscape bool) float64 {
	if g == GridCornerThirds {
		if landscape {
			return 2.0 / 3.0
		}
		return 0.5
	}
	return 1.0 / float64(g.Columns(landscape))
}

// CellHeightFraction returns the fraction of the frame height one cell
// occupies.
func (g GridType) CellHeightFraction(landscape bool) float64 {
	if g == GridCornerThirds {
		if landscape {
			return 0.5
		}
		return 2.0 / 3.0
	}
	return 1.0 / float64(g.Rows(landscape))
}

// cellSize computes the pixel size of one cell, flooring to avoid
// sub-pixel rectangles. Integer arithmetic keeps the floor exact where
// float fractions would round down a hundredth of a pixel.
func (g GridType) cellSize(frame Rect, landscape bool) (w, h int) {
	if g == GridCornerThirds {
		if landscape {
			return frame.Width * 2 / 3, frame.Height / 2
		}
		return frame.Width / 2, frame.Height * 2 / 3
	}
	return frame.Width / g.Columns(landscape), frame.Height / g.Rows(landscape)
}

// CellPos addresses one cell within a grid, zero-based, row 0 at the top.
type CellPos struct {
	Column int
	Row    int
}

// GridCalculation places a window into a specific grid cell, with
// independent cell positions for landscape and portrait frames.
type GridCalculation struct {
	Grid      GridType
	Landscape CellPos
	Portrait  CellPos
	Sub       SubAction
}

func (g GridCalculation) LandscapeRect(frame Rect, _ CalculationParams) RectResult {
	return g.cellRect(frame, g.Landscape, true)
}

func (g GridCalculation) PortraitRect(frame Rect, _ CalculationParams) RectResult {
	return g.cellRect(frame, g.Portrait, false)
}

func (g GridCalculation) cellRect(frame Rect, pos CellPos, landscape bool) RectResult {
	cw, ch := g.Grid.cellSize(frame, landscape)
	x := frame.X + cw*pos.Column
	y := frame.Y + ch*pos.Row
	if g.Grid == GridCornerThirds {
		// Oversized cells anchor their far column/row flush to the frame
		// edge so the corner cells overlap in the middle.
		if pos.Column == g.Grid.Columns(landscape)-1 {
			x = frame.MaxX() - cw
		}
		if pos.Row == g.Grid.Rows(landscape)-1 {
			y = frame.MaxY() - ch
		}
	}
	return RectResult{
		Rect:      Rect{X: x, Y: y, Width: cw, Height: ch},
		SubAction: g.Sub,
	}
}

// gridInstances is the declarative table of every grid cell action. The
// eighths remap runs left-to-right top-to-bottom in both orientations:
// cell i sits at (i%4, i/4) landscape and (i%2, i/2) portrait.
var gridInstances = map[WindowAction]GridCalculation{
	ActionTopLeftNinth:      {Grid: GridNinths, Landscape: CellPos{0, 0}, Portrait: CellPos{0, 0}, Sub: SubActionTopLeftNinth},
	ActionTopCenterNinth:    {Grid: GridNinths, Landscape: CellPos{1, 0}, Portrait: CellPos{1, 0}, Sub: SubActionTopCenterNinth},
	ActionTopRightNinth:     {Grid: GridNinths, Landscape: CellPos{2, 0}, Portrait: CellPos{2, 0}, Sub: SubActionTopRightNinth},
	ActionMiddleLeftNinth:   {Grid: GridNinths, Landscape: CellPos{0, 1}, Portrait: CellPos{0, 1}, Sub: SubActionMiddleLeftNinth},
	ActionMiddleCenterNinth: {Grid: GridNinths, Landscape: CellPos{1, 1}, Portrait: CellPos{1, 1}, Sub: SubActionMiddleCenterNinth},
	ActionMiddleRightNinth:  {Grid: GridNinths, Landscape: CellPos{2, 1}, Portrait: CellPos{2, 1}, Sub: SubActionMiddleRightNinth},
	ActionBottomLeftNinth:   {Grid: GridNinths, Landscape: CellPos{0, 2}, Portrait: CellPos{0, 2}, Sub: SubActionBottomLeftNinth},
	ActionBottomCenterNinth: {Grid: GridNinths, Landscape: CellPos{1, 2}, Portrait: CellPos{1, 2}, Sub: SubActionBottomCenterNinth},
	ActionBottomRightNinth:  {Grid: GridNinths, Landscape: CellPos{2, 2}, Portrait: CellPos{2, 2}, Sub: SubActionBottomRightNinth},

	ActionFirstEighth:   {Grid: GridEighths, Landscape: CellPos{0, 0}, Portrait: CellPos{0, 0}, Sub: SubActionFirstEighth},
	ActionSecondEighth:  {Grid: GridEighths, Landscape: CellPos{1, 0}, Portrait: CellPos{1, 0}, Sub: SubActionSecondEighth},
	ActionThirdEighth:   {Grid: GridEighths, Landscape: CellPos{2, 0}, Portrait: CellPos{0, 1}, Sub: SubActionThirdEighth},
	ActionFourthEighth:  {Grid: GridEighths, Landscape: CellPos{3, 0}, Portrait: CellPos{1, 1}, Sub: SubActionFourthEighth},
	ActionFifthEighth:   {Grid: GridEighths, Landscape: CellPos{0, 1}, Portrait: CellPos{0, 2}, Sub: SubActionFifthEighth},
	ActionSixthEighth:   {Grid: GridEighths, Landscape: CellPos{1, 1}, Portrait: CellPos{1, 2}, Sub: SubActionSixthEighth},
	ActionSeventhEighth: {Grid: GridEighths, Landscape: CellPos{2, 1}, Portrait: CellPos{0, 3}, Sub: SubActionSeventhEighth},
	ActionEighthEighth:  {Grid: GridEighths, Landscape: CellPos{3, 1}, Portrait: CellPos{1, 3}, Sub: SubActionEighthEighth},

	ActionTopLeftCornerThird:     {Grid: GridCornerThirds, Landscape: CellPos{0, 0}, Portrait: CellPos{0, 0}, Sub: SubActionTopLeftCornerThird},
	ActionTopRightCornerThird:    {Grid: GridCornerThirds, Landscape: CellPos{1, 0}, Portrait: CellPos{1, 0}, Sub: SubActionTopRightCornerThird},
	ActionBottomLeftCornerThird:  {Grid: GridCornerThirds, Landscape: CellPos{0, 1}, Portrait: CellPos{0, 1}, Sub: SubActionBottomLeftCornerThird},
	ActionBottomRightCornerThird: {Grid: GridCornerThirds, Landscape: CellPos{1, 1}, Portrait: CellPos{1, 1}, Sub: SubActionBottomRightCornerThird},

	ActionTopLeftSixth:      {Grid: GridSixths, Landscape: CellPos{0, 0}, Portrait: CellPos{0, 0}, Sub: SubActionTopLeftSixth},
	ActionTopCenterSixth:    {Grid: GridSixths, Landscape: CellPos{1, 0}, Portrait: CellPos{1, 0}, Sub: SubActionTopCenterSixth},
	ActionTopRightSixth:     {Grid: GridSixths, Landscape: CellPos{2, 0}, Portrait: CellPos{0, 1}, Sub: SubActionTopRightSixth},
	ActionBottomLeftSixth:   {Grid: GridSixths, Landscape: CellPos{0, 1}, Portrait: CellPos{1, 1}, Sub: SubActionBottomLeftSixth},
	ActionBottomCenterSixth: {Grid: GridSixths, Landscape: CellPos{1, 1}, Portrait: CellPos{0, 2}, Sub: SubActionBottomCenterSixth},
	ActionBottomRightSixth:  {Grid: GridSixths, Landscape: CellPos{2, 1}, Portrait: CellPos{1, 2}, Sub: SubActionBottomRightSixth},
}

// GridActions returns the actions backed by the grid instance table.
func GridActions() []WindowAction {
	actions := make([]WindowAction, 0, len(gridInstances))
	for a := range gridInstances {
		actions = append(actions, a)
	}
	return actions
}
