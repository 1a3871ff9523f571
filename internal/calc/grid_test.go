package calc

import (
	"math"
	"testing"
)

func TestGridFractions_TileExactly(t *testing.T) {
	// Corner thirds deliberately overlap, every other grid must tile the
	// frame exactly in both orientations.
	grids := []GridType{GridNinths, GridEighths, GridSixths}
	for _, grid := range grids {
		for _, landscape := range []bool{true, false} {
			var widthSum float64
			for c := 0; c < grid.Columns(landscape); c++ {
				widthSum += grid.CellWidthFraction(landscape)
			}
			if math.Abs(widthSum-1.0) > 1e-9 {
				t.Fatalf("%s landscape=%v: column fractions sum to %v, want 1.0", grid, landscape, widthSum)
			}

			var heightSum float64
			for r := 0; r < grid.Rows(landscape); r++ {
				heightSum += grid.CellHeightFraction(landscape)
			}
			if math.Abs(heightSum-1.0) > 1e-9 {
				t.Fatalf("%s landscape=%v: row fractions sum to %v, want 1.0", grid, landscape, heightSum)
			}
		}
	}
}

func TestCornerThirds_AdjacentCornersOverlap(t *testing.T) {
	frame := Rect{X: 0, Y: 0, Width: 1200, Height: 800}
	params := CalculationParams{VisibleFrame: frame}

	topLeft := gridInstances[ActionTopLeftCornerThird].LandscapeRect(frame, params)
	topRight := gridInstances[ActionTopRightCornerThird].LandscapeRect(frame, params)

	// cellWidth = 1200*2/3 = 800; top-left at x=0, top-right anchored at
	// 1200-800=400. Overlap width = 2*800 - 1200 = 400.
	if topLeft.Rect != (Rect{X: 0, Y: 0, Width: 800, Height: 400}) {
		t.Fatalf("top-left corner third: got %v", topLeft.Rect)
	}
	if topRight.Rect != (Rect{X: 400, Y: 0, Width: 800, Height: 400}) {
		t.Fatalf("top-right corner third: got %v", topRight.Rect)
	}

	overlap := topLeft.Rect.Intersect(topRight.Rect)
	wantWidth := 2*800 - frame.Width
	if overlap.Width != wantWidth {
		t.Fatalf("overlap width: got %d, want %d", overlap.Width, wantWidth)
	}
}

func TestCornerThirds_PortraitAnchorsBottom(t *testing.T) {
	frame := Rect{X: 0, Y: 0, Width: 800, Height: 1200}
	params := CalculationParams{VisibleFrame: frame}

	// Portrait: cellWidth = 800/2 = 400, cellHeight = 1200*2/3 = 800.
	// Bottom-right anchors flush: x = 800-400 = 400, y = 1200-800 = 400.
	res := gridInstances[ActionBottomRightCornerThird].PortraitRect(frame, params)
	if res.Rect != (Rect{X: 400, Y: 400, Width: 400, Height: 800}) {
		t.Fatalf("bottom-right corner third portrait: got %v", res.Rect)
	}
}

func TestMiddleCenterNinth(t *testing.T) {
	engine := NewEngine()
	res, err := engine.Calculate(CalculationParams{
		VisibleFrame: Rect{X: 0, Y: 0, Width: 1200, Height: 800},
		Action:       ActionMiddleCenterNinth,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// cellWidth = floor(1200/3) = 400, cellHeight = floor(800/3) = 266.
	// Row 0 is the top row, so the middle cell sits at (400, 266).
	want := Rect{X: 400, Y: 266, Width: 400, Height: 266}
	if res.Rect != want {
		t.Fatalf("middle-center ninth: got %v, want %v", res.Rect, want)
	}
	if res.SubAction != SubActionMiddleCenterNinth {
		t.Fatalf("expected sub-action %q, got %q", SubActionMiddleCenterNinth, res.SubAction)
	}
}

func TestEighths_OrientationRemap(t *testing.T) {
	grid := gridInstances[ActionThirdEighth]
	params := CalculationParams{}

	// Landscape 4x2: cell (2,0), cellWidth=1200/4=300, cellHeight=800/2=400.
	landscape := grid.LandscapeRect(Rect{X: 0, Y: 0, Width: 1200, Height: 800}, params)
	if landscape.Rect != (Rect{X: 600, Y: 0, Width: 300, Height: 400}) {
		t.Fatalf("third eighth landscape: got %v", landscape.Rect)
	}

	// Portrait 2x4: same cell remaps to (0,1), cellWidth=800/2=400,
	// cellHeight=1200/4=300.
	portrait := grid.PortraitRect(Rect{X: 0, Y: 0, Width: 800, Height: 1200}, params)
	if portrait.Rect != (Rect{X: 0, Y: 300, Width: 400, Height: 300}) {
		t.Fatalf("third eighth portrait: got %v", portrait.Rect)
	}
}

func TestGridInstances_CoverAllCells(t *testing.T) {
	// 9 ninths + 8 eighths + 4 corner thirds + 6 sixths.
	if len(gridInstances) != 27 {
		t.Fatalf("expected 27 grid instances, got %d", len(gridInstances))
	}

	for _, landscape := range []bool{true, false} {
		seen := make(map[GridType]map[CellPos]bool)
		for action, grid := range gridInstances {
			pos := grid.Landscape
			if !landscape {
				pos = grid.Portrait
			}
			if pos.Column >= grid.Grid.Columns(landscape) || pos.Row >= grid.Grid.Rows(landscape) {
				t.Fatalf("%s: cell %+v out of range for %s landscape=%v", action, pos, grid.Grid, landscape)
			}
			if seen[grid.Grid] == nil {
				seen[grid.Grid] = make(map[CellPos]bool)
			}
			if seen[grid.Grid][pos] {
				t.Fatalf("%s: duplicate cell %+v in %s landscape=%v", action, pos, grid.Grid, landscape)
			}
			seen[grid.Grid][pos] = true
		}
	}
}
