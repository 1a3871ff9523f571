package calc

import "testing"

func cyclingParams(count int, sizes []CycleSize, enabled bool) CalculationParams {
	return CalculationParams{
		VisibleFrame: Rect{X: 0, Y: 0, Width: 1200, Height: 800},
		Action:       ActionLeftHalf,
		LastAction:   &LastActionInfo{Action: ActionLeftHalf, Count: count},
		Settings: CalculationSettings{
			CyclingEnabled: enabled,
			CycleSizes:     sizes,
		},
	}
}

func TestCycling_FirstExecutionIsHalf(t *testing.T) {
	c := Cycling{Base: halfCalculation{edge: EdgeLeft}}
	res := c.CalculateRect(CalculationParams{
		VisibleFrame: Rect{X: 0, Y: 0, Width: 1200, Height: 800},
		Action:       ActionLeftHalf,
		Settings:     CalculationSettings{CyclingEnabled: true, CycleSizes: DefaultCycleSizes()},
	})
	if res.Rect.Width != 600 {
		t.Fatalf("first execution width: got %d, want 600", res.Rect.Width)
	}
}

func TestCycling_VisitsSizesInCanonicalOrder(t *testing.T) {
	c := Cycling{Base: halfCalculation{edge: EdgeLeft}}
	sizes := DefaultCycleSizes() // half, two-thirds, one-third

	// repeatCount = count+1, index = repeatCount mod 3.
	// count=0 -> index 1 (two-thirds of 1200 = 800)
	// count=1 -> index 2 (one-third of 1200 = 400)
	// count=2 -> index 0 (half of 1200 = 600)
	wantWidths := map[int]int{0: 800, 1: 400, 2: 600}
	for count, want := range wantWidths {
		res := c.CalculateRect(cyclingParams(count, sizes, true))
		if res.Rect.Width != want {
			t.Fatalf("count=%d: got width %d, want %d", count, res.Rect.Width, want)
		}
	}
}

func TestCycling_SecondPressLandsAtIndexTwo(t *testing.T) {
	// The first press of a shortcut records count=1, so the very first
	// repeated press computes index 2 mod n: one third, not two thirds.
	c := Cycling{Base: halfCalculation{edge: EdgeLeft}}
	res := c.CalculateRect(cyclingParams(1, DefaultCycleSizes(), true))
	if res.Rect.Width != 400 {
		t.Fatalf("second press width: got %d, want 400 (one third)", res.Rect.Width)
	}
}

func TestCycling_OrderIsSizeProperty(t *testing.T) {
	// Insertion order must not matter: reversed sizes cycle identically.
	c := Cycling{Base: halfCalculation{edge: EdgeLeft}}
	reversed := []CycleSize{CycleSizeOneThird, CycleSizeTwoThirds, CycleSizeHalf}
	res := c.CalculateRect(cyclingParams(0, reversed, true))
	if res.Rect.Width != 800 {
		t.Fatalf("reversed insertion order: got width %d, want 800 (two thirds)", res.Rect.Width)
	}
}

func TestCycling_DisabledAlwaysFirstRect(t *testing.T) {
	c := Cycling{Base: halfCalculation{edge: EdgeLeft}}
	for count := 0; count < 5; count++ {
		res := c.CalculateRect(cyclingParams(count, DefaultCycleSizes(), false))
		if res.Rect.Width != 600 {
			t.Fatalf("count=%d with cycling disabled: got width %d, want 600", count, res.Rect.Width)
		}
	}
}

func TestCycling_EmptySizesDegradesToFirstRect(t *testing.T) {
	c := Cycling{Base: halfCalculation{edge: EdgeLeft}}
	res := c.CalculateRect(cyclingParams(3, nil, true))
	if res.Rect.Width != 600 {
		t.Fatalf("empty cycle sizes: got width %d, want 600", res.Rect.Width)
	}
}

func TestCycling_DifferentLastActionIsFirstExecution(t *testing.T) {
	c := Cycling{Base: halfCalculation{edge: EdgeLeft}}
	p := cyclingParams(2, DefaultCycleSizes(), true)
	p.LastAction.Action = ActionRightHalf
	res := c.CalculateRect(p)
	if res.Rect.Width != 600 {
		t.Fatalf("different last action: got width %d, want 600", res.Rect.Width)
	}
}

func TestSortedCycleSizes_Dedupes(t *testing.T) {
	s := CalculationSettings{CycleSizes: []CycleSize{
		CycleSizeOneThird, CycleSizeHalf, CycleSizeOneThird, CycleSizeHalf,
	}}
	sorted := s.SortedCycleSizes()
	if len(sorted) != 2 {
		t.Fatalf("expected 2 unique sizes, got %d", len(sorted))
	}
	if sorted[0] != CycleSizeHalf || sorted[1] != CycleSizeOneThird {
		t.Fatalf("unexpected order: %v", sorted)
	}
}
