package calc

import "sort"

// CycleSize is one of the screen fractions visited by repeated presses of
// the same shortcut.
type CycleSize string

const (
	CycleSizeHalf          CycleSize = "half"
	CycleSizeTwoThirds     CycleSize = "two-thirds"
	CycleSizeOneThird      CycleSize = "one-third"
	CycleSizeThreeQuarters CycleSize = "three-quarters"
	CycleSizeQuarter       CycleSize = "quarter"
)

// Fraction returns the screen-dimension fraction this size occupies.
// Unknown sizes fall back to a half.
func (c CycleSize) Fraction() float64 {
	switch c {
	case CycleSizeTwoThirds:
		return 2.0 / 3.0
	case CycleSizeOneThird:
		return 1.0 / 3.0
	case CycleSizeThreeQuarters:
		return 0.75
	case CycleSizeQuarter:
		return 0.25
	default:
		return 0.5
	}
}

// cyclePosition is the size's fixed position in the canonical cycle. The
// cycle order is a property of the size itself, never of slice order.
func (c CycleSize) cyclePosition() int {
	switch c {
	case CycleSizeHalf:
		return 0
	case CycleSizeTwoThirds:
		return 1
	case CycleSizeOneThird:
		return 2
	case CycleSizeThreeQuarters:
		return 3
	case CycleSizeQuarter:
		return 4
	default:
		return 5
	}
}

// DefaultCycleSizes is the cycle visited when the user has not picked
// their own sizes: half, two thirds, one third.
func DefaultCycleSizes() []CycleSize {
	return []CycleSize{CycleSizeHalf, CycleSizeTwoThirds, CycleSizeOneThird}
}

// SortedCycleSizes returns the configured sizes deduplicated and in
// canonical cycle order.
func (s CalculationSettings) SortedCycleSizes() []CycleSize {
	seen := make(map[CycleSize]bool, len(s.CycleSizes))
	sorted := make([]CycleSize, 0, len(s.CycleSizes))
	for _, size := range s.CycleSizes {
		if seen[size] {
			continue
		}
		seen[size] = true
		sorted = append(sorted, size)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].cyclePosition() < sorted[j].cyclePosition()
	})
	return sorted
}

// FractionalCalculation is implemented by calculations that can place a
// window at an arbitrary fraction of the screen, enabling cycling.
type FractionalCalculation interface {
	// CalculateFirstRect computes the geometry for a first (non-repeated)
	// execution of the action.
	CalculateFirstRect(p CalculationParams) RectResult
	// CalculateFractionalRect computes the geometry for the given
	// occupied fraction of the screen dimension.
	CalculateFractionalRect(p CalculationParams, fraction float64) RectResult
}

// Cycling wraps a FractionalCalculation with the repeated-execution state
// machine. All state lives in the params; nothing is retained between
// calls.
type Cycling struct {
	Base FractionalCalculation
}

// CycleInThirds marks calculations whose cycle conventionally walks the
// thirds-style sizes. It adds no behavior over Cycling.
type CycleInThirds = Cycling

// CalculateRect dispatches between first execution and cycling.
//
// A repeated press with cycling enabled picks the cycle entry at
// (lastCount+1) mod len, so the second press of a shortcut whose first
// press recorded count=1 lands at index 2 mod len.
func (c Cycling) CalculateRect(p CalculationParams) RectResult {
	if !p.IsRepeatedAction() || !p.Settings.CyclingEnabled {
		return c.Base.CalculateFirstRect(p)
	}
	sizes := p.Settings.SortedCycleSizes()
	if len(sizes) == 0 {
		// Cycling configured with no sizes degrades to a first execution.
		return c.Base.CalculateFirstRect(p)
	}
	repeatCount := p.LastAction.Count + 1
	size := sizes[repeatCount%len(sizes)]
	return c.Base.CalculateFractionalRect(p, size.Fraction())
}
