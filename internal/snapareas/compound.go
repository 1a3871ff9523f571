package snapareas

import "github.com/1broseidon/snaprect/internal/calc"

// CompoundOptions lists the sub-actions a compound area offers, in
// cursor-position order within the zone. The zone matters for compounds
// shared between edges: half-with-corners on the left edge offers the
// left-side placements, on the right edge the right-side ones.
func CompoundOptions(id CompoundID, z Zone) []calc.WindowAction {
	switch id {
	case CompoundHalfWithCorners:
		if z == ZoneRight {
			return []calc.WindowAction{
				calc.ActionTopRightCornerThird,
				calc.ActionRightHalf,
				calc.ActionBottomRightCornerThird,
			}
		}
		return []calc.WindowAction{
			calc.ActionTopLeftCornerThird,
			calc.ActionLeftHalf,
			calc.ActionBottomLeftCornerThird,
		}
	case CompoundThirds, CompoundVerticalThirds:
		return []calc.WindowAction{
			calc.ActionFirstThird,
			calc.ActionCenterThird,
			calc.ActionLastThird,
		}
	case CompoundTopSixths:
		return []calc.WindowAction{
			calc.ActionTopLeftSixth,
			calc.ActionTopCenterSixth,
			calc.ActionTopRightSixth,
		}
	case CompoundBottomSixths:
		return []calc.WindowAction{
			calc.ActionBottomLeftSixth,
			calc.ActionBottomCenterSixth,
			calc.ActionBottomRightSixth,
		}
	case CompoundLeftRightHalves:
		return []calc.WindowAction{
			calc.ActionLeftHalf,
			calc.ActionRightHalf,
		}
	}
	return nil
}
