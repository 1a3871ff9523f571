package snapareas

import "github.com/1broseidon/snaprect/internal/calc"

// DefaultConfig returns the built-in config for a zone when the user has
// not overridden it. The center zone is reserved and never actionable.
func DefaultConfig(o Orientation, z Zone) SnapAreaConfig {
	if o == Portrait {
		return portraitDefaults[z]
	}
	return landscapeDefaults[z]
}

// Landscape: corners snap quarters, the top edge maximizes, the side
// edges offer halves with corner options, the bottom edge offers thirds.
var landscapeDefaults = map[Zone]SnapAreaConfig{
	ZoneTopLeft:     Single(calc.ActionTopLeftQuarter),
	ZoneTop:         Single(calc.ActionMaximize),
	ZoneTopRight:    Single(calc.ActionTopRightQuarter),
	ZoneLeft:        Compound(CompoundHalfWithCorners),
	ZoneRight:       Compound(CompoundHalfWithCorners),
	ZoneBottomLeft:  Single(calc.ActionBottomLeftQuarter),
	ZoneBottom:      Compound(CompoundThirds),
	ZoneBottomRight: Single(calc.ActionBottomRightQuarter),
}

// Portrait: side edges offer vertical thirds, the bottom edge offers
// left/right halves.
var portraitDefaults = map[Zone]SnapAreaConfig{
	ZoneTopLeft:     Single(calc.ActionTopLeftQuarter),
	ZoneTop:         Single(calc.ActionMaximize),
	ZoneTopRight:    Single(calc.ActionTopRightQuarter),
	ZoneLeft:        Compound(CompoundVerticalThirds),
	ZoneRight:       Compound(CompoundVerticalThirds),
	ZoneBottomLeft:  Single(calc.ActionBottomLeftQuarter),
	ZoneBottom:      Compound(CompoundLeftRightHalves),
	ZoneBottomRight: Single(calc.ActionBottomRightQuarter),
}
