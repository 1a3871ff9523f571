package calc

// WindowAction identifies a named window placement. The catalog is shared
// by name with anything driving the engine (shortcuts, snap zones, MCP).
type WindowAction string

const (
	ActionMaximize WindowAction = "maximize"

	ActionLeftHalf   WindowAction = "left-half"
	ActionRightHalf  WindowAction = "right-half"
	ActionTopHalf    WindowAction = "top-half"
	ActionBottomHalf WindowAction = "bottom-half"

	ActionTopLeftQuarter     WindowAction = "top-left-quarter"
	ActionTopRightQuarter    WindowAction = "top-right-quarter"
	ActionBottomLeftQuarter  WindowAction = "bottom-left-quarter"
	ActionBottomRightQuarter WindowAction = "bottom-right-quarter"

	ActionFirstThird     WindowAction = "first-third"
	ActionCenterThird    WindowAction = "center-third"
	ActionLastThird      WindowAction = "last-third"
	ActionFirstTwoThirds WindowAction = "first-two-thirds"
	ActionLastTwoThirds  WindowAction = "last-two-thirds"
)

// SubAction tags the finer-grained placement actually performed, e.g.
// which grid cell a compound snap zone resolved to.
type SubAction string

const (
	SubActionNone SubAction = ""

	SubActionTopLeftNinth      SubAction = "top-left-ninth"
	SubActionTopCenterNinth    SubAction = "top-center-ninth"
	SubActionTopRightNinth     SubAction = "top-right-ninth"
	SubActionMiddleLeftNinth   SubAction = "middle-left-ninth"
	SubActionMiddleCenterNinth SubAction = "middle-center-ninth"
	SubActionMiddleRightNinth  SubAction = "middle-right-ninth"
	SubActionBottomLeftNinth   SubAction = "bottom-left-ninth"
	SubActionBottomCenterNinth SubAction = "bottom-center-ninth"
	SubActionBottomRightNinth  SubAction = "bottom-right-ninth"

	SubActionFirstEighth   SubAction = "first-eighth"
	SubActionSecondEighth  SubAction = "second-eighth"
	SubActionThirdEighth   SubAction = "third-eighth"
	SubActionFourthEighth  SubAction = "fourth-eighth"
	SubActionFifthEighth   SubAction = "fifth-eighth"
	SubActionSixthEighth   SubAction = "sixth-eighth"
	SubActionSeventhEighth SubAction = "seventh-eighth"
	SubActionEighthEighth  SubAction = "eighth-eighth"

	SubActionTopLeftCornerThird     SubAction = "top-left-corner-third"
	SubActionTopRightCornerThird    SubAction = "top-right-corner-third"
	SubActionBottomLeftCornerThird  SubAction = "bottom-left-corner-third"
	SubActionBottomRightCornerThird SubAction = "bottom-right-corner-third"

	SubActionTopLeftSixth      SubAction = "top-left-sixth"
	SubActionTopCenterSixth    SubAction = "top-center-sixth"
	SubActionTopRightSixth     SubAction = "top-right-sixth"
	SubActionBottomLeftSixth   SubAction = "bottom-left-sixth"
	SubActionBottomCenterSixth SubAction = "bottom-center-sixth"
	SubActionBottomRightSixth  SubAction = "bottom-right-sixth"
)

// Grid cell actions. Each maps one-to-one onto a GridCalculation entry in
// the grid instance table; the action name matches the cell's sub-action.
const (
	ActionTopLeftNinth      WindowAction = "top-left-ninth"
	ActionTopCenterNinth    WindowAction = "top-center-ninth"
	ActionTopRightNinth     WindowAction = "top-right-ninth"
	ActionMiddleLeftNinth   WindowAction = "middle-left-ninth"
	ActionMiddleCenterNinth WindowAction = "middle-center-ninth"
	ActionMiddleRightNinth  WindowAction = "middle-right-ninth"
	ActionBottomLeftNinth   WindowAction = "bottom-left-ninth"
	ActionBottomCenterNinth WindowAction = "bottom-center-ninth"
	ActionBottomRightNinth  WindowAction = "bottom-right-ninth"

	ActionFirstEighth   WindowAction = "first-eighth"
	ActionSecondEighth  WindowAction = "second-eighth"
	ActionThirdEighth   WindowAction = "third-eighth"
	ActionFourthEighth  WindowAction = "fourth-eighth"
	ActionFifthEighth   WindowAction = "fifth-eighth"
	ActionSixthEighth   WindowAction = "sixth-eighth"
	ActionSeventhEighth WindowAction = "seventh-eighth"
	ActionEighthEighth  WindowAction = "eighth-eighth"

	ActionTopLeftCornerThird     WindowAction = "top-left-corner-third"
	ActionTopRightCornerThird    WindowAction = "top-right-corner-third"
	ActionBottomLeftCornerThird  WindowAction = "bottom-left-corner-third"
	ActionBottomRightCornerThird WindowAction = "bottom-right-corner-third"

	ActionTopLeftSixth      WindowAction = "top-left-sixth"
	ActionTopCenterSixth    WindowAction = "top-center-sixth"
	ActionTopRightSixth     WindowAction = "top-right-sixth"
	ActionBottomLeftSixth   WindowAction = "bottom-left-sixth"
	ActionBottomCenterSixth WindowAction = "bottom-center-sixth"
	ActionBottomRightSixth  WindowAction = "bottom-right-sixth"
)
