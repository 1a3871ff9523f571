// Package snapareas resolves drag-snap screen zones into window actions,
// merging persisted per-zone overrides with built-in defaults and
// migrating legacy settings formats.
package snapareas

// Orientation selects which zone table applies for the current screen.
type Orientation string

const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
)

// Zone is one of the eight directional screen-edge/corner regions a drag
// gesture can enter. The center is reserved and never actionable.
type Zone string

const (
	ZoneTopLeft     Zone = "top-left"
	ZoneTop         Zone = "top"
	ZoneTopRight    Zone = "top-right"
	ZoneLeft        Zone = "left"
	ZoneRight       Zone = "right"
	ZoneBottomLeft  Zone = "bottom-left"
	ZoneBottom      Zone = "bottom"
	ZoneBottomRight Zone = "bottom-right"
	ZoneCenter      Zone = "center"
)

// Zones lists the eight directional zones in a fixed order. The order
// doubles as the legacy ignored-zones bit order.
var Zones = []Zone{
	ZoneTopLeft,
	ZoneTop,
	ZoneTopRight,
	ZoneLeft,
	ZoneRight,
	ZoneBottomLeft,
	ZoneBottom,
	ZoneBottomRight,
}

// CompoundID names a multi-option snap zone whose sub-action depends on
// finer cursor position. The catalog is an external contract shared by
// name with the host UI.
type CompoundID string

const (
	CompoundHalfWithCorners CompoundID = "half-with-corners"
	CompoundThirds          CompoundID = "thirds"
	CompoundTopSixths       CompoundID = "top-sixths"
	CompoundBottomSixths    CompoundID = "bottom-sixths"
	CompoundVerticalThirds  CompoundID = "vertical-thirds"
	CompoundLeftRightHalves CompoundID = "left-right-halves"
)
