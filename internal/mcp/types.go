package mcp

// RectIO is a rectangle crossing the tool boundary. Top-left origin,
// Y grows downward.
type RectIO struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LastActionIO describes the previous placement for cycling.
type LastActionIO struct {
	Action    string `json:"action" jsonschema:"required,The previous action name"`
	SubAction string `json:"sub_action,omitempty" jsonschema:"Sub-action tag recorded from the previous result"`
	Rect      RectIO `json:"rect" jsonschema:"Rectangle the previous action produced"`
	Count     int    `json:"count" jsonschema:"Repeat counter recorded from the previous result, starting at 1"`
}

// CalculatePlacementInput is the input for the calculate_placement tool.
type CalculatePlacementInput struct {
	Action     string        `json:"action" jsonschema:"required,The window action to perform (e.g. left-half, maximize, top-left-quarter)"`
	Window     RectIO        `json:"window" jsonschema:"required,Current window rectangle"`
	WindowID   string        `json:"window_id,omitempty" jsonschema:"Opaque window identifier, echoed back unchanged"`
	Frame      RectIO        `json:"frame" jsonschema:"required,Visible screen frame excluding panels and docks"`
	LastAction *LastActionIO `json:"last_action,omitempty" jsonschema:"Previous placement, enables size cycling on repeated actions"`
}

// CalculatePlacementOutput is the output for the calculate_placement tool.
type CalculatePlacementOutput struct {
	Rect            RectIO `json:"rect"`
	ResultingAction string `json:"resulting_action"`
	SubAction       string `json:"sub_action,omitempty"`
	NextAction      string `json:"next_action,omitempty"`
	// NextCount is the repeat counter the caller should record alongside
	// this result for the next invocation.
	NextCount int `json:"next_count"`
}

// ResolveSnapAreaInput is the input for the resolve_snap_area tool.
type ResolveSnapAreaInput struct {
	Orientation string `json:"orientation,omitempty" jsonschema:"Screen orientation: landscape (default) or portrait"`
	Zone        string `json:"zone" jsonschema:"required,Screen zone: top-left, top, top-right, left, right, bottom-left, bottom, bottom-right"`
}

// SnapAreaIO describes one zone's configuration.
type SnapAreaIO struct {
	Zone       string   `json:"zone"`
	Configured bool     `json:"configured"`
	Action     string   `json:"action,omitempty"`
	Compound   string   `json:"compound,omitempty"`
	Options    []string `json:"options,omitempty"`
}

// SetSnapAreaInput is the input for the set_snap_area tool. Exactly one
// of action, compound, or clear must be given.
type SetSnapAreaInput struct {
	Orientation string `json:"orientation,omitempty" jsonschema:"Screen orientation: landscape (default) or portrait"`
	Zone        string `json:"zone" jsonschema:"required,Screen zone to configure"`
	Action      string `json:"action,omitempty" jsonschema:"Single action the zone should trigger"`
	Compound    string `json:"compound,omitempty" jsonschema:"Compound snap area the zone should offer"`
	Clear       bool   `json:"clear,omitempty" jsonschema:"Clear the zone's override, reverting it to the built-in default"`
}

// SetSnapAreaOutput is the output for the set_snap_area tool.
type SetSnapAreaOutput struct {
	Zone SnapAreaIO `json:"zone"`
}

// ListSnapAreasInput is the input for the list_snap_areas tool.
type ListSnapAreasInput struct {
	Orientation string `json:"orientation,omitempty" jsonschema:"Screen orientation: landscape (default) or portrait"`
}

// ListSnapAreasOutput is the output for the list_snap_areas tool.
type ListSnapAreasOutput struct {
	Orientation string       `json:"orientation"`
	Zones       []SnapAreaIO `json:"zones"`
}

// MigrateInput is the input for the migrate_legacy_settings tool.
type MigrateInput struct{}

// MigrateOutput is the output for the migrate_legacy_settings tool.
type MigrateOutput struct {
	// Migrated is false when the migration already ran before.
	Migrated bool `json:"migrated"`
}

// ListActionsInput is the input for the list_actions tool.
type ListActionsInput struct{}

// ListActionsOutput is the output for the list_actions tool.
type ListActionsOutput struct {
	Actions []string `json:"actions"`
}
