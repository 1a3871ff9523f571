package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/snaprect/internal/calc"
	"github.com/1broseidon/snaprect/internal/snapareas"
)

func rectFromIO(r RectIO) calc.Rect {
	return calc.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func rectToIO(r calc.Rect) RectIO {
	return RectIO{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func parseOrientation(s string) (snapareas.Orientation, error) {
	switch s {
	case "", string(snapareas.Landscape):
		return snapareas.Landscape, nil
	case string(snapareas.Portrait):
		return snapareas.Portrait, nil
	default:
		return "", fmt.Errorf("unknown orientation %q; use landscape or portrait", s)
	}
}

func parseZone(s string) (snapareas.Zone, error) {
	for _, z := range snapareas.Zones {
		if s == string(z) {
			return z, nil
		}
	}
	return "", fmt.Errorf("unknown zone %q", s)
}

func snapAreaToIO(z snapareas.Zone, cfg snapareas.SnapAreaConfig) SnapAreaIO {
	out := SnapAreaIO{Zone: string(z), Configured: cfg.IsConfigured()}
	if action, ok := cfg.Action(); ok {
		out.Action = string(action)
	}
	if compound, ok := cfg.Compound(); ok {
		out.Compound = string(compound)
		for _, option := range snapareas.CompoundOptions(compound, z) {
			out.Options = append(out.Options, string(option))
		}
	}
	return out
}

func (s *Server) handleCalculatePlacement(_ context.Context, _ *mcpsdk.CallToolRequest, args CalculatePlacementInput) (*mcpsdk.CallToolResult, CalculatePlacementOutput, error) {
	if args.Frame.Width <= 0 || args.Frame.Height <= 0 {
		return nil, CalculatePlacementOutput{}, fmt.Errorf("frame must have positive dimensions, got %dx%d", args.Frame.Width, args.Frame.Height)
	}

	params := calc.CalculationParams{
		Window: calc.WindowInfo{
			ID:   calc.WindowID(args.WindowID),
			Rect: rectFromIO(args.Window),
		},
		VisibleFrame: rectFromIO(args.Frame),
		Action:       calc.WindowAction(args.Action),
		Settings:     s.settings,
	}
	if args.LastAction != nil {
		params.LastAction = &calc.LastActionInfo{
			Action:    calc.WindowAction(args.LastAction.Action),
			SubAction: calc.SubAction(args.LastAction.SubAction),
			Rect:      rectFromIO(args.LastAction.Rect),
			Count:     args.LastAction.Count,
		}
	}

	res, err := s.engine.Calculate(params)
	if err != nil {
		return nil, CalculatePlacementOutput{}, err
	}

	nextCount := 1
	if params.IsRepeatedAction() {
		nextCount = params.LastAction.Count + 1
	}

	return nil, CalculatePlacementOutput{
		Rect:            rectToIO(res.Rect),
		ResultingAction: string(res.ResultingAction),
		SubAction:       string(res.SubAction),
		NextAction:      string(res.NextAction),
		NextCount:       nextCount,
	}, nil
}

func (s *Server) handleResolveSnapArea(_ context.Context, _ *mcpsdk.CallToolRequest, args ResolveSnapAreaInput) (*mcpsdk.CallToolResult, SnapAreaIO, error) {
	orientation, err := parseOrientation(args.Orientation)
	if err != nil {
		return nil, SnapAreaIO{}, err
	}
	zone, err := parseZone(args.Zone)
	if err != nil {
		return nil, SnapAreaIO{}, err
	}

	cfg := s.model.Resolve(orientation, zone)
	return nil, snapAreaToIO(zone, cfg), nil
}

func (s *Server) handleSetSnapArea(_ context.Context, _ *mcpsdk.CallToolRequest, args SetSnapAreaInput) (*mcpsdk.CallToolResult, SetSnapAreaOutput, error) {
	orientation, err := parseOrientation(args.Orientation)
	if err != nil {
		return nil, SetSnapAreaOutput{}, err
	}
	zone, err := parseZone(args.Zone)
	if err != nil {
		return nil, SetSnapAreaOutput{}, err
	}

	var cfg snapareas.SnapAreaConfig
	switch {
	case args.Clear:
		if args.Action != "" || args.Compound != "" {
			return nil, SetSnapAreaOutput{}, fmt.Errorf("clear cannot be combined with action or compound")
		}
		cfg = snapareas.Unconfigured()
	case args.Action != "" && args.Compound != "":
		return nil, SetSnapAreaOutput{}, fmt.Errorf("action and compound are mutually exclusive")
	case args.Action != "":
		cfg = snapareas.Single(calc.WindowAction(args.Action))
	case args.Compound != "":
		cfg = snapareas.Compound(snapareas.CompoundID(args.Compound))
	default:
		return nil, SetSnapAreaOutput{}, fmt.Errorf("one of action, compound, or clear is required")
	}

	s.model.SetConfig(orientation, zone, cfg)
	return nil, SetSnapAreaOutput{
		Zone: snapAreaToIO(zone, s.model.Resolve(orientation, zone)),
	}, nil
}

func (s *Server) handleListSnapAreas(_ context.Context, _ *mcpsdk.CallToolRequest, args ListSnapAreasInput) (*mcpsdk.CallToolResult, ListSnapAreasOutput, error) {
	orientation, err := parseOrientation(args.Orientation)
	if err != nil {
		return nil, ListSnapAreasOutput{}, err
	}

	out := ListSnapAreasOutput{Orientation: string(orientation)}
	for _, zone := range snapareas.Zones {
		out.Zones = append(out.Zones, snapAreaToIO(zone, s.model.Resolve(orientation, zone)))
	}
	return nil, out, nil
}

func (s *Server) handleMigrate(_ context.Context, _ *mcpsdk.CallToolRequest, _ MigrateInput) (*mcpsdk.CallToolResult, MigrateOutput, error) {
	return nil, MigrateOutput{Migrated: s.model.Migrate()}, nil
}

func (s *Server) handleListActions(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListActionsInput) (*mcpsdk.CallToolResult, ListActionsOutput, error) {
	var out ListActionsOutput
	for _, action := range s.engine.Actions() {
		out.Actions = append(out.Actions, string(action))
	}
	return nil, out, nil
}
