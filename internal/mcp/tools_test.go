package mcp

import (
	"context"
	"testing"

	"github.com/1broseidon/snaprect/internal/calc"
	"github.com/1broseidon/snaprect/internal/snapareas"
	"github.com/1broseidon/snaprect/internal/store"
)

func newTestServer() *Server {
	model := snapareas.NewModel(store.NewMemory(), nil)
	settings := calc.CalculationSettings{
		CyclingEnabled: true,
		CycleSizes:     calc.DefaultCycleSizes(),
	}
	return NewServer(calc.NewEngine(), model, settings)
}

func TestHandleCalculatePlacement_MatchesEngine(t *testing.T) {
	s := newTestServer()

	_, out, err := s.handleCalculatePlacement(context.Background(), nil, CalculatePlacementInput{
		Action: "middle-center-ninth",
		Frame:  RectIO{X: 0, Y: 0, Width: 1200, Height: 800},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// floor(1200/3)=400, floor(800/3)=266, middle cell at (400, 266).
	want := RectIO{X: 400, Y: 266, Width: 400, Height: 266}
	if out.Rect != want {
		t.Fatalf("rect: got %+v, want %+v", out.Rect, want)
	}
	if out.SubAction != "middle-center-ninth" {
		t.Fatalf("sub action: got %q", out.SubAction)
	}
	if out.NextCount != 1 {
		t.Fatalf("next count for fresh action: got %d, want 1", out.NextCount)
	}
}

func TestHandleCalculatePlacement_RepeatBookkeeping(t *testing.T) {
	s := newTestServer()

	_, out, err := s.handleCalculatePlacement(context.Background(), nil, CalculatePlacementInput{
		Action: "left-half",
		Frame:  RectIO{X: 0, Y: 0, Width: 1200, Height: 800},
		LastAction: &LastActionIO{
			Action: "left-half",
			Rect:   RectIO{X: 0, Y: 0, Width: 600, Height: 800},
			Count:  1,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// count=1 -> repeatCount 2 -> index 2 mod 3 -> one third of 1200.
	if out.Rect.Width != 400 {
		t.Fatalf("repeat width: got %d, want 400", out.Rect.Width)
	}
	if out.NextCount != 2 {
		t.Fatalf("next count: got %d, want 2", out.NextCount)
	}
}

func TestHandleCalculatePlacement_RejectsBadInput(t *testing.T) {
	s := newTestServer()

	if _, _, err := s.handleCalculatePlacement(context.Background(), nil, CalculatePlacementInput{
		Action: "left-half",
		Frame:  RectIO{Width: 0, Height: 600},
	}); err == nil {
		t.Fatalf("expected error for degenerate frame")
	}

	if _, _, err := s.handleCalculatePlacement(context.Background(), nil, CalculatePlacementInput{
		Action: "no-such-action",
		Frame:  RectIO{Width: 800, Height: 600},
	}); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestHandleSetSnapArea_Validation(t *testing.T) {
	s := newTestServer()

	if _, _, err := s.handleSetSnapArea(context.Background(), nil, SetSnapAreaInput{
		Zone: "left", Action: "left-half", Compound: "thirds",
	}); err == nil {
		t.Fatalf("expected error when both action and compound are set")
	}

	if _, _, err := s.handleSetSnapArea(context.Background(), nil, SetSnapAreaInput{
		Zone: "left",
	}); err == nil {
		t.Fatalf("expected error when nothing is set")
	}

	if _, _, err := s.handleSetSnapArea(context.Background(), nil, SetSnapAreaInput{
		Zone: "middle-ish", Action: "left-half",
	}); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}

func TestHandleSetSnapArea_RoundTripThroughResolve(t *testing.T) {
	s := newTestServer()

	_, out, err := s.handleSetSnapArea(context.Background(), nil, SetSnapAreaInput{
		Zone:   "bottom",
		Action: "bottom-half",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Zone.Configured || out.Zone.Action != "bottom-half" {
		t.Fatalf("set result: got %+v", out.Zone)
	}

	_, resolved, err := s.handleResolveSnapArea(context.Background(), nil, ResolveSnapAreaInput{Zone: "bottom"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Action != "bottom-half" {
		t.Fatalf("resolve after set: got %+v", resolved)
	}

	// Clearing reverts to the default thirds compound.
	_, out, err = s.handleSetSnapArea(context.Background(), nil, SetSnapAreaInput{
		Zone:  "bottom",
		Clear: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Zone.Compound != "thirds" {
		t.Fatalf("after clear: got %+v, want thirds compound", out.Zone)
	}
}

func TestHandleListSnapAreas_AllZones(t *testing.T) {
	s := newTestServer()

	_, out, err := s.handleListSnapAreas(context.Background(), nil, ListSnapAreasInput{Orientation: "portrait"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Zones) != 8 {
		t.Fatalf("expected 8 zones, got %d", len(out.Zones))
	}
	for _, zone := range out.Zones {
		if !zone.Configured {
			t.Fatalf("zone %s: defaults should configure every directional zone", zone.Zone)
		}
	}
}

func TestHandleMigrate_RunsOnce(t *testing.T) {
	s := newTestServer()

	_, out, err := s.handleMigrate(context.Background(), nil, MigrateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Migrated {
		t.Fatalf("first migrate should report migrated")
	}

	_, out, err = s.handleMigrate(context.Background(), nil, MigrateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Migrated {
		t.Fatalf("second migrate should be a no-op")
	}
}

func TestHandleListActions_ContainsCatalog(t *testing.T) {
	s := newTestServer()

	_, out, err := s.handleListActions(context.Background(), nil, ListActionsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := make(map[string]bool, len(out.Actions))
	for _, a := range out.Actions {
		found[a] = true
	}
	for _, want := range []string{"maximize", "left-half", "top-left-quarter", "middle-center-ninth", "first-third"} {
		if !found[want] {
			t.Fatalf("action %q missing from catalog", want)
		}
	}
}
