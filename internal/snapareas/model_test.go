package snapareas

import (
	"testing"

	"github.com/1broseidon/snaprect/internal/calc"
	"github.com/1broseidon/snaprect/internal/store"
)

func newTestModel(portraitAttached bool) (*Model, *store.Memory) {
	st := store.NewMemory()
	model := NewModel(st, DisplayQueryFunc(func() bool { return portraitAttached }))
	return model, st
}

func TestResolve_DefaultsWhenNothingPersisted(t *testing.T) {
	model, _ := newTestModel(false)

	cases := []struct {
		o    Orientation
		z    Zone
		want SnapAreaConfig
	}{
		{Landscape, ZoneTopLeft, Single(calc.ActionTopLeftQuarter)},
		{Landscape, ZoneTop, Single(calc.ActionMaximize)},
		{Landscape, ZoneLeft, Compound(CompoundHalfWithCorners)},
		{Landscape, ZoneRight, Compound(CompoundHalfWithCorners)},
		{Landscape, ZoneBottom, Compound(CompoundThirds)},
		{Landscape, ZoneBottomRight, Single(calc.ActionBottomRightQuarter)},
		{Portrait, ZoneLeft, Compound(CompoundVerticalThirds)},
		{Portrait, ZoneRight, Compound(CompoundVerticalThirds)},
		{Portrait, ZoneBottom, Compound(CompoundLeftRightHalves)},
		{Portrait, ZoneTop, Single(calc.ActionMaximize)},
	}
	for _, tc := range cases {
		if got := model.Resolve(tc.o, tc.z); got != tc.want {
			t.Fatalf("%s %s: got %v, want %v", tc.o, tc.z, got, tc.want)
		}
	}
}

func TestResolve_CenterIsNeverActionable(t *testing.T) {
	model, _ := newTestModel(false)
	if cfg := model.Resolve(Landscape, ZoneCenter); cfg.IsConfigured() {
		t.Fatalf("center zone resolved to %v, want unconfigured", cfg)
	}
}

func TestSetConfig_RoundTrip(t *testing.T) {
	model, _ := newTestModel(false)

	cfg := Single(calc.ActionMiddleCenterNinth)
	model.SetConfig(Landscape, ZoneBottom, cfg)
	if got := model.Resolve(Landscape, ZoneBottom); got != cfg {
		t.Fatalf("after set: got %v, want %v", got, cfg)
	}

	// The other orientation is untouched.
	if got := model.Resolve(Portrait, ZoneBottom); got != Compound(CompoundLeftRightHalves) {
		t.Fatalf("portrait bottom changed: got %v", got)
	}
}

func TestSetConfig_ClearRevertsToDefault(t *testing.T) {
	model, _ := newTestModel(false)

	model.SetConfig(Landscape, ZoneTop, Compound(CompoundThirds))
	model.SetConfig(Landscape, ZoneTop, Unconfigured())

	// Clearing an override reverts to the default, it does not blank the
	// zone.
	if got := model.Resolve(Landscape, ZoneTop); got != Single(calc.ActionMaximize) {
		t.Fatalf("after clear: got %v, want default maximize", got)
	}
}

func TestSetConfig_PersistsAcrossModels(t *testing.T) {
	model, st := newTestModel(false)
	model.SetConfig(Portrait, ZoneLeft, Single(calc.ActionLeftHalf))

	// A fresh model over the same store sees the override.
	reopened := NewModel(st, nil)
	if got := reopened.Resolve(Portrait, ZoneLeft); got != Single(calc.ActionLeftHalf) {
		t.Fatalf("reopened model: got %v", got)
	}
}

func TestResolve_MalformedPersistedStateFallsThrough(t *testing.T) {
	model, st := newTestModel(false)
	st.SetString("snapareas.landscape", "{not yaml: [")

	if got := model.Resolve(Landscape, ZoneTop); got != Single(calc.ActionMaximize) {
		t.Fatalf("malformed state: got %v, want default", got)
	}
}

func TestIsTopConfigured(t *testing.T) {
	// Defaults configure the top zone in both orientations.
	model, _ := newTestModel(false)
	if !model.IsTopConfigured() {
		t.Fatalf("expected top to be configured by defaults")
	}

	withPortrait, _ := newTestModel(true)
	if !withPortrait.IsTopConfigured() {
		t.Fatalf("expected top to be configured with portrait display attached")
	}

	// A nil display query must not panic and falls back to landscape only.
	nilDisplays := NewModel(store.NewMemory(), nil)
	if !nilDisplays.IsTopConfigured() {
		t.Fatalf("expected top to be configured with nil display query")
	}
}

func TestCompoundOptions_SideAware(t *testing.T) {
	left := CompoundOptions(CompoundHalfWithCorners, ZoneLeft)
	if len(left) != 3 || left[1] != calc.ActionLeftHalf {
		t.Fatalf("left edge options: got %v", left)
	}
	right := CompoundOptions(CompoundHalfWithCorners, ZoneRight)
	if len(right) != 3 || right[1] != calc.ActionRightHalf {
		t.Fatalf("right edge options: got %v", right)
	}
}
