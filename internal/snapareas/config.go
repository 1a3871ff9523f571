package snapareas

import (
	"fmt"
	"strings"

	"github.com/1broseidon/snaprect/internal/calc"
)

type configKind int

const (
	kindUnconfigured configKind = iota
	kindSingle
	kindCompound
)

// SnapAreaConfig is what a zone triggers: nothing, a single action, or a
// compound sub-zoned area. The zero value is Unconfigured; the three
// states are mutually exclusive by construction.
type SnapAreaConfig struct {
	kind     configKind
	action   calc.WindowAction
	compound CompoundID
}

// Unconfigured returns the empty config. Setting it on a zone clears the
// zone's override.
func Unconfigured() SnapAreaConfig {
	return SnapAreaConfig{}
}

// Single returns a config triggering one action.
func Single(action calc.WindowAction) SnapAreaConfig {
	return SnapAreaConfig{kind: kindSingle, action: action}
}

// Compound returns a config triggering a sub-zoned area.
func Compound(id CompoundID) SnapAreaConfig {
	return SnapAreaConfig{kind: kindCompound, compound: id}
}

// IsConfigured reports whether the config triggers anything at all.
func (c SnapAreaConfig) IsConfigured() bool {
	return c.kind != kindUnconfigured
}

// Action returns the single action, if this is a single-action config.
func (c SnapAreaConfig) Action() (calc.WindowAction, bool) {
	return c.action, c.kind == kindSingle
}

// Compound returns the compound identifier, if this is a compound config.
func (c SnapAreaConfig) Compound() (CompoundID, bool) {
	return c.compound, c.kind == kindCompound
}

func (c SnapAreaConfig) String() string {
	switch c.kind {
	case kindSingle:
		return "single:" + string(c.action)
	case kindCompound:
		return "compound:" + string(c.compound)
	default:
		return "unconfigured"
	}
}

// encode serializes a config for the persisted zone table. Only
// configured entries are ever stored.
func (c SnapAreaConfig) encode() string {
	return c.String()
}

// decodeConfig parses a persisted zone table entry. Malformed entries are
// treated as absent rather than propagated.
func decodeConfig(s string) (SnapAreaConfig, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok {
		return SnapAreaConfig{}, fmt.Errorf("malformed snap area config %q", s)
	}
	switch kind {
	case "single":
		return Single(calc.WindowAction(value)), nil
	case "compound":
		return Compound(CompoundID(value)), nil
	default:
		return SnapAreaConfig{}, fmt.Errorf("unknown snap area config kind %q", kind)
	}
}
