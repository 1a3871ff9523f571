package snapareas

import "github.com/1broseidon/snaprect/internal/calc"

// Legacy ignored-zones bitmask layout. Bits 0-7 follow the Zones order;
// bits 8-11 are the "short" sub-zone bits for the corners of the left and
// right compound edges.
const (
	bitTopLeft = 1 << iota
	bitTop
	bitTopRight
	bitLeft
	bitRight
	bitBottomLeft
	bitBottom
	bitBottomRight
	bitTopLeftShort
	bitTopRightShort
	bitBottomLeftShort
	bitBottomRightShort
)

var zoneBits = map[Zone]int{
	ZoneTopLeft:     bitTopLeft,
	ZoneTop:         bitTop,
	ZoneTopRight:    bitTopRight,
	ZoneLeft:        bitLeft,
	ZoneRight:       bitRight,
	ZoneBottomLeft:  bitBottomLeft,
	ZoneBottom:      bitBottom,
	ZoneBottomRight: bitBottomRight,
}

// Migrate folds the two legacy settings formats into the per-zone tables.
// It runs at most once: a persisted flag gates it, because the sixths
// toggle sub-migration force-overwrites the top and bottom zones and must
// not clobber edits the user makes afterward. Returns whether the
// migration ran.
func (m *Model) Migrate() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if done, ok := m.store.GetBool(keyMigrated); ok && done {
		return false
	}

	m.migrateSixthsToggleLocked()
	m.migrateIgnoredZonesLocked()

	m.store.SetBool(keyMigrated, true)
	return true
}

// migrateSixthsToggleLocked maps the legacy "sixths enabled" boolean onto
// the landscape top/bottom sixths compounds, overwriting whatever those
// two zones held.
func (m *Model) migrateSixthsToggleLocked() {
	enabled, ok := m.store.GetBool(keyLegacySixths)
	if !ok || !enabled {
		return
	}
	m.setConfigLocked(Landscape, ZoneTop, Compound(CompoundTopSixths))
	m.setConfigLocked(Landscape, ZoneBottom, Compound(CompoundBottomSixths))
}

// migrateIgnoredZonesLocked maps the legacy 12-bit ignored-zones bitmask
// onto the zone tables. Main bits clear their zone in both orientations.
// When both short bits on one side are set, the compound side edge
// collapses to the plain half action; other short-bit combinations leave
// the edge as the main-bit pass left it.
func (m *Model) migrateIgnoredZonesLocked() {
	mask, ok := m.store.GetInt(keyLegacyIgnored)
	if !ok || mask == 0 {
		return
	}

	for _, zone := range Zones {
		if mask&zoneBits[zone] == 0 {
			continue
		}
		m.setConfigLocked(Landscape, zone, Unconfigured())
		m.setConfigLocked(Portrait, zone, Unconfigured())
	}

	if mask&bitTopLeftShort != 0 && mask&bitBottomLeftShort != 0 {
		m.setConfigLocked(Landscape, ZoneLeft, Single(calc.ActionLeftHalf))
	}
	if mask&bitTopRightShort != 0 && mask&bitBottomRightShort != 0 {
		m.setConfigLocked(Landscape, ZoneRight, Single(calc.ActionRightHalf))
	}
}
