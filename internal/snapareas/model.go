package snapareas

import (
	"log"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/snaprect/internal/store"
)

const (
	keyLandscapeAreas = "snapareas.landscape"
	keyPortraitAreas  = "snapareas.portrait"
	keyMigrated       = "snapareas.migrated"
	keyLegacySixths   = "legacy.sixths_enabled"
	keyLegacyIgnored  = "legacy.ignored_zones"
)

// DisplayQuery answers whether any attached display is currently in
// portrait orientation.
type DisplayQuery interface {
	AnyPortraitDisplay() bool
}

// DisplayQueryFunc adapts a function to the DisplayQuery interface.
type DisplayQueryFunc func() bool

func (f DisplayQueryFunc) AnyPortraitDisplay() bool {
	return f()
}

// Model resolves zones to snap-area configs, merging persisted overrides
// with the built-in defaults. All mutation is serialized behind one
// mutex; updates touch at most one zone at a time.
type Model struct {
	mu       sync.Mutex
	store    store.Store
	displays DisplayQuery
}

// NewModel builds a model over the given store. displays may be nil when
// no display query is available; portrait-only checks then assume no
// portrait display is attached.
func NewModel(s store.Store, displays DisplayQuery) *Model {
	return &Model{store: s, displays: displays}
}

// Resolve returns the current config for a zone: the persisted override
// when present, otherwise the built-in default. The reserved center zone
// always resolves to unconfigured.
func (m *Model) Resolve(o Orientation, z Zone) SnapAreaConfig {
	if z == ZoneCenter {
		return Unconfigured()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolveLocked(o, z)
}

func (m *Model) resolveLocked(o Orientation, z Zone) SnapAreaConfig {
	overrides := m.loadOverrides(o)
	if cfg, ok := overrides[z]; ok {
		return cfg
	}
	return DefaultConfig(o, z)
}

// SetConfig upserts a single zone's override and persists immediately.
// Setting an unconfigured value clears the override, reverting the zone
// to its built-in default.
func (m *Model) SetConfig(o Orientation, z Zone, cfg SnapAreaConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setConfigLocked(o, z, cfg)
}

func (m *Model) setConfigLocked(o Orientation, z Zone, cfg SnapAreaConfig) {
	overrides := m.loadOverrides(o)
	if cfg.IsConfigured() {
		overrides[z] = cfg
	} else {
		delete(overrides, z)
	}
	m.saveOverrides(o, overrides)
}

// IsTopConfigured reports whether dragging to the top edge does anything.
// The portrait table only counts when a portrait display is actually
// attached, so a portrait-only default is not silently hidden.
func (m *Model) IsTopConfigured() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resolveLocked(Landscape, ZoneTop).IsConfigured() {
		return true
	}
	if m.displays != nil && m.displays.AnyPortraitDisplay() {
		return m.resolveLocked(Portrait, ZoneTop).IsConfigured()
	}
	return false
}

func (m *Model) overridesKey(o Orientation) string {
	if o == Portrait {
		return keyPortraitAreas
	}
	return keyLandscapeAreas
}

// loadOverrides reads one orientation's override table from the store.
// Malformed persisted state is treated as absent.
func (m *Model) loadOverrides(o Orientation) map[Zone]SnapAreaConfig {
	overrides := make(map[Zone]SnapAreaConfig)
	raw, ok := m.store.GetString(m.overridesKey(o))
	if !ok || raw == "" {
		return overrides
	}
	var encoded map[string]string
	if err := yaml.Unmarshal([]byte(raw), &encoded); err != nil {
		log.Printf("Warning: ignoring malformed %s snap areas: %v", o, err)
		return overrides
	}
	for zone, entry := range encoded {
		cfg, err := decodeConfig(entry)
		if err != nil {
			log.Printf("Warning: ignoring snap area for zone %q: %v", zone, err)
			continue
		}
		overrides[Zone(zone)] = cfg
	}
	return overrides
}

func (m *Model) saveOverrides(o Orientation, overrides map[Zone]SnapAreaConfig) {
	encoded := make(map[string]string, len(overrides))
	for zone, cfg := range overrides {
		encoded[string(zone)] = cfg.encode()
	}
	data, err := yaml.Marshal(encoded)
	if err != nil {
		log.Printf("Warning: failed to encode %s snap areas: %v", o, err)
		return
	}
	m.store.SetString(m.overridesKey(o), string(data))
}
