package catalog

import (
	"sync"

	"github.com/golang/geo/r2"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// MapCatalog is a mutable registry of MapLayouts, safe for concurrent
// reads and writes. Add overwrites any existing entry for the same ID.
type MapCatalog struct {
	mu    sync.RWMutex
	maps  map[string]*entities.MapLayout
}

// NewMapCatalog seeds the catalog with the reference competitive map
// pool. Every entry beyond these uses the synthetic fallback layout
// returned by Lookup when no matching ID is registered.
func NewMapCatalog() *MapCatalog {
	c := &MapCatalog{maps: make(map[string]*entities.MapLayout)}

	for _, layout := range []entities.MapLayout{
		twoSiteLayout("ascent", "Ascent"),
		twoSiteLayout("bind", "Bind"),
		twoSiteLayout("haven", "Haven"),
		twoSiteLayout("split", "Split"),
		twoSiteLayout("icebox", "Icebox"),
		twoSiteLayout("lotus", "Lotus"),
		twoSiteLayout("sunset", "Sunset"),
		twoSiteLayout("pearl", "Pearl"),
	} {
		l := layout
		c.maps[l.ID] = &l
	}

	return c
}

// twoSiteLayout builds a standard A/B-site layout with four fixed
// callouts, the same shape used for the synthetic fallback.
func twoSiteLayout(id, name string) entities.MapLayout {
	return entities.MapLayout{
		ID:       id,
		Name:     name,
		ImageURL: "",
		Width:    1.0,
		Height:   1.0,
		Sites:    []string{"A", "B"},
		Callouts: map[string]entities.Callout{
			"A":     {Key: "A", Name: "A Site", AreaType: entities.AreaSite, Position: r2.Point{X: 0.8, Y: 0.2}, Size: r2.Point{X: 0.15, Y: 0.15}},
			"B":     {Key: "B", Name: "B Site", AreaType: entities.AreaSite, Position: r2.Point{X: 0.2, Y: 0.2}, Size: r2.Point{X: 0.15, Y: 0.15}},
			"Mid":   {Key: "Mid", Name: "Mid", AreaType: entities.AreaMid, Position: r2.Point{X: 0.5, Y: 0.5}, Size: r2.Point{X: 0.2, Y: 0.2}},
			"Ramps": {Key: "Ramps", Name: "Ramps", AreaType: entities.AreaConnector, Position: r2.Point{X: 0.5, Y: 0.65}, Size: r2.Point{X: 0.15, Y: 0.15}},
		},
		AttackerSpawn: entities.SpawnPoint{Position: r2.Point{X: 0.5, Y: 0.9}},
		DefenderSpawn: entities.SpawnPoint{Position: r2.Point{X: 0.5, Y: 0.1}},
	}
}

// syntheticFallback is returned by Lookup for any map ID that was never
// registered, so the round simulator always has callouts and spawns to
// work with even for an unknown/custom map name.
func syntheticFallback(id string) *entities.MapLayout {
	l := twoSiteLayout(id, id)
	return &l
}

// Lookup returns the registered layout for id, or a synthetic two-site
// fallback layout when id has no catalog entry.
func (c *MapCatalog) Lookup(id string) *entities.MapLayout {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if l, ok := c.maps[id]; ok {
		return l
	}
	return syntheticFallback(id)
}

// Has reports whether id has a registered layout, as opposed to falling
// back to the synthetic default.
func (c *MapCatalog) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.maps[id]
	return ok
}

// AllNames returns the IDs of every registered map.
func (c *MapCatalog) AllNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.maps))
	for id := range c.maps {
		names = append(names, id)
	}
	return names
}

// Add registers layout, overwriting any existing entry with the same ID.
func (c *MapCatalog) Add(layout entities.MapLayout) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maps[layout.ID] = &layout
}
