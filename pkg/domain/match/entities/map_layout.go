package entities

import "github.com/golang/geo/r2"

// AreaType classifies a map callout.
type AreaType string

const (
	AreaAttackerSpawn AreaType = "AttackerSpawn"
	AreaDefenderSpawn AreaType = "DefenderSpawn"
	AreaSite          AreaType = "Site"
	AreaMid           AreaType = "Mid"
	AreaConnector     AreaType = "Connector"
	AreaFlank         AreaType = "Flank"
)

// Callout is a named region of a map, positioned in the unit square.
type Callout struct {
	Key      string   `json:"key" bson:"key"`
	Name     string   `json:"name" bson:"name"`
	AreaType AreaType `json:"area_type" bson:"area_type"`
	Position r2.Point `json:"position" bson:"position"`
	Size     r2.Point `json:"size" bson:"size"`
}

// SpawnPoint is a team's initial-placement anchor for a round.
type SpawnPoint struct {
	Position r2.Point `json:"position" bson:"position"`
}

// MapLayout is an immutable catalog entry describing one playable map.
type MapLayout struct {
	ID       string             `json:"id" bson:"id"`
	Name     string             `json:"name" bson:"name"`
	ImageURL string             `json:"image_url" bson:"image_url"`
	Width    float64            `json:"width" bson:"width"`
	Height   float64            `json:"height" bson:"height"`
	Sites    []string           `json:"sites" bson:"sites"`
	Callouts map[string]Callout `json:"callouts" bson:"callouts"`

	AttackerSpawn SpawnPoint `json:"attacker_spawn" bson:"attacker_spawn"`
	DefenderSpawn SpawnPoint `json:"defender_spawn" bson:"defender_spawn"`
}

// SiteCallout returns the callout whose key equals site, and whether
// such a callout exists.
func (m MapLayout) SiteCallout(site string) (Callout, bool) {
	c, ok := m.Callouts[site]
	return c, ok
}
