package entities

import "github.com/golang/geo/r2"

// MapEventType tags the variant-carrying fields a MapEvent holds.
type MapEventType string

const (
	MapEventKill    MapEventType = "kill"
	MapEventPlant   MapEventType = "plant"
	MapEventDefuse  MapEventType = "defuse"
	MapEventAbility MapEventType = "ability"
)

// MapEvent is one entry in a round's simulated-time-ordered event
// stream. Only the fields relevant to Type are populated; this is a
// tagged structure, not a heterogeneous dict, per the spec's
// dynamic-dicts-to-tagged-structures design note.
type MapEvent struct {
	Type      MapEventType `json:"type" bson:"type"`
	Timestamp float64      `json:"timestamp" bson:"timestamp"`
	Position  r2.Point     `json:"position" bson:"position"`

	// Kill
	AttackerID string `json:"attacker_id,omitempty" bson:"attacker_id,omitempty"`
	VictimID   string `json:"victim_id,omitempty" bson:"victim_id,omitempty"`
	Weapon     string `json:"weapon,omitempty" bson:"weapon,omitempty"`

	// Plant / Defuse
	Site     string `json:"site,omitempty" bson:"site,omitempty"`
	PlayerID string `json:"player_id,omitempty" bson:"player_id,omitempty"`

	// Ability
	Agent      string `json:"agent,omitempty" bson:"agent,omitempty"`
	ImpactTier string `json:"impact_tier,omitempty" bson:"impact_tier,omitempty"`
}

// PlayerPosition is one player's location and facing at a point in time.
type PlayerPosition struct {
	PlayerID string   `json:"player_id" bson:"player_id"`
	Position r2.Point `json:"position" bson:"position"`
	Rotation float64  `json:"rotation" bson:"rotation"`
	Alive    bool     `json:"alive" bson:"alive"`
}

// RoundMapData is the positional/event record attached to a RoundResult.
type RoundMapData struct {
	MapName           string           `json:"map_name" bson:"map_name"`
	PlayerPositions   []PlayerPosition `json:"player_positions" bson:"player_positions"`
	Events            []MapEvent       `json:"events" bson:"events"`
	SpikePlantPosition *r2.Point       `json:"spike_plant_position,omitempty" bson:"spike_plant_position,omitempty"`
}
