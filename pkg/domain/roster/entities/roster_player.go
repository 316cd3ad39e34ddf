// Package entities holds the persisted envelope around the engine's
// Player value object — the shape stored in and queried from Mongo.
package entities

import (
	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// PlayerSource distinguishes generator output from externally imported
// records; both are accepted through the same validation path.
type PlayerSource string

const (
	SourceGenerated PlayerSource = "generated"
	SourceImported  PlayerSource = "imported"
)

// RosterPlayer is the persisted wrapper around a Player, carrying the
// common resource-owner/visibility/timestamp envelope every other
// stored resource in this codebase carries.
type RosterPlayer struct {
	common.BaseEntity `bson:",inline"`

	Player entities.Player `json:"player" bson:"player"`
	Source PlayerSource    `json:"source" bson:"source"`
}
