package roster_in

import (
	"context"

	match_usecases "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/usecases"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/entities"
)

// GeneratePlayerCommand wraps one generatePlayer call for POST /players/generate.
type GeneratePlayerCommand struct {
	Options match_usecases.GeneratorOptions
	Seed    *uint64
}

// Validate delegates to the underlying generator options' own checks.
func (c GeneratePlayerCommand) Validate() error {
	return c.Options.Validate()
}

// GeneratePlayerCommandHandler generates and persists one roster player.
type GeneratePlayerCommandHandler interface {
	Exec(ctx context.Context, cmd GeneratePlayerCommand) (*entities.RosterPlayer, error)
}

// GenerateRosterCommand wraps one generateRoster call for POST /rosters/generate.
type GenerateRosterCommand struct {
	Options match_usecases.GeneratorOptions
	Seed    *uint64
}

// Validate delegates to the underlying generator options' own checks.
func (c GenerateRosterCommand) Validate() error {
	return c.Options.Validate()
}

// GenerateRosterCommandHandler generates and persists a 5-player roster.
type GenerateRosterCommandHandler interface {
	Exec(ctx context.Context, cmd GenerateRosterCommand) ([]entities.RosterPlayer, error)
}
