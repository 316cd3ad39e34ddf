// Package roster_out defines the outbound persistence port for the
// roster domain.
package roster_out

import (
	"context"

	"github.com/google/uuid"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/entities"
)

// RosterRepository is the persistence boundary the generator/roster use
// cases depend on, implemented by db.RosterPlayerRepository.
type RosterRepository interface {
	Create(ctx context.Context, players ...entities.RosterPlayer) error
	Search(ctx context.Context, s common.Search) ([]entities.RosterPlayer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.RosterPlayer, error)
}
