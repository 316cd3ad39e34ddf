// Package roster_in defines the inbound command and query surface for
// the roster domain: generatePlayer, generateRoster, and their reads.
package roster_in

import (
	"context"

	"github.com/google/uuid"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/entities"
)

// GetPlayerByIDQuery fetches one persisted roster player.
type GetPlayerByIDQuery struct {
	PlayerID uuid.UUID
}

// SearchPlayersQuery lists roster players, filterable by region and
// primary role via the generic query-service schema registered under
// entity type "players".
type SearchPlayersQuery struct {
	Search common.Search
}

// PlayerQueryService provides read access to persisted roster players.
type PlayerQueryService interface {
	GetByID(ctx context.Context, query GetPlayerByIDQuery) (*entities.RosterPlayer, error)
	Search(ctx context.Context, query SearchPlayersQuery) ([]entities.RosterPlayer, error)
}
