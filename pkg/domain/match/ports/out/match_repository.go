// Package match_out defines the outbound persistence port for the
// match domain.
package match_out

import (
	"context"

	"github.com/google/uuid"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// MatchRepository is the persistence boundary SimulateMatchUseCase
// depends on, implemented by db.MatchRepository.
type MatchRepository interface {
	Create(ctx context.Context, matches ...entities.PersistedMatch) error
	Search(ctx context.Context, s common.Search) ([]entities.PersistedMatch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PersistedMatch, error)
}
