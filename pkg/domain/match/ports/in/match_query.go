package match_in

import (
	"context"

	"github.com/google/uuid"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// GetMatchByIDQuery fetches one persisted match result.
type GetMatchByIDQuery struct {
	MatchID uuid.UUID
}

// SearchMatchesQuery lists persisted matches, filterable by map and
// mvp via the generic query-service schema registered under entity
// type "matches". No winner field is stored, so there is no winner filter.
type SearchMatchesQuery struct {
	Search common.Search
}

// MatchQueryService provides read access to persisted match results.
type MatchQueryService interface {
	GetByID(ctx context.Context, query GetMatchByIDQuery) (*entities.PersistedMatch, error)
	Search(ctx context.Context, query SearchMatchesQuery) ([]entities.PersistedMatch, error)
}
