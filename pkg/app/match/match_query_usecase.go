package match_app

import (
	"context"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
	match_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/ports/in"
	match_out "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/ports/out"
)

// MatchQueryUseCase implements match_in.MatchQueryService directly over
// the repository, for the single-entity GET /matches/{id} path; list
// search runs through the generic query-service schema registered by
// services.NewMatchQueryService instead.
type MatchQueryUseCase struct {
	matches match_out.MatchRepository
}

func NewMatchQueryUseCase(matches match_out.MatchRepository) match_in.MatchQueryService {
	return &MatchQueryUseCase{matches: matches}
}

func (uc *MatchQueryUseCase) GetByID(ctx context.Context, query match_in.GetMatchByIDQuery) (*entities.PersistedMatch, error) {
	return uc.matches.GetByID(ctx, query.MatchID)
}

func (uc *MatchQueryUseCase) Search(ctx context.Context, query match_in.SearchMatchesQuery) ([]entities.PersistedMatch, error) {
	return uc.matches.Search(ctx, query.Search)
}
