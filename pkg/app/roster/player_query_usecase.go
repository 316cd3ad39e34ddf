package roster_app

import (
	"context"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/entities"
	roster_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/ports/in"
	roster_out "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/ports/out"
)

// PlayerQueryUseCase implements roster_in.PlayerQueryService directly
// over the repository, for the single-entity GET /players/{id} path;
// list search runs through the generic query-service schema registered
// by services.NewPlayerQueryService instead.
type PlayerQueryUseCase struct {
	players roster_out.RosterRepository
}

func NewPlayerQueryUseCase(players roster_out.RosterRepository) roster_in.PlayerQueryService {
	return &PlayerQueryUseCase{players: players}
}

func (uc *PlayerQueryUseCase) GetByID(ctx context.Context, query roster_in.GetPlayerByIDQuery) (*entities.RosterPlayer, error) {
	return uc.players.GetByID(ctx, query.PlayerID)
}

func (uc *PlayerQueryUseCase) Search(ctx context.Context, query roster_in.SearchPlayersQuery) ([]entities.RosterPlayer, error) {
	return uc.players.Search(ctx, query.Search)
}
