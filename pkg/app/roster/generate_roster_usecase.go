package roster_app

import (
	"context"
	"log/slog"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	match_usecases "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/usecases"
	roster_entities "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/entities"
	roster_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/ports/in"
	roster_out "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/ports/out"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/infra/metrics"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/services"
)

// GenerateRosterUseCase implements roster_in.GenerateRosterCommandHandler.
type GenerateRosterUseCase struct {
	generator *match_usecases.PlayerGenerator
	players   roster_out.RosterRepository
}

func NewGenerateRosterUseCase(generator *match_usecases.PlayerGenerator, players roster_out.RosterRepository) roster_in.GenerateRosterCommandHandler {
	return &GenerateRosterUseCase{generator: generator, players: players}
}

func (uc *GenerateRosterUseCase) Exec(ctx context.Context, cmd roster_in.GenerateRosterCommand) ([]roster_entities.RosterPlayer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	masterSeed := services.NewMasterSeed()
	if cmd.Seed != nil {
		masterSeed = *cmd.Seed
	}
	rnd := services.NewStreams(masterSeed).Generator

	roster, err := uc.generator.GenerateRoster(cmd.Options, rnd)
	if err != nil {
		metrics.RecordPlayerGenerationRejection("validation")
		slog.WarnContext(ctx, "roster generation rejected", "err", err)
		return nil, err
	}

	rosterPlayers := make([]roster_entities.RosterPlayer, len(roster))
	for i, player := range roster {
		metrics.RecordPlayerGenerated(string(player.PrimaryRole))
		rosterPlayers[i] = roster_entities.RosterPlayer{
			BaseEntity: common.NewUnrestrictedEntity(common.GetResourceOwner(ctx)),
			Player:     player,
			Source:     roster_entities.SourceGenerated,
		}
	}

	if err := uc.players.Create(ctx, rosterPlayers...); err != nil {
		slog.ErrorContext(ctx, "failed to persist generated roster", "err", err)
		return nil, err
	}

	slog.InfoContext(ctx, "roster generated", "size", len(rosterPlayers))

	return rosterPlayers, nil
}
