// Package roster_app wraps the roster domain's generator use cases
// with logging, metrics, and persistence, outside the pure match
// engine packages.
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

// GeneratePlayerUseCase implements roster_in.GeneratePlayerCommandHandler.
type GeneratePlayerUseCase struct {
	generator *match_usecases.PlayerGenerator
	players   roster_out.RosterRepository
}

func NewGeneratePlayerUseCase(generator *match_usecases.PlayerGenerator, players roster_out.RosterRepository) roster_in.GeneratePlayerCommandHandler {
	return &GeneratePlayerUseCase{generator: generator, players: players}
}

func (uc *GeneratePlayerUseCase) Exec(ctx context.Context, cmd roster_in.GeneratePlayerCommand) (*roster_entities.RosterPlayer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	masterSeed := services.NewMasterSeed()
	if cmd.Seed != nil {
		masterSeed = *cmd.Seed
	}
	rnd := services.NewStreams(masterSeed).Generator

	player, err := uc.generator.Generate(cmd.Options, rnd)
	if err != nil {
		metrics.RecordPlayerGenerationRejection("validation")
		slog.WarnContext(ctx, "player generation rejected", "err", err)
		return nil, err
	}

	metrics.RecordPlayerGenerated(string(player.PrimaryRole))

	rosterPlayer := roster_entities.RosterPlayer{
		BaseEntity: common.NewUnrestrictedEntity(common.GetResourceOwner(ctx)),
		Player:     player,
		Source:     roster_entities.SourceGenerated,
	}

	if err := uc.players.Create(ctx, rosterPlayer); err != nil {
		slog.ErrorContext(ctx, "failed to persist generated player", "err", err)
		return nil, err
	}

	slog.InfoContext(ctx, "player generated", "player_id", rosterPlayer.ID, "role", player.PrimaryRole, "region", player.Region)

	return &rosterPlayer, nil
}
