// Package match_app wraps the match domain's pure simulation engine
// (pkg/domain/match/usecases) with the ambient stack it deliberately
// stays free of: structured logging, the Event Bus, and persistence.
package match_app

import (
	"context"
	"log/slog"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
	match_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/ports/in"
	match_out "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/ports/out"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/services"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/usecases"
)

// SimulateMatchUseCase implements match_in.SimulateMatchCommandHandler,
// driving one simulateMatch call end to end: derive seeds, run the
// core engine, publish the event stream, persist the result.
type SimulateMatchUseCase struct {
	simulator *usecases.MatchSimulator
	matches   match_out.MatchRepository
	observer  usecases.MatchObserver
}

func NewSimulateMatchUseCase(simulator *usecases.MatchSimulator, matches match_out.MatchRepository, observer usecases.MatchObserver) match_in.SimulateMatchCommandHandler {
	return &SimulateMatchUseCase{simulator: simulator, matches: matches, observer: observer}
}

func (uc *SimulateMatchUseCase) Exec(ctx context.Context, cmd match_in.SimulateMatchCommand) (*entities.PersistedMatch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	masterSeed := services.NewMasterSeed()
	if cmd.Seed != nil {
		masterSeed = *cmd.Seed
	}
	streams := services.NewStreams(masterSeed)

	opts := usecases.SimulateOptions{
		MapName:             cmd.MapName,
		AgentOverridesTeamA: cmd.AgentOverrides,
	}

	slog.InfoContext(ctx, "simulating match", "map", opts.MapName, "seed", masterSeed)

	result, err := uc.simulator.Simulate(cmd.TeamA, cmd.TeamB, opts, streams, uc.observer)
	if err != nil {
		slog.ErrorContext(ctx, "match simulation failed", "err", err)
		return nil, err
	}

	if len(result.EconomyLogs) > 0 && result.EconomyLogs[0].RoundNumber == -1 {
		for _, note := range result.EconomyLogs[0].Notes {
			if note != "Match start" {
				slog.WarnContext(ctx, "simulateMatch fell back to synthetic map layout", "requested_map", opts.MapName, "note", note)
			}
		}
	}

	persisted := entities.PersistedMatch{
		BaseEntity:       common.NewUnrestrictedEntity(common.GetResourceOwner(ctx)),
		MatchResult:      result,
		RequestedMapName: cmd.MapName,
		Seed:             masterSeed,
	}

	if err := uc.matches.Create(ctx, persisted); err != nil {
		slog.ErrorContext(ctx, "failed to persist match result", "err", err)
		return nil, err
	}

	slog.InfoContext(ctx, "match simulated", "match_id", persisted.ID, "map", result.Map, "mvp", result.MVP)

	return &persisted, nil
}
