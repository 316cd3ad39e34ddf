package services

import (
	"fmt"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// EconomyEngine applies the end-of-round credit state transitions to a
// MatchState and produces the round's EconomyLog entry. It holds no
// state of its own; everything it reads or writes lives on MatchState.
type EconomyEngine struct{}

func NewEconomyEngine() *EconomyEngine {
	return &EconomyEngine{}
}

func clampCredits(v int) int {
	if v < entities.MinMoney {
		return entities.MinMoney
	}
	if v > entities.MaxMoney {
		return entities.MaxMoney
	}
	return v
}

// ApplyRoundResult updates MatchState's per-player credits, team
// economy, and loss streaks per §4.7, and returns the round's
// EconomyLog entry. startCredits is each side's team economy before the
// buy phase; spend is the per-side buy-phase spend, which
// RoundSimulator.Simulate has already deducted from PlayerCredits.
func (e *EconomyEngine) ApplyRoundResult(state *entities.MatchState, result entities.RoundResult, startCredits map[entities.SideKey]int, spend map[entities.SideKey]int) entities.EconomyLog {
	winner := result.Winner
	loser := winner.Other()

	reward := map[entities.SideKey]int{entities.SideA: 0, entities.SideB: 0}

	winnerTeam := state.TeamForSide(winner)
	for _, p := range winnerTeam {
		delta := entities.WinReward
		if result.SpikePlanted && winnerAttacked(result, winner) {
			delta += entities.PlantBonus
		}
		state.PlayerCredits[p.ID] = clampCredits(state.PlayerCredits[p.ID] + delta)
		reward[winner] += delta
	}

	loserStreakIdx := state.LossStreaks[loser]
	if loserStreakIdx > 4 {
		loserStreakIdx = 4
	}
	loserBonus := entities.LossBonusTable[loserStreakIdx]

	loserTeam := state.TeamForSide(loser)
	for _, p := range loserTeam {
		delta := loserBonus
		if result.SpikePlanted && winnerAttacked(result, loser) {
			delta += entities.PlantBonus
		}
		state.PlayerCredits[p.ID] = clampCredits(state.PlayerCredits[p.ID] + delta)
		reward[loser] += delta
	}

	state.LossStreaks[winner] = 0
	state.LossStreaks[loser]++

	state.TeamEconomy[entities.SideA] = sumCredits(state, entities.SideA)
	state.TeamEconomy[entities.SideB] = sumCredits(state, entities.SideB)

	notes := []string{}
	nextRound := state.RoundNumber + 1
	if entities.IsPistolRound(nextRound) {
		for _, p := range state.TeamA {
			state.PlayerCredits[p.ID] = entities.PistolCredits
		}
		for _, p := range state.TeamB {
			state.PlayerCredits[p.ID] = entities.PistolCredits
		}
		state.TeamEconomy[entities.SideA] = entities.PistolCredits * len(state.TeamA)
		state.TeamEconomy[entities.SideB] = entities.PistolCredits * len(state.TeamB)
		notes = append(notes, fmt.Sprintf("pistol reset before round %d", nextRound))
	}

	log := entities.EconomyLog{
		RoundNumber: result.RoundNumber,
		TeamAStart:  startCredits[entities.SideA],
		TeamBStart:  startCredits[entities.SideB],
		TeamASpend:  spend[entities.SideA],
		TeamBSpend:  spend[entities.SideB],
		TeamAEnd:    state.TeamEconomy[entities.SideA],
		TeamBEnd:    state.TeamEconomy[entities.SideB],
		TeamAReward: reward[entities.SideA],
		TeamBReward: reward[entities.SideB],
		Winner:      winner,
		SpikePlanted: result.SpikePlanted,
		Notes:       notes,
	}

	return log
}

// winnerAttacked reports whether side was the attacking (planting) side
// in this round, used to gate the plant bonus per side.
func winnerAttacked(result entities.RoundResult, side entities.SideKey) bool {
	return result.AttackerSide == side
}

func sumCredits(state *entities.MatchState, side entities.SideKey) int {
	total := 0
	for _, p := range state.TeamForSide(side) {
		total += state.PlayerCredits[p.ID]
	}
	return total
}
