package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

func fiveBareTeam(prefix string) []entities.Player {
	team := make([]entities.Player, 0, 5)
	for i := 0; i < 5; i++ {
		team = append(team, entities.Player{ID: prefix + string(rune('1'+i))})
	}
	return team
}

func freshState() *entities.MatchState {
	return entities.NewMatchState(fiveBareTeam("a"), fiveBareTeam("b"), "ascent")
}

func baseRoundResult(round int, winner, attacker entities.SideKey, spikePlanted bool) entities.RoundResult {
	return entities.RoundResult{
		Winner:       winner,
		RoundNumber:  round,
		AttackerSide: attacker,
		SpikePlanted: spikePlanted,
	}
}

// TestApplyRoundResult_LossStreakLaw is property 3: for adjacent
// economy logs, the winner's loss streak resets to 0 and the loser's
// increments by one.
func TestApplyRoundResult_LossStreakLaw(t *testing.T) {
	e := NewEconomyEngine()
	state := freshState()
	state.LossStreaks[entities.SideA] = 2

	start := map[entities.SideKey]int{entities.SideA: state.TeamEconomy[entities.SideA], entities.SideB: state.TeamEconomy[entities.SideB]}
	spend := map[entities.SideKey]int{entities.SideA: 0, entities.SideB: 0}

	result := baseRoundResult(1, entities.SideA, entities.SideA, false)
	e.ApplyRoundResult(state, result, start, spend)

	assert.Equal(t, 0, state.LossStreaks[entities.SideA])
	assert.Equal(t, 1, state.LossStreaks[entities.SideB])
}

// TestApplyRoundResult_EconomyInvariant is property 2: every player's
// credits stay within [MinMoney, MaxMoney] after a round is applied.
func TestApplyRoundResult_EconomyInvariant(t *testing.T) {
	e := NewEconomyEngine()
	state := freshState()
	for pid := range state.PlayerCredits {
		state.PlayerCredits[pid] = entities.MaxMoney
	}

	start := map[entities.SideKey]int{entities.SideA: state.TeamEconomy[entities.SideA], entities.SideB: state.TeamEconomy[entities.SideB]}
	spend := map[entities.SideKey]int{entities.SideA: 0, entities.SideB: 0}
	result := baseRoundResult(1, entities.SideA, entities.SideA, false)
	e.ApplyRoundResult(state, result, start, spend)

	for _, credits := range state.PlayerCredits {
		assert.GreaterOrEqual(t, credits, entities.MinMoney)
		assert.LessOrEqual(t, credits, entities.MaxMoney)
	}
}

// TestApplyRoundResult_PistolReset is property 4: when the next round
// is a pistol round (here round 12, after round 11), every player's
// credits reset to 800 for its buy phase.
func TestApplyRoundResult_PistolReset(t *testing.T) {
	e := NewEconomyEngine()
	state := freshState()
	state.RoundNumber = 11

	start := map[entities.SideKey]int{entities.SideA: state.TeamEconomy[entities.SideA], entities.SideB: state.TeamEconomy[entities.SideB]}
	spend := map[entities.SideKey]int{entities.SideA: 0, entities.SideB: 0}
	result := baseRoundResult(11, entities.SideA, entities.SideA, false)
	e.ApplyRoundResult(state, result, start, spend)

	for _, credits := range state.PlayerCredits {
		assert.Equal(t, entities.PistolCredits, credits)
	}
}

// TestApplyRoundResult_LossBonusProgression_E2 is the E2 scenario: team
// B loses 5 straight rounds; their credit deltas per round (before
// spend) are 1900, 2400, 2900, 3400, 3900.
func TestApplyRoundResult_LossBonusProgression_E2(t *testing.T) {
	e := NewEconomyEngine()
	state := freshState()

	expected := []int{1900, 2400, 2900, 3400, 3900}
	for i, want := range expected {
		before := map[string]int{}
		for _, p := range state.TeamB {
			// Start each round at the floor, standing in for the buy
			// spend, so the MaxMoney cap never hides the bonus.
			state.PlayerCredits[p.ID] = entities.MinMoney
			before[p.ID] = state.PlayerCredits[p.ID]
		}

		start := map[entities.SideKey]int{entities.SideA: state.TeamEconomy[entities.SideA], entities.SideB: state.TeamEconomy[entities.SideB]}
		spend := map[entities.SideKey]int{entities.SideA: 0, entities.SideB: 0}
		result := baseRoundResult(i, entities.SideA, entities.SideA, false)
		e.ApplyRoundResult(state, result, start, spend)

		for _, p := range state.TeamB {
			got := state.PlayerCredits[p.ID] - before[p.ID]
			assert.Equal(t, want, got, "round %d loser delta", i)
		}
		state.RoundNumber++
	}
}

// TestApplyRoundResult_PlantBonus_E3 is the E3 scenario: on an
// attacker win via plant, the attacker team's per-player reward is
// WIN_REWARD+PLANT_BONUS=3300 (pre-clamp).
func TestApplyRoundResult_PlantBonus_E3(t *testing.T) {
	e := NewEconomyEngine()
	state := freshState()

	before := map[string]int{}
	for _, p := range state.TeamA {
		before[p.ID] = state.PlayerCredits[p.ID]
	}

	start := map[entities.SideKey]int{entities.SideA: state.TeamEconomy[entities.SideA], entities.SideB: state.TeamEconomy[entities.SideB]}
	spend := map[entities.SideKey]int{entities.SideA: 0, entities.SideB: 0}
	result := baseRoundResult(1, entities.SideA, entities.SideA, true)
	e.ApplyRoundResult(state, result, start, spend)

	for _, p := range state.TeamA {
		got := state.PlayerCredits[p.ID] - before[p.ID]
		assert.Equal(t, entities.WinReward+entities.PlantBonus, got)
	}
}

func TestApplyRoundResult_ProducesNotesOnPistolReset(t *testing.T) {
	e := NewEconomyEngine()
	state := freshState()
	state.RoundNumber = 11

	start := map[entities.SideKey]int{entities.SideA: state.TeamEconomy[entities.SideA], entities.SideB: state.TeamEconomy[entities.SideB]}
	spend := map[entities.SideKey]int{entities.SideA: 0, entities.SideB: 0}
	result := baseRoundResult(11, entities.SideB, entities.SideB, false)
	log := e.ApplyRoundResult(state, result, start, spend)

	require.Len(t, log.Notes, 1)
	assert.Contains(t, log.Notes[0], "pistol reset")
}
