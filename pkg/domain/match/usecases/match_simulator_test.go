package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/catalog"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/services"
)

func newMatchSimulator() *MatchSimulator {
	weapons := catalog.NewWeaponCatalog()
	maps := catalog.NewMapCatalog()
	buy := services.NewBuyAdvisor(weapons)
	duel := services.NewDuelResolver()
	rounds := NewRoundSimulator(weapons, maps, buy, duel)
	agents := services.NewAgentSelector()
	economy := services.NewEconomyEngine()
	return NewMatchSimulator(rounds, agents, economy, maps)
}

func balancedTeam(prefix string, stat int) []entities.Player {
	team := make([]entities.Player, 0, 5)
	for i := 0; i < 5; i++ {
		team = append(team, entities.Player{
			ID:          prefix + string(rune('1'+i)),
			PrimaryRole: entities.AllRoles[i%len(entities.AllRoles)],
			CoreStats:   entities.CoreStats{Aim: stat, GameSense: stat, Movement: stat, UtilityUsage: stat, Communication: stat, Clutch: stat},
			RoleProficiencies: map[entities.RoleKey]int{
				entities.RoleDuelist: stat, entities.RoleController: stat, entities.RoleSentinel: stat, entities.RoleInitiator: stat,
			},
			AgentProficiencies: map[string]int{"Jett": stat, "Omen": stat, "Killjoy": stat, "Sova": stat},
			CareerStats:        entities.CareerStats{KDRatio: 1.0, ClutchRate: 0.2, FirstBloodRate: 0.2},
		})
	}
	return team
}

// TestSimulate_ScoreTermination is property 1: exactly one side reaches
// 13, the other stays in [0,12], and rounds.length is 13 plus the
// loser's score (no overtime modeled).
func TestSimulate_ScoreTermination(t *testing.T) {
	sim := newMatchSimulator()
	teamA := balancedTeam("a", 70)
	teamB := balancedTeam("b", 70)

	streams := services.NewStreams(12345)
	result, err := sim.Simulate(teamA, teamB, SimulateOptions{MapName: "ascent"}, streams, nil)
	require.NoError(t, err)

	aWon := result.Score[entities.SideA] == 13
	bWon := result.Score[entities.SideB] == 13
	assert.True(t, aWon != bWon, "exactly one side must reach 13")

	loserScore := result.Score[entities.SideA]
	if aWon {
		loserScore = result.Score[entities.SideB]
	}
	assert.GreaterOrEqual(t, loserScore, 0)
	assert.LessOrEqual(t, loserScore, 12)
	assert.Len(t, result.Rounds, 13+loserScore)
}

// TestSimulate_Determinism is property 7: two simulateMatch calls with
// identical inputs and identical seed produce byte-identical
// MatchResults.
func TestSimulate_Determinism(t *testing.T) {
	sim := newMatchSimulator()
	teamA := balancedTeam("a", 65)
	teamB := balancedTeam("b", 65)

	first, err := sim.Simulate(teamA, teamB, SimulateOptions{MapName: "bind"}, services.NewStreams(777), nil)
	require.NoError(t, err)

	second, err := sim.Simulate(teamA, teamB, SimulateOptions{MapName: "bind"}, services.NewStreams(777), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestSimulate_MVPLaw is property 8: the mvp id maximizes
// 0.4*kdRatio + 0.3*clutchRate + 0.3*firstBloodRate across all 10 players.
func TestSimulate_MVPLaw(t *testing.T) {
	sim := newMatchSimulator()
	teamA := balancedTeam("a", 60)
	teamB := balancedTeam("b", 60)
	teamA[0].CareerStats = entities.CareerStats{KDRatio: 5.0, ClutchRate: 1.0, FirstBloodRate: 1.0}

	result, err := sim.Simulate(teamA, teamB, SimulateOptions{MapName: "haven"}, services.NewStreams(9), nil)
	require.NoError(t, err)

	assert.Equal(t, teamA[0].ID, result.MVP)
}

// TestSimulate_Termination_E6 is the E6 scenario: a match with strongly
// unbalanced teams (all stats 95 vs all stats 40) terminates in <= 25
// rounds with the stronger team winning >= 13.
func TestSimulate_Termination_E6(t *testing.T) {
	sim := newMatchSimulator()
	strong := balancedTeam("s", 95)
	weak := balancedTeam("w", 40)

	result, err := sim.Simulate(strong, weak, SimulateOptions{MapName: "split"}, services.NewStreams(2024), nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.Rounds), 25)
	assert.GreaterOrEqual(t, result.Score[entities.SideA], 13)
}

type recordingObserver struct {
	rounds int
	ended  bool
}

func (o *recordingObserver) OnRoundEnd(state *entities.MatchState, result entities.RoundResult, log entities.EconomyLog) {
	o.rounds++
}

func (o *recordingObserver) OnMatchEnd(result entities.MatchResult) {
	o.ended = true
}

func TestSimulate_ObserverReceivesEveryRoundAndMatchEnd(t *testing.T) {
	sim := newMatchSimulator()
	teamA := balancedTeam("a", 70)
	teamB := balancedTeam("b", 70)

	obs := &recordingObserver{}
	result, err := sim.Simulate(teamA, teamB, SimulateOptions{MapName: "ascent"}, services.NewStreams(55), obs)
	require.NoError(t, err)

	assert.Equal(t, len(result.Rounds), obs.rounds)
	assert.True(t, obs.ended)
}
