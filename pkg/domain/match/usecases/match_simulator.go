package usecases

import (
	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/catalog"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/services"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/infra/metrics"
)

// MatchObserver receives round/match lifecycle notifications as the
// Match Simulator produces them, in round order. It is the seam the
// Event Bus (C12) attaches to; the simulator calls it synchronously and
// hands OnRoundEnd the live *MatchState, not a copy.
type MatchObserver interface {
	OnRoundEnd(state *entities.MatchState, result entities.RoundResult, log entities.EconomyLog)
	OnMatchEnd(result entities.MatchResult)
}

// MatchSimulator is the outer loop (C9): half switches, score tracking,
// termination, MVP selection, and the economy-log stream.
type MatchSimulator struct {
	rounds  *RoundSimulator
	agents  *services.AgentSelector
	economy *services.EconomyEngine
	maps    *catalog.MapCatalog
}

func NewMatchSimulator(rounds *RoundSimulator, agents *services.AgentSelector, economy *services.EconomyEngine, maps *catalog.MapCatalog) *MatchSimulator {
	return &MatchSimulator{rounds: rounds, agents: agents, economy: economy, maps: maps}
}

// SimulateOptions are the per-call configuration accepted by Simulate.
type SimulateOptions struct {
	MapName             string
	AgentOverridesTeamA map[string]string
	AgentOverridesTeamB map[string]string
}

// Simulate runs an entire match to completion (first to 13) and
// returns the full wire-shaped MatchResult. streams supplies the four
// independent RNG sources derived from one master seed (C13); observer
// may be nil.
func (m *MatchSimulator) Simulate(teamA, teamB []entities.Player, opts SimulateOptions, streams services.Streams, observer MatchObserver) (entities.MatchResult, error) {
	mapName := opts.MapName
	if mapName == "" {
		mapName = "ascent"
	}

	notes := []string{"Match start"}
	if !m.maps.Has(mapName) {
		metrics.RecordMapFallback(mapName)
		notes = append(notes, "unknown map \""+mapName+"\": using synthetic fallback layout")
	}

	state := entities.NewMatchState(teamA, teamB, mapName)

	for pid, agent := range m.agents.AssignTeam(teamA, opts.AgentOverridesTeamA) {
		state.PlayerAgents[pid] = agent
	}
	for pid, agent := range m.agents.AssignTeam(teamB, opts.AgentOverridesTeamB) {
		state.PlayerAgents[pid] = agent
	}

	startLog := entities.EconomyLog{
		RoundNumber: -1,
		TeamAStart:  state.TeamEconomy[entities.SideA],
		TeamBStart:  state.TeamEconomy[entities.SideB],
		TeamAEnd:    state.TeamEconomy[entities.SideA],
		TeamBEnd:    state.TeamEconomy[entities.SideB],
		Notes:       notes,
	}
	state.EconomyLog = append(state.EconomyLog, startLog)

	var rounds []entities.RoundResult

	for !state.IsTerminal() {
		startCredits := map[entities.SideKey]int{
			entities.SideA: state.TeamEconomy[entities.SideA],
			entities.SideB: state.TeamEconomy[entities.SideB],
		}

		result, spend := m.rounds.Simulate(state, streams.Buy, streams.Duel, streams.Engagement)

		if result.Winner == entities.SideA {
			state.Score[entities.SideA]++
		} else {
			state.Score[entities.SideB]++
		}

		log := m.economy.ApplyRoundResult(state, result, startCredits, spend)

		if err := checkInvariants(state, result); err != nil {
			return entities.MatchResult{}, err
		}

		state.EconomyLog = append(state.EconomyLog, log)
		rounds = append(rounds, result)

		if observer != nil {
			safeObserve(func() { observer.OnRoundEnd(state, result, log) })
		}

		prev := result
		state.PreviousRoundResult = &prev
		state.RoundNumber++
	}

	mvp := computeMVP(teamA, teamB)

	matchResult := entities.MatchResult{
		Score:           state.Score,
		Rounds:          rounds,
		DurationMinutes: float64(len(rounds)) * 1.9,
		Map:             mapName,
		MVP:             mvp,
		EconomyLogs:     state.EconomyLog,
		PlayerAgents:    state.PlayerAgents,
	}

	if observer != nil {
		safeObserve(func() { observer.OnMatchEnd(matchResult) })
	}

	return matchResult, nil
}

// safeObserve recovers a panicking observer so additive instrumentation
// never propagates a failure back into the simulation (§4.12).
func safeObserve(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func computeMVP(teamA, teamB []entities.Player) string {
	best := ""
	bestScore := -1.0
	for _, p := range append(append([]entities.Player{}, teamA...), teamB...) {
		score := p.CareerStats.MVPScore()
		if score > bestScore {
			best = p.ID
			bestScore = score
		}
	}
	return best
}

// checkInvariants re-checks the post-round invariants from §3/§8:
// credit bounds and loss-streak consistency. A violation is a
// programming bug, never a legitimate outcome of random draws. Going
// into a pistol round the floor is PistolCredits, since the economy
// engine has just reset every player to it.
func checkInvariants(state *entities.MatchState, result entities.RoundResult) error {
	minCredits := entities.MinMoney
	if entities.IsPistolRound(state.RoundNumber + 1) {
		minCredits = entities.PistolCredits
	}
	for pid, credits := range state.PlayerCredits {
		if credits < minCredits || credits > entities.MaxMoney {
			return common.NewErrInvariantViolation(state.RoundNumber, "player_credits["+pid+"]", "out of bounds")
		}
	}

	winner := result.Winner
	if state.LossStreaks[winner] != 0 {
		return common.NewErrInvariantViolation(state.RoundNumber, "loss_streaks["+string(winner)+"]", "winner loss streak not reset")
	}

	return nil
}
