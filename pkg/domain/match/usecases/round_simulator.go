package usecases

import (
	"math"
	"math/rand"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/catalog"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/services"
)

// RoundSimulator orchestrates one round: buy phase, map placement,
// engagement loop, plant/defuse, and outcome determination (C8).
type RoundSimulator struct {
	weapons *catalog.WeaponCatalog
	maps    *catalog.MapCatalog
	buy     *services.BuyAdvisor
	duel    *services.DuelResolver
}

func NewRoundSimulator(weapons *catalog.WeaponCatalog, maps *catalog.MapCatalog, buy *services.BuyAdvisor, duel *services.DuelResolver) *RoundSimulator {
	return &RoundSimulator{weapons: weapons, maps: maps, buy: buy, duel: duel}
}

type engagementState struct {
	player entities.Player
	side   entities.SideKey
	alive  bool
	pos    r2.Point
}

// Simulate runs one round against state and returns its RoundResult and
// the per-side spend for the buy phase (used by the economy engine to
// fill in the EconomyLog's spend fields). It deducts each player's buy
// from MatchState.PlayerCredits but leaves rewards, team economy and
// loss streaks to the Economy Engine, which the caller applies after
// recording the result.
func (r *RoundSimulator) Simulate(state *entities.MatchState, buyRnd, duelRnd, engagementRnd *rand.Rand) (entities.RoundResult, map[entities.SideKey]int) {
	attackerSide := entities.AttackerSide(state.RoundNumber)
	defenderSide := attackerSide.Other()
	isPistol := entities.IsPistolRound(state.RoundNumber)

	strategy := r.chooseStrategy(state, attackerSide)
	defenderStrategy := r.chooseDefenderStrategy(state, defenderSide)
	strategyWinNudge := strategyModifier(strategy, defenderStrategy)

	weapons := map[entities.SideKey]map[string]string{entities.SideA: {}, entities.SideB: {}}
	armor := map[entities.SideKey]map[string]bool{entities.SideA: {}, entities.SideB: {}}
	loadouts := map[entities.SideKey]map[string]entities.Loadout{entities.SideA: {}, entities.SideB: {}}
	spend := map[entities.SideKey]int{}

	for _, side := range []entities.SideKey{entities.SideA, entities.SideB} {
		roundType := entities.RoundTypePistol
		if !isPistol {
			roundType = services.ClassifyRoundType(state.TeamEconomy[side], state.LossStreaks[side])
		}
		for _, p := range state.TeamForSide(side) {
			credits := state.PlayerCredits[p.ID]
			weapon, hasArmor, cost := r.buy.Decide(p, credits, roundType)
			state.PlayerCredits[p.ID] = credits - cost

			weapons[side][p.ID] = weapon
			armor[side][p.ID] = hasArmor
			loadouts[side][p.ID] = entities.Loadout{
				PlayerID:   p.ID,
				Weapon:     weapon,
				Armor:      hasArmor,
				TotalSpend: cost,
				Agent:      state.PlayerAgents[p.ID],
			}
			spend[side] += cost
		}
	}

	layout := r.maps.Lookup(state.MapName)

	engagers := make([]*engagementState, 0, 10)
	positions := make([]entities.PlayerPosition, 0, 10)

	for _, side := range []entities.SideKey{entities.SideA, entities.SideB} {
		spawn := layout.AttackerSpawn
		if side == defenderSide {
			spawn = layout.DefenderSpawn
		}
		for _, p := range state.TeamForSide(side) {
			pos := r2.Point{
				X: clampUnitF(spawn.Position.X + (engagementRnd.Float64()*0.1 - 0.05)),
				Y: clampUnitF(spawn.Position.Y + (engagementRnd.Float64()*0.1 - 0.05)),
			}
			e := &engagementState{player: p, side: side, alive: true, pos: pos}
			engagers = append(engagers, e)
			positions = append(positions, entities.PlayerPosition{
				PlayerID: p.ID,
				Position: pos,
				Rotation: engagementRnd.Float64() * 360,
				Alive:    true,
			})
		}
	}

	events := make([]entities.MapEvent, 0, 16)
	var simulatedTime float64
	spikePlanted := false
	var spikePlantPos *r2.Point
	var clutchPlayer *string
	clutchWon := false
	var clutchSide entities.SideKey

	aliveCount := func(side entities.SideKey) int {
		n := 0
		for _, e := range engagers {
			if e.side == side && e.alive {
				n++
			}
		}
		return n
	}

	for aliveCount(entities.SideA) > 0 && aliveCount(entities.SideB) > 0 && !spikePlanted {
		simulatedTime += 5 + engagementRnd.Float64()*10

		for _, e := range engagers {
			if !e.alive {
				continue
			}
			if e.side == attackerSide {
				target := layout.Callouts[pickCalloutKey(layout, engagementRnd)]
				moveToward(e, target.Position, 0.05+engagementRnd.Float64()*0.1)
			} else if engagementRnd.Float64() > 0.3 {
				target := layout.Callouts[pickCalloutKey(layout, engagementRnd)]
				moveToward(e, target.Position, (0.05+engagementRnd.Float64()*0.1)*0.5)
			}
		}

		if engagementRnd.Float64() < 0.7 {
			attackers := aliveOnSide(engagers, attackerSide)
			defenders := aliveOnSide(engagers, defenderSide)
			if len(attackers) > 0 && len(defenders) > 0 {
				a := attackers[engagementRnd.Intn(len(attackers))]
				d := defenders[engagementRnd.Intn(len(defenders))]

				rng := pickRange(engagementRnd)
				aWeapon := r.weapons.Lookup(weapons[a.side][a.player.ID])
				dWeapon := r.weapons.Lookup(weapons[d.side][d.player.ID])

				winNudge := abilityNudge(engagementRnd)
				attackerWins := r.duel.Resolve(a.player, d.player, aWeapon, dWeapon, rng, armor[a.side][a.player.ID], armor[d.side][d.player.ID], duelRnd)
				attackerWins = applyNudge(attackerWins, winNudge, duelRnd)
				attackerWins = applyNudge(attackerWins, strategyWinNudge, duelRnd)

				var victim *engagementState
				if attackerWins {
					victim = d
				} else {
					victim = a
				}
				victim.alive = false

				events = append(events, entities.MapEvent{
					Type:       entities.MapEventKill,
					Timestamp:  simulatedTime,
					Position:   victim.pos,
					AttackerID: pickAttackerID(attackerWins, a, d),
					VictimID:   victim.player.ID,
					Weapon:     weapons[victim.side][victim.player.ID],
				})

				winningSide := a.side
				if !attackerWins {
					winningSide = d.side
				}
				losingSide := winningSide.Other()
				if aliveCount(winningSide) == 1 && aliveCount(losingSide) >= 2 {
					for _, e := range engagers {
						if e.side == winningSide && e.alive {
							id := e.player.ID
							clutchPlayer = &id
							clutchSide = winningSide
							break
						}
					}
				}
			}
		}

		if !spikePlanted && aliveCount(attackerSide) > 0 && engagementRnd.Float64() < 0.3 {
			site := layout.Sites[engagementRnd.Intn(len(layout.Sites))]
			attackers := aliveOnSide(engagers, attackerSide)
			planter := attackers[engagementRnd.Intn(len(attackers))]

			callout := layout.Callouts[site]
			plantPos := r2.Point{
				X: clampUnitF(callout.Position.X + (engagementRnd.Float64()*0.06 - 0.03)),
				Y: clampUnitF(callout.Position.Y + (engagementRnd.Float64()*0.06 - 0.03)),
			}
			planter.pos = plantPos
			for _, other := range attackers {
				if other == planter {
					continue
				}
				other.pos = r2.Point{
					X: clampUnitF(plantPos.X + (engagementRnd.Float64()*0.2 - 0.1)),
					Y: clampUnitF(plantPos.Y + (engagementRnd.Float64()*0.2 - 0.1)),
				}
			}

			events = append(events, entities.MapEvent{
				Type:      entities.MapEventPlant,
				Timestamp: simulatedTime,
				Position:  plantPos,
				Site:      site,
				PlayerID:  planter.player.ID,
			})

			spikePlanted = true
			spikePlantPos = &plantPos
		}
	}

	var winner entities.SideKey
	switch {
	case aliveCount(defenderSide) == 0:
		winner = attackerSide
	case aliveCount(attackerSide) == 0:
		winner = defenderSide
	case spikePlanted:
		winner = attackerSide
	default:
		winner = defenderSide
	}

	if clutchPlayer != nil {
		clutchWon = clutchSide == winner
	}

	finalPositions := make([]entities.PlayerPosition, 0, len(engagers))
	for _, e := range engagers {
		finalPositions = append(finalPositions, entities.PlayerPosition{
			PlayerID: e.player.ID,
			Position: e.pos,
			Rotation: 0,
			Alive:    e.alive,
		})
	}

	survivors := map[entities.SideKey]int{
		entities.SideA: aliveCount(entities.SideA),
		entities.SideB: aliveCount(entities.SideB),
	}

	credits := make(map[string]int, len(state.PlayerCredits))
	for k, v := range state.PlayerCredits {
		credits[k] = v
	}

	result := entities.RoundResult{
		Winner:         winner,
		RoundNumber:    state.RoundNumber,
		SpikePlanted:   spikePlanted,
		Survivors:      survivors,
		Weapons:        weapons,
		Armor:          armor,
		PlayerLoadouts: loadouts,
		PlayerCredits:  credits,
		IsPistolRound:  isPistol,
		Economy:        map[entities.SideKey]int{entities.SideA: state.TeamEconomy[entities.SideA], entities.SideB: state.TeamEconomy[entities.SideB]},
		ClutchPlayer:   clutchPlayer,
		ClutchWon:      clutchWon,
		AttackerSide:     attackerSide,
		Strategy:         strategy,
		DefenderStrategy: defenderStrategy,
		MapData: entities.RoundMapData{
			MapName:            state.MapName,
			PlayerPositions:    finalPositions,
			Events:             events,
			SpikePlantPosition: spikePlantPos,
		},
	}

	return result, spend
}

func pickAttackerID(attackerWins bool, a, d *engagementState) string {
	if attackerWins {
		return a.player.ID
	}
	return d.player.ID
}

func clampUnitF(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func pickCalloutKey(layout *entities.MapLayout, rnd *rand.Rand) string {
	keys := make([]string, 0, len(layout.Callouts))
	for k := range layout.Callouts {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return keys[rnd.Intn(len(keys))]
}

func moveToward(e *engagementState, target r2.Point, magnitude float64) {
	dx := target.X - e.pos.X
	dy := target.Y - e.pos.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	e.pos = r2.Point{
		X: clampUnitF(e.pos.X + (dx/dist)*magnitude),
		Y: clampUnitF(e.pos.Y + (dy/dist)*magnitude),
	}
}

func aliveOnSide(engagers []*engagementState, side entities.SideKey) []*engagementState {
	out := make([]*engagementState, 0, 5)
	for _, e := range engagers {
		if e.side == side && e.alive {
			out = append(out, e)
		}
	}
	return out
}

func pickRange(rnd *rand.Rand) entities.EngagementRange {
	ranges := []entities.EngagementRange{entities.RangeClose, entities.RangeMedium, entities.RangeLong}
	return ranges[rnd.Intn(len(ranges))]
}

// abilityNudge draws the optional ±0.15 win-probability adjustment from
// the distribution {amazing:10%, good:20%, neutral:50%, bad:20%} per
// the ability-usage design note.
func abilityNudge(rnd *rand.Rand) float64 {
	roll := rnd.Float64()
	switch {
	case roll < 0.10:
		return 0.15
	case roll < 0.30:
		return 0.07
	case roll < 0.80:
		return 0.0
	default:
		return -0.15
	}
}

// applyNudge flips a coin-flip outcome toward the nudge direction with
// probability |nudge|, leaving attackerWins unchanged otherwise. This
// keeps the nudge a probabilistic influence, not a deterministic branch.
func applyNudge(attackerWins bool, nudge float64, rnd *rand.Rand) bool {
	if nudge == 0 {
		return attackerWins
	}
	if rnd.Float64() >= absFloat(nudge) {
		return attackerWins
	}
	return nudge > 0
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// chooseStrategy picks an economy-tiered base strategy for the
// attacking side, switched to split_push when the attackers lost the
// previous round, per the round-strategy-selection feature. The label feeds
// strategyModifier, which turns it into the win-probability modifier
// applied through applyNudge in the engagement loop — never a hard
// branch.
func (r *RoundSimulator) chooseStrategy(state *entities.MatchState, attackerSide entities.SideKey) string {
	economy := state.TeamEconomy[attackerSide]
	base := "default"
	switch {
	case economy >= 4000:
		base = "fast_execute"
	case economy >= 2000:
		base = "aggressive_push"
	default:
		base = "eco"
	}

	if state.PreviousRoundResult != nil && state.PreviousRoundResult.Winner != attackerSide {
		base = "split_push"
	}

	return base
}

// chooseDefenderStrategy picks the defending side's counterpart to
// chooseStrategy, tiered on the defenders' own economy.
func (r *RoundSimulator) chooseDefenderStrategy(state *entities.MatchState, defenderSide entities.SideKey) string {
	economy := state.TeamEconomy[defenderSide]
	switch {
	case economy >= 4000:
		return "passive_defense"
	case economy >= 2000:
		return "aggressive_defense"
	default:
		return "balanced_defense"
	}
}

// attackerStrategyModifiers and defenderStrategyModifiers give each
// strategy label its win-probability weight, per the modifier table
// referenced by round-strategy selection.
var attackerStrategyModifiers = map[string]float64{
	"fast_execute":    0.10,
	"aggressive_push": 0.07,
	"split_push":      0.05,
	"eco":             -0.05,
	"default":         0.0,
}

var defenderStrategyModifiers = map[string]float64{
	"passive_defense":    0.10,
	"aggressive_defense": 0.06,
	"balanced_defense":   0.05,
	"default":            0.0,
}

// strategyModifier nets the attacking and defending strategies'
// weights into a single nudge clamped to [-0.15, 0.15] (0 when the
// weights cancel), applied the same way abilityNudge is.
func strategyModifier(attackerStrategy, defenderStrategy string) float64 {
	net := attackerStrategyModifiers[attackerStrategy] - defenderStrategyModifiers[defenderStrategy]
	switch {
	case net > 0.15:
		net = 0.15
	case net < -0.15:
		net = -0.15
	}
	return net
}
