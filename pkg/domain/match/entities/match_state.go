package entities

// RoundTypeKey is the buy-phase classification of a round.
type RoundTypeKey string

const (
	RoundTypePistol  RoundTypeKey = "pistol"
	RoundTypeEco     RoundTypeKey = "eco"
	RoundTypeForce   RoundTypeKey = "force_buy"
	RoundTypeHalf    RoundTypeKey = "half_buy"
	RoundTypeFull    RoundTypeKey = "full_buy"
	RoundTypeSemi    RoundTypeKey = "semi_buy"
)

// SideKey is which team is attacking/defending in a given round.
type SideKey string

const (
	SideA SideKey = "team_a"
	SideB SideKey = "team_b"
)

func (s SideKey) Other() SideKey {
	if s == SideA {
		return SideB
	}
	return SideA
}

const (
	MinMoney   = 2000
	MaxMoney   = 9000
	WinReward  = 3000
	PlantBonus = 300
	PistolCredits = 800
)

// LossBonusTable is indexed by min(lossStreak, 4).
var LossBonusTable = [5]int{1900, 2400, 2900, 3400, 3900}

// Loadout is the weapon/armor decision recorded for one player in one round.
type Loadout struct {
	PlayerID   string  `json:"player_id" bson:"player_id"`
	Weapon     string  `json:"weapon" bson:"weapon"`
	Armor      bool    `json:"armor" bson:"armor"`
	TotalSpend int     `json:"total_spend" bson:"total_spend"`
	Agent      string  `json:"agent" bson:"agent"`
}

// MatchState is mutable, owned exclusively by one Match Simulator
// invocation, and destroyed when simulateMatch returns.
type MatchState struct {
	TeamA []Player
	TeamB []Player

	MapName string

	RoundNumber int
	Score       map[SideKey]int

	TeamEconomy map[SideKey]int

	PlayerCredits map[string]int
	LossStreaks   map[SideKey]int

	PlayerAgents map[string]string

	EconomyLog []EconomyLog

	PreviousRoundResult *RoundResult
}

// NewMatchState seeds initial per-player credits (800), team economy
// (4000), zero score, and zero loss streaks, per Match Simulator step 1.
func NewMatchState(teamA, teamB []Player, mapName string) *MatchState {
	credits := make(map[string]int, len(teamA)+len(teamB))
	for _, p := range teamA {
		credits[p.ID] = PistolCredits
	}
	for _, p := range teamB {
		credits[p.ID] = PistolCredits
	}

	return &MatchState{
		TeamA:       teamA,
		TeamB:       teamB,
		MapName:     mapName,
		RoundNumber: 0,
		Score:       map[SideKey]int{SideA: 0, SideB: 0},
		TeamEconomy: map[SideKey]int{SideA: 4000, SideB: 4000},
		PlayerCredits: credits,
		LossStreaks:   map[SideKey]int{SideA: 0, SideB: 0},
		PlayerAgents:  make(map[string]string, len(teamA)+len(teamB)),
		EconomyLog:    make([]EconomyLog, 0, 24),
	}
}

func (m *MatchState) TeamForSide(side SideKey) []Player {
	if side == SideA {
		return m.TeamA
	}
	return m.TeamB
}

// AttackerSide returns the attacking side for the given round number:
// SideA for rounds 0-11 and SideB from round 12 on. Overtime is not
// modeled (spec Design Notes), so a 12-12 match is decided by round 24,
// which SideB also attacks.
func AttackerSide(roundNumber int) SideKey {
	if roundNumber < 12 {
		return SideA
	}
	return SideB
}

// IsPistolRound reports whether roundNumber is a half-opening round.
func IsPistolRound(roundNumber int) bool {
	return roundNumber == 0 || roundNumber == 12
}

func (m *MatchState) IsTerminal() bool {
	return m.Score[SideA] >= 13 || m.Score[SideB] >= 13
}
