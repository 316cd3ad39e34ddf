package entities

// RoundResult is the wire-shaped outcome of a single round.
type RoundResult struct {
	Winner       SideKey `json:"winner" bson:"winner"`
	RoundNumber  int     `json:"round_number" bson:"round_number"`
	SpikePlanted bool    `json:"spike_planted" bson:"spike_planted"`

	Survivors map[SideKey]int `json:"survivors" bson:"survivors"`

	Weapons map[SideKey]map[string]string `json:"weapons" bson:"weapons"`
	Armor   map[SideKey]map[string]bool   `json:"armor" bson:"armor"`

	PlayerLoadouts map[SideKey]map[string]Loadout `json:"player_loadouts" bson:"player_loadouts"`
	PlayerCredits  map[string]int                 `json:"player_credits" bson:"player_credits"`

	IsPistolRound bool            `json:"is_pistol_round" bson:"is_pistol_round"`
	Economy       map[SideKey]int `json:"economy" bson:"economy"`

	ClutchPlayer *string `json:"clutch_player" bson:"clutch_player"`
	ClutchWon    bool    `json:"clutch_won" bson:"clutch_won"`

	AttackerSide     SideKey `json:"attacker_side" bson:"attacker_side"`
	Strategy         string  `json:"strategy" bson:"strategy"`
	DefenderStrategy string  `json:"defender_strategy" bson:"defender_strategy"`

	MapData RoundMapData `json:"map_data" bson:"map_data"`
}

// EconomyLog is one append-only record of a round's credit flow.
type EconomyLog struct {
	RoundNumber int `json:"round_number" bson:"round_number"`

	TeamAStart int `json:"team_a_start" bson:"team_a_start"`
	TeamBStart int `json:"team_b_start" bson:"team_b_start"`
	TeamASpend int `json:"team_a_spend" bson:"team_a_spend"`
	TeamBSpend int `json:"team_b_spend" bson:"team_b_spend"`
	TeamAEnd   int `json:"team_a_end" bson:"team_a_end"`
	TeamBEnd   int `json:"team_b_end" bson:"team_b_end"`
	TeamAReward int `json:"team_a_reward" bson:"team_a_reward"`
	TeamBReward int `json:"team_b_reward" bson:"team_b_reward"`

	Winner       SideKey  `json:"winner" bson:"winner"`
	SpikePlanted bool     `json:"spike_planted" bson:"spike_planted"`
	Notes        []string `json:"-" bson:"-"`
}

// NotesText joins Notes into the free-text field the wire format
// expects, keeping the accumulation itself as an explicit sequence
// until this final render (spec design note on dynamic-dict fields).
func (e EconomyLog) NotesText() string {
	out := ""
	for i, n := range e.Notes {
		if i > 0 {
			out += "; "
		}
		out += n
	}
	return out
}

// EconomyLogWire is EconomyLog with Notes rendered through NotesText,
// for wire serialization where a single "notes" string field is required.
type EconomyLogWire struct {
	RoundNumber  int     `json:"round_number"`
	TeamAStart   int     `json:"team_a_start"`
	TeamBStart   int     `json:"team_b_start"`
	TeamASpend   int     `json:"team_a_spend"`
	TeamBSpend   int     `json:"team_b_spend"`
	TeamAEnd     int     `json:"team_a_end"`
	TeamBEnd     int     `json:"team_b_end"`
	TeamAReward  int     `json:"team_a_reward"`
	TeamBReward  int     `json:"team_b_reward"`
	Winner       SideKey `json:"winner"`
	SpikePlanted bool    `json:"spike_planted"`
	Notes        string  `json:"notes"`
}

func (e EconomyLog) ToWire() EconomyLogWire {
	return EconomyLogWire{
		RoundNumber:  e.RoundNumber,
		TeamAStart:   e.TeamAStart,
		TeamBStart:   e.TeamBStart,
		TeamASpend:   e.TeamASpend,
		TeamBSpend:   e.TeamBSpend,
		TeamAEnd:     e.TeamAEnd,
		TeamBEnd:     e.TeamBEnd,
		TeamAReward:  e.TeamAReward,
		TeamBReward:  e.TeamBReward,
		Winner:       e.Winner,
		SpikePlanted: e.SpikePlanted,
		Notes:        e.NotesText(),
	}
}

// MatchResult is the full wire-shaped result of one simulateMatch call.
type MatchResult struct {
	Score map[SideKey]int `json:"score" bson:"score"`

	Rounds []RoundResult `json:"rounds" bson:"rounds"`

	DurationMinutes float64 `json:"duration" bson:"duration"`
	Map             string  `json:"map" bson:"map"`
	MVP             string  `json:"mvp" bson:"mvp"`

	EconomyLogs []EconomyLog `json:"economy_logs" bson:"economy_logs"`

	PlayerAgents map[string]string `json:"player_agents" bson:"player_agents"`
}
