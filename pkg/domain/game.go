package common

type GameIDKey string

const (
	VLRNT_GAME_ID GameIDKey = "vlrnt"
)

type EventIDKey string

type TickIDType float64

const (
	Event_MatchStartID           EventIDKey = "MatchStart"
	Event_RoundStartID           EventIDKey = "RoundStart"
	Event_RoundMVPAnnouncementID EventIDKey = "RoundMVPAnnouncement"
	Event_RoundEndID             EventIDKey = "RoundEndID"
	Event_FragOrScoreID          EventIDKey = "FragOrScoreID"
	Event_PlantID                EventIDKey = "SpikePlant"
	Event_DefuseID               EventIDKey = "SpikeDefuse"
	Event_AbilityUsedID          EventIDKey = "AbilityUsed"
	Event_ClutchStartID          EventIDKey = "ClutchStart"
	Event_ClutchProgressID       EventIDKey = "ClutchProgress"
	Event_ClutchEndID            EventIDKey = "ClutchEnd"
	Event_Economy                EventIDKey = "EconomyEvent"
	Event_MatchEndID             EventIDKey = "MatchEnd"
)

type Game struct {
	ID     GameIDKey    `json:"id"`             // ID is the unique identifier of the game.
	Name   string       `json:"name"`           // Name is the name of the game.
	Events []EventIDKey `json:"in_game_events"` // Events is the set of SUPPORTED/IMPLEMENTED in-game events.
}

func mapVlrntEvents() []EventIDKey {
	return []EventIDKey{
		Event_MatchStartID,
		Event_RoundStartID,
		Event_RoundMVPAnnouncementID,
		Event_RoundEndID,
		Event_FragOrScoreID,
		Event_PlantID,
		Event_DefuseID,
		Event_AbilityUsedID,
		Event_ClutchStartID,
		Event_ClutchProgressID,
		Event_ClutchEndID,
		Event_Economy,
		Event_MatchEndID,
	}
}

var VLRNT = &Game{
	ID:     VLRNT_GAME_ID,
	Name:   "Valorant",
	Events: mapVlrntEvents(),
}
