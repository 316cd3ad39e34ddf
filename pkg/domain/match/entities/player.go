package entities

// RoleKey is one of the four agent role classes a player may be assigned.
type RoleKey string

const (
	RoleDuelist    RoleKey = "Duelist"
	RoleController RoleKey = "Controller"
	RoleSentinel   RoleKey = "Sentinel"
	RoleInitiator  RoleKey = "Initiator"
)

var AllRoles = []RoleKey{RoleDuelist, RoleController, RoleSentinel, RoleInitiator}

// RoleAgents is the closed mapping of the agents eligible for each role class.
var RoleAgents = map[RoleKey][]string{
	RoleDuelist:    {"Jett", "Phoenix", "Raze", "Reyna", "Yoru", "Neon"},
	RoleController: {"Omen", "Brimstone", "Viper", "Astra", "Harbor"},
	RoleSentinel:   {"Killjoy", "Cypher", "Sage", "Chamber", "Deadlock"},
	RoleInitiator:  {"Sova", "Breach", "Skye", "KAY/O", "Fade", "Gekko"},
}

// AgentRole returns the role class an agent belongs to, or "" if unknown.
func AgentRole(agent string) RoleKey {
	for role, agents := range RoleAgents {
		for _, a := range agents {
			if a == agent {
				return role
			}
		}
	}
	return ""
}

// CoreStats are the six skill dimensions, each in [0,100].
type CoreStats struct {
	Aim          int `json:"aim" bson:"aim"`
	GameSense    int `json:"game_sense" bson:"game_sense"`
	Movement     int `json:"movement" bson:"movement"`
	UtilityUsage int `json:"utility_usage" bson:"utility_usage"`
	Communication int `json:"communication" bson:"communication"`
	Clutch       int `json:"clutch" bson:"clutch"`
}

func (c CoreStats) Mean() float64 {
	return float64(c.Aim+c.GameSense+c.Movement+c.UtilityUsage+c.Communication+c.Clutch) / 6.0
}

// CareerStats feed the MVP heuristic and buy-preference texture.
type CareerStats struct {
	MatchesPlayed   int     `json:"matches_played" bson:"matches_played"`
	Kills           int     `json:"kills" bson:"kills"`
	Deaths          int     `json:"deaths" bson:"deaths"`
	Assists         int     `json:"assists" bson:"assists"`
	KDRatio         float64 `json:"kd_ratio" bson:"kd_ratio"`
	ClutchRate      float64 `json:"clutch_rate" bson:"clutch_rate"`
	FirstBloodRate  float64 `json:"first_blood_rate" bson:"first_blood_rate"`
}

// MVPScore is the weighted heuristic maximized to pick a match's MVP.
func (c CareerStats) MVPScore() float64 {
	return 0.4*c.KDRatio + 0.3*c.ClutchRate + 0.3*c.FirstBloodRate
}

// Player is the engine's input value object. It is immutable for the
// duration of a match; the engine never mutates a Player record, only
// the per-match credits/agent assignments tracked on MatchState.
type Player struct {
	ID          string `json:"id" bson:"id"`
	DisplayName string `json:"display_name" bson:"display_name"`
	Nationality string `json:"nationality" bson:"nationality"`
	Region      string `json:"region" bson:"region"`
	Age         int    `json:"age" bson:"age"`

	PrimaryRole RoleKey `json:"primary_role" bson:"primary_role"`

	CoreStats CoreStats `json:"core_stats" bson:"core_stats"`

	RoleProficiencies  map[RoleKey]int `json:"role_proficiencies" bson:"role_proficiencies"`
	AgentProficiencies map[string]int  `json:"agent_proficiencies" bson:"agent_proficiencies"`

	CareerStats CareerStats `json:"career_stats" bson:"career_stats"`

	Salary float64 `json:"salary" bson:"salary"`
}

// BestAgentInRole returns the agent with the highest recorded
// proficiency among the agents belonging to role, or "" if none.
func (p Player) BestAgentInRole(role RoleKey) string {
	best := ""
	bestScore := -1
	for _, agent := range RoleAgents[role] {
		if score, ok := p.AgentProficiencies[agent]; ok && score > bestScore {
			best = agent
			bestScore = score
		}
	}
	return best
}

// BestAgentOverall returns the agent with the highest recorded
// proficiency across the full known agent set, or "" if none recorded.
func (p Player) BestAgentOverall() string {
	best := ""
	bestScore := -1
	for agent, score := range p.AgentProficiencies {
		if score > bestScore {
			best = agent
			bestScore = score
		}
	}
	return best
}
