package services

import (
	"sort"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

const defaultAgent = "Jett"

// AgentSelector assigns one agent per player per team, covering every
// role class at least once where player preferences allow it. It is
// stateless; the only variability comes from the team rosters given.
type AgentSelector struct{}

func NewAgentSelector() *AgentSelector {
	return &AgentSelector{}
}

// AssignTeam returns a playerID→agent mapping for one team, honoring
// overrides first (pre-seeded playerId→agent pairs), then filling role
// gaps, then filling the rest by best-overall proficiency.
func (s *AgentSelector) AssignTeam(team []entities.Player, overrides map[string]string) map[string]string {
	assigned := make(map[string]string, len(team))
	usedAgents := make(map[string]bool, len(team))

	for _, p := range team {
		if agent, ok := overrides[p.ID]; ok && agent != "" {
			assigned[p.ID] = agent
			usedAgents[agent] = true
		}
	}

	sorted := make([]entities.Player, 0, len(team))
	for _, p := range team {
		if _, ok := assigned[p.ID]; ok {
			continue
		}
		sorted = append(sorted, p)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RoleProficiencies[sorted[i].PrimaryRole] > sorted[j].RoleProficiencies[sorted[j].PrimaryRole]
	})

	rolesFilled := make(map[entities.RoleKey]bool, len(entities.AllRoles))
	for _, p := range team {
		if agent, ok := assigned[p.ID]; ok {
			if role := entities.AgentRole(agent); role != "" {
				rolesFilled[role] = true
			}
		}
	}

	remaining := make([]entities.Player, 0, len(sorted))
	for _, p := range sorted {
		if rolesFilled[p.PrimaryRole] {
			remaining = append(remaining, p)
			continue
		}
		if agent := s.bestAvailableInRole(p, p.PrimaryRole, usedAgents); agent != "" {
			assigned[p.ID] = agent
			usedAgents[agent] = true
			rolesFilled[p.PrimaryRole] = true
			continue
		}
		remaining = append(remaining, p)
	}

	for _, p := range remaining {
		agent := s.bestAvailableOverall(p, usedAgents)
		assigned[p.ID] = agent
		usedAgents[agent] = true
	}

	return assigned
}

// bestAvailableInRole returns the highest-proficiency agent in role not
// already taken on this team, or "" if every agent in the role is taken.
func (s *AgentSelector) bestAvailableInRole(p entities.Player, role entities.RoleKey, used map[string]bool) string {
	best := ""
	bestScore := -1
	for _, agent := range entities.RoleAgents[role] {
		if used[agent] {
			continue
		}
		if score, ok := p.AgentProficiencies[agent]; ok && score > bestScore {
			best = agent
			bestScore = score
		}
	}
	return best
}

// bestAvailableOverall returns the highest-proficiency agent across the
// full agent set not already taken on this team, falling back to the
// first untaken agent in catalog order, and finally to the default
// agent if the whole roster is somehow exhausted.
func (s *AgentSelector) bestAvailableOverall(p entities.Player, used map[string]bool) string {
	if len(p.AgentProficiencies) == 0 && !used[defaultAgent] {
		return defaultAgent
	}

	candidates := make([]string, 0, len(p.AgentProficiencies))
	for agent := range p.AgentProficiencies {
		if !used[agent] {
			candidates = append(candidates, agent)
		}
	}
	sort.Strings(candidates)

	best := ""
	bestScore := -1
	for _, agent := range candidates {
		if score := p.AgentProficiencies[agent]; score > bestScore {
			best = agent
			bestScore = score
		}
	}
	if best != "" {
		return best
	}

	for _, role := range entities.AllRoles {
		for _, agent := range entities.RoleAgents[role] {
			if !used[agent] {
				return agent
			}
		}
	}

	return defaultAgent
}
