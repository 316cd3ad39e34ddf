// Package match_in defines the inbound command surface for the match
// domain: simulateMatch and its wire-level request/response shapes.
package match_in

import (
	"context"
	"fmt"
	"strings"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// SimulateMatchCommand is the wire-level request for POST /matches/simulate.
type SimulateMatchCommand struct {
	TeamA          []entities.Player
	TeamB          []entities.Player
	MapName        string
	Seed           *uint64
	AgentOverrides map[string]string
}

// Validate rejects malformed team inputs before any simulation work,
// aggregating every offending field per §7's ValidationError policy.
func (c SimulateMatchCommand) Validate() error {
	var problems []string

	if len(c.TeamA) != 5 {
		problems = append(problems, fmt.Sprintf("teamA must have exactly 5 players, got %d", len(c.TeamA)))
	}
	if len(c.TeamB) != 5 {
		problems = append(problems, fmt.Sprintf("teamB must have exactly 5 players, got %d", len(c.TeamB)))
	}
	for i, p := range c.TeamA {
		if p.ID == "" {
			problems = append(problems, fmt.Sprintf("teamA[%d] missing id", i))
		}
	}
	for i, p := range c.TeamB {
		if p.ID == "" {
			problems = append(problems, fmt.Sprintf("teamB[%d] missing id", i))
		}
	}

	if len(problems) > 0 {
		return common.NewErrInvalidInput(strings.Join(problems, "; "))
	}
	return nil
}

// SimulateMatchCommandHandler runs one full match to completion.
type SimulateMatchCommandHandler interface {
	Exec(ctx context.Context, cmd SimulateMatchCommand) (*entities.PersistedMatch, error)
}
