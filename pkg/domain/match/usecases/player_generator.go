// Package usecases orchestrates the match domain's services and
// entities into the library-level operations exposed to callers:
// generatePlayer, generateRoster, and simulateMatch.
package usecases

import (
	"fmt"
	"math/rand"
	"strings"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// GeneratorOptions constrains one generatePlayer call.
type GeneratorOptions struct {
	Region    string
	Role      string
	MinRating int
	MaxRating int
	MaxAge    int
}

var validRegions = map[string]bool{
	"NA": true, "EU": true, "APAC": true, "BR": true, "LATAM": true,
}

// Validate checks the options themselves, independent of any generated
// output, aggregating every offending field into one error.
func (o GeneratorOptions) Validate() error {
	var problems []string

	if o.Region != "" && !validRegions[o.Region] {
		problems = append(problems, fmt.Sprintf("region %q is not one of NA/EU/APAC/BR/LATAM", o.Region))
	}
	if o.Role != "" {
		valid := false
		for _, r := range entities.AllRoles {
			if string(r) == o.Role {
				valid = true
				break
			}
		}
		if !valid {
			problems = append(problems, fmt.Sprintf("role %q is not a known role", o.Role))
		}
	}
	if o.MinRating > o.MaxRating {
		problems = append(problems, fmt.Sprintf("minRating %d exceeds maxRating %d", o.MinRating, o.MaxRating))
	}

	if len(problems) > 0 {
		return common.NewErrInvalidInput(strings.Join(problems, "; "))
	}
	return nil
}

// PlayerGenerator builds Player records under the constraints in
// GeneratorOptions, drawing all randomness from the stream it is given.
type PlayerGenerator struct{}

func NewPlayerGenerator() *PlayerGenerator {
	return &PlayerGenerator{}
}

var firstNames = []string{"Alex", "Sam", "Jordan", "Casey", "Riley", "Morgan", "Taylor", "Drew", "Quinn", "Reese"}
var lastNames = []string{"Kim", "Silva", "Nguyen", "Petrov", "Garcia", "Muller", "Tanaka", "Brooks", "Haddad", "Costa"}

func (g *PlayerGenerator) Generate(opts GeneratorOptions, rnd *rand.Rand) (entities.Player, error) {
	if err := opts.Validate(); err != nil {
		return entities.Player{}, err
	}

	region := opts.Region
	if region == "" {
		region = pickRegion(rnd)
	}

	role := entities.RoleKey(opts.Role)
	if role == "" {
		role = entities.AllRoles[rnd.Intn(len(entities.AllRoles))]
	}

	minRating, maxRating := opts.MinRating, opts.MaxRating
	if maxRating == 0 {
		minRating, maxRating = 40, 90
	}

	maxAge := opts.MaxAge
	if maxAge == 0 {
		maxAge = 30
	}
	age := 16 + rnd.Intn(maxAge-16+1)

	core := rollCoreStats(rnd, minRating, maxRating, role)
	roleProf := rollRoleProficiencies(rnd, role)
	agentProf := rollAgentProficiencies(rnd, role)
	career := rollCareerStats(rnd)

	ageFactor := 1.0
	switch {
	case age >= 23 && age <= 27:
		ageFactor = 1.2
	case age < 20:
		ageFactor = 0.8
	case age > 30:
		ageFactor = 0.7
	}
	salary := 50000.0 * (core.Mean() / 100.0) * ageFactor

	player := entities.Player{
		ID:                 randomID(rnd),
		DisplayName:        fmt.Sprintf("%s %s", firstNames[rnd.Intn(len(firstNames))], lastNames[rnd.Intn(len(lastNames))]),
		Nationality:        region,
		Region:             region,
		Age:                age,
		PrimaryRole:        role,
		CoreStats:          core,
		RoleProficiencies:  roleProf,
		AgentProficiencies: agentProf,
		CareerStats:        career,
		Salary:             salary,
	}

	if err := validatePlayer(player); err != nil {
		return entities.Player{}, err
	}

	return player, nil
}

func pickRegion(rnd *rand.Rand) string {
	regions := []string{"NA", "EU", "APAC", "BR", "LATAM"}
	return regions[rnd.Intn(len(regions))]
}

func randomID(rnd *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	for i := range b {
		b[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(b)
}

// roleBiasedStats is the set of core-stat fields multiplied by 1.10 (capped
// at 100) for each primary role.
var roleBiasedStats = map[entities.RoleKey][]string{
	entities.RoleDuelist:    {"aim", "movement"},
	entities.RoleController: {"utility_usage", "game_sense"},
	entities.RoleSentinel:   {"game_sense", "clutch"},
	entities.RoleInitiator:  {"utility_usage", "communication"},
}

func rollCoreStats(rnd *rand.Rand, min, max int, role entities.RoleKey) entities.CoreStats {
	roll := func() int { return min + rnd.Intn(max-min+1) }

	stats := map[string]int{
		"aim":           roll(),
		"game_sense":    roll(),
		"movement":      roll(),
		"utility_usage": roll(),
		"communication": roll(),
		"clutch":        roll(),
	}

	for _, field := range roleBiasedStats[role] {
		biased := int(float64(stats[field]) * 1.10)
		if biased > 100 {
			biased = 100
		}
		stats[field] = biased
	}

	return entities.CoreStats{
		Aim:           stats["aim"],
		GameSense:     stats["game_sense"],
		Movement:      stats["movement"],
		UtilityUsage:  stats["utility_usage"],
		Communication: stats["communication"],
		Clutch:        stats["clutch"],
	}
}

func rollRoleProficiencies(rnd *rand.Rand, primary entities.RoleKey) map[entities.RoleKey]int {
	out := make(map[entities.RoleKey]int, len(entities.AllRoles))
	for _, role := range entities.AllRoles {
		if role == primary {
			out[role] = 80 + rnd.Intn(21)
		} else {
			out[role] = 50 + rnd.Intn(36)
		}
	}
	return out
}

func rollAgentProficiencies(rnd *rand.Rand, primary entities.RoleKey) map[string]int {
	out := make(map[string]int)
	for _, role := range entities.AllRoles {
		for _, agent := range entities.RoleAgents[role] {
			if role == primary {
				out[agent] = 80 + rnd.Intn(21)
			} else {
				out[agent] = 50 + rnd.Intn(36)
			}
		}
	}
	return out
}

func rollCareerStats(rnd *rand.Rand) entities.CareerStats {
	matchesPlayed := 50 + rnd.Intn(451)
	roundsPerMatch := 16 + rnd.Float64()*8

	kpr := 0.5 + rnd.Float64()*0.5
	dpr := 0.5 + rnd.Float64()*0.4
	apr := 0.2 + rnd.Float64()*0.3

	totalRounds := float64(matchesPlayed) * roundsPerMatch
	kills := int(totalRounds * kpr)
	deaths := int(totalRounds * dpr)
	if deaths == 0 {
		deaths = 1
	}
	assists := int(totalRounds * apr)

	kdRatio := float64(kills) / float64(deaths)

	firstBloodRate := rnd.Float64()
	clutchRate := rnd.Float64() * 0.4

	return entities.CareerStats{
		MatchesPlayed:  matchesPlayed,
		Kills:          kills,
		Deaths:         deaths,
		Assists:        assists,
		KDRatio:        kdRatio,
		ClutchRate:     clampUnit(clutchRate),
		FirstBloodRate: clampUnit(firstBloodRate),
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// validatePlayer re-checks invariants on the assembled record, the same
// aggregated-error shape Validate uses, covering generator-internal
// bugs as well as imported players accepted through this same path.
func validatePlayer(p entities.Player) error {
	var problems []string

	if !validRegions[p.Region] {
		problems = append(problems, fmt.Sprintf("region %q invalid", p.Region))
	}
	validRole := false
	for _, r := range entities.AllRoles {
		if r == p.PrimaryRole {
			validRole = true
			break
		}
	}
	if !validRole {
		problems = append(problems, fmt.Sprintf("primary role %q invalid", p.PrimaryRole))
	}
	if p.Age < 16 || p.Age > 35 {
		problems = append(problems, fmt.Sprintf("age %d outside [16,35]", p.Age))
	}

	for _, stat := range []struct {
		name string
		v    int
	}{
		{"aim", p.CoreStats.Aim}, {"game_sense", p.CoreStats.GameSense}, {"movement", p.CoreStats.Movement},
		{"utility_usage", p.CoreStats.UtilityUsage}, {"communication", p.CoreStats.Communication}, {"clutch", p.CoreStats.Clutch},
	} {
		if stat.v < 0 || stat.v > 100 {
			problems = append(problems, fmt.Sprintf("core stat %s=%d outside [0,100]", stat.name, stat.v))
		}
	}

	for _, role := range entities.AllRoles {
		if _, ok := p.RoleProficiencies[role]; !ok {
			problems = append(problems, fmt.Sprintf("missing role proficiency for %s", role))
		}
	}
	for _, agents := range entities.RoleAgents {
		for _, agent := range agents {
			if _, ok := p.AgentProficiencies[agent]; !ok {
				problems = append(problems, fmt.Sprintf("missing agent proficiency for %s", agent))
			}
		}
	}

	if p.CareerStats.MatchesPlayed < 0 || p.CareerStats.Kills < 0 || p.CareerStats.Deaths < 0 || p.CareerStats.Assists < 0 {
		problems = append(problems, "career stats must be non-negative")
	}
	if p.CareerStats.ClutchRate < 0 || p.CareerStats.ClutchRate > 1 {
		problems = append(problems, fmt.Sprintf("clutch rate %f outside [0,1]", p.CareerStats.ClutchRate))
	}
	if p.CareerStats.FirstBloodRate < 0 || p.CareerStats.FirstBloodRate > 1 {
		problems = append(problems, fmt.Sprintf("first blood rate %f outside [0,1]", p.CareerStats.FirstBloodRate))
	}

	if len(problems) > 0 {
		return common.NewErrInvalidInput(strings.Join(problems, "; "))
	}
	return nil
}

// GenerateRoster fills five slots, covering the four core roles first
// and then filling remaining slots with unconstrained role, per §4.3.
func (g *PlayerGenerator) GenerateRoster(base GeneratorOptions, rnd *rand.Rand) ([]entities.Player, error) {
	roster := make([]entities.Player, 0, 5)

	for _, role := range entities.AllRoles {
		opts := base
		opts.Role = string(role)
		p, err := g.Generate(opts, rnd)
		if err != nil {
			return nil, err
		}
		roster = append(roster, p)
	}

	for len(roster) < 5 {
		opts := base
		opts.Role = ""
		p, err := g.Generate(opts, rnd)
		if err != nil {
			return nil, err
		}
		roster = append(roster, p)
	}

	return roster, nil
}
