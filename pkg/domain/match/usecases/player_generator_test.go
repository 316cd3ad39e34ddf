package usecases

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

func validOptions() GeneratorOptions {
	return GeneratorOptions{Region: "NA", Role: string(entities.RoleDuelist), MinRating: 40, MaxRating: 90, MaxAge: 30}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := NewPlayerGenerator()

	a, err := g.Generate(validOptions(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	b, err := g.Generate(validOptions(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestGenerate_DeterministicAcrossManySeeds guards against the
// map-iteration non-determinism that previously made
// AgentProficiencies vary run-to-run under a fixed seed: it generates
// the same seed repeatedly and checks every run agrees, which would
// flake under the old map-ranging implementation.
func TestGenerate_DeterministicAcrossManySeeds(t *testing.T) {
	g := NewPlayerGenerator()

	for seed := uint64(0); seed < 20; seed++ {
		var first entities.Player
		for i := 0; i < 5; i++ {
			p, err := g.Generate(validOptions(), rand.New(rand.NewSource(int64(seed))))
			require.NoError(t, err)
			if i == 0 {
				first = p
				continue
			}
			assert.Equal(t, first, p, "seed %d produced divergent players across runs", seed)
		}
	}
}

func TestGenerate_AgentProficienciesCoverEveryAgent(t *testing.T) {
	g := NewPlayerGenerator()
	p, err := g.Generate(validOptions(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for _, agents := range entities.RoleAgents {
		for _, agent := range agents {
			_, ok := p.AgentProficiencies[agent]
			assert.True(t, ok, "missing agent proficiency for %s", agent)
		}
	}
}

func TestGenerate_InvalidOptionsRejected(t *testing.T) {
	g := NewPlayerGenerator()

	_, err := g.Generate(GeneratorOptions{Region: "MOON"}, rand.New(rand.NewSource(1)))
	assert.Error(t, err)

	_, err = g.Generate(GeneratorOptions{MinRating: 90, MaxRating: 10}, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestGenerateRoster_CoversAllFourRoles(t *testing.T) {
	g := NewPlayerGenerator()
	roster, err := g.GenerateRoster(GeneratorOptions{Region: "EU", MinRating: 40, MaxRating: 90, MaxAge: 30}, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	require.Len(t, roster, 5)

	seen := make(map[entities.RoleKey]bool, len(entities.AllRoles))
	for _, p := range roster {
		seen[p.PrimaryRole] = true
	}
	for _, role := range entities.AllRoles {
		assert.True(t, seen[role], "roster missing primary role %s", role)
	}
}
