package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/catalog"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

func playerWithAim(aim int) entities.Player {
	return entities.Player{
		ID:                 "p1",
		PrimaryRole:        entities.RoleDuelist,
		CoreStats:          entities.CoreStats{Aim: aim, Movement: 50},
		AgentProficiencies: map[string]int{"Jett": 80},
	}
}

// TestDecide_PistolRound_E1 is the E1 scenario: two players with
// aim=91 and aim=50, both credits=800, round=pistol. Buy Advisor
// returns Sheriff for the first, Classic for the second.
func TestDecide_PistolRound_E1(t *testing.T) {
	advisor := NewBuyAdvisor(catalog.NewWeaponCatalog())

	weapon, _, _ := advisor.Decide(playerWithAim(91), 800, entities.RoundTypePistol)
	assert.Equal(t, "Sheriff", weapon)

	second := playerWithAim(50)
	second.PrimaryRole = entities.RoleInitiator
	weapon, _, _ = advisor.Decide(second, 800, entities.RoundTypePistol)
	assert.Equal(t, "Classic", weapon)
}

// TestDecide_HalfBuyFallsBackToAimGatedForce covers the half_buy "else
// force_buy" fallback: when a half buy doesn't clear any of its own
// thresholds, it must defer to decideForce with the player's actual
// aim so the Marshal (aim>85) branch is still reachable instead of
// being silently killed by a hardcoded aim=0.
func TestDecide_HalfBuyFallsBackToAimGatedForce(t *testing.T) {
	advisor := NewBuyAdvisor(catalog.NewWeaponCatalog())

	p := playerWithAim(90)
	p.PrimaryRole = entities.RoleInitiator

	weapon, _, _ := advisor.Decide(p, 1000, entities.RoundTypeHalf)
	assert.Equal(t, "Marshal", weapon, "half_buy's force_buy fallback must see the real aim to reach the aim>85 Marshal branch")

	p.CoreStats.Aim = 60
	weapon, _, _ = advisor.Decide(p, 1000, entities.RoundTypeHalf)
	assert.NotEqual(t, "Marshal", weapon)
}

func TestDecide_FullBuy_HighCreditsAndAim(t *testing.T) {
	advisor := NewBuyAdvisor(catalog.NewWeaponCatalog())

	p := playerWithAim(90)
	weapon, armor, spend := advisor.Decide(p, 6000, entities.RoundTypeFull)

	assert.Equal(t, "Operator", weapon)
	assert.True(t, armor)
	require.Greater(t, spend, 0)
}

func TestClassifyRoundType(t *testing.T) {
	assert.Equal(t, entities.RoundTypeFull, ClassifyRoundType(4500, 0))
	assert.Equal(t, entities.RoundTypeForce, ClassifyRoundType(2500, 0))
	assert.Equal(t, entities.RoundTypeForce, ClassifyRoundType(500, 3))
	assert.Equal(t, entities.RoundTypeEco, ClassifyRoundType(500, 0))
}
