package services

import (
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/catalog"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// BuyAdvisor is a pure decision function: given a player's credits, the
// round type, and their role/agent, it picks a weapon and whether to
// buy armor. It holds no state of its own beyond the catalog reference.
type BuyAdvisor struct {
	weapons *catalog.WeaponCatalog
}

func NewBuyAdvisor(weapons *catalog.WeaponCatalog) *BuyAdvisor {
	return &BuyAdvisor{weapons: weapons}
}

const (
	armorCostPistol = 400
	armorCostOther  = 1000
)

// ClassifyRoundType returns the default round-type classification from
// team economy and loss streak. Callers override this for rounds 0 and
// 12, which are always pistol.
func ClassifyRoundType(teamEconomy int, lossStreak int) entities.RoundTypeKey {
	switch {
	case teamEconomy >= 4000:
		return entities.RoundTypeFull
	case teamEconomy >= 2000 || lossStreak >= 2:
		return entities.RoundTypeForce
	default:
		return entities.RoundTypeEco
	}
}

// isEntry treats the Duelist role as the "Entry" fragger referenced by
// the decision tables; Valorant's Duelist class is the entry-fragging
// role.
func isEntry(role entities.RoleKey) bool {
	return role == entities.RoleDuelist
}

// Decide returns the weapon name and armor decision for one player in
// one round, along with the total credits spent.
func (b *BuyAdvisor) Decide(player entities.Player, credits int, roundType entities.RoundTypeKey) (weapon string, armor bool, spend int) {
	aim := player.CoreStats.Aim
	movement := player.CoreStats.Movement
	role := player.PrimaryRole
	primaryAgent := player.BestAgentInRole(role)

	switch roundType {
	case entities.RoundTypePistol:
		weapon = b.decidePistol(credits, aim, movement, role)
	case entities.RoundTypeEco:
		weapon = b.decideEco(credits, aim, movement, role, primaryAgent)
	case entities.RoundTypeForce, entities.RoundTypeSemi:
		weapon = b.decideForce(credits, aim, movement, role, primaryAgent)
	case entities.RoundTypeHalf:
		weapon = b.decideHalf(credits, aim, movement, role, primaryAgent)
	case entities.RoundTypeFull:
		weapon = b.decideFull(credits, player, primaryAgent)
	default:
		weapon = "Classic"
	}

	cost := b.weapons.Lookup(weapon).Cost
	remaining := credits - cost

	armorCost := armorCostOther
	if roundType == entities.RoundTypePistol {
		armorCost = armorCostPistol
	}

	buyArmor := false
	if roundType != entities.RoundTypeEco {
		buyArmor = remaining >= armorCost
	} else if weapon == "Classic" && remaining > armorCost {
		buyArmor = true
	}

	spend = cost
	if buyArmor {
		spend += armorCost
	}

	return weapon, buyArmor, spend
}

func (b *BuyAdvisor) decidePistol(credits, aim, movement int, role entities.RoleKey) string {
	switch {
	case credits >= 800 && aim > 90:
		return "Sheriff"
	case credits >= 500 && aim > 75:
		return "Ghost"
	case credits >= 450 && (role == entities.RoleDuelist || movement > 70):
		return "Frenzy"
	case credits >= 200 && (role == entities.RoleSentinel || role == entities.RoleController):
		return "Shorty"
	default:
		return "Classic"
	}
}

func (b *BuyAdvisor) decideEco(credits, aim, movement int, role entities.RoleKey, primaryAgent string) string {
	switch {
	case credits < 400:
		return "Classic"
	case credits >= 800 && aim > 80:
		return "Sheriff"
	case credits >= 700 && aim > 60:
		return "Ghost"
	case credits >= 150 && (primaryAgent == "Reyna" || primaryAgent == "Raze" || primaryAgent == "Jett" || isEntry(role)):
		return "Shorty"
	case credits >= 600 && (isEntry(role) || movement > 70):
		return "Frenzy"
	default:
		return "Classic"
	}
}

func (b *BuyAdvisor) decideForce(credits, aim, movement int, role entities.RoleKey, primaryAgent string) string {
	switch {
	case credits >= 1600:
		return "Spectre"
	case credits >= 2050 && aim > 80:
		return "Guardian"
	case credits >= 2050:
		return "Bulldog"
	case credits >= 950 && (aim > 85 || primaryAgent == "Chamber"):
		return "Marshal"
	case credits >= 950:
		return "Stinger"
	case credits >= 850 && (isEntry(role) || movement > 80):
		return "Bucky"
	default:
		return b.decideEco(credits, aim, movement, role, primaryAgent)
	}
}

func (b *BuyAdvisor) decideHalf(credits, aim, movement int, role entities.RoleKey, primaryAgent string) string {
	switch {
	case credits >= 1850 && (primaryAgent == "Raze" || primaryAgent == "Jett" || primaryAgent == "Reyna" || movement > 85):
		return "Judge"
	case credits >= 1600 && (role == entities.RoleSentinel || role == entities.RoleController):
		return "Ares"
	case credits >= 1600:
		return "Spectre"
	default:
		return b.decideForce(credits, aim, movement, role, primaryAgent)
	}
}

func (b *BuyAdvisor) decideFull(credits int, player entities.Player, primaryAgent string) string {
	aim := player.CoreStats.Aim
	movement := player.CoreStats.Movement
	utility := player.CoreStats.UtilityUsage
	role := player.PrimaryRole

	switch {
	case credits >= 4700 && (primaryAgent == "Chamber" || aim > 85):
		return "Operator"
	case credits >= 3200 && (role == entities.RoleSentinel || role == entities.RoleController):
		return "Odin"
	case credits >= 2900:
		if aim > movement && aim > utility {
			return "Vandal"
		}
		if movement > aim || utility > aim {
			return "Phantom"
		}
		if isEntry(role) {
			return "Vandal"
		}
		return "Phantom"
	case credits >= 2250 && aim > 80:
		return "Guardian"
	case credits >= 2250:
		return "Bulldog"
	case credits >= 1600:
		return "Spectre"
	default:
		return b.decideForce(credits, aim, movement, role, primaryAgent)
	}
}
