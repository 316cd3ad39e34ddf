package services

import (
	"math/rand"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// DuelResolver is a pure, stateless function of its arguments plus an
// explicit random source, so identical (inputs, rng-state) pairs always
// resolve the same way.
type DuelResolver struct{}

func NewDuelResolver() *DuelResolver {
	return &DuelResolver{}
}

// Resolve returns true iff the attacker wins the engagement.
func (d *DuelResolver) Resolve(
	attacker, defender entities.Player,
	attackerWeapon, defenderWeapon entities.Weapon,
	rng entities.EngagementRange,
	attackerArmor, defenderArmor bool,
	rnd *rand.Rand,
) bool {
	ratingA := d.rating(attacker, attackerWeapon, rng)
	ratingD := d.rating(defender, defenderWeapon, rng)

	if attackerWeapon.Type == entities.WeaponTypeSniper && rng == entities.RangeLong {
		ratingA *= 1.5
	}
	if defenderWeapon.Type == entities.WeaponTypeSMG && rng == entities.RangeClose {
		ratingD *= 1.2
	}

	if defenderArmor {
		ratingA *= 1 - (1-attackerWeapon.ArmorPenetration)*0.5
	}
	if attackerArmor {
		ratingD *= 1 - (1-defenderWeapon.ArmorPenetration)*0.5
	}

	ratingA *= jitter(rnd)
	ratingD *= jitter(rnd)

	return ratingA > ratingD
}

// rating is 0.4·aim·accuracy + 0.3·movement·movementAccuracy + 0.3·gameSense,
// scaled by the weapon's range multiplier for rng.
func (d *DuelResolver) rating(p entities.Player, w entities.Weapon, rng entities.EngagementRange) float64 {
	base := 0.4*float64(p.CoreStats.Aim)*w.Accuracy +
		0.3*float64(p.CoreStats.Movement)*w.MovementAccuracy +
		0.3*float64(p.CoreStats.GameSense)
	return base * w.RangeMultipliers.At(rng)
}

// jitter draws a uniform multiplier in [0.8, 1.2].
func jitter(rnd *rand.Rand) float64 {
	return 0.8 + rnd.Float64()*0.4
}
