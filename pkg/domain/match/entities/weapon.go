package entities

// WeaponType classifies a Weapon for buy-advisor and duel-resolver rules.
type WeaponType string

const (
	WeaponTypeSidearm WeaponType = "Sidearm"
	WeaponTypeSMG     WeaponType = "SMG"
	WeaponTypeRifle   WeaponType = "Rifle"
	WeaponTypeSniper  WeaponType = "Sniper"
	WeaponTypeShotgun WeaponType = "Shotgun"
	WeaponTypeHeavy   WeaponType = "Heavy"
)

// EngagementRange is the bucketed distance between attacker and defender
// at the moment a duel is resolved.
type EngagementRange string

const (
	RangeClose  EngagementRange = "close"
	RangeMedium EngagementRange = "medium"
	RangeLong   EngagementRange = "long"
)

// RangeMultipliers gives a weapon's effectiveness multiplier per range bucket.
type RangeMultipliers struct {
	Close  float64 `json:"close" bson:"close"`
	Medium float64 `json:"medium" bson:"medium"`
	Long   float64 `json:"long" bson:"long"`
}

func (r RangeMultipliers) At(rng EngagementRange) float64 {
	switch rng {
	case RangeClose:
		return r.Close
	case RangeLong:
		return r.Long
	default:
		return r.Medium
	}
}

// Weapon is an immutable catalog entry.
type Weapon struct {
	Name             string           `json:"name" bson:"name"`
	Type             WeaponType       `json:"type" bson:"type"`
	Cost             int              `json:"cost" bson:"cost"`
	Damage           int              `json:"damage" bson:"damage"`
	FireRate         float64          `json:"fire_rate" bson:"fire_rate"`
	RangeMultipliers RangeMultipliers `json:"range_multipliers" bson:"range_multipliers"`
	ArmorPenetration float64          `json:"armor_penetration" bson:"armor_penetration"`
	Accuracy         float64          `json:"accuracy" bson:"accuracy"`
	MovementAccuracy float64          `json:"movement_accuracy" bson:"movement_accuracy"`
	MagazineSize     int              `json:"magazine_size" bson:"magazine_size"`
	ReloadTime       float64          `json:"reload_time" bson:"reload_time"`
	EquipTime        float64          `json:"equip_time" bson:"equip_time"`
	WallPenetration  float64          `json:"wall_penetration" bson:"wall_penetration"`
}
