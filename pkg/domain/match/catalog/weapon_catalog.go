// Package catalog holds the read-only Weapon registry and the Map
// registry (C1, C2); the Map registry also accepts layouts through Add.
// Catalogs are constructed once and passed by shared reference into every
// simulation; none of their state is process-global.
package catalog

import (
	"fmt"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// WeaponCatalog is a read-only, closed registry of weapon stats.
type WeaponCatalog struct {
	weapons map[string]entities.Weapon
}

// NewWeaponCatalog builds the full 18-entry catalog required by the spec.
// Stats for entries beyond the reference set are extrapolated in the same
// style as the given ones, grounded in weapon type and cost tier (see
// DESIGN.md).
func NewWeaponCatalog() *WeaponCatalog {
	entries := []entities.Weapon{
		{
			Name: "Classic", Type: entities.WeaponTypeSidearm, Cost: 0, Damage: 26, FireRate: 6.75,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.0, Medium: 0.8, Long: 0.5},
			ArmorPenetration: 0.3, Accuracy: 0.65, MovementAccuracy: 0.5, MagazineSize: 12, ReloadTime: 1.5, EquipTime: 0.75, WallPenetration: 0.3,
		},
		{
			Name: "Shorty", Type: entities.WeaponTypeShotgun, Cost: 150, Damage: 18, FireRate: 3.5,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.3, Medium: 0.4, Long: 0.1},
			ArmorPenetration: 0.2, Accuracy: 0.55, MovementAccuracy: 0.4, MagazineSize: 2, ReloadTime: 1.0, EquipTime: 0.75, WallPenetration: 0.15,
		},
		{
			Name: "Frenzy", Type: entities.WeaponTypeSidearm, Cost: 450, Damage: 26, FireRate: 10.0,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.1, Medium: 0.6, Long: 0.35},
			ArmorPenetration: 0.25, Accuracy: 0.6, MovementAccuracy: 0.45, MagazineSize: 13, ReloadTime: 1.75, EquipTime: 0.75, WallPenetration: 0.25,
		},
		{
			Name: "Ghost", Type: entities.WeaponTypeSidearm, Cost: 500, Damage: 30, FireRate: 6.75,
			RangeMultipliers: entities.RangeMultipliers{Close: 0.95, Medium: 0.85, Long: 0.6},
			ArmorPenetration: 0.35, Accuracy: 0.75, MovementAccuracy: 0.6, MagazineSize: 15, ReloadTime: 1.5, EquipTime: 0.75, WallPenetration: 0.35,
		},
		{
			Name: "Sheriff", Type: entities.WeaponTypeSidearm, Cost: 800, Damage: 55, FireRate: 4.0,
			RangeMultipliers: entities.RangeMultipliers{Close: 0.9, Medium: 0.95, Long: 0.8},
			ArmorPenetration: 0.6, Accuracy: 0.8, MovementAccuracy: 0.45, MagazineSize: 6, ReloadTime: 2.25, EquipTime: 0.75, WallPenetration: 0.5,
		},
		{
			Name: "Stinger", Type: entities.WeaponTypeSMG, Cost: 950, Damage: 27, FireRate: 16.0,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.25, Medium: 0.6, Long: 0.3},
			ArmorPenetration: 0.3, Accuracy: 0.6, MovementAccuracy: 0.7, MagazineSize: 20, ReloadTime: 2.0, EquipTime: 0.75, WallPenetration: 0.3,
		},
		{
			Name: "Spectre", Type: entities.WeaponTypeSMG, Cost: 1600, Damage: 26, FireRate: 13.33,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.2, Medium: 0.7, Long: 0.35},
			ArmorPenetration: 0.35, Accuracy: 0.68, MovementAccuracy: 0.75, MagazineSize: 30, ReloadTime: 2.25, EquipTime: 0.75, WallPenetration: 0.35,
		},
		{
			Name: "Bucky", Type: entities.WeaponTypeShotgun, Cost: 850, Damage: 20, FireRate: 1.1,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.4, Medium: 0.5, Long: 0.1},
			ArmorPenetration: 0.25, Accuracy: 0.55, MovementAccuracy: 0.4, MagazineSize: 5, ReloadTime: 2.75, EquipTime: 0.75, WallPenetration: 0.15,
		},
		{
			Name: "Judge", Type: entities.WeaponTypeShotgun, Cost: 1850, Damage: 17, FireRate: 3.5,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.45, Medium: 0.5, Long: 0.1},
			ArmorPenetration: 0.3, Accuracy: 0.58, MovementAccuracy: 0.45, MagazineSize: 7, ReloadTime: 2.5, EquipTime: 0.75, WallPenetration: 0.2,
		},
		{
			Name: "Bulldog", Type: entities.WeaponTypeRifle, Cost: 2050, Damage: 35, FireRate: 9.15,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.0, Medium: 0.9, Long: 0.65},
			ArmorPenetration: 0.45, Accuracy: 0.78, MovementAccuracy: 0.55, MagazineSize: 24, ReloadTime: 2.5, EquipTime: 1.0, WallPenetration: 0.4,
		},
		{
			Name: "Guardian", Type: entities.WeaponTypeRifle, Cost: 2250, Damage: 65, FireRate: 4.75,
			RangeMultipliers: entities.RangeMultipliers{Close: 0.85, Medium: 1.0, Long: 0.95},
			ArmorPenetration: 0.55, Accuracy: 0.88, MovementAccuracy: 0.4, MagazineSize: 12, ReloadTime: 2.75, EquipTime: 1.0, WallPenetration: 0.45,
		},
		{
			Name: "Phantom", Type: entities.WeaponTypeRifle, Cost: 2900, Damage: 39, FireRate: 11.0,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.05, Medium: 1.0, Long: 0.75},
			ArmorPenetration: 0.5, Accuracy: 0.82, MovementAccuracy: 0.6, MagazineSize: 30, ReloadTime: 2.5, EquipTime: 1.0, WallPenetration: 0.35,
		},
		{
			Name: "Vandal", Type: entities.WeaponTypeRifle, Cost: 2900, Damage: 40, FireRate: 9.75,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.0, Medium: 1.0, Long: 0.9},
			ArmorPenetration: 0.55, Accuracy: 0.8, MovementAccuracy: 0.5, MagazineSize: 25, ReloadTime: 2.5, EquipTime: 1.0, WallPenetration: 0.45,
		},
		{
			Name: "Marshal", Type: entities.WeaponTypeSniper, Cost: 950, Damage: 85, FireRate: 1.1,
			RangeMultipliers: entities.RangeMultipliers{Close: 0.6, Medium: 0.9, Long: 1.2},
			ArmorPenetration: 0.7, Accuracy: 0.95, MovementAccuracy: 0.15, MagazineSize: 5, ReloadTime: 2.5, EquipTime: 1.25, WallPenetration: 0.6,
		},
		{
			Name: "Operator", Type: entities.WeaponTypeSniper, Cost: 4700, Damage: 150, FireRate: 0.6,
			RangeMultipliers: entities.RangeMultipliers{Close: 0.5, Medium: 1.0, Long: 1.5},
			ArmorPenetration: 0.95, Accuracy: 0.99, MovementAccuracy: 0.1, MagazineSize: 5, ReloadTime: 3.7, EquipTime: 1.5, WallPenetration: 0.85,
		},
		{
			Name: "Outlaw", Type: entities.WeaponTypeSniper, Cost: 2400, Damage: 140, FireRate: 1.75,
			RangeMultipliers: entities.RangeMultipliers{Close: 0.55, Medium: 0.95, Long: 1.35},
			ArmorPenetration: 0.8, Accuracy: 0.93, MovementAccuracy: 0.2, MagazineSize: 2, ReloadTime: 2.5, EquipTime: 1.25, WallPenetration: 0.7,
		},
		{
			Name: "Ares", Type: entities.WeaponTypeHeavy, Cost: 1600, Damage: 30, FireRate: 10.0,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.1, Medium: 0.85, Long: 0.55},
			ArmorPenetration: 0.4, Accuracy: 0.6, MovementAccuracy: 0.3, MagazineSize: 50, ReloadTime: 4.0, EquipTime: 1.25, WallPenetration: 0.4,
		},
		{
			Name: "Odin", Type: entities.WeaponTypeHeavy, Cost: 3200, Damage: 38, FireRate: 12.0,
			RangeMultipliers: entities.RangeMultipliers{Close: 1.1, Medium: 0.95, Long: 0.7},
			ArmorPenetration: 0.5, Accuracy: 0.7, MovementAccuracy: 0.3, MagazineSize: 100, ReloadTime: 5.75, EquipTime: 1.25, WallPenetration: 0.5,
		},
	}

	c := &WeaponCatalog{weapons: make(map[string]entities.Weapon, len(entries))}
	for _, w := range entries {
		c.weapons[w.Name] = w
	}
	return c
}

// Lookup returns the Weapon registered under name. A missing entry is a
// programming error per the spec, not a user error: the catalog is
// closed and the caller should only ever name weapons appearing in the
// buy-advisor decision tables.
func (c *WeaponCatalog) Lookup(name string) entities.Weapon {
	w, ok := c.weapons[name]
	if !ok {
		panic(fmt.Sprintf("weapon catalog: unknown weapon %q", name))
	}
	return w
}

func (c *WeaponCatalog) AllNames() []string {
	names := make([]string, 0, len(c.weapons))
	for name := range c.weapons {
		names = append(names, name)
	}
	return names
}
