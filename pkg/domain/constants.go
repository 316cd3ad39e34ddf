package common

type StatType string

// Stat categories surfaced on generated players' career and round stats.
const (
	ClutchStatTypeKey      StatType = "Clutch"
	EconomyStatTypeKey     StatType = "Economy"
	StrategyStatTypeKey    StatType = "Strategy"
	PlayerStatTypeKey      StatType = "Player"
	PositioningStatTypeKey StatType = "Positioning"
	UtilityStatTypeKey     StatType = "Utility"
	BattleStatTypeKey      StatType = "Battle"
	GameSenseStatTypeKey   StatType = "Game Sense"
	HighlightStatTypeKey   StatType = "Highlight"
	AreaStatTypeKey        StatType = "Area"
)

type RegionIDKey string

// Competitive regions recognized by the player generator and roster assembly.
const (
	NorthAmerica_RegionIDKey RegionIDKey = "NA"
	Europe_RegionIDKey       RegionIDKey = "EU"
	AsiaPacific_RegionIDKey  RegionIDKey = "APAC"
	Brazil_RegionIDKey       RegionIDKey = "BR"
	LatinAmerica_RegionIDKey RegionIDKey = "LATAM"
)

var AllRegions = []RegionIDKey{
	NorthAmerica_RegionIDKey,
	Europe_RegionIDKey,
	AsiaPacific_RegionIDKey,
	Brazil_RegionIDKey,
	LatinAmerica_RegionIDKey,
}

type VisibilityTypeKey string

const (
	PublicVisibilityTypeKey     VisibilityTypeKey = "Public"
	RestrictedVisibilityTypeKey VisibilityTypeKey = "Restricted"
	PrivateVisibilityTypeKey    VisibilityTypeKey = "Private"
	CustomVisibilityTypeKey     VisibilityTypeKey = "Custom"
)
