package entities

import common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"

// PersistedMatch is the persisted wrapper around a MatchResult, plus
// the inputs that produced it so a stored record can be replayed or
// audited.
type PersistedMatch struct {
	common.BaseEntity `bson:",inline"`

	MatchResult MatchResult `json:"match_result" bson:"match_result"`

	RequestedMapName string `json:"requested_map_name" bson:"requested_map_name"`
	Seed             uint64 `json:"seed" bson:"seed"`
}
