package services

import (
	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// MatchQueryService exposes PersistedMatch records to the generic
// search surface, registered under entity type "matches" per §6.1.
type MatchQueryService struct {
	common.BaseQueryService[entities.PersistedMatch]
}

func NewMatchQueryService(reader common.Searchable[entities.PersistedMatch]) *MatchQueryService {
	queryableFields := map[string]bool{
		"ID":               true,
		"RequestedMapName": true,
		"Seed":             true,
		"MatchResult.Map":  true,
		"MatchResult.MVP":  true,
		"ResourceOwner":    common.DENY,
		"CreatedAt":        true,
		"UpdatedAt":        true,
	}

	readableFields := map[string]bool{
		"ID":               true,
		"RequestedMapName": true,
		"Seed":             true,
		"MatchResult":      true,
		"ResourceOwner":    common.DENY,
		"CreatedAt":        true,
		"UpdatedAt":        true,
	}

	svc := &MatchQueryService{
		BaseQueryService: common.BaseQueryService[entities.PersistedMatch]{
			Reader:              reader,
			QueryableFields:     queryableFields,
			ReadableFields:      readableFields,
			DefaultSearchFields: []string{"RequestedMapName"},
			SortableFields:      []string{"CreatedAt", "Seed"},
			FilterableFields:    []string{"RequestedMapName", "MatchResult.Map", "MatchResult.MVP"},
			MaxPageSize:         100,
			Audience:            common.ClientApplicationAudienceIDKey,
			EntityType:          "matches",
		},
	}

	common.GetQueryServiceRegistry().Register("matches", svc)

	return svc
}
