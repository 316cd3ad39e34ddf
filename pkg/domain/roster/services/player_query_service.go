// Package services hosts the roster domain's read-side adapters onto
// the generic query surface.
package services

import (
	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/entities"
)

// PlayerQueryService exposes RosterPlayer records to the generic
// search surface, registered under entity type "players" per §6.1.
type PlayerQueryService struct {
	common.BaseQueryService[entities.RosterPlayer]
}

func NewPlayerQueryService(reader common.Searchable[entities.RosterPlayer]) *PlayerQueryService {
	queryableFields := map[string]bool{
		"ID":                  true,
		"Source":              true,
		"Player.Region":       true,
		"Player.PrimaryRole":  true,
		"Player.DisplayName":  true,
		"ResourceOwner":       common.DENY,
		"CreatedAt":           true,
		"UpdatedAt":           true,
	}

	readableFields := map[string]bool{
		"ID":            true,
		"Player":        true,
		"Source":        true,
		"ResourceOwner": common.DENY,
		"CreatedAt":     true,
		"UpdatedAt":     true,
	}

	svc := &PlayerQueryService{
		BaseQueryService: common.BaseQueryService[entities.RosterPlayer]{
			Reader:              reader,
			QueryableFields:     queryableFields,
			ReadableFields:      readableFields,
			DefaultSearchFields: []string{"Player.DisplayName"},
			SortableFields:      []string{"CreatedAt"},
			FilterableFields:    []string{"Player.Region", "Player.PrimaryRole", "Source"},
			MaxPageSize:         100,
			Audience:            common.ClientApplicationAudienceIDKey,
			EntityType:          "players",
		},
	}

	common.GetQueryServiceRegistry().Register("players", svc)

	return svc
}
