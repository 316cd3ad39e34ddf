package db

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	roster_entities "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/entities"
)

// RosterPlayerRepository persists generated/imported Player records
// (C10), queryable by region, primary role, and source. No rating field
// is mapped.
type RosterPlayerRepository struct {
	MongoDBRepository[roster_entities.RosterPlayer]
}

func NewRosterPlayerRepository(client *mongo.Client, dbName string, collectionName string) *RosterPlayerRepository {
	repo := MongoDBRepository[roster_entities.RosterPlayer]{
		mongoClient:       client,
		dbName:            dbName,
		mappingCache:      make(map[string]CacheItem),
		entityModel:       reflect.TypeOf(roster_entities.RosterPlayer{}),
		bsonFieldMappings: make(map[string]string),
		collectionName:    collectionName,
		entityName:        reflect.TypeOf(roster_entities.RosterPlayer{}).Name(),
		queryableFields:   make(map[string]bool),
	}

	repo.InitQueryableFields(map[string]bool{
		"ID":            true,
		"Player":        true,
		"Source":        true,
		"ResourceOwner": true,
		"CreatedAt":     true,
		"UpdatedAt":     true,
	}, map[string]string{
		"ID":            "_id",
		"Player":        "player",
		"Region":        "player.region",
		"PrimaryRole":   "player.primary_role",
		"Source":        "source",
		"ResourceOwner": "resource_owner",
		"TenantID":      "resource_owner.tenant_id",
		"UserID":        "resource_owner.user_id",
		"GroupID":       "resource_owner.group_id",
		"ClientID":      "resource_owner.client_id",
		"CreatedAt":     "created_at",
		"UpdatedAt":     "updated_at",
	})

	return &RosterPlayerRepository{repo}
}

func (r *RosterPlayerRepository) Search(ctx context.Context, s common.Search) ([]roster_entities.RosterPlayer, error) {
	cursor, err := r.Query(ctx, s)
	if cursor != nil {
		defer cursor.Close(ctx)
	}
	if err != nil {
		slog.ErrorContext(ctx, "error querying roster player entity", "err", err)
		return nil, err
	}

	players := make([]roster_entities.RosterPlayer, 0)
	for cursor.Next(ctx) {
		var p roster_entities.RosterPlayer
		if err := cursor.Decode(&p); err != nil {
			slog.ErrorContext(ctx, "error decoding roster player entity", "err", err)
			return nil, err
		}
		players = append(players, p)
	}

	return players, nil
}

func (r *RosterPlayerRepository) Create(createCtx context.Context, players ...roster_entities.RosterPlayer) error {
	collection := r.mongoClient.Database(r.dbName).Collection(r.collectionName)

	queryCtx, cancel := context.WithTimeout(createCtx, 10*time.Second)
	defer cancel()

	toInsert := make([]interface{}, len(players))
	for i := range players {
		toInsert[i] = players[i]
	}

	_, err := collection.InsertMany(queryCtx, toInsert)
	if err != nil {
		slog.ErrorContext(queryCtx, "error inserting roster players", "err", err)
		return err
	}

	return nil
}
