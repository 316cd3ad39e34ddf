package db

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	match_entities "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

// MatchRepository persists MatchResult records (C11), queryable by map
// name, mvp player id, and requested seed. No winner field is mapped.
type MatchRepository struct {
	MongoDBRepository[match_entities.PersistedMatch]
}

func NewMatchRepository(client *mongo.Client, dbName string, collectionName string) *MatchRepository {
	repo := MongoDBRepository[match_entities.PersistedMatch]{
		mongoClient:       client,
		dbName:            dbName,
		mappingCache:      make(map[string]CacheItem),
		entityModel:       reflect.TypeOf(match_entities.PersistedMatch{}),
		bsonFieldMappings: make(map[string]string),
		collectionName:    collectionName,
		entityName:        reflect.TypeOf(match_entities.PersistedMatch{}).Name(),
		queryableFields:   make(map[string]bool),
	}

	repo.InitQueryableFields(map[string]bool{
		"ID":               true,
		"MatchResult":      true,
		"RequestedMapName": true,
		"Seed":             true,
		"ResourceOwner":    true,
		"CreatedAt":        true,
		"UpdatedAt":        true,
	}, map[string]string{
		"ID":               "_id",
		"MatchResult":      "match_result",
		"Map":              "match_result.map",
		"MVP":              "match_result.mvp",
		"RequestedMapName": "requested_map_name",
		"Seed":             "seed",
		"ResourceOwner":    "resource_owner",
		"TenantID":         "resource_owner.tenant_id",
		"UserID":           "resource_owner.user_id",
		"GroupID":          "resource_owner.group_id",
		"ClientID":         "resource_owner.client_id",
		"CreatedAt":        "created_at",
		"UpdatedAt":        "updated_at",
	})

	return &MatchRepository{repo}
}

func (r *MatchRepository) Search(ctx context.Context, s common.Search) ([]match_entities.PersistedMatch, error) {
	cursor, err := r.Query(ctx, s)
	if cursor != nil {
		defer cursor.Close(ctx)
	}
	if err != nil {
		slog.ErrorContext(ctx, "error querying match entity", "err", err)
		return nil, err
	}

	matches := make([]match_entities.PersistedMatch, 0)
	for cursor.Next(ctx) {
		var m match_entities.PersistedMatch
		if err := cursor.Decode(&m); err != nil {
			slog.ErrorContext(ctx, "error decoding match entity", "err", err)
			return nil, err
		}
		matches = append(matches, m)
	}

	return matches, nil
}

func (r *MatchRepository) Create(createCtx context.Context, matches ...match_entities.PersistedMatch) error {
	collection := r.mongoClient.Database(r.dbName).Collection(r.collectionName)

	queryCtx, cancel := context.WithTimeout(createCtx, 10*time.Second)
	defer cancel()

	toInsert := make([]interface{}, len(matches))
	for i := range matches {
		toInsert[i] = matches[i]
	}

	_, err := collection.InsertMany(queryCtx, toInsert)
	if err != nil {
		slog.ErrorContext(queryCtx, "error inserting matches", "err", err)
		return err
	}

	return nil
}
