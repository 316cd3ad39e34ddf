package db_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	match_entities "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
	db "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/infra/db/mongodb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	dbName = "valorant_sim"
)

func Test_Mongo_QueryBuilder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client, err := getClient()
	if err != nil {
		failErr(t, err)
	}

	r := db.NewMatchRepository(client, dbName, "matches")

	fieldName, err := r.GetBSONFieldName("RequestedMapName")
	if err != nil {
		failErr(t, err)
	}

	if fieldName != "requested_map_name" {
		t.Fatalf("expected bsonFieldName, got %s", fieldName)
	}

	ctx := context.WithValue(context.Background(), common.TenantIDKey, common.TeamPROTenantID)
	ctx = context.WithValue(ctx, common.ClientIDKey, common.TeamPROAppClientID)
	ctx = context.WithValue(ctx, common.UserIDKey, uuid.New())

	s := common.NewSearchByID(ctx, uuid.New(), common.ClientApplicationAudienceIDKey)

	results, err := r.Query(ctx, s)
	if err != nil {
		failErr(t, err)
	}

	t.Logf("result: %v", results)
}

func failErr(t *testing.T, e error) {
	t.Fatalf("test failed %s %v", e.Error(), e)
}

var (
	clientInstance *mongo.Client
	clientOnce     sync.Once
)

func getClient() (*mongo.Client, error) {
	var err error
	if clientInstance == nil {
		clientOnce.Do(func() {
			opt := options.Client().ApplyURI("mongodb://127.0.0.1:37019/valorant_sim")
			clientInstance, err = mongo.Connect(context.Background(), opt)
		})
	}

	return clientInstance, err
}

func TestMongoDBRepository_Query(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:37019/valorant_sim"))
	if err != nil {
		t.Fatalf("Error connecting to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	collectionName := "matches"
	repo := db.NewMatchRepository(client, dbName, collectionName)

	setContextWithValues := func(ctx context.Context, tenantID, clientID, groupID, userID uuid.UUID) context.Context {
		ctx = context.WithValue(ctx, common.TenantIDKey, tenantID)
		ctx = context.WithValue(ctx, common.ClientIDKey, clientID)
		ctx = context.WithValue(ctx, common.UserIDKey, userID)
		ctx = context.WithValue(ctx, common.GroupIDKey, groupID)
		return ctx
	}

	tenantID := uuid.New()
	clientID := uuid.New()
	userID := uuid.New()
	groupID := uuid.New()

	newMatch := func(id uuid.UUID, mapName string, mvp string, seed uint64, createdAt time.Time) match_entities.PersistedMatch {
		return match_entities.PersistedMatch{
			BaseEntity: common.BaseEntity{
				ID:            id,
				ResourceOwner: common.ResourceOwner{TenantID: tenantID, ClientID: clientID, GroupID: groupID, UserID: userID},
				CreatedAt:     createdAt,
				UpdatedAt:     createdAt,
			},
			RequestedMapName: mapName,
			Seed:             seed,
			MatchResult: match_entities.MatchResult{
				Map: mapName,
				MVP: mvp,
			},
		}
	}

	sampleData := []match_entities.PersistedMatch{
		newMatch(uuid.MustParse("fcad61ef-67fe-4405-9a4e-1b51774bb46a"), "Ascent", "phantom-one", 1001, time.Now().Add(-96*time.Hour)),
		newMatch(uuid.MustParse("8097926d-5958-45fb-bf17-416659336058"), "Ascent", "vandal-two", 1002, time.Now().Add(-48*time.Hour)),
		newMatch(uuid.MustParse("5c54807d-0339-451c-9f4b-47a2c05d9291"), "Bind", "vandal-two", 1003, time.Now().Add(-24*time.Hour)),
	}

	tests := []struct {
		name            string
		search          common.Search
		expectedResults []match_entities.PersistedMatch
		mockData        []match_entities.PersistedMatch
		contextValues   map[interface{}]uuid.UUID
	}{
		{
			name: "Valid Query - RequestedMapName",
			search: common.NewSearchByValues(
				setContextWithValues(context.Background(), tenantID, clientID, groupID, userID),
				[]common.SearchableValue{{Field: "RequestedMapName", Values: []interface{}{"Ascent"}}},
				common.SearchResultOptions{Limit: 10},
				common.UserAudienceIDKey,
			),
			expectedResults: sampleData[:2],
			mockData:        sampleData,
			contextValues:   map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.ClientIDKey: clientID, common.UserIDKey: userID},
		},
		{
			name: "Valid Nested Query - MVP",
			search: common.NewSearchByValues(
				setContextWithValues(context.Background(), tenantID, clientID, groupID, userID),
				[]common.SearchableValue{{Field: "MVP", Values: []interface{}{"vandal-two"}}},
				common.SearchResultOptions{Limit: 10},
				common.UserAudienceIDKey,
			),
			expectedResults: sampleData[1:],
			mockData:        sampleData,
			contextValues:   map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.ClientIDKey: clientID, common.UserIDKey: userID},
		},
		{
			name: "Multiple Values - Seed (OR)",
			search: common.NewSearchByValues(
				setContextWithValues(context.Background(), tenantID, clientID, groupID, userID),
				[]common.SearchableValue{{Field: "Seed", Values: []interface{}{uint64(1001), uint64(1003)}, Operator: common.InOperator}},
				common.SearchResultOptions{Limit: 10},
				common.UserAudienceIDKey,
			),
			expectedResults: []match_entities.PersistedMatch{sampleData[0], sampleData[2]},
			mockData:        sampleData,
			contextValues:   map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.ClientIDKey: clientID, common.UserIDKey: userID},
		},
		{
			name: "Date Range Query - CreatedAt",
			search: common.NewSearchByRange(
				setContextWithValues(context.Background(), tenantID, clientID, groupID, userID),
				[]common.SearchableDateRange{
					{Field: "CreatedAt", Min: &sampleData[2].CreatedAt, Max: &sampleData[2].UpdatedAt},
				},
				common.SearchResultOptions{Limit: 10},
				common.ClientApplicationAudienceIDKey,
			),
			expectedResults: sampleData[2:],
			mockData:        sampleData,
			contextValues:   map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.ClientIDKey: clientID},
		},
		{
			name: "Empty Values Slice",
			search: common.NewSearchByValues(
				setContextWithValues(context.Background(), tenantID, clientID, groupID, userID),
				[]common.SearchableValue{{Field: "RequestedMapName", Values: []interface{}{}}},
				common.SearchResultOptions{Limit: 10},
				common.UserAudienceIDKey,
			),
			expectedResults: sampleData[0:0],
			mockData:        sampleData,
			contextValues:   map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.ClientIDKey: clientID, common.UserIDKey: userID},
		},
		{
			name: "Numeric Filter - Seed (Greater Than)",
			search: common.NewSearchByValues(
				setContextWithValues(context.Background(), tenantID, clientID, uuid.Nil, uuid.Nil),
				[]common.SearchableValue{
					{Field: "Seed", Values: []interface{}{uint64(1001)}, Operator: common.GreaterThanOperator},
				},
				common.SearchResultOptions{Limit: 10},
				common.ClientApplicationAudienceIDKey,
			),
			expectedResults: sampleData[1:],
			mockData:        sampleData,
			contextValues:   map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.ClientIDKey: clientID},
		},
		{
			name: "String Filter - RequestedMapName (Contains)",
			search: common.NewSearchByValues(
				setContextWithValues(context.Background(), tenantID, clientID, uuid.Nil, uuid.Nil),
				[]common.SearchableValue{
					{Field: "RequestedMapName", Values: []interface{}{"Bin"}, Operator: common.ContainsOperator},
				},
				common.SearchResultOptions{Limit: 10},
				common.ClientApplicationAudienceIDKey,
			),
			expectedResults: sampleData[2:],
			mockData:        sampleData,
			contextValues:   map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.ClientIDKey: clientID},
		},
	}

	collection := client.Database(dbName).Collection(collectionName)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setContextWithValues(context.Background(), tt.contextValues[common.TenantIDKey], tt.contextValues[common.ClientIDKey], tt.contextValues[common.GroupIDKey], tt.contextValues[common.UserIDKey])

			data := make([]interface{}, len(tt.mockData))
			for i, d := range tt.mockData {
				data[i] = d
			}

			collection.DeleteMany(ctx, bson.M{})

			rs, err := collection.InsertMany(ctx, data)
			if err != nil {
				t.Fatalf("Error inserting mock data: %v", err)
			}

			if len(rs.InsertedIDs) != len(tt.mockData) {
				t.Fatalf("Expected %d inserted documents, got %d", len(tt.mockData), len(rs.InsertedIDs))
			}

			cursor, err := repo.Query(ctx, tt.search)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			results := make([]match_entities.PersistedMatch, 0)
			for cursor.Next(ctx) {
				var result match_entities.PersistedMatch
				if err := cursor.Decode(&result); err != nil {
					t.Fatalf("Error decoding result: %v", err)
				}
				results = append(results, result)
			}

			insertedUUIDs := make([]interface{}, len(tt.mockData))
			for i, data := range tt.mockData {
				insertedUUIDs[i] = data.ID
			}

			deleteOnlyInserted := bson.M{"_id": bson.M{"$in": insertedUUIDs}}

			r, err := collection.DeleteMany(ctx, deleteOnlyInserted)
			if err != nil {
				t.Fatalf("Error deleting mock data: %v", err)
			}

			if r.DeletedCount != int64(len(tt.mockData)) {
				t.Fatalf("Expected %d deleted documents, got %d", len(tt.mockData), r.DeletedCount)
			}

			if len(results) != len(tt.expectedResults) {
				t.Fatalf("Expected %d results, got %d", len(tt.expectedResults), len(results))
			}

			for i, expected := range tt.expectedResults {
				if results[i].ID != expected.ID {
					t.Fatalf("Expected ID %v, got %v", expected.ID, results[i].ID)
				}
			}
		})
	}
}

func TestGetBSONFieldNameFromSearchableValue(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:37019/valorant_sim"))
	if err != nil {
		t.Fatalf("Error connecting to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	collectionName := "matches"
	repo := db.NewMatchRepository(client, dbName, collectionName)

	testCases := []struct {
		name            string
		searchableValue common.SearchableValue
		expectedName    string
		expectedError   error
	}{
		{
			name:            "Valid Field",
			searchableValue: common.SearchableValue{Field: "RequestedMapName", Values: []interface{}{"Ascent"}},
			expectedName:    "requested_map_name",
			expectedError:   nil,
		},
		{
			name:            "Multiple Values (Ignored)",
			searchableValue: common.SearchableValue{Field: "Seed", Values: []interface{}{"value1", "value2"}},
			expectedName:    "seed",
			expectedError:   nil,
		},
		{
			name:            "Numeric Value",
			searchableValue: common.SearchableValue{Field: "Seed", Values: []interface{}{12345}},
			expectedName:    "seed",
			expectedError:   nil,
		},
		{
			name:            "Nonexistent Field",
			searchableValue: common.SearchableValue{Field: "NonexistentField", Values: []interface{}{"value"}},
			expectedName:    "",
			expectedError:   fmt.Errorf("field NonexistentField not found or not queryable in Entity: PersistedMatch (Collection: matches. Queryable Fields: map[CreatedAt:true ID:true MatchResult:true RequestedMapName:true ResourceOwner:true Seed:true UpdatedAt:true])"),
		},
		{
			name:            "Time/Date Value",
			searchableValue: common.SearchableValue{Field: "CreatedAt", Values: []interface{}{time.Now()}},
			expectedName:    "created_at",
			expectedError:   nil,
		},
		{
			name:            "Empty Field Name",
			searchableValue: common.SearchableValue{Field: "", Values: []interface{}{"value"}},
			expectedName:    "",
			expectedError:   fmt.Errorf("empty field not allowed. cant query"),
		},
		{
			name:            "Empty Values Slice",
			searchableValue: common.SearchableValue{Field: "RequestedMapName", Values: []interface{}{}},
			expectedName:    "requested_map_name",
			expectedError:   nil,
		},
		{
			name:            "ResourceOwner Field",
			searchableValue: common.SearchableValue{Field: "ResourceOwner.TenantID", Values: []interface{}{uuid.New()}},
			expectedName:    "resource_owner.tenant_id",
			expectedError:   nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, err := repo.GetBSONFieldNameFromSearchableValue(tc.searchableValue)
			if !errors.Is(err, tc.expectedError) && err != nil && tc.expectedError != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: %v, got: %v", tc.expectedError, err)
			}
			if name != tc.expectedName {
				t.Errorf("Expected name: %s, got: %s", tc.expectedName, name)
			}
		})
	}
}

func TestMongoDBRepository_EnsureTenancy(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:37019/valorant_sim"))
	if err != nil {
		t.Fatalf("Error connecting to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	collectionName := "matches"
	repo := db.NewMatchRepository(client, dbName, collectionName)

	setContextWithValues := func(ctx context.Context, tenantID, clientID, groupID, userID uuid.UUID) context.Context {
		ctx = context.WithValue(ctx, common.TenantIDKey, tenantID)
		ctx = context.WithValue(ctx, common.ClientIDKey, clientID)
		ctx = context.WithValue(ctx, common.UserIDKey, userID)
		ctx = context.WithValue(ctx, common.GroupIDKey, groupID)
		return ctx
	}

	tenantID := uuid.New()
	clientID := uuid.New()
	userID := uuid.New()
	groupID := uuid.New()

	testCases := []struct {
		name              string
		agg               bson.M
		search            common.Search
		expectedAgg       bson.M
		expectedError     error
		expectedErrorPart string
		contextValues     map[interface{}]uuid.UUID
	}{
		{
			name:          "Success - ClientApplicationAudienceIDKey",
			agg:           bson.M{},
			search:        common.Search{VisibilityOptions: common.SearchVisibilityOptions{IntendedAudience: common.ClientApplicationAudienceIDKey, RequestSource: common.ResourceOwner{TenantID: tenantID, ClientID: clientID}}},
			expectedAgg:   bson.M{"resource_owner.tenant_id": tenantID, "resource_owner.client_id": clientID},
			expectedError: nil,
			contextValues: map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.ClientIDKey: clientID},
		},
		{
			name:          "Success - GroupAudienceIDKey",
			agg:           bson.M{},
			search:        common.Search{VisibilityOptions: common.SearchVisibilityOptions{IntendedAudience: common.GroupAudienceIDKey, RequestSource: common.ResourceOwner{TenantID: tenantID, GroupID: groupID}}},
			expectedAgg:   bson.M{"resource_owner.tenant_id": tenantID, "resource_owner.group_id": groupID},
			expectedError: nil,
			contextValues: map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.GroupIDKey: groupID},
		},
		{
			name:          "Success - UserAudienceIDKey",
			agg:           bson.M{},
			search:        common.Search{VisibilityOptions: common.SearchVisibilityOptions{IntendedAudience: common.UserAudienceIDKey, RequestSource: common.ResourceOwner{TenantID: tenantID, UserID: userID}}},
			expectedAgg:   bson.M{"resource_owner.tenant_id": tenantID, "resource_owner.user_id": userID},
			expectedError: nil,
			contextValues: map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.UserIDKey: userID},
		},
		{
			name:              "Error - Empty TenantID in Search",
			agg:               bson.M{},
			search:            common.Search{VisibilityOptions: common.SearchVisibilityOptions{RequestSource: common.ResourceOwner{}}},
			expectedAgg:       bson.M{},
			expectedErrorPart: "TENANCY.RequestSource: valid tenant_id is required in queryCtx",
			contextValues:     map[interface{}]uuid.UUID{},
		},
		{
			name:              "Error - Empty ClientID in Search",
			agg:               bson.M{},
			search:            common.Search{VisibilityOptions: common.SearchVisibilityOptions{IntendedAudience: common.ClientApplicationAudienceIDKey, RequestSource: common.ResourceOwner{TenantID: tenantID}}},
			expectedAgg:       bson.M{},
			expectedErrorPart: "TENANCY.ApplicationLevel: valid client_id is required in queryCtx",
			contextValues:     map[interface{}]uuid.UUID{common.TenantIDKey: tenantID},
		},
		{
			name:              "Error - No Audience Provided",
			agg:               bson.M{},
			search:            common.Search{VisibilityOptions: common.SearchVisibilityOptions{RequestSource: common.ResourceOwner{TenantID: tenantID, ClientID: clientID}}},
			expectedAgg:       bson.M{},
			expectedErrorPart: "TENANCY.Unknown: intended audience",
			contextValues:     map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.ClientIDKey: clientID},
		},
		{
			name: "Success - EnsureUserAndGroupIDTenancy",
			agg:  bson.M{},
			search: common.Search{
				VisibilityOptions: common.SearchVisibilityOptions{
					IntendedAudience: common.UserAudienceIDKey,
					RequestSource:    common.ResourceOwner{TenantID: tenantID, UserID: userID, GroupID: groupID},
				},
			},
			expectedAgg:   bson.M{"resource_owner.tenant_id": tenantID, "$or": bson.A{bson.M{"resource_owner.group_id": groupID}, bson.M{"resource_owner.user_id": userID}}},
			expectedError: nil,
			contextValues: map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.UserIDKey: userID, common.GroupIDKey: groupID},
		},
		{
			name: "Error - EnsureUserAndGroupIDTenancy with Empty UserID",
			agg:  bson.M{},
			search: common.Search{
				VisibilityOptions: common.SearchVisibilityOptions{
					IntendedAudience: common.UserAudienceIDKey,
					RequestSource:    common.ResourceOwner{TenantID: tenantID, GroupID: groupID},
				},
			},
			expectedAgg:       bson.M{},
			expectedErrorPart: "TENANCY.UserLevel: user_id is required in search parameters for intended audience:",
			contextValues:     map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.GroupIDKey: groupID},
		},
		{
			name: "Error - EnsureUserAndGroupIDTenancy with Empty GroupID",
			agg:  bson.M{},
			search: common.Search{
				VisibilityOptions: common.SearchVisibilityOptions{
					IntendedAudience: common.GroupAudienceIDKey,
					RequestSource:    common.ResourceOwner{TenantID: tenantID, UserID: userID},
				},
			},
			expectedAgg:       bson.M{},
			expectedErrorPart: "TENANCY.GroupLevel: group_id is required in search parameters for intended audience:",
			contextValues:     map[interface{}]uuid.UUID{common.TenantIDKey: tenantID, common.UserIDKey: userID},
		},
		{
			name: "Error - EnsureUserAndGroupIDTenancy with Mismatched TenantID",
			agg:  bson.M{},
			search: common.Search{
				VisibilityOptions: common.SearchVisibilityOptions{
					IntendedAudience: common.UserAudienceIDKey,
					RequestSource:    common.ResourceOwner{TenantID: uuid.New(), UserID: userID},
				},
			},
			expectedAgg:       bson.M{},
			expectedErrorPart: "TENANCY.RequestSource: `tenant_id` in queryCtx does not match `tenant_id` in `common.Search`",
			contextValues:     map[interface{}]uuid.UUID{common.TenantIDKey: uuid.New(), common.UserIDKey: userID},
		},
		{
			name: "Error - EnsureUserAndGroupIDTenancy with Nil TenantID",
			agg:  bson.M{},
			search: common.Search{
				VisibilityOptions: common.SearchVisibilityOptions{
					IntendedAudience: common.UserAudienceIDKey,
					RequestSource:    common.ResourceOwner{TenantID: uuid.Nil, UserID: userID},
				},
			},
			expectedAgg:       bson.M{},
			expectedErrorPart: "TENANCY.RequestSource: valid tenant_id is required in queryCtx",
			contextValues:     map[interface{}]uuid.UUID{common.TenantIDKey: uuid.Nil, common.UserIDKey: userID},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setContextWithValues(context.Background(), tc.contextValues[common.TenantIDKey], tc.contextValues[common.ClientIDKey], tc.contextValues[common.GroupIDKey], tc.contextValues[common.UserIDKey])
			result, err := repo.EnsureTenancy(ctx, tc.agg, tc.search)

			if tc.expectedError != nil {
				assert.Error(t, err, tc.name)
				assert.EqualError(t, err, tc.expectedError.Error(), tc.name)
			} else if tc.expectedErrorPart != "" {
				if err == nil {
					assert.Fail(t, "expectedErrorPart is set but error is nil")
				}
				assert.Contains(t, err.Error(), tc.expectedErrorPart, tc.name)
			} else if tc.expectedAgg != nil {
				assert.NoError(t, err, tc.name)
				assert.Equal(t, tc.expectedAgg, result, tc.name)
			} else {
				assert.Fail(t, "expectedError, expectedErrorPart expectedAgg must be set")
			}
		})
	}
}
