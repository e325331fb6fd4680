package mongo

import (
	"context"
	"log"
	"time"

	"fitflow/fitness-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per entity family.
const (
	userCollectionName        = "users"
	workoutCollectionName     = "workouts"
	userWorkoutCollectionName = "user_workouts"
	progressCollectionName    = "user_progress"
	goalCollectionName        = "goals"
	achievementCollectionName = "achievements"
	dietPlanCollectionName    = "diet_plans"
	chatMessageCollectionName = "chat_messages"
)

// mongoStore implements repository.Store on MongoDB. Documents use the same
// bson-tagged domain structs as the memory store; _id is the uuid string.
type mongoStore struct {
	db *mongo.Database
}

// NewStore creates a Mongo-backed store and seeds the workout catalog if the
// workouts collection is empty, so the seed stays idempotent across restarts.
func NewStore(ctx context.Context, db *mongo.Database) (repository.Store, error) {
	s := &mongoStore{db: db}
	if err := s.seedWorkoutCatalog(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *mongoStore) seedWorkoutCatalog(ctx context.Context) error {
	coll := s.db.Collection(workoutCollectionName)
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := repository.WorkoutCatalog()
	docs := make([]interface{}, 0, len(catalog))
	for _, w := range catalog {
		w.ID = uuid.NewString()
		w.CreatedAt = time.Now().UTC()
		docs = append(docs, w)
	}
	_, err = coll.InsertMany(ctx, docs)
	return err
}

// EnsureIndexes creates the secondary indexes used by per-user queries.
// Call once during application startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	byUser := func(coll string, extra ...string) {
		keys := bson.D{{Key: "userId", Value: 1}}
		for _, k := range extra {
			keys = append(keys, bson.E{Key: k, Value: -1})
		}
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys})
		if err != nil {
			log.Printf("WARN: Failed to create index for collection %s: %v", coll, err)
		}
	}

	_, err := db.Collection(userCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("WARN: Failed to create unique email index: %v", err)
	}

	byUser(userWorkoutCollectionName, "completedAt")
	byUser(progressCollectionName, "date")
	byUser(goalCollectionName)
	byUser(achievementCollectionName)
	byUser(dietPlanCollectionName)
	byUser(chatMessageCollectionName, "timestamp")

	_, err = db.Collection(workoutCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	if err != nil {
		log.Printf("WARN: Failed to create workout category index: %v", err)
	}
}

// findAll decodes every document matching filter into a slice of T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
