package mongo

import (
	"context"
	"errors"
	"time"

	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// === Workout catalog (read-only after seed) ===

func (s *mongoStore) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return findAll[domain.Workout](ctx, s.db.Collection(workoutCollectionName), bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (s *mongoStore) ListWorkoutsByCategory(ctx context.Context, category domain.WorkoutCategory) ([]domain.Workout, error) {
	return findAll[domain.Workout](ctx, s.db.Collection(workoutCollectionName), bson.M{"category": category},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (s *mongoStore) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	var workout domain.Workout
	err := s.db.Collection(workoutCollectionName).FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// === Logged workout sessions ===

func (s *mongoStore) LogWorkout(ctx context.Context, session *domain.UserWorkout) (*domain.UserWorkout, error) {
	stored := *session
	stored.ID = uuid.NewString()
	stored.CompletedAt = time.Now().UTC()

	if _, err := s.db.Collection(userWorkoutCollectionName).InsertOne(ctx, stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *mongoStore) ListUserWorkouts(ctx context.Context, userID string) ([]domain.UserWorkout, error) {
	return findAll[domain.UserWorkout](ctx, s.db.Collection(userWorkoutCollectionName), bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}}))
}

func (s *mongoStore) GetUserWorkoutStats(ctx context.Context, userID string) (*domain.WorkoutStats, error) {
	sessions, err := s.ListUserWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &domain.WorkoutStats{TotalWorkouts: len(sessions)}
	for _, w := range sessions {
		stats.TotalCalories += w.CaloriesBurned
		stats.TotalMinutes += w.Duration
	}
	if stats.TotalWorkouts > 0 {
		stats.AvgCaloriesPerWorkout = int(float64(stats.TotalCalories)/float64(stats.TotalWorkouts) + 0.5)
	}
	return stats, nil
}
