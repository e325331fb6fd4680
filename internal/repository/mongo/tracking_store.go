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

// === Progress tracking ===

func (s *mongoStore) LogProgress(ctx context.Context, progress *domain.UserProgress) (*domain.UserProgress, error) {
	stored := *progress
	stored.ID = uuid.NewString()
	stored.Date = time.Now().UTC()

	if _, err := s.db.Collection(progressCollectionName).InsertOne(ctx, stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *mongoStore) ListUserProgress(ctx context.Context, userID string, days int) ([]domain.UserProgress, error) {
	if days <= 0 {
		days = repository.DefaultProgressWindowDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	filter := bson.M{"userId": userID, "date": bson.M{"$gte": cutoff}}
	return findAll[domain.UserProgress](ctx, s.db.Collection(progressCollectionName), filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

// === Goals ===

func (s *mongoStore) CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	stored := *goal
	stored.ID = uuid.NewString()
	// Server-controlled starting state, whatever the caller sent.
	stored.CurrentValue = 0
	stored.IsCompleted = false
	stored.CreatedAt = time.Now().UTC()

	if _, err := s.db.Collection(goalCollectionName).InsertOne(ctx, stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *mongoStore) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	var goal domain.Goal
	err := s.db.Collection(goalCollectionName).FindOne(ctx, bson.M{"_id": id}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (s *mongoStore) ListUserGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	return findAll[domain.Goal](ctx, s.db.Collection(goalCollectionName), bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

func (s *mongoStore) UpdateGoal(ctx context.Context, id string, update domain.GoalUpdate) (*domain.Goal, error) {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.TargetValue != nil {
		set["targetValue"] = *update.TargetValue
	}
	if update.CurrentValue != nil {
		set["currentValue"] = *update.CurrentValue
	}
	if update.TargetDate != nil {
		set["targetDate"] = *update.TargetDate
	}
	if update.IsCompleted != nil {
		set["isCompleted"] = *update.IsCompleted
	}
	if len(set) == 0 {
		return s.GetGoal(ctx, id)
	}

	var goal domain.Goal
	err := s.db.Collection(goalCollectionName).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// === Achievements ===

func (s *mongoStore) CreateAchievement(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error) {
	stored := *achievement
	stored.ID = uuid.NewString()
	stored.EarnedAt = time.Now().UTC()

	if _, err := s.db.Collection(achievementCollectionName).InsertOne(ctx, stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *mongoStore) ListUserAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	return findAll[domain.Achievement](ctx, s.db.Collection(achievementCollectionName), bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "earnedAt", Value: 1}}))
}
