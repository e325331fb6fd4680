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

// === Diet plans ===

func (s *mongoStore) CreateDietPlan(ctx context.Context, plan *domain.DietPlan) (*domain.DietPlan, error) {
	stored := *plan
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()
	if stored.Meals == nil {
		stored.Meals = []domain.MealDay{}
	}

	if _, err := s.db.Collection(dietPlanCollectionName).InsertOne(ctx, stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *mongoStore) ListUserDietPlans(ctx context.Context, userID string) ([]domain.DietPlan, error) {
	return findAll[domain.DietPlan](ctx, s.db.Collection(dietPlanCollectionName), bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

// GetActiveDietPlan returns the earliest plan flagged active; uniqueness of
// the active flag is not enforced.
func (s *mongoStore) GetActiveDietPlan(ctx context.Context, userID string) (*domain.DietPlan, error) {
	var plan domain.DietPlan
	err := s.db.Collection(dietPlanCollectionName).FindOne(
		ctx,
		bson.M{"userId": userID, "isActive": true},
		options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// === Chat messages ===

func (s *mongoStore) SaveChatMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	stored := *message
	stored.ID = uuid.NewString()
	stored.Timestamp = time.Now().UTC()

	if _, err := s.db.Collection(chatMessageCollectionName).InsertOne(ctx, stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *mongoStore) ListUserChatHistory(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = repository.DefaultChatHistoryLimit
	}
	return findAll[domain.ChatMessage](ctx, s.db.Collection(chatMessageCollectionName), bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit)))
}
