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

func (s *mongoStore) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.PasswordHash == "" {
		return nil, errors.New("user email and password hash are required")
	}

	stored := *user
	stored.ID = uuid.NewString()
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err := s.db.Collection(userCollectionName).InsertOne(ctx, stored)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateUser
		}
		return nil, err
	}
	return &stored, nil
}

func (s *mongoStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := s.db.Collection(userCollectionName).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *mongoStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.Collection(userCollectionName).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *mongoStore) UpdateUserProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Age != nil {
		set["age"] = *update.Age
	}
	if update.Weight != nil {
		set["weight"] = *update.Weight
	}
	if update.Height != nil {
		set["height"] = *update.Height
	}
	if update.FitnessGoal != nil {
		set["fitnessGoal"] = *update.FitnessGoal
	}
	if update.ActivityLevel != nil {
		set["activityLevel"] = *update.ActivityLevel
	}
	if update.Allergies != nil {
		set["allergies"] = *update.Allergies
	}
	if update.DietaryRestrictions != nil {
		set["dietaryRestrictions"] = *update.DietaryRestrictions
	}
	if update.ProfileImageURL != nil {
		set["profileImageUrl"] = *update.ProfileImageURL
	}

	var user domain.User
	err := s.db.Collection(userCollectionName).FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
