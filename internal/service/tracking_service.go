package service

import (
	"context"
	"errors"

	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrGoalAccessDenied = errors.New("goal does not belong to this user")
)

// TrackingService owns progress entries, goals and the achievement list.
type TrackingService interface {
	LogProgress(ctx context.Context, userID string, entry *domain.UserProgress) (*domain.UserProgress, error)
	Progress(ctx context.Context, userID string, days int) ([]domain.UserProgress, error)

	CreateGoal(ctx context.Context, userID string, goal *domain.Goal) (*domain.Goal, error)
	Goals(ctx context.Context, userID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, update domain.GoalUpdate) (*domain.Goal, error)

	Achievements(ctx context.Context, userID string) ([]domain.Achievement, error)
}

type trackingService struct {
	store repository.Store
}

// NewTrackingService creates a new instance of trackingService.
func NewTrackingService(store repository.Store) TrackingService {
	return &trackingService{store: store}
}

func (s *trackingService) LogProgress(ctx context.Context, userID string, entry *domain.UserProgress) (*domain.UserProgress, error) {
	entry.UserID = userID
	return s.store.LogProgress(ctx, entry)
}

func (s *trackingService) Progress(ctx context.Context, userID string, days int) ([]domain.UserProgress, error) {
	return s.store.ListUserProgress(ctx, userID, days)
}

// CreateGoal persists a goal. The store forces CurrentValue/IsCompleted to
// their starting state whatever the caller supplied.
func (s *trackingService) CreateGoal(ctx context.Context, userID string, goal *domain.Goal) (*domain.Goal, error) {
	goal.UserID = userID
	return s.store.CreateGoal(ctx, goal)
}

func (s *trackingService) Goals(ctx context.Context, userID string) ([]domain.Goal, error) {
	return s.store.ListUserGoals(ctx, userID)
}

// UpdateGoal applies a partial update after verifying the goal belongs to the
// caller.
func (s *trackingService) UpdateGoal(ctx context.Context, userID, goalID string, update domain.GoalUpdate) (*domain.Goal, error) {
	goal, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrGoalAccessDenied
	}

	updated, err := s.store.UpdateGoal(ctx, goalID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *trackingService) Achievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	return s.store.ListUserAchievements(ctx, userID)
}
