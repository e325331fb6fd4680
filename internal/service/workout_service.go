package service

import (
	"context"
	"errors"
	"log"

	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

// Workout-count milestones. The trigger is strict equality on the total
// session count, so an 11th workout never re-awards a badge.
var workoutMilestones = map[int]domain.Achievement{
	5: {
		BadgeID:     "cardio_king",
		Title:       "Cardio King",
		Description: "Complete 5 cardio sessions",
		Icon:        "🏃‍♀️",
	},
	10: {
		BadgeID:     "strength_warrior",
		Title:       "Strength Warrior",
		Description: "Complete 10 strength workouts",
		Icon:        "💪",
	},
}

// WorkoutService exposes the seeded catalog and per-user session tracking.
type WorkoutService interface {
	ListCatalog(ctx context.Context, category string) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id string) (*domain.Workout, error)
	LogWorkout(ctx context.Context, userID string, session *domain.UserWorkout) (*domain.UserWorkout, error)
	History(ctx context.Context, userID string) ([]domain.UserWorkout, error)
	Stats(ctx context.Context, userID string) (*domain.WorkoutStats, error)
}

type workoutService struct {
	store repository.Store
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(store repository.Store) WorkoutService {
	return &workoutService{store: store}
}

// ListCatalog returns the workout catalog, optionally filtered by category.
// An empty category or "all" returns everything.
func (s *workoutService) ListCatalog(ctx context.Context, category string) ([]domain.Workout, error) {
	if category == "" || category == "all" {
		return s.store.ListWorkouts(ctx)
	}
	return s.store.ListWorkoutsByCategory(ctx, domain.WorkoutCategory(category))
}

func (s *workoutService) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	workout, err := s.store.GetWorkout(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// LogWorkout persists a completed session and synthesizes a milestone
// achievement when the user's total count lands exactly on a threshold.
func (s *workoutService) LogWorkout(ctx context.Context, userID string, session *domain.UserWorkout) (*domain.UserWorkout, error) {
	session.UserID = userID

	logged, err := s.store.LogWorkout(ctx, session)
	if err != nil {
		return nil, err
	}

	sessions, err := s.store.ListUserWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	if badge, ok := workoutMilestones[len(sessions)]; ok {
		badge.UserID = userID
		if _, err := s.store.CreateAchievement(ctx, &badge); err != nil {
			// The session itself is saved; losing the badge is not worth
			// failing the request over.
			log.Printf("ERROR: Failed to create milestone achievement for user %s: %v", userID, err)
		}
	}

	return logged, nil
}

func (s *workoutService) History(ctx context.Context, userID string) ([]domain.UserWorkout, error) {
	return s.store.ListUserWorkouts(ctx, userID)
}

func (s *workoutService) Stats(ctx context.Context, userID string) (*domain.WorkoutStats, error) {
	return s.store.GetUserWorkoutStats(ctx, userID)
}
