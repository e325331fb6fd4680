package repository

import (
	"context"

	"fitflow/fitness-app/internal/domain"
)

// Error constants for the storage layer.
var (
	ErrNotFound      = StoreError("not found")
	ErrDuplicateUser = StoreError("user with this email already exists")
)

// StoreError helps distinguish storage errors.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// DefaultProgressWindowDays is the lookback applied when a progress query
// gives no explicit window.
const DefaultProgressWindowDays = 30

// DefaultChatHistoryLimit caps chat history reads with no explicit limit.
const DefaultChatHistoryLimit = 50

// Store is the single owner of all persisted state. Absence of a record is a
// valid outcome for reads (nil, ErrNotFound); only updates of a missing record
// are error conditions callers must not hit in the normal flow.
//
// The memory implementation is authoritative for tests and demos; the mongo
// implementation substitutes a durable backend behind the same contract.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUserProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error)

	// Workout catalog (immutable after seed)
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	ListWorkoutsByCategory(ctx context.Context, category domain.WorkoutCategory) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id string) (*domain.Workout, error)

	// Logged workout sessions
	LogWorkout(ctx context.Context, session *domain.UserWorkout) (*domain.UserWorkout, error)
	ListUserWorkouts(ctx context.Context, userID string) ([]domain.UserWorkout, error)
	GetUserWorkoutStats(ctx context.Context, userID string) (*domain.WorkoutStats, error)

	// Progress tracking
	LogProgress(ctx context.Context, progress *domain.UserProgress) (*domain.UserProgress, error)
	ListUserProgress(ctx context.Context, userID string, days int) ([]domain.UserProgress, error)

	// Goals
	CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	GetGoal(ctx context.Context, id string) (*domain.Goal, error)
	ListUserGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, id string, update domain.GoalUpdate) (*domain.Goal, error)

	// Achievements (append-only)
	CreateAchievement(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error)
	ListUserAchievements(ctx context.Context, userID string) ([]domain.Achievement, error)

	// Diet plans
	CreateDietPlan(ctx context.Context, plan *domain.DietPlan) (*domain.DietPlan, error)
	ListUserDietPlans(ctx context.Context, userID string) ([]domain.DietPlan, error)
	GetActiveDietPlan(ctx context.Context, userID string) (*domain.DietPlan, error)

	// Chat messages
	SaveChatMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)
	ListUserChatHistory(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error)
}
