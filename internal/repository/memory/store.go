package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository"

	"github.com/google/uuid"
)

// memoryStore implements repository.Store with per-entity in-process maps.
// It is the reference backend for tests and demos; nothing survives a
// process restart. A single RWMutex guards every map because gin runs
// handlers concurrently.
type memoryStore struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	workouts     map[string]domain.Workout
	userWorkouts map[string]domain.UserWorkout
	progress     map[string]domain.UserProgress
	goals        map[string]domain.Goal
	achievements map[string]domain.Achievement
	dietPlans    map[string]domain.DietPlan
	chatMessages map[string]domain.ChatMessage
}

// NewStore creates an empty memory store and seeds the workout catalog.
// Seeding happens exactly once, here.
func NewStore() repository.Store {
	s := &memoryStore{
		users:        make(map[string]domain.User),
		workouts:     make(map[string]domain.Workout),
		userWorkouts: make(map[string]domain.UserWorkout),
		progress:     make(map[string]domain.UserProgress),
		goals:        make(map[string]domain.Goal),
		achievements: make(map[string]domain.Achievement),
		dietPlans:    make(map[string]domain.DietPlan),
		chatMessages: make(map[string]domain.ChatMessage),
	}
	for _, w := range repository.WorkoutCatalog() {
		w.ID = uuid.NewString()
		w.CreatedAt = time.Now().UTC()
		s.workouts[w.ID] = w
	}
	return s
}

// === Users ===

func (s *memoryStore) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicateUser
		}
	}

	stored := *user
	stored.ID = uuid.NewString()
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.users[stored.ID] = stored
	return &stored, nil
}

func (s *memoryStore) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (s *memoryStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memoryStore) UpdateUserProfile(_ context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if update.Age != nil {
		user.Age = update.Age
	}
	if update.Weight != nil {
		user.Weight = *update.Weight
	}
	if update.Height != nil {
		user.Height = *update.Height
	}
	if update.FitnessGoal != nil {
		user.FitnessGoal = *update.FitnessGoal
	}
	if update.ActivityLevel != nil {
		user.ActivityLevel = *update.ActivityLevel
	}
	if update.Allergies != nil {
		user.Allergies = *update.Allergies
	}
	if update.DietaryRestrictions != nil {
		user.DietaryRestrictions = *update.DietaryRestrictions
	}
	if update.ProfileImageURL != nil {
		user.ProfileImageURL = *update.ProfileImageURL
	}
	user.UpdatedAt = time.Now().UTC()

	s.users[userID] = user
	return &user, nil
}

// === Workout catalog ===

func (s *memoryStore) ListWorkouts(_ context.Context) ([]domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workouts := make([]domain.Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		workouts = append(workouts, w)
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].Name < workouts[j].Name })
	return workouts, nil
}

func (s *memoryStore) ListWorkoutsByCategory(_ context.Context, category domain.WorkoutCategory) ([]domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workouts := make([]domain.Workout, 0)
	for _, w := range s.workouts {
		if w.Category == category {
			workouts = append(workouts, w)
		}
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].Name < workouts[j].Name })
	return workouts, nil
}

func (s *memoryStore) GetWorkout(_ context.Context, id string) (*domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workout, ok := s.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &workout, nil
}

// === Logged workout sessions ===

func (s *memoryStore) LogWorkout(_ context.Context, session *domain.UserWorkout) (*domain.UserWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	stored.ID = uuid.NewString()
	stored.CompletedAt = time.Now().UTC()
	s.userWorkouts[stored.ID] = stored
	return &stored, nil
}

func (s *memoryStore) ListUserWorkouts(_ context.Context, userID string) ([]domain.UserWorkout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]domain.UserWorkout, 0)
	for _, w := range s.userWorkouts {
		if w.UserID == userID {
			sessions = append(sessions, w)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CompletedAt.After(sessions[j].CompletedAt) })
	return sessions, nil
}

func (s *memoryStore) GetUserWorkoutStats(ctx context.Context, userID string) (*domain.WorkoutStats, error) {
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

// === Progress tracking ===

func (s *memoryStore) LogProgress(_ context.Context, progress *domain.UserProgress) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *progress
	stored.ID = uuid.NewString()
	stored.Date = time.Now().UTC()
	s.progress[stored.ID] = stored
	return &stored, nil
}

func (s *memoryStore) ListUserProgress(_ context.Context, userID string, days int) ([]domain.UserProgress, error) {
	if days <= 0 {
		days = repository.DefaultProgressWindowDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.UserProgress, 0)
	for _, p := range s.progress {
		if p.UserID == userID && !p.Date.Before(cutoff) {
			entries = append(entries, p)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

// === Goals ===

func (s *memoryStore) CreateGoal(_ context.Context, goal *domain.Goal) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *goal
	stored.ID = uuid.NewString()
	// Server-controlled starting state, whatever the caller sent.
	stored.CurrentValue = 0
	stored.IsCompleted = false
	stored.CreatedAt = time.Now().UTC()
	s.goals[stored.ID] = stored
	return &stored, nil
}

func (s *memoryStore) GetGoal(_ context.Context, id string) (*domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal, ok := s.goals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &goal, nil
}

func (s *memoryStore) ListUserGoals(_ context.Context, userID string) ([]domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]domain.Goal, 0)
	for _, g := range s.goals {
		if g.UserID == userID {
			goals = append(goals, g)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].CreatedAt.Before(goals[j].CreatedAt) })
	return goals, nil
}

func (s *memoryStore) UpdateGoal(_ context.Context, id string, update domain.GoalUpdate) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, ok := s.goals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if update.Title != nil {
		goal.Title = *update.Title
	}
	if update.Description != nil {
		goal.Description = *update.Description
	}
	if update.TargetValue != nil {
		goal.TargetValue = *update.TargetValue
	}
	if update.CurrentValue != nil {
		goal.CurrentValue = *update.CurrentValue
	}
	if update.TargetDate != nil {
		goal.TargetDate = update.TargetDate
	}
	if update.IsCompleted != nil {
		goal.IsCompleted = *update.IsCompleted
	}

	s.goals[id] = goal
	return &goal, nil
}

// === Achievements ===

func (s *memoryStore) CreateAchievement(_ context.Context, achievement *domain.Achievement) (*domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *achievement
	stored.ID = uuid.NewString()
	stored.EarnedAt = time.Now().UTC()
	s.achievements[stored.ID] = stored
	return &stored, nil
}

func (s *memoryStore) ListUserAchievements(_ context.Context, userID string) ([]domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	achievements := make([]domain.Achievement, 0)
	for _, a := range s.achievements {
		if a.UserID == userID {
			achievements = append(achievements, a)
		}
	}
	sort.Slice(achievements, func(i, j int) bool { return achievements[i].EarnedAt.Before(achievements[j].EarnedAt) })
	return achievements, nil
}

// === Diet plans ===

func (s *memoryStore) CreateDietPlan(_ context.Context, plan *domain.DietPlan) (*domain.DietPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *plan
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()
	if stored.Meals == nil {
		stored.Meals = []domain.MealDay{}
	}
	s.dietPlans[stored.ID] = stored
	return &stored, nil
}

func (s *memoryStore) ListUserDietPlans(_ context.Context, userID string) ([]domain.DietPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plans := make([]domain.DietPlan, 0)
	for _, p := range s.dietPlans {
		if p.UserID == userID {
			plans = append(plans, p)
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].CreatedAt.Before(plans[j].CreatedAt) })
	return plans, nil
}

// GetActiveDietPlan returns the first plan flagged active. Several plans may
// be active at once; no uniqueness is enforced.
func (s *memoryStore) GetActiveDietPlan(ctx context.Context, userID string) (*domain.DietPlan, error) {
	plans, err := s.ListUserDietPlans(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		if p.IsActive {
			plan := p
			return &plan, nil
		}
	}
	return nil, repository.ErrNotFound
}

// === Chat messages ===

func (s *memoryStore) SaveChatMessage(_ context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *message
	stored.ID = uuid.NewString()
	stored.Timestamp = time.Now().UTC()
	s.chatMessages[stored.ID] = stored
	return &stored, nil
}

func (s *memoryStore) ListUserChatHistory(_ context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = repository.DefaultChatHistoryLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]domain.ChatMessage, 0)
	for _, m := range s.chatMessages {
		if m.UserID == userID {
			messages = append(messages, m)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].Timestamp.After(messages[j].Timestamp) })
	if len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}
