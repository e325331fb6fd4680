package service

import (
	"context"
	"errors"

	"fitflow/fitness-app/internal/ai"
	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository"
)

// DietService generates weekly meal plans through the AI client and owns the
// persisted plans.
type DietService interface {
	GeneratePlan(ctx context.Context, userID string, req ai.DietPlanRequest) (*domain.DietPlan, error)
	Plans(ctx context.Context, userID string) ([]domain.DietPlan, error)
	// ActivePlan returns the first active plan, or nil when the user has none.
	ActivePlan(ctx context.Context, userID string) (*domain.DietPlan, error)
}

type dietService struct {
	store repository.Store
	ai    *ai.Client
}

// NewDietService creates a new instance of dietService.
func NewDietService(store repository.Store, aiClient *ai.Client) DietService {
	return &dietService{store: store, ai: aiClient}
}

// GeneratePlan asks the model for a plan and persists it flagged active.
// Earlier plans keep their active flag; "active" is not exclusive.
func (s *dietService) GeneratePlan(ctx context.Context, userID string, req ai.DietPlanRequest) (*domain.DietPlan, error) {
	content, err := s.ai.GenerateDietPlan(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.store.CreateDietPlan(ctx, &domain.DietPlan{
		UserID:        userID,
		WeekNumber:    1,
		DailyCalories: content.DailyCalories,
		ProteinGoal:   content.ProteinGoal,
		CarbGoal:      content.CarbGoal,
		FatGoal:       content.FatGoal,
		Meals:         content.Meals,
		IsActive:      true,
	})
}

func (s *dietService) Plans(ctx context.Context, userID string) ([]domain.DietPlan, error) {
	return s.store.ListUserDietPlans(ctx, userID)
}

func (s *dietService) ActivePlan(ctx context.Context, userID string) (*domain.DietPlan, error) {
	plan, err := s.store.GetActiveDietPlan(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil // no active plan is a valid outcome
		}
		return nil, err
	}
	return plan, nil
}
