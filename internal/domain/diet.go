package domain

import (
	"time"
)

// MealDay is one day of a generated meal plan.
type MealDay struct {
	Day       string   `bson:"day" json:"day"`
	Breakfast string   `bson:"breakfast" json:"breakfast"`
	Lunch     string   `bson:"lunch" json:"lunch"`
	Dinner    string   `bson:"dinner" json:"dinner"`
	Snacks    []string `bson:"snacks" json:"snacks"`
}

// DietPlan is an AI-generated weekly meal plan. A user may hold several plans
// at once; generation flags the new plan active without deactivating earlier
// ones, so "active" is not unique.
type DietPlan struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	WeekNumber    int       `bson:"weekNumber" json:"weekNumber"`
	DailyCalories int       `bson:"dailyCalories,omitempty" json:"dailyCalories,omitempty"`
	ProteinGoal   int       `bson:"proteinGoal,omitempty" json:"proteinGoal,omitempty"` // grams
	CarbGoal      int       `bson:"carbGoal,omitempty" json:"carbGoal,omitempty"`
	FatGoal       int       `bson:"fatGoal,omitempty" json:"fatGoal,omitempty"`
	Meals         []MealDay `bson:"meals" json:"meals"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
