package domain

import (
	"time"
)

// FitnessGoal enumerates the supported fitness objectives for a profile.
type FitnessGoal string

const (
	GoalWeightLoss          FitnessGoal = "weight_loss"
	GoalMuscleGain          FitnessGoal = "muscle_gain"
	GoalMaintenance         FitnessGoal = "maintenance"
	GoalAthleticPerformance FitnessGoal = "athletic_performance"
)

// ActivityLevel enumerates self-reported activity levels.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
)

// User represents an account plus its fitness profile.
type User struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`    // Should be unique
	PasswordHash string `bson:"passwordHash" json:"-"` // Never expose this via JSON

	// --- Fitness profile ---
	Age                 *int          `bson:"age,omitempty" json:"age,omitempty"`
	Weight              string        `bson:"weight,omitempty" json:"weight,omitempty"` // free-form, e.g. "72.5"
	Height              string        `bson:"height,omitempty" json:"height,omitempty"`
	FitnessGoal         FitnessGoal   `bson:"fitnessGoal,omitempty" json:"fitnessGoal,omitempty"`
	ActivityLevel       ActivityLevel `bson:"activityLevel,omitempty" json:"activityLevel,omitempty"`
	Allergies           string        `bson:"allergies,omitempty" json:"allergies,omitempty"`
	DietaryRestrictions string        `bson:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`
	ProfileImageURL     string        `bson:"profileImageUrl,omitempty" json:"profileImageUrl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched; only the enumerated fields here may change after registration.
type ProfileUpdate struct {
	Age                 *int           `bson:"age,omitempty"`
	Weight              *string        `bson:"weight,omitempty"`
	Height              *string        `bson:"height,omitempty"`
	FitnessGoal         *FitnessGoal   `bson:"fitnessGoal,omitempty"`
	ActivityLevel       *ActivityLevel `bson:"activityLevel,omitempty"`
	Allergies           *string        `bson:"allergies,omitempty"`
	DietaryRestrictions *string        `bson:"dietaryRestrictions,omitempty"`
	ProfileImageURL     *string        `bson:"profileImageUrl,omitempty"`
}
