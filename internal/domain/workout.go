package domain

import (
	"time"
)

// WorkoutCategory is the difficulty tier of a catalog workout.
type WorkoutCategory string

const (
	CategoryBeginner     WorkoutCategory = "beginner"
	CategoryIntermediate WorkoutCategory = "intermediate"
	CategoryAdvanced     WorkoutCategory = "advanced"
)

// Exercise is one step inside a catalog workout. Duration is in seconds;
// either Duration or Reps may be unset depending on the exercise.
type Exercise struct {
	Name     string `bson:"name" json:"name"`
	Duration *int   `bson:"duration,omitempty" json:"duration"`
	Reps     *int   `bson:"reps,omitempty" json:"reps"`
}

// Workout is an entry in the fixed workout catalog. The catalog is seeded at
// startup and immutable afterwards; there is no update or delete path.
type Workout struct {
	ID             string          `bson:"_id,omitempty" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Description    string          `bson:"description,omitempty" json:"description,omitempty"`
	Category       WorkoutCategory `bson:"category" json:"category"`
	Type           string          `bson:"type" json:"type"`                     // cardio, strength, yoga, hiit, ...
	Duration       int             `bson:"duration" json:"duration"`             // minutes
	CaloriesBurned int             `bson:"caloriesBurned" json:"caloriesBurned"` // estimate
	VideoURL       string          `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	ImageURL       string          `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Exercises      []Exercise      `bson:"exercises" json:"exercises"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
}

// WorkoutMood enumerates how the user felt after a logged session.
type WorkoutMood string

const (
	MoodEnergetic WorkoutMood = "energetic"
	MoodHappy     WorkoutMood = "happy"
	MoodMotivated WorkoutMood = "motivated"
	MoodTired     WorkoutMood = "tired"
)

// UserWorkout is one logged workout session. Created once per session and
// never mutated afterwards.
type UserWorkout struct {
	ID             string      `bson:"_id,omitempty" json:"id"`
	UserID         string      `bson:"userId" json:"userId"`
	WorkoutID      string      `bson:"workoutId" json:"workoutId"`
	CompletedAt    time.Time   `bson:"completedAt" json:"completedAt"`
	Duration       int         `bson:"duration,omitempty" json:"duration,omitempty"` // actual minutes
	CaloriesBurned int         `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"`
	Mood           WorkoutMood `bson:"mood,omitempty" json:"mood,omitempty"`
	Notes          string      `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutStats aggregates a user's logged sessions.
type WorkoutStats struct {
	TotalWorkouts         int `json:"totalWorkouts"`
	TotalCalories         int `json:"totalCalories"`
	TotalMinutes          int `json:"totalMinutes"`
	AvgCaloriesPerWorkout int `json:"avgCaloriesPerWorkout"`
}
