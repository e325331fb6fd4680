package domain

import (
	"time"
)

// UserProgress is one daily-metrics logging event. Multiple entries per day
// are allowed; the record date is always server-assigned.
type UserProgress struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"userId" json:"userId"`
	Date             time.Time `bson:"date" json:"date"`
	Weight           float64   `bson:"weight,omitempty" json:"weight,omitempty"`
	CaloriesConsumed int       `bson:"caloriesConsumed,omitempty" json:"caloriesConsumed,omitempty"`
	CaloriesBurned   int       `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"`
	WaterIntake      float64   `bson:"waterIntake,omitempty" json:"waterIntake,omitempty"` // liters
	Mood             string    `bson:"mood,omitempty" json:"mood,omitempty"`
	EnergyLevel      int       `bson:"energyLevel,omitempty" json:"energyLevel,omitempty"` // 1-10
}
