package domain

import (
	"time"
)

// Goal is a user-defined target. CurrentValue and IsCompleted always start at
// their zero values on creation, regardless of caller input, and change only
// through an explicit update.
type Goal struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	UserID       string     `bson:"userId" json:"userId"`
	Type         string     `bson:"type" json:"type"` // workout_count, calories_burned, weight_loss, ...
	Title        string     `bson:"title" json:"title"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	TargetValue  int        `bson:"targetValue,omitempty" json:"targetValue,omitempty"`
	CurrentValue int        `bson:"currentValue" json:"currentValue"`
	TargetDate   *time.Time `bson:"targetDate,omitempty" json:"targetDate,omitempty"`
	IsCompleted  bool       `bson:"isCompleted" json:"isCompleted"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
}

// GoalUpdate carries a partial goal mutation; nil fields are left untouched.
type GoalUpdate struct {
	Title        *string    `bson:"title,omitempty"`
	Description  *string    `bson:"description,omitempty"`
	TargetValue  *int       `bson:"targetValue,omitempty"`
	CurrentValue *int       `bson:"currentValue,omitempty"`
	TargetDate   *time.Time `bson:"targetDate,omitempty"`
	IsCompleted  *bool      `bson:"isCompleted,omitempty"`
}
