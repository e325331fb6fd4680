package domain

import (
	"time"
)

// Achievement is an append-only milestone badge. Achievements are synthesized
// server-side when a counted metric hits a fixed threshold; there is no route
// that creates one directly.
type Achievement struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	BadgeID     string    `bson:"badgeId" json:"badgeId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	EarnedAt    time.Time `bson:"earnedAt" json:"earnedAt"`
}
