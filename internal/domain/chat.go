package domain

import (
	"time"
)

// ChatMessage pairs a user message with the coach reply. The reply is filled
// before the record is persisted; a saved message never has an empty response
// in the normal flow.
type ChatMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Message   string    `bson:"message" json:"message"`
	Response  string    `bson:"response,omitempty" json:"response,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
