package service

import (
	"context"

	"fitflow/fitness-app/internal/ai"
	"fitflow/fitness-app/internal/domain"
	"fitflow/fitness-app/internal/repository"
)

// ChatService relays user messages to the coach persona and persists the
// exchange. Reply generation and persistence form one client-visible
// operation; a message is never stored without its response.
type ChatService interface {
	SendMessage(ctx context.Context, userID, message string) (*domain.ChatMessage, error)
	History(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error)
}

type chatService struct {
	store repository.Store
	ai    *ai.Client
}

// NewChatService creates a new instance of chatService.
func NewChatService(store repository.Store, aiClient *ai.Client) ChatService {
	return &chatService{store: store, ai: aiClient}
}

func (s *chatService) SendMessage(ctx context.Context, userID, message string) (*domain.ChatMessage, error) {
	reply, err := s.ai.ChatReply(ctx, message)
	if err != nil {
		return nil, err
	}

	return s.store.SaveChatMessage(ctx, &domain.ChatMessage{
		UserID:   userID,
		Message:  message,
		Response: reply,
	})
}

func (s *chatService) History(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	return s.store.ListUserChatHistory(ctx, userID, limit)
}
