// File: internal/repository/message/interface.go
package message

import (
	"context"

	"lifeboard/internal/domain"
)

// MessageRepository handles the append-only chat history log.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error)
	// FindRecent returns the newest limit messages in chronological order
	// (oldest of the window first).
	FindRecent(ctx context.Context, limit int) ([]domain.ChatMessage, error)
	CountTotal(ctx context.Context) (int64, error)
}
