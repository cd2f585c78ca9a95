// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"lifeboard/internal/domain"
)

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) Create(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	if err := r.validateMessageInput(msg); err != nil {
		log.Printf("[MessageRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	err := r.db.WithContext(ctx).Create(msg).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error creating %s message: %v", msg.Role, err)
		return nil, errors.New("database error creating message")
	}
	return msg, nil
}

// FindRecent fetches the newest limit rows and reverses them, so the caller
// always sees the window oldest-first regardless of its size.
func (r *gormMessageRepository) FindRecent(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 || limit > 1000 {
		limit = 50
	}

	var messages []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error fetching recent messages: %v", err)
		return nil, errors.New("database error fetching messages")
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *gormMessageRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ChatMessage{}).Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages: %v", err)
		return 0, errors.New("database error counting messages")
	}
	return count, nil
}

func (r *gormMessageRepository) validateMessageInput(msg *domain.ChatMessage) error {
	if msg == nil {
		return errors.New("message cannot be nil")
	}
	if msg.Role != domain.RoleUser && msg.Role != domain.RoleAssistant {
		return fmt.Errorf("invalid message role %q", msg.Role)
	}
	if strings.TrimSpace(msg.Content) == "" {
		return errors.New("message content cannot be empty")
	}
	return nil
}
