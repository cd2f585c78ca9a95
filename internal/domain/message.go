// File: internal/domain/message.go
package domain

import "time"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one append-only record of the conversation with the
// assistant. Messages are never edited or deleted; CreatedAt order is
// history order.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Role      string    `json:"role" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *ChatMessage) TableName() string {
	return "chat_history"
}
