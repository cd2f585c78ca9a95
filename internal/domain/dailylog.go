// File: internal/domain/dailylog.go
package domain

import "time"

// DailyLog records minutes spent on a domain for one calendar date.
// Date is a plain YYYY-MM-DD string so lookups match the UI's day keys.
type DailyLog struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Date         string    `json:"date" gorm:"not null;index"`
	DomainID     string    `json:"domain_id"`
	MinutesSpent int       `json:"minutes_spent" gorm:"default:0"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
