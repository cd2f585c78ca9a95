// File: internal/domain/domain.go
package domain

import (
	"errors"
	"strings"
	"time"
)

// Urgency levels produced and consumed by the dashboard. The column is an
// open TEXT field, but only these three values carry meaning.
const (
	UrgencyCritical = "CRITICAL"
	UrgencyHigh     = "HIGH"
	UrgencyMedium   = "MEDIUM"
)

// Domain is a tracked goal with a bounded progress percentage.
//
// The id is the sole join key: string, unique, immutable once created.
// Label, color, background, icon and win are presentation metadata set once
// at seed time; the update path only touches progress, status, days and
// urgency.
type Domain struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Label      string    `json:"label" gorm:"not null"`
	Color      string    `json:"color"`
	Background string    `json:"bg" gorm:"column:bg"`
	Icon       string    `json:"icon"`
	Win        string    `json:"win"`
	Status     string    `json:"status"`
	Urgency    string    `json:"urgency"`
	Days       int       `json:"days"`
	Progress   int       `json:"progress" gorm:"default:0"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (d *Domain) IsValid() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("domain id is required")
	}
	if strings.TrimSpace(d.Label) == "" {
		return errors.New("domain label is required")
	}
	return nil
}

// ClampProgress bounds a requested progress value to [0, 100]. Every write
// path goes through this; no stored progress may leave the range.
func ClampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
