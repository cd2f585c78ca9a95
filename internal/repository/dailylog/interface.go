// File: internal/repository/dailylog/interface.go
package dailylog

import (
	"context"

	"lifeboard/internal/domain"
)

// DailyLogRepository handles time-spent log entries.
type DailyLogRepository interface {
	Create(ctx context.Context, entry *domain.DailyLog) (*domain.DailyLog, error)
	FindByDate(ctx context.Context, date string) ([]domain.DailyLog, error)
}
