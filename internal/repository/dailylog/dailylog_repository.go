// File: internal/repository/dailylog/dailylog_repository.go
package dailylog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"gorm.io/gorm"

	"lifeboard/internal/domain"
)

var (
	dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	ErrInvalidEntry = errors.New("invalid log entry")
)

type gormDailyLogRepository struct {
	db *gorm.DB
}

func NewDailyLogRepository(db *gorm.DB) DailyLogRepository {
	return &gormDailyLogRepository{db: db}
}

func (r *gormDailyLogRepository) Create(ctx context.Context, entry *domain.DailyLog) (*domain.DailyLog, error) {
	if entry == nil {
		return nil, fmt.Errorf("%w: entry cannot be nil", ErrInvalidEntry)
	}
	if !dateFormat.MatchString(entry.Date) {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidEntry, entry.Date)
	}
	if entry.MinutesSpent < 0 {
		return nil, fmt.Errorf("%w: minutes spent cannot be negative", ErrInvalidEntry)
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		log.Printf("[DailyLogRepository] Database error creating log for %s: %v", entry.Date, err)
		return nil, errors.New("database error creating daily log")
	}
	return entry, nil
}

func (r *gormDailyLogRepository) FindByDate(ctx context.Context, date string) ([]domain.DailyLog, error) {
	if !dateFormat.MatchString(date) {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidEntry, date)
	}

	var logs []domain.DailyLog
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("id asc").
		Find(&logs).Error
	if err != nil {
		log.Printf("[DailyLogRepository] Database error fetching logs for %s: %v", date, err)
		return nil, errors.New("database error fetching daily logs")
	}
	return logs, nil
}
