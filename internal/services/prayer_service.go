// File: internal/services/prayer_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"lifeboard/internal/services/prayer"
)

// PrayerSource names the upstream schedule authority in API responses.
const PrayerSource = "ДУМК Kazakhstan (muftyat.kz)"

// DailySummary is today's schedule as the dashboard displays it.
type DailySummary struct {
	Date     string            `json:"date"`
	Hijri    string            `json:"hijri"`
	Source   string            `json:"source"`
	Prayers  map[string]string `json:"prayers"`
	Suhoor   string            `json:"suhoor"`
	Iftar    string            `json:"iftar"`
	Midnight string            `json:"midnight"`
}

// PrayerService serves cached prayer-time lookups. Year payloads live in an
// explicit TTL cache owned by the service, created at startup and torn down
// with it; nothing here is process-global.
type PrayerService struct {
	config   *prayer.Config
	provider prayer.Provider
	cache    *expirable.LRU[int, []prayer.DayTimes]
	logger   Logger
	now      func() time.Time
}

func NewPrayerService(config *prayer.Config, provider prayer.Provider, logger Logger) (*PrayerService, error) {
	if config == nil {
		config = prayer.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, &prayer.PrayerError{Type: prayer.ErrTypeConfig, Message: "provider is required"}
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	return &PrayerService{
		config:   config,
		provider: provider,
		cache:    expirable.NewLRU[int, []prayer.DayTimes](config.CacheSize, nil, config.CacheTTL),
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Today returns the current day's schedule.
func (s *PrayerService) Today(ctx context.Context) (*DailySummary, error) {
	today := s.now()
	dateStr := today.Format("2006-01-02")

	year, err := s.yearData(ctx, today.Year())
	if err != nil {
		return nil, err
	}

	for _, day := range year {
		if day.Date != dateStr {
			continue
		}
		return &DailySummary{
			Date:   prayer.FormatDisplayDate(today),
			Source: PrayerSource,
			Prayers: map[string]string{
				"Fajr":    day.Fajr,
				"Sunrise": day.Sunrise,
				"Dhuhr":   day.Dhuhr,
				"Asr":     day.Asr,
				"Maghrib": day.Maghrib,
				"Isha":    day.Isha,
			},
			Suhoor:   day.Suhoor,
			Iftar:    day.Iftar,
			Midnight: day.Midnight,
		}, nil
	}

	return nil, &prayer.PrayerError{
		Type:    prayer.ErrTypeNotFound,
		Message: fmt.Sprintf("no schedule entry for %s", dateStr),
	}
}

// Month returns the schedule for every day of the given month, e.g. for the
// Ramadan calendar view. Zero year/month default to the current date.
func (s *PrayerService) Month(ctx context.Context, year, month int) ([]prayer.DayTimes, error) {
	now := s.now()
	if year <= 0 {
		year = now.Year()
	}
	if month <= 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, &prayer.PrayerError{
			Type:    prayer.ErrTypeValidation,
			Message: fmt.Sprintf("invalid month %d", month),
		}
	}

	data, err := s.yearData(ctx, year)
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	var days []prayer.DayTimes
	for _, day := range data {
		if strings.HasPrefix(day.Date, prefix) {
			days = append(days, day)
		}
	}
	return days, nil
}

// yearData serves the year's schedule from cache, fetching (with retry) on a
// miss. Failed fetches are not cached; the next request tries again.
func (s *PrayerService) yearData(ctx context.Context, year int) ([]prayer.DayTimes, error) {
	if cached, ok := s.cache.Get(year); ok {
		return cached, nil
	}

	s.logger.Info("fetching prayer times from upstream", "year", year)

	var data []prayer.DayTimes
	retry := &prayer.RetryConfig{MaxAttempts: s.config.MaxRetries, Delay: s.config.RetryDelay}
	err := prayer.RetryWithBackoff(ctx, retry, func(ctx context.Context) error {
		fetched, err := s.provider.FetchYear(ctx, year)
		if err != nil {
			return err
		}
		data = fetched
		return nil
	})
	if err != nil {
		s.logger.Error("prayer times fetch failed", "year", year, "error", err.Error())
		return nil, err
	}

	s.cache.Add(year, data)
	return data, nil
}
