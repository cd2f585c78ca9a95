// File: internal/services/prayer_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeboard/internal/services/prayer"
)

type stubPrayerProvider struct {
	days  []prayer.DayTimes
	err   error
	calls int
}

func (p *stubPrayerProvider) FetchYear(ctx context.Context, year int) ([]prayer.DayTimes, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.days, nil
}

func (p *stubPrayerProvider) HealthCheck(ctx context.Context) error { return nil }

func stubYear() []prayer.DayTimes {
	return []prayer.DayTimes{
		{Date: "2026-02-28", Fajr: "05:40", Sunrise: "07:10", Dhuhr: "12:30", Asr: "15:40",
			Sunset: "18:00", Iftar: "18:00", Maghrib: "18:05", Isha: "19:30", Suhoor: "05:30", Midnight: "00:15"},
		{Date: "2026-03-05", Fajr: "05:30", Sunrise: "07:00", Dhuhr: "12:30", Asr: "15:45",
			Sunset: "18:10", Iftar: "18:10", Maghrib: "18:15", Isha: "19:40", Suhoor: "05:20", Midnight: "00:20"},
		{Date: "2026-03-06", Fajr: "05:28", Sunrise: "06:58", Dhuhr: "12:30", Asr: "15:46",
			Sunset: "18:12", Iftar: "18:12", Maghrib: "18:17", Isha: "19:41", Suhoor: "05:18", Midnight: "00:20"},
	}
}

func newTestPrayerService(t *testing.T, provider prayer.Provider, now time.Time) *PrayerService {
	t.Helper()
	svc, err := NewPrayerService(prayer.DefaultConfig(), provider, &NoOpLogger{})
	require.NoError(t, err)
	svc.now = func() time.Time { return now }
	return svc
}

func TestPrayerToday(t *testing.T) {
	provider := &stubPrayerProvider{days: stubYear()}
	svc := newTestPrayerService(t, provider, time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC))

	summary, err := svc.Today(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "5 Mar 2026", summary.Date)
	assert.Equal(t, PrayerSource, summary.Source)
	assert.Equal(t, "05:30", summary.Prayers["Fajr"])
	assert.Equal(t, "18:15", summary.Prayers["Maghrib"])
	assert.Equal(t, "05:20", summary.Suhoor)
	assert.Equal(t, "18:10", summary.Iftar)
}

func TestPrayerToday_MissingDay(t *testing.T) {
	provider := &stubPrayerProvider{days: stubYear()}
	svc := newTestPrayerService(t, provider, time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC))

	_, err := svc.Today(context.Background())
	require.Error(t, err)

	perr, ok := err.(*prayer.PrayerError)
	require.True(t, ok)
	assert.Equal(t, prayer.ErrTypeNotFound, perr.Type)
}

func TestPrayerYearIsCached(t *testing.T) {
	provider := &stubPrayerProvider{days: stubYear()}
	svc := newTestPrayerService(t, provider, time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := svc.Today(ctx)
	require.NoError(t, err)
	_, err = svc.Today(ctx)
	require.NoError(t, err)
	_, err = svc.Month(ctx, 2026, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
}

func TestPrayerFailedFetchNotCached(t *testing.T) {
	provider := &stubPrayerProvider{err: &prayer.PrayerError{Type: prayer.ErrTypeNetwork, Message: "down"}}
	svc := newTestPrayerService(t, provider, time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := svc.Today(ctx)
	require.Error(t, err)
	firstCalls := provider.calls
	assert.GreaterOrEqual(t, firstCalls, 1)

	// A later request retries the upstream instead of serving the failure.
	provider.err = nil
	provider.days = stubYear()
	_, err = svc.Today(ctx)
	require.NoError(t, err)
	assert.Greater(t, provider.calls, firstCalls)
}

func TestPrayerMonth(t *testing.T) {
	provider := &stubPrayerProvider{days: stubYear()}
	svc := newTestPrayerService(t, provider, time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	march, err := svc.Month(ctx, 2026, 3)
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, "2026-03-05", march[0].Date)

	// Zero arguments default to the current month.
	current, err := svc.Month(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, current, 2)

	_, err = svc.Month(ctx, 2026, 13)
	require.Error(t, err)
	perr, ok := err.(*prayer.PrayerError)
	require.True(t, ok)
	assert.Equal(t, prayer.ErrTypeValidation, perr.Type)
}
