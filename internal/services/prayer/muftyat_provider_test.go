// File: internal/services/prayer/muftyat_provider_test.go
package prayer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	return cfg
}

func TestFetchYear_NormalizesDays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prayer-times/2026/43.238293/76.945465", r.URL.Path)
		fmt.Fprint(w, `{"result": [
			{"Date": "2026-03-05", "fajr": "05:30", "sunrise": "07:00", "dhuhr": "12:30",
			 "asr": "15:45", "sunset": "18:10", "maghrib": "18:15", "isha": "19:40", "midnight": "00:20"},
			{"Date": "2026-03-06", "fajr": "05:28", "sunrise": "06:58", "dhuhr": "12:30",
			 "asr": "15:46", "sunset": "", "maghrib": "18:17", "isha": "19:41", "midnight": "00:20"}
		]}`)
	}))
	defer srv.Close()

	provider := NewMuftyatProvider(testConfig(srv.URL))
	days, err := provider.FetchYear(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, days, 2)

	first := days[0]
	assert.Equal(t, "2026-03-05", first.Date)
	assert.Equal(t, "5 Mar 2026", first.DisplayDate)
	assert.Equal(t, "05:20", first.Suhoor)
	assert.Equal(t, "18:10", first.Iftar)

	// No sunset: iftar falls back to maghrib.
	assert.Equal(t, "18:17", days[1].Iftar)
}

func TestFetchYear_UpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	provider := NewMuftyatProvider(testConfig(srv.URL))
	_, err := provider.FetchYear(context.Background(), 2026)
	require.Error(t, err)

	perr, ok := err.(*PrayerError)
	require.True(t, ok)
	assert.Equal(t, ErrTypeProvider, perr.Type)
	assert.Equal(t, http.StatusBadGateway, perr.Code)
}

func TestFetchYear_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": []}`)
	}))
	defer srv.Close()

	provider := NewMuftyatProvider(testConfig(srv.URL))
	_, err := provider.FetchYear(context.Background(), 2026)
	require.Error(t, err)

	perr, ok := err.(*PrayerError)
	require.True(t, ok)
	assert.Equal(t, ErrTypeProvider, perr.Type)
}

func TestRetryWithBackoff(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), &RetryConfig{MaxAttempts: 3, Delay: 0}, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return &PrayerError{Type: ErrTypeNetwork, Message: "flaky"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoff_NoRetryOnValidation(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), &RetryConfig{MaxAttempts: 3, Delay: 0}, func(ctx context.Context) error {
		attempts++
		return &PrayerError{Type: ErrTypeValidation, Message: "bad input"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
