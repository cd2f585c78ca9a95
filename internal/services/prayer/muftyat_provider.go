// File: internal/services/prayer/muftyat_provider.go
package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MuftyatProvider pulls yearly prayer schedules from the muftyat.kz REST API.
type MuftyatProvider struct {
	config *Config
	client *http.Client
}

func NewMuftyatProvider(config *Config) *MuftyatProvider {
	return &MuftyatProvider{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// muftyatDay mirrors one element of the upstream "result" array.
type muftyatDay struct {
	Date     string `json:"Date"`
	Imsak    string `json:"imsak"`
	Fajr     string `json:"fajr"`
	Sunrise  string `json:"sunrise"`
	Dhuhr    string `json:"dhuhr"`
	Asr      string `json:"asr"`
	Sunset   string `json:"sunset"`
	Maghrib  string `json:"maghrib"`
	Isha     string `json:"isha"`
	Midnight string `json:"midnight"`
}

type muftyatResponse struct {
	Result []muftyatDay `json:"result"`
}

func (p *MuftyatProvider) FetchYear(ctx context.Context, year int) ([]DayTimes, error) {
	url := fmt.Sprintf("%s/prayer-times/%d/%s/%s",
		p.config.BaseURL, year, p.config.Latitude, p.config.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &PrayerError{Type: ErrTypeNetwork, Message: "failed to create request", Cause: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &PrayerError{Type: ErrTypeNetwork, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &PrayerError{
			Type:    ErrTypeProvider,
			Code:    resp.StatusCode,
			Message: string(body),
		}
	}

	var payload muftyatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &PrayerError{Type: ErrTypeProvider, Message: "malformed response body", Cause: err}
	}
	if len(payload.Result) == 0 {
		return nil, &PrayerError{Type: ErrTypeProvider, Message: "empty prayer times result"}
	}

	return p.normalize(payload.Result), nil
}

// normalize converts upstream rows into the dashboard's shape, deriving
// suhoor (fajr minus 10 minutes) and iftar (sunset, falling back to maghrib).
func (p *MuftyatProvider) normalize(days []muftyatDay) []DayTimes {
	out := make([]DayTimes, 0, len(days))
	for _, day := range days {
		suhoor, err := SubtractMinutes(day.Fajr, 10)
		if err != nil {
			suhoor = day.Fajr
		}
		iftar := day.Sunset
		if iftar == "" {
			iftar = day.Maghrib
		}
		out = append(out, DayTimes{
			Date:        day.Date,
			DisplayDate: FormatDisplayDateString(day.Date),
			Suhoor:      suhoor,
			Imsak:       day.Imsak,
			Fajr:        day.Fajr,
			Sunrise:     day.Sunrise,
			Dhuhr:       day.Dhuhr,
			Asr:         day.Asr,
			Sunset:      day.Sunset,
			Iftar:       iftar,
			Maghrib:     day.Maghrib,
			Isha:        day.Isha,
			Midnight:    day.Midnight,
		})
	}
	return out
}

func (p *MuftyatProvider) HealthCheck(ctx context.Context) error {
	return nil
}
