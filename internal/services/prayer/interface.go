// File: internal/services/prayer/interface.go
package prayer

import "context"

// DayTimes is one normalized day of prayer times.
type DayTimes struct {
	Date        string `json:"gregorian"`
	DisplayDate string `json:"date"`
	Suhoor      string `json:"suhoor"`
	Imsak       string `json:"imsak,omitempty"`
	Fajr        string `json:"fajr"`
	Sunrise     string `json:"sunrise"`
	Dhuhr       string `json:"dhuhr"`
	Asr         string `json:"asr"`
	Sunset      string `json:"sunset,omitempty"`
	Iftar       string `json:"iftar"`
	Maghrib     string `json:"maghrib"`
	Isha        string `json:"isha"`
	Midnight    string `json:"midnight,omitempty"`
}

// Provider fetches a full year of prayer times for the configured location.
type Provider interface {
	FetchYear(ctx context.Context, year int) ([]DayTimes, error)
	HealthCheck(ctx context.Context) error
}
