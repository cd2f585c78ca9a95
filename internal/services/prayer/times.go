// File: internal/services/prayer/times.go
package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SubtractMinutes shifts an HH:MM time string back by mins, wrapping across
// midnight. Used for the suhoor cutoff (10 minutes before fajr).
func SubtractMinutes(timeStr string, mins int) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}

	total := h*60 + m - mins
	total = ((total % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// FormatDisplayDate renders a date as "2 Jan 2006" for the dashboard header.
func FormatDisplayDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// FormatDisplayDateString converts a YYYY-MM-DD string into display form.
func FormatDisplayDateString(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return FormatDisplayDate(t)
}
