// File: internal/services/prayer/times_test.go
package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtractMinutes(t *testing.T) {
	got, err := SubtractMinutes("05:30", 10)
	require.NoError(t, err)
	assert.Equal(t, "05:20", got)

	// Wraps across midnight.
	got, err = SubtractMinutes("00:05", 10)
	require.NoError(t, err)
	assert.Equal(t, "23:55", got)

	got, err = SubtractMinutes("00:00", 1)
	require.NoError(t, err)
	assert.Equal(t, "23:59", got)
}

func TestSubtractMinutes_Invalid(t *testing.T) {
	_, err := SubtractMinutes("0530", 10)
	assert.Error(t, err)

	_, err = SubtractMinutes("ab:cd", 10)
	assert.Error(t, err)
}

func TestFormatDisplayDate(t *testing.T) {
	d := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "5 Mar 2026", FormatDisplayDate(d))

	assert.Equal(t, "5 Mar 2026", FormatDisplayDateString("2026-03-05"))
	// Unparseable input passes through unchanged.
	assert.Equal(t, "garbage", FormatDisplayDateString("garbage"))
}
