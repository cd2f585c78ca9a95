// File: internal/services/assistant/prompt_test.go
package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeboard/internal/domain"
)

func TestBuildDomainContext(t *testing.T) {
	builder := NewPromptBuilder(nil)

	context := builder.BuildDomainContext([]domain.Domain{
		{ID: "sat", Label: "SAT Prep", Progress: 40, Days: 29, Urgency: domain.UrgencyCritical, Status: "practice tests"},
	})

	assert.Equal(t, `SAT Prep: 40% done, 29 days left, urgency CRITICAL, status "practice tests"`, context)
}

func TestBuildSystemPrompt(t *testing.T) {
	builder := NewPromptBuilder(nil)
	now := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

	prompt := builder.BuildSystemPrompt(testDomains(), now)

	assert.Contains(t, prompt, MarkerToken)
	assert.Contains(t, prompt, "Valid domain IDs: sat, reading, research")
	assert.Contains(t, prompt, "Monday, March 3, 2025")
	assert.Contains(t, prompt, "SAT Prep: 40% done")
	// The fenced example must survive the format string intact.
	assert.Contains(t, prompt, "```json")
}

func TestBuildSystemPrompt_NoDomains(t *testing.T) {
	builder := NewPromptBuilder(nil)

	prompt := builder.BuildSystemPrompt(nil, time.Now())

	assert.Contains(t, prompt, "No domains loaded.")
	assert.Contains(t, prompt, "Valid domain IDs: (none)")
}

func TestWindowHistory(t *testing.T) {
	history := make([]domain.ChatMessage, 15)
	for i := range history {
		history[i] = domain.ChatMessage{ID: uint(i + 1), Role: domain.RoleUser, Content: "msg"}
	}

	windowed := WindowHistory(history, 10)
	require.Len(t, windowed, 10)
	assert.Equal(t, uint(6), windowed[0].ID)
	assert.Equal(t, uint(15), windowed[9].ID)

	assert.Len(t, WindowHistory(history[:5], 10), 5)
	assert.Len(t, WindowHistory(history, 0), 15)
}
