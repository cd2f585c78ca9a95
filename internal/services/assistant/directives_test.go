// File: internal/services/assistant/directives_test.go
package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectives_NoMarker(t *testing.T) {
	directives, err := ParseDirectives("Just a plain reply with no block.")
	require.NoError(t, err)
	assert.Nil(t, directives)
}

func TestParseDirectives_ValidBlock(t *testing.T) {
	reply := "SAT progress noted. Keep the pace.\n" +
		"[PROGRESS_UPDATE]\n```json\n" +
		`[{"id": "sat", "progress": 45}, {"id": "reading", "progress": 12.5}]` +
		"\n```"

	directives, err := ParseDirectives(reply)
	require.NoError(t, err)
	require.Len(t, directives, 2)
	assert.Equal(t, "sat", directives[0].ID)
	assert.Equal(t, 45.0, directives[0].Progress)
	assert.Equal(t, "reading", directives[1].ID)
	assert.Equal(t, 12.5, directives[1].Progress)
}

func TestParseDirectives_MalformedPayload(t *testing.T) {
	reply := "Update follows.\n[PROGRESS_UPDATE]\n```json\nnot json at all\n```"

	directives, err := ParseDirectives(reply)
	require.Error(t, err)
	assert.Nil(t, directives)

	ae, ok := err.(*AssistantError)
	require.True(t, ok)
	assert.Equal(t, ErrTypeParse, ae.Type)
}

func TestParseDirectives_SkipsInvalidElements(t *testing.T) {
	reply := "[PROGRESS_UPDATE]\n```json\n" +
		`[{"id": "sat", "progress": 30},` +
		` {"progress": 50},` +
		` {"id": "", "progress": 60},` +
		` {"id": "reading", "progress": "lots"},` +
		` {"id": "research", "progress": 70}]` +
		"\n```"

	directives, err := ParseDirectives(reply)
	require.NoError(t, err)
	require.Len(t, directives, 2)
	assert.Equal(t, "sat", directives[0].ID)
	assert.Equal(t, "research", directives[1].ID)
}

func TestParseDirectives_PreservesArrayOrder(t *testing.T) {
	reply := "[PROGRESS_UPDATE]\n```json\n" +
		`[{"id": "sat", "progress": 10}, {"id": "sat", "progress": 90}]` +
		"\n```"

	directives, err := ParseDirectives(reply)
	require.NoError(t, err)
	require.Len(t, directives, 2)
	assert.Equal(t, 10.0, directives[0].Progress)
	assert.Equal(t, 90.0, directives[1].Progress)
}

func TestParseDirectives_MarkerMidReply(t *testing.T) {
	reply := "Before.\n[PROGRESS_UPDATE]\n```json\n[{\"id\": \"ap\", \"progress\": 5}]\n```\nAfter."

	directives, err := ParseDirectives(reply)
	require.NoError(t, err)
	require.Len(t, directives, 1)
	assert.Equal(t, "ap", directives[0].ID)
}
