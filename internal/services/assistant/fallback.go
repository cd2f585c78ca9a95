// File: internal/services/assistant/fallback.go
package assistant

import (
	"fmt"
	"strings"

	"lifeboard/internal/domain"
)

// DefaultFallbackReply is returned when no trigger matches.
const DefaultFallbackReply = "Be specific. What domain? What's the block? I can't help with vague."

// fallbackRule pairs a trigger substring with a response generator. Rules are
// evaluated in declaration order; the first trigger contained in the
// lowercased message wins.
type fallbackRule struct {
	Trigger string
	Respond func(domains []domain.Domain) string
}

// FallbackTable produces deterministic offline replies when the completion
// provider is unconfigured or errors. This path never attempts directive
// extraction or mutation.
type FallbackTable struct {
	rules  []fallbackRule
	logger Logger
}

func NewFallbackTable(logger Logger) *FallbackTable {
	static := func(reply string) func([]domain.Domain) string {
		return func([]domain.Domain) string { return reply }
	}
	return &FallbackTable{
		logger: logger,
		rules: []fallbackRule{
			{Trigger: "done", Respond: static("Logged. What's next on your list?")},
			{Trigger: "stuck", Respond: static("Stuck where exactly? Name the domain and the specific block.")},
			{Trigger: "status", Respond: buildStatus},
			{Trigger: "what now", Respond: static("SAT prep. You have 29 days. Open Khan Academy, do 25 practice problems on your weakest section. No negotiation.")},
			{Trigger: "tired", Respond: static("Understood. Lowest-energy task: read 1 chapter of your current book (Inner State). 30 minutes. No screen required.")},
			{Trigger: "20 min", Respond: static("20 minutes → SAT: do one full Reading passage (5 questions). Time yourself. Go.")},
			{Trigger: "skip", Respond: static("Skip SAT today? That's 1 of 29 remaining days gone. You need +250 points. Every day counts. Think carefully.")},
			{Trigger: "help", Respond: static("Available commands: done, stuck, status, what now, I'm tired, I have 20 min, skip SAT today")},
		},
	}
}

// Reply matches message against the trigger table, first match wins.
func (t *FallbackTable) Reply(message string, domains []domain.Domain) string {
	lower := strings.ToLower(message)
	for _, rule := range t.rules {
		if strings.Contains(lower, rule.Trigger) {
			return rule.Respond(domains)
		}
	}
	return DefaultFallbackReply
}

// buildStatus renders the snapshot grouped by urgency, critical first.
func buildStatus(domains []domain.Domain) string {
	if len(domains) == 0 {
		return "🔴 No domains loaded"
	}
	var lines []string
	for _, d := range domains {
		if d.Urgency == domain.UrgencyCritical {
			lines = append(lines, fmt.Sprintf("🔴 %s: %d%% — %dd left — CRITICAL", d.Label, d.Progress, d.Days))
		}
	}
	for _, d := range domains {
		if d.Urgency == domain.UrgencyHigh {
			lines = append(lines, fmt.Sprintf("🟡 %s: %d%% — %dd left", d.Label, d.Progress, d.Days))
		}
	}
	for _, d := range domains {
		if d.Urgency == domain.UrgencyMedium {
			lines = append(lines, fmt.Sprintf("🟢 %s: %d%% — %dd left", d.Label, d.Progress, d.Days))
		}
	}
	return strings.Join(lines, "\n")
}
