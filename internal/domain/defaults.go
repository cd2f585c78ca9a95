// File: internal/domain/defaults.go
package domain

// DefaultDomains is the fixed tracker set seeded on first run when the
// domains table is empty. After seeding these rows are only ever mutated
// through update operations, never recreated.
func DefaultDomains() []Domain {
	return []Domain{
		{ID: "unisonai", Label: "UnisonAI", Color: "#FF6B6B", Background: "#1A0A0A", Icon: "🤝", Win: "KPMG + 2 companies", Status: "Define your role", Urgency: UrgencyHigh, Days: 180, Progress: 25},
		{ID: "research", Label: "Research", Color: "#4ECDC4", Background: "#0A1A1A", Icon: "📄", Win: "Published paper", Status: "Not started", Urgency: UrgencyHigh, Days: 210, Progress: 10},
		{ID: "sanash", Label: "Sanash", Color: "#45B7D1", Background: "#0A1218", Icon: "🚌", Win: "Gov deal + paper", Status: "No clear vision", Urgency: UrgencyMedium, Days: 180, Progress: 15},
		{ID: "sevenstudio", Label: "Seven Studio", Color: "#F7DC6F", Background: "#1A1800", Icon: "🚀", Win: "3 cohorts, 1000+ teams", Status: "Concept stage", Urgency: UrgencyMedium, Days: 180, Progress: 20},
		{ID: "n8n", Label: "n8n Business", Color: "#A29BFE", Background: "#0D0A1A", Icon: "⚡", Win: "Stable income", Status: "Learning phase", Urgency: UrgencyMedium, Days: 180, Progress: 35},
		{ID: "sat", Label: "SAT", Color: "#FF4757", Background: "#1A0608", Icon: "🎯", Win: "1550+ score", Status: "1300 → need +250", Urgency: UrgencyCritical, Days: 29, Progress: 52},
		{ID: "ap", Label: "AP Exams", Color: "#FFA502", Background: "#0A0E00", Icon: "📐", Win: "Score 4-5 both", Status: "Behind on curriculum", Urgency: UrgencyHigh, Days: 88, Progress: 30},
		{ID: "reading", Label: "Inner State", Color: "#2ED573", Background: "#0A1A0D", Icon: "📖", Win: "Daily 30min habit", Status: "Inconsistent", Urgency: UrgencyMedium, Days: 240, Progress: 45},
	}
}
