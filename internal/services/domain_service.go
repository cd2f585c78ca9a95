// File: internal/services/domain_service.go
package services

import (
	"context"

	"lifeboard/internal/domain"
	"lifeboard/internal/repository/domains"
)

// DomainUpdate carries the caller-supplied fields of a PUT. A set Progress
// routes to the single-field progress path; anything else goes through the
// upsert path, which only ever touches the mutable columns of existing rows.
type DomainUpdate struct {
	Label      string `json:"label"`
	Color      string `json:"color"`
	Background string `json:"bg"`
	Icon       string `json:"icon"`
	Win        string `json:"win"`
	Status     string `json:"status"`
	Urgency    string `json:"urgency"`
	Days       int    `json:"days"`
	Progress   *int   `json:"progress"`
}

// DomainService owns the tracker lifecycle: seeding, listing, updates and
// the progress reset.
type DomainService struct {
	repo   domains.DomainRepository
	logger Logger
}

func NewDomainService(repo domains.DomainRepository, logger Logger) *DomainService {
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &DomainService{repo: repo, logger: logger}
}

// EnsureSeeded populates the default tracker set on first run. The store
// itself stays policy-free; seeding is decided here.
func (s *DomainService) EnsureSeeded(ctx context.Context) error {
	seeded, err := s.repo.SeedIfEmpty(ctx, domain.DefaultDomains())
	if err != nil {
		return err
	}
	if seeded {
		s.logger.Info("seeded default domains", "count", len(domain.DefaultDomains()))
	}
	return nil
}

func (s *DomainService) List(ctx context.Context) ([]domain.Domain, error) {
	return s.repo.FindAll(ctx)
}

// Count doubles as a storage liveness probe for the status endpoint.
func (s *DomainService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Update applies a PUT body to one domain. Mirrors the two storage paths:
// a progress-only update when the field is present, a mutable-field upsert
// otherwise.
func (s *DomainService) Update(ctx context.Context, id string, update DomainUpdate) error {
	if update.Progress != nil {
		_, err := s.repo.SetProgress(ctx, id, *update.Progress)
		return err
	}

	return s.repo.Upsert(ctx, &domain.Domain{
		ID:         id,
		Label:      update.Label,
		Color:      update.Color,
		Background: update.Background,
		Icon:       update.Icon,
		Win:        update.Win,
		Status:     update.Status,
		Urgency:    update.Urgency,
		Days:       update.Days,
		Progress:   clampOrZero(update.Progress),
	})
}

// SetProgress clamps and persists one domain's progress, returning the value
// actually stored.
func (s *DomainService) SetProgress(ctx context.Context, id string, value int) (int, error) {
	return s.repo.SetProgress(ctx, id, value)
}

// ResetAll zeroes every progress bar. Domains are never deleted; reset is the
// only bulk mutation.
func (s *DomainService) ResetAll(ctx context.Context) error {
	return s.repo.ResetAll(ctx)
}

func clampOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return domain.ClampProgress(*v)
}
