// File: internal/repository/domains/interface.go
package domains

import (
	"context"

	"lifeboard/internal/domain"
)

// DomainRepository handles persistence of the progress trackers.
type DomainRepository interface {
	// FindAll returns every domain in stable creation order.
	FindAll(ctx context.Context) ([]domain.Domain, error)
	// Upsert inserts a new domain, or updates the mutable fields
	// (progress, status, days, urgency) of an existing one. Presentation
	// metadata is never changed on the update path.
	Upsert(ctx context.Context, d *domain.Domain) error
	// SetProgress clamps value to [0,100], persists it and refreshes
	// updated_at. Returns the value actually stored. Unknown ids yield
	// ErrDomainNotFound.
	SetProgress(ctx context.Context, id string, value int) (int, error)
	// ResetAll sets every domain's progress to 0. Idempotent.
	ResetAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	// SeedIfEmpty inserts the given defaults when the table holds no rows.
	SeedIfEmpty(ctx context.Context, defaults []domain.Domain) (bool, error)
}
