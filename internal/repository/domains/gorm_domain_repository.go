// File: internal/repository/domains/gorm_domain_repository.go
package domains

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lifeboard/internal/domain"
)

var ErrDomainNotFound = errors.New("domain not found")

type gormDomainRepository struct {
	db *gorm.DB
}

func NewDomainRepository(db *gorm.DB) DomainRepository {
	return &gormDomainRepository{db: db}
}

// FindAll returns all domains ordered by rowid, i.e. insertion order. The
// seed set defines the display order and it must stay stable across reads.
func (r *gormDomainRepository) FindAll(ctx context.Context) ([]domain.Domain, error) {
	var list []domain.Domain
	err := r.db.WithContext(ctx).
		Order("rowid").
		Find(&list).Error
	if err != nil {
		log.Printf("[DomainRepository] Database error listing domains: %v", err)
		return nil, errors.New("database error fetching domains")
	}
	return list, nil
}

func (r *gormDomainRepository) Upsert(ctx context.Context, d *domain.Domain) error {
	if d == nil {
		return errors.New("domain cannot be nil")
	}
	if err := d.IsValid(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	d.Progress = domain.ClampProgress(d.Progress)
	d.UpdatedAt = time.Now()

	// Insert-or-update keyed on id. Only the mutable fields are touched on
	// conflict; label, color, bg, icon and win are set-once.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"progress", "status", "days", "urgency", "updated_at"}),
		}).
		Create(d).Error
	if err != nil {
		log.Printf("[DomainRepository] Database error upserting domain %q: %v", d.ID, err)
		return errors.New("database error upserting domain")
	}
	return nil
}

func (r *gormDomainRepository) SetProgress(ctx context.Context, id string, value int) (int, error) {
	if id == "" {
		return 0, errors.New("domain id is required")
	}

	clamped := domain.ClampProgress(value)
	result := r.db.WithContext(ctx).
		Model(&domain.Domain{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"progress":   clamped,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		log.Printf("[DomainRepository] Database error setting progress for %q: %v", id, result.Error)
		return 0, errors.New("database error updating progress")
	}
	if result.RowsAffected == 0 {
		return 0, ErrDomainNotFound
	}
	return clamped, nil
}

func (r *gormDomainRepository) ResetAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Domain{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"progress":   0,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		log.Printf("[DomainRepository] Database error resetting progress: %v", err)
		return errors.New("database error resetting progress")
	}
	return nil
}

func (r *gormDomainRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Domain{}).Count(&count).Error
	if err != nil {
		log.Printf("[DomainRepository] Database error counting domains: %v", err)
		return 0, errors.New("database error counting domains")
	}
	return count, nil
}

func (r *gormDomainRepository) SeedIfEmpty(ctx context.Context, defaults []domain.Domain) (bool, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 || len(defaults) == 0 {
		return false, nil
	}

	for i := range defaults {
		defaults[i].Progress = domain.ClampProgress(defaults[i].Progress)
	}
	if err := r.db.WithContext(ctx).CreateInBatches(defaults, len(defaults)).Error; err != nil {
		log.Printf("[DomainRepository] Database error seeding domains: %v", err)
		return false, errors.New("database error seeding domains")
	}

	log.Printf("[DomainRepository] Seeded %d domains", len(defaults))
	return true, nil
}
