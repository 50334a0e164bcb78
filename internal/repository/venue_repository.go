package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"stagebook/internal/database"
	"stagebook/internal/models"

	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindRecent(ctx context.Context, limit int) ([]models.Venue, error)
	FindAllByLocation(ctx context.Context) ([]models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]models.Venue, int64, error)
}

type venueRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewVenueRepository(db *database.Database) VenueRepository {
	return &venueRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *venueRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(venue).Error
}

// Update replaces every caller-supplied field of an existing venue. The id
// and creation date are preserved from the stored row.
func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Venue
		if err := tx.First(&existing, venue.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		venue.CreationDate = existing.CreationDate
		return tx.Save(venue).Error
	})
}

// Delete removes a venue and cascades to its shows in one transaction.
// Deleting an absent id is a no-op, not an error.
func (r *venueRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Venue{}, id).Error
	})
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	err := r.db.WithContext(ctx).First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Order("creation_date DESC, id DESC").
		Limit(limit).
		Find(&venues).Error
	return venues, err
}

// FindAllByLocation returns every venue ordered by (city, state, id) so the
// service can bucket consecutive rows into location groups.
func (r *venueRepository) FindAllByLocation(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Order("city ASC, state ASC, id ASC").
		Find(&venues).Error
	return venues, err
}

// SearchByName matches the term as a case-insensitive substring of the
// venue name. An empty term matches every venue.
func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	var total int64

	pattern := "%" + strings.ToLower(term) + "%"
	query := r.db.WithContext(ctx).Model(&models.Venue{}).
		Where("LOWER(name) LIKE ?", pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id ASC").Find(&venues).Error; err != nil {
		return nil, 0, err
	}
	return venues, total, nil
}
