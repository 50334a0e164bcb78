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

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindRecent(ctx context.Context, limit int) ([]models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.Artist, int64, error)
}

type artistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *artistRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Artist
		if err := tx.First(&existing, artist.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		artist.CreationDate = existing.CreationDate
		return tx.Save(artist).Error
	})
}

// Delete removes an artist and cascades to its shows in one transaction.
// Deleting an absent id is a no-op, not an error.
func (r *artistRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Artist{}, id).Error
	})
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	err := r.db.WithContext(ctx).First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Order("creation_date DESC, id DESC").
		Limit(limit).
		Find(&artists).Error
	return artists, err
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).Order("id ASC").Find(&artists).Error
	return artists, err
}

// SearchByName matches the term as a case-insensitive substring of the
// artist name. An empty term matches every artist.
func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	var total int64

	pattern := "%" + strings.ToLower(term) + "%"
	query := r.db.WithContext(ctx).Model(&models.Artist{}).
		Where("LOWER(name) LIKE ?", pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id ASC").Find(&artists).Error; err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}
