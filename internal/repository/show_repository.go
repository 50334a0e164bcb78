package repository

import (
	"context"
	"errors"
	"time"

	"stagebook/internal/database"
	"stagebook/internal/models"

	"gorm.io/gorm"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	FindByVenue(ctx context.Context, venueID uint) ([]models.ShowWithArtist, error)
	FindByArtist(ctx context.Context, artistID uint) ([]models.ShowWithVenue, error)
	FindAll(ctx context.Context) ([]models.ShowDetail, error)
}

type showRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *showRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts a show after verifying both sides of the booking exist.
// The checks and the insert run in one transaction, so a failed insert
// never leaves a partial row.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Artist{}).Where("id = ?", show.ArtistID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrForeignKey
		}
		if err := tx.Model(&models.Venue{}).Where("id = ?", show.VenueID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrForeignKey
		}

		err := tx.Model(&models.Show{}).
			Where("artist_id = ? AND venue_id = ? AND start_time = ?", show.ArtistID, show.VenueID, show.StartTime).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateShow
		}

		if err := tx.Create(show).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrForeignKey
			}
			return err
		}
		return nil
	})
}

func (r *showRepository) FindByVenue(ctx context.Context, venueID uint) ([]models.ShowWithArtist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.ShowWithArtist
	err := r.db.WithContext(ctx).Model(&models.Show{}).
		Select("shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", venueID).
		Order("shows.start_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *showRepository) FindByArtist(ctx context.Context, artistID uint) ([]models.ShowWithVenue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.ShowWithVenue
	err := r.db.WithContext(ctx).Model(&models.Show{}).
		Select("shows.venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", artistID).
		Order("shows.start_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.ShowDetail, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []models.ShowDetail
	err := r.db.WithContext(ctx).Model(&models.Show{}).
		Select("shows.venue_id, venues.name AS venue_name, shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.start_time ASC").
		Find(&rows).Error
	return rows, err
}
