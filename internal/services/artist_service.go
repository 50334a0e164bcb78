package services

import (
	"context"
	"fmt"
	"time"

	"stagebook/internal/datefmt"
	"stagebook/internal/models"
	"stagebook/internal/repository"

	"github.com/sirupsen/logrus"
)

type ArtistService interface {
	ListRecent(ctx context.Context) ([]models.Artist, error)
	ListAll(ctx context.Context) ([]models.Artist, error)
	Search(ctx context.Context, term string) ([]models.Artist, int64, error)
	GetArtist(ctx context.Context, id uint) (*models.Artist, error)
	GetArtistDetail(ctx context.Context, id uint) (*models.ArtistDetail, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, id uint, artist *models.Artist) error
	DeleteArtist(ctx context.Context, id uint) error
}

type artistService struct {
	repo         repository.ArtistRepository
	showRepo     repository.ShowRepository
	logger       *logrus.Logger
	mediaService *MediaService
}

func NewArtistService(repo repository.ArtistRepository, showRepo repository.ShowRepository, logger *logrus.Logger) ArtistService {
	return &artistService{
		repo:     repo,
		showRepo: showRepo,
		logger:   logger,
	}
}

func (s *artistService) SetMediaService(mediaSvc *MediaService) {
	s.mediaService = mediaSvc
}

func (s *artistService) ListRecent(ctx context.Context) ([]models.Artist, error) {
	return s.repo.FindRecent(ctx, homeFeedLimit)
}

func (s *artistService) ListAll(ctx context.Context) ([]models.Artist, error) {
	return s.repo.FindAll(ctx)
}

func (s *artistService) Search(ctx context.Context, term string) ([]models.Artist, int64, error) {
	return s.repo.SearchByName(ctx, normalizeSearchTerm(term))
}

func (s *artistService) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *artistService) GetArtistDetail(ctx context.Context, id uint) (*models.ArtistDetail, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.showRepo.FindByArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := splitArtistShows(rows, time.Now())
	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *artistService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	if artist.Name == "" {
		return fmt.Errorf("artist name is required")
	}

	artist.SeekingVenue = artist.SeekingDescription != ""
	return s.repo.Create(ctx, artist)
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, artist *models.Artist) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if s.mediaService != nil && artist.ImageLink != existing.ImageLink {
		s.mediaService.DeleteManagedObject(existing.ImageLink)
	}

	artist.ID = id
	artist.SeekingVenue = artist.SeekingDescription != ""
	return s.repo.Update(ctx, artist)
}

func (s *artistService) DeleteArtist(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// splitArtistShows partitions an artist's shows around now. A show
// starting exactly at now counts as past.
func splitArtistShows(rows []models.ShowWithVenue, now time.Time) (past, upcoming []models.ArtistShowEntry) {
	past = []models.ArtistShowEntry{}
	upcoming = []models.ArtistShowEntry{}
	for _, row := range rows {
		entry := models.ArtistShowEntry{
			VenueID:        row.VenueID,
			VenueName:      row.VenueName,
			VenueImageLink: row.VenueImageLink,
			StartTime:      datefmt.Format(row.StartTime, "full"),
		}
		if row.StartTime.After(now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming
}
