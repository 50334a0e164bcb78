package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stagebook/internal/datefmt"
	"stagebook/internal/models"
	"stagebook/internal/repository"

	"github.com/sirupsen/logrus"
)

// homeFeedLimit caps the "latest" feeds on the homepage.
const homeFeedLimit = 10

type VenueService interface {
	ListRecent(ctx context.Context) ([]models.Venue, error)
	GroupByLocation(ctx context.Context) ([]models.VenueLocationGroup, error)
	Search(ctx context.Context, term string) ([]models.Venue, int64, error)
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	GetVenueDetail(ctx context.Context, id uint) (*models.VenueDetail, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, id uint, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id uint) error
}

type venueService struct {
	repo         repository.VenueRepository
	showRepo     repository.ShowRepository
	logger       *logrus.Logger
	mediaService *MediaService
}

func NewVenueService(repo repository.VenueRepository, showRepo repository.ShowRepository, logger *logrus.Logger) VenueService {
	return &venueService{
		repo:     repo,
		showRepo: showRepo,
		logger:   logger,
	}
}

func (s *venueService) SetMediaService(mediaSvc *MediaService) {
	s.mediaService = mediaSvc
}

func (s *venueService) ListRecent(ctx context.Context) ([]models.Venue, error) {
	return s.repo.FindRecent(ctx, homeFeedLimit)
}

func (s *venueService) GroupByLocation(ctx context.Context) ([]models.VenueLocationGroup, error) {
	venues, err := s.repo.FindAllByLocation(ctx)
	if err != nil {
		return nil, err
	}
	return groupVenuesByLocation(venues), nil
}

func (s *venueService) Search(ctx context.Context, term string) ([]models.Venue, int64, error) {
	return s.repo.SearchByName(ctx, normalizeSearchTerm(term))
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *venueService) GetVenueDetail(ctx context.Context, id uint) (*models.VenueDetail, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.showRepo.FindByVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := splitVenueShows(rows, time.Now())
	return &models.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if venue.Name == "" {
		return fmt.Errorf("venue name is required")
	}

	venue.SeekingTalent = venue.SeekingDescription != ""
	return s.repo.Create(ctx, venue)
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, venue *models.Venue) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if s.mediaService != nil && venue.ImageLink != existing.ImageLink {
		s.mediaService.DeleteManagedObject(existing.ImageLink)
	}

	venue.ID = id
	venue.SeekingTalent = venue.SeekingDescription != ""
	return s.repo.Update(ctx, venue)
}

func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// groupVenuesByLocation buckets venues already ordered by (city, state, id)
// into one group per distinct (city, state) pair. Group order is
// lexicographic by city then state; venues inside a group keep id order.
func groupVenuesByLocation(venues []models.Venue) []models.VenueLocationGroup {
	groups := []models.VenueLocationGroup{}
	for _, v := range venues {
		n := len(groups)
		if n == 0 || groups[n-1].City != v.City || groups[n-1].State != v.State {
			groups = append(groups, models.VenueLocationGroup{City: v.City, State: v.State})
			n++
		}
		groups[n-1].Venues = append(groups[n-1].Venues, models.VenueRef{ID: v.ID, Name: v.Name})
	}
	return groups
}

// splitVenueShows partitions a venue's shows around now. A show starting
// exactly at now counts as past.
func splitVenueShows(rows []models.ShowWithArtist, now time.Time) (past, upcoming []models.VenueShowEntry) {
	past = []models.VenueShowEntry{}
	upcoming = []models.VenueShowEntry{}
	for _, row := range rows {
		entry := models.VenueShowEntry{
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       datefmt.Format(row.StartTime, "full"),
		}
		if row.StartTime.After(now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming
}

// normalizeSearchTerm trims surrounding whitespace before matching so a
// padded form submission behaves like the bare term.
func normalizeSearchTerm(term string) string {
	return strings.TrimSpace(term)
}
