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

// startTimeLayouts are the accepted forms of the start_time field, tried
// in order. The datetime-local input submits the first form.
var startTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

type ShowService interface {
	ListAll(ctx context.Context) ([]models.ShowListEntry, error)
	CreateShow(ctx context.Context, venueID, artistID uint, startTime string) error
}

type showService struct {
	repo   repository.ShowRepository
	logger *logrus.Logger
}

func NewShowService(repo repository.ShowRepository, logger *logrus.Logger) ShowService {
	return &showService{
		repo:   repo,
		logger: logger,
	}
}

func (s *showService) ListAll(ctx context.Context) ([]models.ShowListEntry, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ShowListEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.ShowListEntry{
			VenueID:         row.VenueID,
			VenueName:       row.VenueName,
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       datefmt.Format(row.StartTime, "full"),
		})
	}
	return entries, nil
}

func (s *showService) CreateShow(ctx context.Context, venueID, artistID uint, startTime string) error {
	start, err := ParseStartTime(startTime)
	if err != nil {
		return err
	}

	return s.repo.Create(ctx, &models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: start,
	})
}

// ParseStartTime parses a submitted start_time against the accepted
// layouts.
func ParseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start_time %q", value)
}
