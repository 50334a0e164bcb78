package services

import (
	"context"
	"sort"
	"strings"

	"stagebook/internal/models"
	"stagebook/internal/repository"
)

// In-memory repositories used by the service tests. They mirror the
// store-level contracts: ordering, case-insensitive substring search,
// sentinel errors, cascade deletes and all-or-nothing show creation.

type fakeVenueRepo struct {
	venues []models.Venue
	nextID uint
	shows  *fakeShowRepo
}

func newFakeVenueRepo(shows *fakeShowRepo) *fakeVenueRepo {
	return &fakeVenueRepo{nextID: 1, shows: shows}
}

func (r *fakeVenueRepo) Create(_ context.Context, venue *models.Venue) error {
	venue.ID = r.nextID
	r.nextID++
	r.venues = append(r.venues, *venue)
	return nil
}

func (r *fakeVenueRepo) Update(_ context.Context, venue *models.Venue) error {
	for i := range r.venues {
		if r.venues[i].ID == venue.ID {
			venue.CreationDate = r.venues[i].CreationDate
			r.venues[i] = *venue
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeVenueRepo) Delete(_ context.Context, id uint) error {
	for i := range r.venues {
		if r.venues[i].ID == id {
			r.venues = append(r.venues[:i], r.venues[i+1:]...)
			break
		}
	}
	if r.shows != nil {
		kept := r.shows.shows[:0]
		for _, s := range r.shows.shows {
			if s.VenueID != id {
				kept = append(kept, s)
			}
		}
		r.shows.shows = kept
	}
	return nil
}

func (r *fakeVenueRepo) FindByID(_ context.Context, id uint) (*models.Venue, error) {
	for i := range r.venues {
		if r.venues[i].ID == id {
			v := r.venues[i]
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeVenueRepo) FindRecent(_ context.Context, limit int) ([]models.Venue, error) {
	sorted := append([]models.Venue{}, r.venues...)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreationDate.Equal(sorted[j].CreationDate) {
			return sorted[i].CreationDate.After(sorted[j].CreationDate)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *fakeVenueRepo) FindAllByLocation(_ context.Context) ([]models.Venue, error) {
	sorted := append([]models.Venue{}, r.venues...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].City != sorted[j].City {
			return sorted[i].City < sorted[j].City
		}
		if sorted[i].State != sorted[j].State {
			return sorted[i].State < sorted[j].State
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted, nil
}

func (r *fakeVenueRepo) SearchByName(_ context.Context, term string) ([]models.Venue, int64, error) {
	matches := []models.Venue{}
	for _, v := range r.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			matches = append(matches, v)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, int64(len(matches)), nil
}

type fakeArtistRepo struct {
	artists []models.Artist
	nextID  uint
	shows   *fakeShowRepo
}

func newFakeArtistRepo(shows *fakeShowRepo) *fakeArtistRepo {
	return &fakeArtistRepo{nextID: 1, shows: shows}
}

func (r *fakeArtistRepo) Create(_ context.Context, artist *models.Artist) error {
	artist.ID = r.nextID
	r.nextID++
	r.artists = append(r.artists, *artist)
	return nil
}

func (r *fakeArtistRepo) Update(_ context.Context, artist *models.Artist) error {
	for i := range r.artists {
		if r.artists[i].ID == artist.ID {
			artist.CreationDate = r.artists[i].CreationDate
			r.artists[i] = *artist
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeArtistRepo) Delete(_ context.Context, id uint) error {
	for i := range r.artists {
		if r.artists[i].ID == id {
			r.artists = append(r.artists[:i], r.artists[i+1:]...)
			break
		}
	}
	if r.shows != nil {
		kept := r.shows.shows[:0]
		for _, s := range r.shows.shows {
			if s.ArtistID != id {
				kept = append(kept, s)
			}
		}
		r.shows.shows = kept
	}
	return nil
}

func (r *fakeArtistRepo) FindByID(_ context.Context, id uint) (*models.Artist, error) {
	for i := range r.artists {
		if r.artists[i].ID == id {
			a := r.artists[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeArtistRepo) FindRecent(_ context.Context, limit int) ([]models.Artist, error) {
	sorted := append([]models.Artist{}, r.artists...)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreationDate.Equal(sorted[j].CreationDate) {
			return sorted[i].CreationDate.After(sorted[j].CreationDate)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *fakeArtistRepo) FindAll(_ context.Context) ([]models.Artist, error) {
	sorted := append([]models.Artist{}, r.artists...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted, nil
}

func (r *fakeArtistRepo) SearchByName(_ context.Context, term string) ([]models.Artist, int64, error) {
	matches := []models.Artist{}
	for _, a := range r.artists {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			matches = append(matches, a)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, int64(len(matches)), nil
}

type fakeShowRepo struct {
	shows   []models.Show
	venues  *fakeVenueRepo
	artists *fakeArtistRepo
}

func (r *fakeShowRepo) Create(ctx context.Context, show *models.Show) error {
	if r.artists != nil {
		if _, err := r.artists.FindByID(ctx, show.ArtistID); err != nil {
			return repository.ErrForeignKey
		}
	}
	if r.venues != nil {
		if _, err := r.venues.FindByID(ctx, show.VenueID); err != nil {
			return repository.ErrForeignKey
		}
	}
	for _, s := range r.shows {
		if s.ArtistID == show.ArtistID && s.VenueID == show.VenueID && s.StartTime.Equal(show.StartTime) {
			return repository.ErrDuplicateShow
		}
	}
	r.shows = append(r.shows, *show)
	return nil
}

func (r *fakeShowRepo) FindByVenue(ctx context.Context, venueID uint) ([]models.ShowWithArtist, error) {
	rows := []models.ShowWithArtist{}
	for _, s := range r.shows {
		if s.VenueID != venueID {
			continue
		}
		row := models.ShowWithArtist{ArtistID: s.ArtistID, StartTime: s.StartTime}
		if r.artists != nil {
			if a, err := r.artists.FindByID(ctx, s.ArtistID); err == nil {
				row.ArtistName = a.Name
				row.ArtistImageLink = a.ImageLink
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartTime.Before(rows[j].StartTime) })
	return rows, nil
}

func (r *fakeShowRepo) FindByArtist(ctx context.Context, artistID uint) ([]models.ShowWithVenue, error) {
	rows := []models.ShowWithVenue{}
	for _, s := range r.shows {
		if s.ArtistID != artistID {
			continue
		}
		row := models.ShowWithVenue{VenueID: s.VenueID, StartTime: s.StartTime}
		if r.venues != nil {
			if v, err := r.venues.FindByID(ctx, s.VenueID); err == nil {
				row.VenueName = v.Name
				row.VenueImageLink = v.ImageLink
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartTime.Before(rows[j].StartTime) })
	return rows, nil
}

func (r *fakeShowRepo) FindAll(ctx context.Context) ([]models.ShowDetail, error) {
	rows := []models.ShowDetail{}
	for _, s := range r.shows {
		row := models.ShowDetail{VenueID: s.VenueID, ArtistID: s.ArtistID, StartTime: s.StartTime}
		if r.venues != nil {
			if v, err := r.venues.FindByID(ctx, s.VenueID); err == nil {
				row.VenueName = v.Name
			}
		}
		if r.artists != nil {
			if a, err := r.artists.FindByID(ctx, s.ArtistID); err == nil {
				row.ArtistName = a.Name
				row.ArtistImageLink = a.ImageLink
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartTime.Before(rows[j].StartTime) })
	return rows, nil
}

// newFakeStores wires the three fakes together so cascades and joins work.
func newFakeStores() (*fakeVenueRepo, *fakeArtistRepo, *fakeShowRepo) {
	shows := &fakeShowRepo{}
	venues := newFakeVenueRepo(shows)
	artists := newFakeArtistRepo(shows)
	shows.venues = venues
	shows.artists = artists
	return venues, artists, shows
}
