package services

import (
	"context"
	"testing"
	"time"

	"stagebook/internal/models"
	"stagebook/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestCreateVenueDerivesSeekingTalent(t *testing.T) {
	venues, _, shows := newFakeStores()
	svc := NewVenueService(venues, shows, testLogger())
	ctx := context.Background()

	seeking := &models.Venue{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		SeekingDescription: "We are on the lookout for a local artist.",
	}
	require.NoError(t, svc.CreateVenue(ctx, seeking))
	assert.True(t, seeking.SeekingTalent)

	notSeeking := &models.Venue{
		Name:  "The Dueling Pianos Bar",
		City:  "New York",
		State: "NY",
	}
	require.NoError(t, svc.CreateVenue(ctx, notSeeking))
	assert.False(t, notSeeking.SeekingTalent)

	got, err := svc.GetVenue(ctx, seeking.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", got.Name)
	assert.Equal(t, "San Francisco", got.City)
	assert.True(t, got.SeekingTalent)
}

func TestCreateVenueRequiresName(t *testing.T) {
	venues, _, shows := newFakeStores()
	svc := NewVenueService(venues, shows, testLogger())

	err := svc.CreateVenue(context.Background(), &models.Venue{City: "Oakland", State: "CA"})
	assert.Error(t, err)
}

func TestUpdateVenueReplacesFieldsAndRederivesFlag(t *testing.T) {
	venues, _, shows := newFakeStores()
	svc := NewVenueService(venues, shows, testLogger())
	ctx := context.Background()

	venue := &models.Venue{
		Name:               "Park Square Live Music & Coffee",
		City:               "San Francisco",
		State:              "CA",
		SeekingDescription: "Looking for weekend acts.",
	}
	require.NoError(t, svc.CreateVenue(ctx, venue))

	replacement := &models.Venue{
		Name:  "Park Square Live Music & Coffee",
		City:  "Oakland",
		State: "CA",
	}
	require.NoError(t, svc.UpdateVenue(ctx, venue.ID, replacement))

	got, err := svc.GetVenue(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oakland", got.City)
	assert.False(t, got.SeekingTalent)
	assert.Empty(t, got.SeekingDescription)
}

func TestUpdateVenueNotFound(t *testing.T) {
	venues, _, shows := newFakeStores()
	svc := NewVenueService(venues, shows, testLogger())

	err := svc.UpdateVenue(context.Background(), 99, &models.Venue{Name: "Ghost Hall"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteVenueCascadesAndIsIdempotent(t *testing.T) {
	venues, artists, shows := newFakeStores()
	venueSvc := NewVenueService(venues, shows, testLogger())
	ctx := context.Background()

	venue := &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"}
	require.NoError(t, venueSvc.CreateVenue(ctx, venue))
	artist := &models.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA"}
	require.NoError(t, artists.Create(ctx, artist))
	require.NoError(t, shows.Create(ctx, &models.Show{
		VenueID:   venue.ID,
		ArtistID:  artist.ID,
		StartTime: time.Now().Add(24 * time.Hour),
	}))

	require.NoError(t, venueSvc.DeleteVenue(ctx, venue.ID))

	_, err := venueSvc.GetVenue(ctx, venue.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	remaining, err := shows.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// Deleting again is a no-op, not an error.
	assert.NoError(t, venueSvc.DeleteVenue(ctx, venue.ID))
}

func TestSearchVenuesIsCaseInsensitiveSubstring(t *testing.T) {
	venues, _, shows := newFakeStores()
	svc := NewVenueService(venues, shows, testLogger())
	ctx := context.Background()

	for _, name := range []string{"The Musical Hop", "The Dueling Pianos Bar", "Park Square Live Music & Coffee"} {
		require.NoError(t, svc.CreateVenue(ctx, &models.Venue{Name: name, City: "San Francisco", State: "CA"}))
	}

	tests := []struct {
		term     string
		expected []string
	}{
		{"Hop", []string{"The Musical Hop"}},
		{"Music", []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{"music", []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{"nonexistent-xyz", []string{}},
		// Empty term matches every venue.
		{"", []string{"The Musical Hop", "The Dueling Pianos Bar", "Park Square Live Music & Coffee"}},
	}

	for _, tt := range tests {
		t.Run("term "+tt.term, func(t *testing.T) {
			results, count, err := svc.Search(ctx, tt.term)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.expected)), count)
			names := make([]string, 0, len(results))
			for _, v := range results {
				names = append(names, v.Name)
			}
			assert.ElementsMatch(t, tt.expected, names)
		})
	}
}

func TestListRecentVenuesCapsAtTenNewestFirst(t *testing.T) {
	venues, _, shows := newFakeStores()
	svc := NewVenueService(venues, shows, testLogger())
	ctx := context.Background()

	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		v := &models.Venue{Name: "Venue", City: "Austin", State: "TX"}
		require.NoError(t, svc.CreateVenue(ctx, v))
		// Two venues share a creation date to exercise the id tiebreak.
		venues.venues[i].CreationDate = base.Add(time.Duration(i/2) * time.Hour)
	}

	recent, err := svc.ListRecent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 10)

	for i := 1; i < len(recent); i++ {
		prev, cur := recent[i-1], recent[i]
		assert.False(t, prev.CreationDate.Before(cur.CreationDate))
		if prev.CreationDate.Equal(cur.CreationDate) {
			assert.Greater(t, prev.ID, cur.ID)
		}
	}
}

func TestGroupVenuesByLocation(t *testing.T) {
	input := []models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "New York", State: "NY"},
		{ID: 4, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 2, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		{ID: 3, Name: "The Fillmore", City: "San Francisco", State: "CA"},
	}

	groups := groupVenuesByLocation(input)
	require.Len(t, groups, 2)

	assert.Equal(t, "New York", groups[0].City)
	assert.Equal(t, "NY", groups[0].State)
	assert.Equal(t, []models.VenueRef{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 4, Name: "The Dueling Pianos Bar"},
	}, groups[0].Venues)

	assert.Equal(t, "San Francisco", groups[1].City)
	assert.Len(t, groups[1].Venues, 2)
}

func TestGroupVenuesByLocationEmpty(t *testing.T) {
	assert.Empty(t, groupVenuesByLocation(nil))
}

func TestSplitVenueShows(t *testing.T) {
	now := time.Date(2024, time.June, 1, 18, 0, 0, 0, time.UTC)
	rows := []models.ShowWithArtist{
		{ArtistID: 1, ArtistName: "Guns N Petals", StartTime: now.Add(-48 * time.Hour)},
		{ArtistID: 2, ArtistName: "Matt Quevado", StartTime: now}, // boundary: counts as past
		{ArtistID: 3, ArtistName: "The Wild Sax Band", StartTime: now.Add(72 * time.Hour)},
	}

	past, upcoming := splitVenueShows(rows, now)

	require.Len(t, past, 2)
	require.Len(t, upcoming, 1)
	assert.Equal(t, uint(3), upcoming[0].ArtistID)
	assert.Equal(t, "Saturday June, 1, 2024 at 6:00PM", past[1].StartTime)

	// Every show lands in exactly one bucket.
	assert.Equal(t, len(rows), len(past)+len(upcoming))
}

func TestGetVenueDetailCounts(t *testing.T) {
	venues, artists, shows := newFakeStores()
	svc := NewVenueService(venues, shows, testLogger())
	ctx := context.Background()

	venue := &models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"}
	require.NoError(t, svc.CreateVenue(ctx, venue))
	artist := &models.Artist{Name: "Guns N Petals", ImageLink: "https://example.com/gnp.jpg"}
	require.NoError(t, artists.Create(ctx, artist))

	require.NoError(t, shows.Create(ctx, &models.Show{
		VenueID: venue.ID, ArtistID: artist.ID, StartTime: time.Now().Add(-24 * time.Hour),
	}))
	require.NoError(t, shows.Create(ctx, &models.Show{
		VenueID: venue.ID, ArtistID: artist.ID, StartTime: time.Now().Add(24 * time.Hour),
	}))

	detail, err := svc.GetVenueDetail(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Equal(t, "Guns N Petals", detail.UpcomingShows[0].ArtistName)
	assert.Equal(t, "https://example.com/gnp.jpg", detail.UpcomingShows[0].ArtistImageLink)
}

func TestGetVenueDetailNotFound(t *testing.T) {
	venues, _, shows := newFakeStores()
	svc := NewVenueService(venues, shows, testLogger())

	_, err := svc.GetVenueDetail(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
