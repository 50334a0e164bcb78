package handlers

import (
	"stagebook/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

var validate = validator.New()

// GenreChoices feeds the multi-select on the venue and artist forms.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// VenueForm is the form-encoded body of the create and edit venue routes.
type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,max=120"`
	Address            string   `form:"address" validate:"max=120"`
	Phone              string   `form:"phone" validate:"max=120"`
	Genres             []string `form:"genres" validate:"dive,max=50"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,max=120"`
	Website            string   `form:"website" validate:"omitempty,max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,max=500"`
	SeekingDescription string   `form:"seeking_description" validate:"max=200"`
}

func (f *VenueForm) ToVenue() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             pq.StringArray(f.Genres),
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		SeekingDescription: f.SeekingDescription,
	}
}

// ArtistForm is the form-encoded body of the create and edit artist routes.
type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"max=120"`
	Genres             []string `form:"genres" validate:"dive,max=50"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,max=120"`
	Website            string   `form:"website" validate:"omitempty,max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,max=500"`
	SeekingDescription string   `form:"seeking_description" validate:"max=200"`
}

func (f *ArtistForm) ToArtist() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             pq.StringArray(f.Genres),
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		SeekingDescription: f.SeekingDescription,
	}
}

// ShowForm is the form-encoded body of the create show route.
type ShowForm struct {
	VenueID   uint   `form:"venue_id" validate:"required"`
	ArtistID  uint   `form:"artist_id" validate:"required"`
	StartTime string `form:"start_time" validate:"required"`
}

// SearchForm carries the single search box field.
type SearchForm struct {
	SearchTerm string `form:"search_term"`
}
