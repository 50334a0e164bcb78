package models

import "time"

// Show is a join record: one artist playing one venue at one start time.
// The triple is the primary key, so the same pairing may recur at a
// different time but never at the identical timestamp.
type Show struct {
	ArtistID  uint      `gorm:"primaryKey;autoIncrement:false" json:"artist_id"`
	VenueID   uint      `gorm:"primaryKey;autoIncrement:false" json:"venue_id"`
	StartTime time.Time `gorm:"primaryKey" json:"start_time"`

	Artist Artist `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
	Venue  Venue  `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Show) TableName() string {
	return "shows"
}

// ShowWithArtist is a show row joined with its artist, as listed on a
// venue page.
type ShowWithArtist struct {
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"-"`
}

// ShowWithVenue is a show row joined with its venue, as listed on an
// artist page.
type ShowWithVenue struct {
	VenueID        uint      `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"-"`
}

// ShowDetail is a show joined with both sides, as listed on the shows page.
type ShowDetail struct {
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"-"`
}

// VenueShowEntry is one row in the past/upcoming lists on a venue page,
// carrying the start time already formatted for display.
type VenueShowEntry struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowEntry is one row in the past/upcoming lists on an artist page.
type ArtistShowEntry struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ShowListEntry is one row on the shows page.
type ShowListEntry struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
