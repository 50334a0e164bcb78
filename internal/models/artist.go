package models

import (
	"time"

	"github.com/lib/pq"
)

type Artist struct {
	ID                 uint           `gorm:"primaryKey" json:"id" example:"4"`
	Name               string         `gorm:"not null;index" json:"name" example:"Guns N Petals"`
	City               string         `gorm:"size:120" json:"city" example:"San Francisco"`
	State              string         `gorm:"size:120" json:"state" example:"CA"`
	Phone              string         `gorm:"size:120" json:"phone" example:"326-123-5000"`
	ImageLink          string         `gorm:"size:500" json:"image_link"`
	FacebookLink       string         `gorm:"size:120" json:"facebook_link"`
	Website            string         `gorm:"size:120" json:"website"`
	Genres             pq.StringArray `gorm:"type:text[]" json:"genres"`
	SeekingVenue       bool           `json:"seeking_venue"`
	SeekingDescription string         `gorm:"size:200" json:"seeking_description"`
	CreationDate       time.Time      `gorm:"index;autoCreateTime" json:"creation_date"`
}

func (Artist) TableName() string {
	return "artists"
}

// ArtistDetail is the artist page payload: the record plus its shows split
// around the current time.
type ArtistDetail struct {
	Artist
	PastShows          []ArtistShowEntry `json:"past_shows"`
	UpcomingShows      []ArtistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}
