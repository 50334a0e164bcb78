package models

import (
	"time"

	"github.com/lib/pq"
)

type Venue struct {
	ID                 uint           `gorm:"primaryKey" json:"id" example:"1"`
	Name               string         `gorm:"not null;index" json:"name" example:"The Musical Hop"`
	City               string         `gorm:"size:120;index:idx_venues_location" json:"city" example:"San Francisco"`
	State              string         `gorm:"size:120;index:idx_venues_location" json:"state" example:"CA"`
	Address            string         `gorm:"size:120" json:"address" example:"1015 Folsom Street"`
	Phone              string         `gorm:"size:120" json:"phone" example:"123-123-1234"`
	ImageLink          string         `gorm:"size:500" json:"image_link"`
	FacebookLink       string         `gorm:"size:120" json:"facebook_link"`
	Website            string         `gorm:"size:120" json:"website"`
	Genres             pq.StringArray `gorm:"type:text[]" json:"genres"`
	SeekingTalent      bool           `json:"seeking_talent"`
	SeekingDescription string         `gorm:"size:200" json:"seeking_description"`
	CreationDate       time.Time      `gorm:"index;autoCreateTime" json:"creation_date"`
}

func (Venue) TableName() string {
	return "venues"
}

// VenueRef is the short form used inside the city/state listing.
type VenueRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// VenueLocationGroup is one (city, state) bucket on the venues page.
type VenueLocationGroup struct {
	City   string     `json:"city"`
	State  string     `json:"state"`
	Venues []VenueRef `json:"venues"`
}

// VenueDetail is the venue page payload: the record plus its shows split
// around the current time.
type VenueDetail struct {
	Venue
	PastShows          []VenueShowEntry `json:"past_shows"`
	UpcomingShows      []VenueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}
